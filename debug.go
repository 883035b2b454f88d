package tilemap

import (
	"fmt"
	"os"
)

// globalDebug enables diagnostic warnings on stderr. Off by default; the
// checks it guards are skipped entirely in release use.
var globalDebug bool

// SetDebug toggles diagnostic warnings for suspicious API use (tiles set at
// out-of-range coordinates, gids with no registered tileset, and similar).
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugWarnf prints a warning to stderr when debug mode is on.
func debugWarnf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tilemap] warning: "+format+"\n", args...)
}

// Default debug draw colors, applied to each layer by AddLayer. Consumers
// use these to draw the grid, the map frame, and coordinate highlights.
var (
	defaultGridColor      = Color{R: 0, G: 0.5, B: 0.25, A: 0.4}
	defaultFrameColor     = Color{R: 0, G: 0.25, B: 0.5, A: 0.8}
	defaultHighlightColor = Color{R: 1, G: 0.25, B: 0.1, A: 0.6}
)
