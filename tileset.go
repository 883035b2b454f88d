package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimFrame describes a single frame in a tile animation sequence.
type AnimFrame struct {
	GID      uint32 // tile GID for this frame (no flag bits)
	Duration int    // milliseconds
}

// TilesetData is the metadata record for a single tile in a tileset: global
// id, optional type string, custom properties, animation frames, and the
// texture sub-rectangle a renderer should draw. Records are created eagerly
// with their tileset and treated as immutable once the tileset is
// registered on a map.
type TilesetData struct {
	GID        uint32 // global id: tileset FirstGID + local id
	LocalID    int
	Type       string
	Properties map[string]string
	Frames     []AnimFrame // animation sequence, empty for static tiles
	Region     TextureRegion
	tileset    *Tileset
}

// Animated reports whether the tile has an animation sequence.
func (d *TilesetData) Animated() bool {
	return len(d.Frames) > 0
}

// Tileset returns the owning tileset.
func (d *TilesetData) Tileset() *Tileset {
	return d.tileset
}

// Property returns the named custom property and whether it is set.
func (d *TilesetData) Property(name string) (string, bool) {
	v, ok := d.Properties[name]
	return v, ok
}

// Tileset is a named set of tile metadata records spanning the contiguous
// global-id range [FirstGID, FirstGID+TileCount). Records are allocated
// eagerly so a lookup within the range always resolves.
type Tileset struct {
	Name      string
	FirstGID  uint32
	TileCount int
	TileSize  Size
	Image     *ebiten.Image // atlas page supplied by the loader; may be nil

	data []*TilesetData // indexed by local id
}

// NewTileset creates a tileset covering TileCount global ids starting at
// firstGID, with a record pre-allocated for every local id.
func NewTileset(name string, firstGID uint32, tileCount int, tileSize Size) *Tileset {
	ts := &Tileset{
		Name:      name,
		FirstGID:  firstGID,
		TileCount: tileCount,
		TileSize:  tileSize,
		data:      make([]*TilesetData, tileCount),
	}
	for i := 0; i < tileCount; i++ {
		ts.data[i] = &TilesetData{
			GID:        firstGID + uint32(i),
			LocalID:    i,
			Properties: make(map[string]string),
			tileset:    ts,
		}
	}
	return ts
}

// Contains reports whether gid falls within this tileset's id range.
func (ts *Tileset) Contains(gid uint32) bool {
	return gid >= ts.FirstGID && gid < ts.FirstGID+uint32(ts.TileCount)
}

// DataForGID resolves a global id to the local record, or nil when gid is
// outside the tileset's range.
func (ts *Tileset) DataForGID(gid uint32) *TilesetData {
	if !ts.Contains(gid) {
		return nil
	}
	return ts.data[gid-ts.FirstGID]
}

// DataForLocalID returns the record for a local id, or nil when out of
// range. Use this to fill in types, properties, regions, and animation
// frames before the tileset is registered.
func (ts *Tileset) DataForLocalID(id int) *TilesetData {
	if id < 0 || id >= ts.TileCount {
		return nil
	}
	return ts.data[id]
}

// LastGID returns the highest global id covered by this tileset.
func (ts *Tileset) LastGID() uint32 {
	if ts.TileCount == 0 {
		return ts.FirstGID
	}
	return ts.FirstGID + uint32(ts.TileCount) - 1
}
