package tilemap

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size holds map or tile dimensions. Map sizes are in tiles, tile sizes in
// pixels.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// GID flag bits (same convention as Tiled TMX format).
const (
	TileFlipH    uint32 = 1 << 31 // horizontal flip
	TileFlipV    uint32 = 1 << 30 // vertical flip
	TileFlipD    uint32 = 1 << 29 // diagonal flip (90° rotation)
	TileFlagMask uint32 = TileFlipH | TileFlipV | TileFlipD
)

// Orientation is the grid projection scheme of a map. It is fixed at map
// construction and drives every pixel<->tile conversion.
type Orientation uint8

const (
	Orthogonal Orientation = iota // square grid
	Isometric                     // diamond projection
	Hexagonal                     // hex grid with a side length
	Staggered                     // brick-like offset rows/columns
)

// ParseOrientation converts a raw attribute string to an Orientation.
// Unsupported values are a configuration error.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "orthogonal":
		return Orthogonal, nil
	case "isometric":
		return Isometric, nil
	case "hexagonal":
		return Hexagonal, nil
	case "staggered":
		return Staggered, nil
	default:
		return 0, fmt.Errorf("tilemap: unsupported orientation %q", s)
	}
}

func (o Orientation) String() string {
	switch o {
	case Orthogonal:
		return "orthogonal"
	case Isometric:
		return "isometric"
	case Hexagonal:
		return "hexagonal"
	case Staggered:
		return "staggered"
	default:
		return "unknown"
	}
}

// RenderOrder is the tile traversal order used by consumers when drawing.
// The core stores it but never iterates by it.
type RenderOrder uint8

const (
	RightDown RenderOrder = iota // left-to-right, top-to-bottom (default)
	RightUp                      // left-to-right, bottom-to-top
	LeftDown                     // right-to-left, top-to-bottom
	LeftUp                       // right-to-left, bottom-to-top
)

// ParseRenderOrder converts a raw attribute string to a RenderOrder.
func ParseRenderOrder(s string) (RenderOrder, error) {
	switch s {
	case "", "right-down":
		return RightDown, nil
	case "right-up":
		return RightUp, nil
	case "left-down":
		return LeftDown, nil
	case "left-up":
		return LeftUp, nil
	default:
		return 0, fmt.Errorf("tilemap: unsupported render order %q", s)
	}
}

func (r RenderOrder) String() string {
	switch r {
	case RightDown:
		return "right-down"
	case RightUp:
		return "right-up"
	case LeftDown:
		return "left-down"
	case LeftUp:
		return "left-up"
	default:
		return "unknown"
	}
}

// StaggerAxis selects which axis alternates offset rows/columns on
// hexagonal and staggered maps.
type StaggerAxis uint8

const (
	StaggerX StaggerAxis = iota // columns alternate
	StaggerY                    // rows alternate
)

// ParseStaggerAxis converts a raw attribute string to a StaggerAxis.
// The empty string defaults to StaggerY to match common map-editor output.
func ParseStaggerAxis(s string) (StaggerAxis, error) {
	switch s {
	case "x":
		return StaggerX, nil
	case "", "y":
		return StaggerY, nil
	default:
		return 0, fmt.Errorf("tilemap: unsupported stagger axis %q", s)
	}
}

func (a StaggerAxis) String() string {
	if a == StaggerX {
		return "x"
	}
	return "y"
}

// StaggerIndex selects whether even- or odd-indexed rows/columns are the
// offset ones.
type StaggerIndex uint8

const (
	StaggerOdd  StaggerIndex = iota // odd indices are staggered (default)
	StaggerEven                     // even indices are staggered
)

// ParseStaggerIndex converts a raw attribute string to a StaggerIndex.
// The empty string defaults to StaggerOdd.
func ParseStaggerIndex(s string) (StaggerIndex, error) {
	switch s {
	case "", "odd":
		return StaggerOdd, nil
	case "even":
		return StaggerEven, nil
	default:
		return 0, fmt.Errorf("tilemap: unsupported stagger index %q", s)
	}
}

func (i StaggerIndex) String() string {
	if i == StaggerEven {
		return "even"
	}
	return "odd"
}

// Alignment anchors the layer stack within the map's pixel bounds.
type Alignment uint8

const (
	AlignBottomLeft Alignment = iota
	AlignCenter               // default
	AlignTopRight
)

// anchor returns the normalized anchor point for the alignment.
func (a Alignment) anchor() Vec2 {
	switch a {
	case AlignBottomLeft:
		return Vec2{X: 0, Y: 0}
	case AlignTopRight:
		return Vec2{X: 1, Y: 1}
	default:
		return Vec2{X: 0.5, Y: 0.5}
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignBottomLeft:
		return "bottomLeft"
	case AlignTopRight:
		return "topRight"
	default:
		return "center"
	}
}

// TextureRegion describes a sub-rectangle within a tileset's atlas page.
// Value type — stored directly on TilesetData, no pointer.
type TextureRegion struct {
	X, Y   int // top-left corner within the atlas page
	Width  int
	Height int
}
