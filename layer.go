package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LayerKind distinguishes layer behavior. A single flat struct is used for
// all layer kinds to avoid interface dispatch on the query path.
type LayerKind uint8

const (
	LayerKindTile   LayerKind = iota // owns a grid of tile instances
	LayerKindObject                  // owns positioned shape/point/polygon objects
	LayerKindImage                   // displays a single backing image
)

func (k LayerKind) String() string {
	switch k {
	case LayerKindTile:
		return "tile"
	case LayerKindObject:
		return "object"
	case LayerKindImage:
		return "image"
	default:
		return "unknown"
	}
}

// layerIDCounter is a plain counter (no atomic — the map model assumes a
// single writer).
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// fadeAnim holds an active opacity tween for a layer.
type fadeAnim struct {
	tween *gween.Tween
}

// Layer is a single layer of a tilemap: a tile grid, an object group, or an
// image layer, discriminated by Kind. Layers are owned exclusively by their
// Tilemap and attached with Tilemap.AddLayer, which assigns the index,
// z-position, and anchored position.
type Layer struct {
	// Identity
	ID   uint32
	Name string
	Kind LayerKind

	// Placement
	Offset    Vec2    // per-layer pixel offset from the map data
	Position  Vec2    // anchored pixel position, computed by AddLayer
	ZPosition float64 // derived from index × ZDeltaForLayers unless resorted

	// Presentation
	Visible bool
	Opacity float64

	// ShowObjects reveals hidden objects in an object group. Set map-wide
	// through Tilemap.SetShowObjects.
	ShowObjects bool

	// Metadata
	Properties map[string]string

	// Debug draw colors, applied from the map's defaults by AddLayer.
	GridColor      Color
	FrameColor     Color
	HighlightColor Color

	// Tile layer fields (LayerKindTile)
	tiles   []*Tile // row-major, nil = empty cell; allocated by AddLayer
	overlap float64 // tile-sprite overlap factor

	// Object group fields (LayerKindObject)
	objects []*Object

	// Image layer fields (LayerKindImage)
	image *ebiten.Image

	// Internal
	index   int      // zero-based insertion order; -1 until attached
	tilemap *Tilemap // non-owning back-reference, set by AddLayer
	fade    *fadeAnim
}

// layerDefaults sets the common default field values shared by all
// constructors.
func layerDefaults(l *Layer) {
	l.ID = nextLayerID()
	l.Visible = true
	l.Opacity = 1
	l.Properties = make(map[string]string)
	l.index = -1
}

// NewTileLayer creates an unattached tile layer. The tile grid is allocated
// to the map's size when the layer is added.
func NewTileLayer(name string) *Layer {
	l := &Layer{Name: name, Kind: LayerKindTile}
	layerDefaults(l)
	return l
}

// NewObjectGroup creates an unattached object group layer.
func NewObjectGroup(name string) *Layer {
	l := &Layer{Name: name, Kind: LayerKindObject}
	layerDefaults(l)
	return l
}

// NewImageLayer creates an unattached image layer backed by img.
func NewImageLayer(name string, img *ebiten.Image) *Layer {
	l := &Layer{Name: name, Kind: LayerKindImage, image: img}
	layerDefaults(l)
	return l
}

// Index returns the layer's zero-based insertion order within its map, or
// -1 if the layer has not been added to a map yet.
func (l *Layer) Index() int {
	return l.index
}

// Tilemap returns the owning map, or nil if the layer is unattached.
func (l *Layer) Tilemap() *Tilemap {
	return l.tilemap
}

// Image returns the backing image of an image layer, nil for other kinds.
func (l *Layer) Image() *ebiten.Image {
	return l.image
}

// Overlap returns the layer's tile-sprite overlap factor.
func (l *Layer) Overlap() float64 {
	return l.overlap
}

// Property returns the named custom property and whether it is set.
func (l *Layer) Property(name string) (string, bool) {
	v, ok := l.Properties[name]
	return v, ok
}

// IsValid reports whether the coordinate lies within the owning map's
// bounds. Unattached layers consider every coordinate out of range.
func (l *Layer) IsValid(c Coordinate) bool {
	if l.tilemap == nil {
		return false
	}
	size := l.tilemap.Size()
	return c.X >= 0 && c.X < size.Width && c.Y >= 0 && c.Y < size.Height
}

// PointForCoordinate returns the pixel position of the center of cell c in
// this layer, including the layer's own offset.
// Panics if the layer is unattached.
func (l *Layer) PointForCoordinate(c Coordinate) Vec2 {
	g := l.geometry()
	p := g.tileToPixel(c)
	return Vec2{X: p.X + l.Offset.X, Y: p.Y + l.Offset.Y}
}

// CoordinateForPoint returns the cell containing the given pixel position
// in this layer. Exact inverse of PointForCoordinate for integer
// coordinates. Panics if the layer is unattached.
func (l *Layer) CoordinateForPoint(p Vec2) Coordinate {
	g := l.geometry()
	return g.pixelToTile(Vec2{X: p.X - l.Offset.X, Y: p.Y - l.Offset.Y})
}

func (l *Layer) geometry() geometry {
	if l.tilemap == nil {
		panic("tilemap: layer is not attached to a map")
	}
	return l.tilemap.geom
}

// --- Opacity fades ---

// FadeTo animates the layer's opacity to target over duration seconds.
// The fade is advanced by Tilemap.Update.
func (l *Layer) FadeTo(target float64, duration float32, easeFn ease.TweenFunc) {
	l.fade = &fadeAnim{
		tween: gween.New(float32(l.Opacity), float32(target), duration, easeFn),
	}
}

// FadeIn animates the layer's opacity to 1 over duration seconds.
func (l *Layer) FadeIn(duration float32) {
	l.FadeTo(1, duration, ease.Linear)
}

// FadeOut animates the layer's opacity to 0 over duration seconds.
func (l *Layer) FadeOut(duration float32) {
	l.FadeTo(0, duration, ease.Linear)
}

// update advances the active fade, if any. Called from Tilemap.Update.
func (l *Layer) update(dt float32) {
	if l.fade == nil {
		return
	}
	val, done := l.fade.tween.Update(dt)
	l.Opacity = float64(val)
	if done {
		l.fade = nil
	}
}
