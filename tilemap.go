package tilemap

import "fmt"

// DefaultZDelta is the default pixel spacing between consecutive layer
// z-positions.
const DefaultZDelta = 50.0

// BaseLayerName is the name of the tile layer every map is constructed
// with.
const BaseLayerName = "base"

// MapInfo is the raw attribute record an external loader fills in from its
// parsed source. String attributes use the source format's spellings and
// are validated by NewTilemap; unsupported values are a fatal configuration
// error.
type MapInfo struct {
	Name   string
	Width  int // map width in tiles
	Height int // map height in tiles

	TileWidth  int // tile width in pixels
	TileHeight int // tile height in pixels

	Orientation  string // "orthogonal", "isometric", "hexagonal", "staggered"
	RenderOrder  string // "right-down" (default), "right-up", "left-down", "left-up"
	StaggerAxis  string // "x" or "y" (default); hexagonal/staggered only
	StaggerIndex string // "odd" (default) or "even"; hexagonal/staggered only

	HexSideLength   int    // hexagonal only
	BackgroundColor *Color // optional
}

// Tilemap is the aggregate root of the map model. It owns the ordered layer
// collection and the tileset registry, holds the map-wide attributes, and
// exposes the full query surface.
//
// The model assumes a single writer: layers and tilesets are added by the
// loading/editing path while renderers and input handlers only read. No
// internal locking is performed.
type Tilemap struct {
	Name string

	// RenderOrder is the tile traversal order, stored for consumers.
	RenderOrder RenderOrder

	// LayerAlignment anchors the layer stack within the map's pixel
	// bounds when layers are added.
	LayerAlignment Alignment

	// ZDeltaForLayers is the pixel spacing between consecutive layer
	// z-positions.
	ZDeltaForLayers float64

	// ZPosition is the map's own z, the base SortLayers flattens from.
	ZPosition float64

	BackgroundColor *Color

	// Default debug draw colors applied to each added layer.
	GridColor      Color
	FrameColor     Color
	HighlightColor Color

	// Immutable post-construction.
	size          Size
	tileSize      Size
	orientation   Orientation
	staggerAxis   StaggerAxis
	staggerIndex  StaggerIndex
	hexSideLength int
	geom          geometry

	layers      []*Layer
	tilesets    []*Tileset
	baseLayer   *Layer
	tileOverlap float64
	showObjects bool
}

// NewTilemap validates the raw attribute record and constructs a map. The
// base tile layer is created eagerly at index 0. Unsupported orientation,
// render-order, or stagger strings fail construction.
func NewTilemap(info MapInfo) (*Tilemap, error) {
	if info.Width < 0 || info.Height < 0 {
		return nil, fmt.Errorf("tilemap: negative map size %dx%d", info.Width, info.Height)
	}
	if info.TileWidth <= 0 || info.TileHeight <= 0 {
		return nil, fmt.Errorf("tilemap: tile size %dx%d must be positive", info.TileWidth, info.TileHeight)
	}
	if info.HexSideLength < 0 {
		return nil, fmt.Errorf("tilemap: negative hex side length %d", info.HexSideLength)
	}

	orientation, err := ParseOrientation(info.Orientation)
	if err != nil {
		return nil, err
	}
	renderOrder, err := ParseRenderOrder(info.RenderOrder)
	if err != nil {
		return nil, err
	}
	staggerAxis, err := ParseStaggerAxis(info.StaggerAxis)
	if err != nil {
		return nil, err
	}
	staggerIndex, err := ParseStaggerIndex(info.StaggerIndex)
	if err != nil {
		return nil, err
	}

	size := Size{Width: info.Width, Height: info.Height}
	tileSize := Size{Width: info.TileWidth, Height: info.TileHeight}

	m := &Tilemap{
		Name:            info.Name,
		RenderOrder:     renderOrder,
		LayerAlignment:  AlignCenter,
		ZDeltaForLayers: DefaultZDelta,
		BackgroundColor: info.BackgroundColor,
		GridColor:       defaultGridColor,
		FrameColor:      defaultFrameColor,
		HighlightColor:  defaultHighlightColor,
		size:            size,
		tileSize:        tileSize,
		orientation:     orientation,
		staggerAxis:     staggerAxis,
		staggerIndex:    staggerIndex,
		hexSideLength:   info.HexSideLength,
		geom:            newGeometry(orientation, size, tileSize, staggerAxis, staggerIndex, info.HexSideLength),
	}

	m.baseLayer = NewTileLayer(BaseLayerName)
	m.AddLayer(m.baseLayer)
	return m, nil
}

// --- Map attributes ---

// Size returns the map size in tiles.
func (m *Tilemap) Size() Size { return m.size }

// TileSize returns the tile size in pixels.
func (m *Tilemap) TileSize() Size { return m.tileSize }

// Orientation returns the grid projection scheme, fixed at construction.
func (m *Tilemap) Orientation() Orientation { return m.orientation }

// StaggerAxis returns the stagger axis. Meaningful only for hexagonal and
// staggered maps.
func (m *Tilemap) StaggerAxis() StaggerAxis { return m.staggerAxis }

// StaggerIndex returns the stagger index. Meaningful only for hexagonal and
// staggered maps.
func (m *Tilemap) StaggerIndex() StaggerIndex { return m.staggerIndex }

// HexSideLength returns the hexagon side length in pixels. Meaningful only
// for hexagonal maps.
func (m *Tilemap) HexSideLength() int { return m.hexSideLength }

// SizeInPoints returns the overall pixel extent of the map for its
// orientation.
func (m *Tilemap) SizeInPoints() Vec2 {
	return m.geom.mapSizeInPoints()
}

// BaseLayer returns the tile layer created with the map at index 0.
func (m *Tilemap) BaseLayer() *Layer { return m.baseLayer }

// TileOverlap returns the global tile-sprite overlap factor.
func (m *Tilemap) TileOverlap() float64 { return m.tileOverlap }

// ShowObjects returns the global object-visibility flag.
func (m *Tilemap) ShowObjects() bool { return m.showObjects }

// --- Geometry queries ---

// PointForCoordinate returns the pixel position of the center of cell c in
// map space.
func (m *Tilemap) PointForCoordinate(c Coordinate) Vec2 {
	return m.geom.tileToPixel(c)
}

// CoordinateForPoint returns the cell containing the given map-space pixel
// position. Exact inverse of PointForCoordinate for integer coordinates.
func (m *Tilemap) CoordinateForPoint(p Vec2) Coordinate {
	return m.geom.pixelToTile(p)
}

// IsStaggered reports whether the row or column at the given index along
// the stagger axis is an offset one.
func (m *Tilemap) IsStaggered(index int) bool {
	return m.geom.isStaggered(index)
}

// TopLeftNeighbor returns the diagonally adjacent cell above-left of c on a
// hexagonal or staggered grid.
func (m *Tilemap) TopLeftNeighbor(c Coordinate) Coordinate { return m.geom.topLeft(c) }

// TopRightNeighbor returns the diagonally adjacent cell above-right of c on
// a hexagonal or staggered grid.
func (m *Tilemap) TopRightNeighbor(c Coordinate) Coordinate { return m.geom.topRight(c) }

// BottomLeftNeighbor returns the diagonally adjacent cell below-left of c
// on a hexagonal or staggered grid.
func (m *Tilemap) BottomLeftNeighbor(c Coordinate) Coordinate { return m.geom.bottomLeft(c) }

// BottomRightNeighbor returns the diagonally adjacent cell below-right of c
// on a hexagonal or staggered grid.
func (m *Tilemap) BottomRightNeighbor(c Coordinate) Coordinate { return m.geom.bottomRight(c) }

// --- Layer management ---

// AddLayer attaches a layer to the map: assigns the next index, derives the
// initial z-position, computes the anchored position from LayerAlignment
// and the map's pixel size, applies the map's debug colors, and, for tile
// layers, allocates the grid. Panics on nil or already-attached layers.
func (m *Tilemap) AddLayer(l *Layer) {
	if l == nil {
		panic("tilemap: cannot add nil layer")
	}
	if l.tilemap != nil {
		panic("tilemap: layer " + l.Name + " already belongs to a map")
	}

	l.tilemap = m
	l.index = m.LastIndex() + 1
	l.ZPosition = m.ZPosition + m.ZDeltaForLayers*float64(l.index)

	anchor := m.LayerAlignment.anchor()
	points := m.SizeInPoints()
	l.Position = Vec2{X: -points.X * anchor.X, Y: -points.Y * anchor.Y}

	l.GridColor = m.GridColor
	l.FrameColor = m.FrameColor
	l.HighlightColor = m.HighlightColor

	switch l.Kind {
	case LayerKindTile:
		l.allocateGrid(m.size)
		l.overlap = m.tileOverlap
	case LayerKindObject:
		l.ShowObjects = m.showObjects
	}

	m.layers = append(m.layers, l)
}

// AllLayers returns the layers in ascending index order. The returned slice
// MUST NOT be mutated by the caller.
func (m *Tilemap) AllLayers() []*Layer {
	return m.layers
}

// LayerCount returns the number of layers, including the base layer.
func (m *Tilemap) LayerCount() int {
	return len(m.layers)
}

// TileLayers returns the tile layers in ascending index order.
func (m *Tilemap) TileLayers() []*Layer { return m.layersOfKind(LayerKindTile) }

// ObjectGroups returns the object group layers in ascending index order.
func (m *Tilemap) ObjectGroups() []*Layer { return m.layersOfKind(LayerKindObject) }

// ImageLayers returns the image layers in ascending index order.
func (m *Tilemap) ImageLayers() []*Layer { return m.layersOfKind(LayerKindImage) }

func (m *Tilemap) layersOfKind(kind LayerKind) []*Layer {
	var result []*Layer
	for _, l := range m.layers {
		if l.Kind == kind {
			result = append(result, l)
		}
	}
	return result
}

// GetLayer returns the first layer with the given name in insertion order,
// or nil. Names are not required to be unique.
func (m *Tilemap) GetLayer(name string) *Layer {
	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// GetLayerAtIndex returns the layer with the given index, or nil.
func (m *Tilemap) GetLayerAtIndex(index int) *Layer {
	if index < 0 || index >= len(m.layers) {
		return nil
	}
	return m.layers[index]
}

// GetLayerWithID returns the layer with the given unique id, or nil.
func (m *Tilemap) GetLayerWithID(id uint32) *Layer {
	for _, l := range m.layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// LastIndex returns the highest assigned layer index, or -1 when the map
// has no layers.
func (m *Tilemap) LastIndex() int {
	if len(m.layers) == 0 {
		return -1
	}
	return m.layers[len(m.layers)-1].index
}

// LastZPosition returns the z-position of the highest layer, or 0 when the
// map has no layers.
func (m *Tilemap) LastZPosition() float64 {
	if len(m.layers) == 0 {
		return 0
	}
	return m.layers[len(m.layers)-1].ZPosition
}

// SortLayers re-flattens the z-order: every layer's z-position becomes
// the map's ZPosition + ZDeltaForLayers × index. Use after external z
// manipulation.
func (m *Tilemap) SortLayers() {
	m.SortLayersFrom(m.ZPosition)
}

// SortLayersFrom re-flattens the z-order starting from the given base z.
func (m *Tilemap) SortLayersFrom(fromZ float64) {
	for _, l := range m.layers {
		l.ZPosition = fromZ + m.ZDeltaForLayers*float64(l.index)
	}
}

// IsolateLayer shows only the layers with the given name and hides all
// others. The empty name restores full visibility.
func (m *Tilemap) IsolateLayer(name string) {
	for _, l := range m.layers {
		l.Visible = name == "" || l.Name == name
	}
}

// SetTileOverlap sets the global tile-sprite overlap factor and fans it out
// to every tile layer.
func (m *Tilemap) SetTileOverlap(overlap float64) {
	m.tileOverlap = overlap
	for _, l := range m.layers {
		if l.Kind == LayerKindTile {
			l.overlap = overlap
		}
	}
}

// SetShowObjects sets the global object-visibility flag and fans it out to
// every object group.
func (m *Tilemap) SetShowObjects(show bool) {
	m.showObjects = show
	for _, l := range m.layers {
		if l.Kind == LayerKindObject {
			l.ShowObjects = show
		}
	}
}

// Update advances layer opacity fades. dt is in seconds.
func (m *Tilemap) Update(dt float64) {
	for _, l := range m.layers {
		l.update(float32(dt))
	}
}

// --- Tile queries ---

// TilesAt collects every present tile at c across all tile layers, in
// ascending layer index order, regardless of layer visibility.
func (m *Tilemap) TilesAt(c Coordinate) []*Tile {
	var result []*Tile
	for _, l := range m.layers {
		if l.Kind != LayerKindTile {
			continue
		}
		if t := l.TileAt(c); t != nil {
			result = append(result, t)
		}
	}
	return result
}

// FirstTileAt returns the topmost tile at c among visible tile layers, or
// nil. Layers are scanned in descending index order and invisible layers
// are skipped.
func (m *Tilemap) FirstTileAt(c Coordinate) *Tile {
	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		if l.Kind != LayerKindTile || !l.Visible {
			continue
		}
		if t := l.TileAt(c); t != nil {
			return t
		}
	}
	return nil
}

// GetTilesOfType returns the union of every tile layer's tiles with the
// given type string, ascending layer index then row-major order.
func (m *Tilemap) GetTilesOfType(typ string) []*Tile {
	var result []*Tile
	for _, l := range m.layers {
		if l.Kind == LayerKindTile {
			result = append(result, l.GetTilesOfType(typ)...)
		}
	}
	return result
}

// GetTilesWithID returns the union of every tile layer's tiles with global
// id gid, ascending layer index then row-major order.
func (m *Tilemap) GetTilesWithID(gid uint32) []*Tile {
	var result []*Tile
	for _, l := range m.layers {
		if l.Kind == LayerKindTile {
			result = append(result, l.GetTilesWithID(gid)...)
		}
	}
	return result
}

// GetTilesWithProperty returns the union of every tile layer's tiles
// carrying the named custom property with the given value, ascending layer
// index then row-major order.
func (m *Tilemap) GetTilesWithProperty(name, value string) []*Tile {
	var result []*Tile
	for _, l := range m.layers {
		if l.Kind == LayerKindTile {
			result = append(result, l.GetTilesWithProperty(name, value)...)
		}
	}
	return result
}

// --- Object queries ---

// GetObjects returns the union of every object group's objects with the
// given name, ascending layer index then insertion order.
func (m *Tilemap) GetObjects(name string) []*Object {
	var result []*Object
	for _, l := range m.layers {
		if l.Kind == LayerKindObject {
			result = append(result, l.GetObjects(name)...)
		}
	}
	return result
}

// GetObjectsOfType returns the union of every object group's objects with
// the given type string, ascending layer index then insertion order.
func (m *Tilemap) GetObjectsOfType(typ string) []*Object {
	var result []*Object
	for _, l := range m.layers {
		if l.Kind == LayerKindObject {
			result = append(result, l.GetObjectsOfType(typ)...)
		}
	}
	return result
}

// --- Tileset registry ---

// RegisterTileset appends a tileset to the registry. Overlapping id ranges
// are not rejected; lookups resolve to the first-registered tileset that
// contains the gid.
func (m *Tilemap) RegisterTileset(ts *Tileset) {
	if ts == nil {
		panic("tilemap: cannot register nil tileset")
	}
	if globalDebug {
		for _, existing := range m.tilesets {
			if ts.FirstGID <= existing.LastGID() && existing.FirstGID <= ts.LastGID() {
				debugWarnf("tileset %q id range overlaps %q; first registered wins",
					ts.Name, existing.Name)
			}
		}
	}
	m.tilesets = append(m.tilesets, ts)
}

// Tilesets returns the registered tilesets in registration order. The
// returned slice MUST NOT be mutated by the caller.
func (m *Tilemap) Tilesets() []*Tileset {
	return m.tilesets
}

// GetTileset returns the first tileset with the given name, or nil.
func (m *Tilemap) GetTileset(name string) *Tileset {
	for _, ts := range m.tilesets {
		if ts.Name == name {
			return ts
		}
	}
	return nil
}

// TileData resolves a global id to its tileset record, scanning tilesets in
// registration order. Returns nil when no registered range contains gid.
func (m *Tilemap) TileData(gid uint32) *TilesetData {
	for _, ts := range m.tilesets {
		if ts.Contains(gid) {
			return ts.DataForGID(gid)
		}
	}
	return nil
}

// LastGID returns the highest global id across all registered tilesets, or
// 0 if none are registered.
func (m *Tilemap) LastGID() uint32 {
	var last uint32
	for _, ts := range m.tilesets {
		if ts.LastGID() > last {
			last = ts.LastGID()
		}
	}
	return last
}
