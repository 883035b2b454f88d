package tilemap

import "testing"

// newTestMap builds an orthogonal 10x8 map with 32x32 tiles.
func newTestMap(t *testing.T) *Tilemap {
	t.Helper()
	m, err := NewTilemap(MapInfo{
		Width: 10, Height: 8,
		TileWidth: 32, TileHeight: 32,
		Orientation: "orthogonal",
	})
	if err != nil {
		t.Fatalf("NewTilemap: %v", err)
	}
	return m
}

// --- Construction ---

func TestNewTilemapDefaults(t *testing.T) {
	m := newTestMap(t)
	if m.Orientation() != Orthogonal {
		t.Errorf("Orientation = %v, want orthogonal", m.Orientation())
	}
	if m.RenderOrder != RightDown {
		t.Errorf("RenderOrder = %v, want right-down", m.RenderOrder)
	}
	if m.LayerAlignment != AlignCenter {
		t.Errorf("LayerAlignment = %v, want center", m.LayerAlignment)
	}
	if m.ZDeltaForLayers != 50 {
		t.Errorf("ZDeltaForLayers = %v, want 50", m.ZDeltaForLayers)
	}
	if m.Size() != (Size{10, 8}) || m.TileSize() != (Size{32, 32}) {
		t.Errorf("Size/TileSize = %v/%v", m.Size(), m.TileSize())
	}
}

func TestNewTilemapCreatesBaseLayer(t *testing.T) {
	m := newTestMap(t)
	base := m.BaseLayer()
	if base == nil {
		t.Fatal("BaseLayer is nil")
	}
	if base.Name != BaseLayerName || base.Kind != LayerKindTile {
		t.Errorf("base layer = %q kind %v", base.Name, base.Kind)
	}
	if base.Index() != 0 {
		t.Errorf("base layer index = %d, want 0", base.Index())
	}
	if m.GetLayer(BaseLayerName) != base {
		t.Error("GetLayer(base) should return the base layer")
	}
}

func TestNewTilemapConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		info MapInfo
	}{
		{"bad orientation", MapInfo{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32, Orientation: "diagonal"}},
		{"empty orientation", MapInfo{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32}},
		{"bad render order", MapInfo{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32, Orientation: "orthogonal", RenderOrder: "down-right"}},
		{"bad stagger axis", MapInfo{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32, Orientation: "staggered", StaggerAxis: "z"}},
		{"bad stagger index", MapInfo{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32, Orientation: "staggered", StaggerIndex: "all"}},
		{"zero tile size", MapInfo{Width: 4, Height: 4, Orientation: "orthogonal"}},
		{"negative map size", MapInfo{Width: -1, Height: 4, TileWidth: 32, TileHeight: 32, Orientation: "orthogonal"}},
		{"negative hex side", MapInfo{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32, Orientation: "hexagonal", HexSideLength: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m, err := NewTilemap(tt.info); err == nil {
				t.Errorf("NewTilemap(%+v) = %v, want error", tt.info, m)
			}
		})
	}
}

func TestSizeInPoints(t *testing.T) {
	m := newTestMap(t)
	p := m.SizeInPoints()
	if p.X != 320 || p.Y != 256 {
		t.Errorf("SizeInPoints = %v, want (320, 256)", p)
	}
}

// --- Layer management ---

func TestAddLayerMonotonicIndices(t *testing.T) {
	m := newTestMap(t)
	for i := 0; i < 5; i++ {
		m.AddLayer(NewTileLayer("layer"))
	}
	layers := m.AllLayers()
	if len(layers) != 6 { // base + 5
		t.Fatalf("LayerCount = %d, want 6", len(layers))
	}
	for i, l := range layers {
		if l.Index() != i {
			t.Errorf("layer %d has index %d", i, l.Index())
		}
	}
	if m.LastIndex() != 5 {
		t.Errorf("LastIndex = %d, want 5", m.LastIndex())
	}
}

func TestAddLayerZPositions(t *testing.T) {
	m := newTestMap(t)
	a := NewTileLayer("a")
	b := NewObjectGroup("b")
	m.AddLayer(a)
	m.AddLayer(b)
	if a.ZPosition != 50 {
		t.Errorf("a.ZPosition = %v, want 50", a.ZPosition)
	}
	if b.ZPosition != 100 {
		t.Errorf("b.ZPosition = %v, want 100", b.ZPosition)
	}
	if m.LastZPosition() != 100 {
		t.Errorf("LastZPosition = %v, want 100", m.LastZPosition())
	}
}

func TestAddLayerAnchoredPosition(t *testing.T) {
	m := newTestMap(t) // 320x256 points, center alignment
	l := NewTileLayer("a")
	m.AddLayer(l)
	if l.Position.X != -160 || l.Position.Y != -128 {
		t.Errorf("center Position = %v, want (-160, -128)", l.Position)
	}

	m2 := newTestMap(t)
	m2.LayerAlignment = AlignBottomLeft
	bl := NewTileLayer("bl")
	m2.AddLayer(bl)
	if bl.Position.X != 0 || bl.Position.Y != 0 {
		t.Errorf("bottomLeft Position = %v, want (0, 0)", bl.Position)
	}

	m3 := newTestMap(t)
	m3.LayerAlignment = AlignTopRight
	tr := NewTileLayer("tr")
	m3.AddLayer(tr)
	if tr.Position.X != -320 || tr.Position.Y != -256 {
		t.Errorf("topRight Position = %v, want (-320, -256)", tr.Position)
	}
}

func TestAddLayerAppliesDebugColors(t *testing.T) {
	m := newTestMap(t)
	l := NewTileLayer("a")
	m.AddLayer(l)
	if l.GridColor != m.GridColor || l.FrameColor != m.FrameColor || l.HighlightColor != m.HighlightColor {
		t.Error("AddLayer should apply the map's debug colors")
	}
}

func TestAddLayerPanics(t *testing.T) {
	m := newTestMap(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic adding nil layer")
			}
		}()
		m.AddLayer(nil)
	}()

	l := NewTileLayer("a")
	m.AddLayer(l)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic re-adding an owned layer")
			}
		}()
		m.AddLayer(l)
	}()
}

func TestLayerIDsUnique(t *testing.T) {
	a := NewTileLayer("a")
	b := NewObjectGroup("b")
	c := NewImageLayer("c", nil)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestGetLayerLookups(t *testing.T) {
	m := newTestMap(t)
	a := NewTileLayer("ground")
	b := NewObjectGroup("items")
	m.AddLayer(a)
	m.AddLayer(b)

	if m.GetLayer("ground") != a {
		t.Error("GetLayer(ground) != a")
	}
	if m.GetLayer("missing") != nil {
		t.Error("GetLayer(missing) should be nil")
	}
	if m.GetLayerAtIndex(2) != b {
		t.Error("GetLayerAtIndex(2) != b")
	}
	if m.GetLayerAtIndex(99) != nil || m.GetLayerAtIndex(-1) != nil {
		t.Error("out-of-range index should return nil")
	}
	if m.GetLayerWithID(a.ID) != a {
		t.Error("GetLayerWithID(a.ID) != a")
	}
	if m.GetLayerWithID(0) != nil {
		t.Error("GetLayerWithID(0) should be nil")
	}
}

// Duplicate names are tolerated; lookup returns the first in insertion
// order.
func TestGetLayerFirstMatchOnDuplicateNames(t *testing.T) {
	m := newTestMap(t)
	first := NewTileLayer("dup")
	second := NewObjectGroup("dup")
	m.AddLayer(first)
	m.AddLayer(second)
	if m.GetLayer("dup") != first {
		t.Error("GetLayer should return the first layer with a duplicated name")
	}
}

func TestLayersOfKind(t *testing.T) {
	m := newTestMap(t)
	og := NewObjectGroup("objects")
	il := NewImageLayer("backdrop", nil)
	tl := NewTileLayer("ground")
	m.AddLayer(og)
	m.AddLayer(il)
	m.AddLayer(tl)

	if got := m.TileLayers(); len(got) != 2 || got[0] != m.BaseLayer() || got[1] != tl {
		t.Errorf("TileLayers = %v", got)
	}
	if got := m.ObjectGroups(); len(got) != 1 || got[0] != og {
		t.Errorf("ObjectGroups = %v", got)
	}
	if got := m.ImageLayers(); len(got) != 1 || got[0] != il {
		t.Errorf("ImageLayers = %v", got)
	}
}

// --- Z-order and visibility ---

func TestSortLayersFrom(t *testing.T) {
	m := newTestMap(t)
	for i := 0; i < 3; i++ {
		m.AddLayer(NewTileLayer("layer"))
	}
	// Scramble z externally.
	for _, l := range m.AllLayers() {
		l.ZPosition = 999
	}
	m.SortLayersFrom(10)
	for _, l := range m.AllLayers() {
		want := 10 + 50*float64(l.Index())
		if l.ZPosition != want {
			t.Errorf("layer %d ZPosition = %v, want %v", l.Index(), l.ZPosition, want)
		}
	}
}

func TestSortLayersUsesMapZ(t *testing.T) {
	m := newTestMap(t)
	m.ZPosition = -25
	l := NewTileLayer("a")
	m.AddLayer(l)
	l.ZPosition = 12345
	m.SortLayers()
	if l.ZPosition != -25+50 {
		t.Errorf("ZPosition = %v, want 25", l.ZPosition)
	}
}

func TestIsolateLayer(t *testing.T) {
	m := newTestMap(t)
	a := NewTileLayer("a")
	a2 := NewObjectGroup("a")
	b := NewTileLayer("b")
	m.AddLayer(a)
	m.AddLayer(a2)
	m.AddLayer(b)

	m.IsolateLayer("a")
	if !a.Visible || !a2.Visible {
		t.Error("every layer named a should stay visible")
	}
	if b.Visible || m.BaseLayer().Visible {
		t.Error("layers not named a should be hidden")
	}

	m.IsolateLayer("")
	for _, l := range m.AllLayers() {
		if !l.Visible {
			t.Errorf("layer %q should be visible after restoring", l.Name)
		}
	}
}

// --- Tile queries across layers ---

func setupTwoTileLayers(t *testing.T) (*Tilemap, *Layer, *Layer) {
	t.Helper()
	m := newTestMap(t)
	ts := NewTileset("terrain", 1, 10, Size{32, 32})
	m.RegisterTileset(ts)
	lower := NewTileLayer("lower")
	upper := NewTileLayer("upper")
	m.AddLayer(lower)
	m.AddLayer(upper)
	return m, lower, upper
}

func TestFirstTileAtPrecedence(t *testing.T) {
	m, lower, upper := setupTwoTileLayers(t)
	c := Coord(2, 3)
	lowTile := lower.SetTileWithGID(c, 1)
	highTile := upper.SetTileWithGID(c, 2)

	if got := m.FirstTileAt(c); got != highTile {
		t.Errorf("FirstTileAt = %v, want the upper layer's tile", got)
	}

	upper.Visible = false
	if got := m.FirstTileAt(c); got != lowTile {
		t.Errorf("FirstTileAt with upper hidden = %v, want the lower layer's tile", got)
	}

	lower.Visible = false
	if got := m.FirstTileAt(c); got != nil {
		t.Errorf("FirstTileAt with all layers hidden = %v, want nil", got)
	}
}

func TestTilesAtAscendingOrder(t *testing.T) {
	m, lower, upper := setupTwoTileLayers(t)
	c := Coord(1, 1)
	lowTile := lower.SetTileWithGID(c, 1)
	highTile := upper.SetTileWithGID(c, 2)
	upper.Visible = false // TilesAt ignores visibility

	got := m.TilesAt(c)
	if len(got) != 2 || got[0] != lowTile || got[1] != highTile {
		t.Errorf("TilesAt = %v, want [lower, upper]", got)
	}
	if got := m.TilesAt(Coord(-1, 0)); got != nil {
		t.Errorf("TilesAt out of range = %v, want nil", got)
	}
}

func TestMapWideTileQueries(t *testing.T) {
	m, lower, upper := setupTwoTileLayers(t)
	ts := m.Tilesets()[0]
	ts.DataForLocalID(0).Type = "wall"
	ts.DataForLocalID(1).Type = "wall"
	ts.DataForLocalID(2).Properties["solid"] = "true"

	a := lower.SetTileWithGID(Coord(0, 0), 1)
	b := upper.SetTileWithGID(Coord(5, 5), 2)
	c := upper.SetTileWithGID(Coord(6, 5), 3)

	walls := m.GetTilesOfType("wall")
	if len(walls) != 2 || walls[0] != a || walls[1] != b {
		t.Errorf("GetTilesOfType(wall) = %v, want [a, b]", walls)
	}
	if got := m.GetTilesWithID(3); len(got) != 1 || got[0] != c {
		t.Errorf("GetTilesWithID(3) = %v, want [c]", got)
	}
	if got := m.GetTilesWithProperty("solid", "true"); len(got) != 1 || got[0] != c {
		t.Errorf("GetTilesWithProperty = %v, want [c]", got)
	}
	if got := m.GetTilesOfType("missing"); got != nil {
		t.Errorf("GetTilesOfType(missing) = %v, want nil", got)
	}
}

// --- Object queries ---

func TestMapWideObjectQueries(t *testing.T) {
	m := newTestMap(t)
	g1 := NewObjectGroup("spawns")
	g2 := NewObjectGroup("triggers")
	m.AddLayer(g1)
	m.AddLayer(g2)

	a := NewObject("door", ObjectKindRectangle, Vec2{X: 10, Y: 10})
	a.Type = "portal"
	b := NewObject("door", ObjectKindPoint, Vec2{X: 50, Y: 20})
	g1.AddObject(a)
	g2.AddObject(b)

	doors := m.GetObjects("door")
	if len(doors) != 2 || doors[0] != a || doors[1] != b {
		t.Errorf("GetObjects(door) = %v, want [a, b]", doors)
	}
	if got := m.GetObjectsOfType("portal"); len(got) != 1 || got[0] != a {
		t.Errorf("GetObjectsOfType(portal) = %v, want [a]", got)
	}
}

// --- Global fan-outs ---

func TestSetTileOverlapFansOut(t *testing.T) {
	m := newTestMap(t)
	a := NewTileLayer("a")
	m.AddLayer(a)
	m.SetTileOverlap(1.5)
	if a.Overlap() != 1.5 || m.BaseLayer().Overlap() != 1.5 {
		t.Error("SetTileOverlap should reach every tile layer")
	}
	if m.TileOverlap() != 1.5 {
		t.Errorf("TileOverlap = %v, want 1.5", m.TileOverlap())
	}
	// Layers added afterwards pick up the current overlap.
	b := NewTileLayer("b")
	m.AddLayer(b)
	if b.Overlap() != 1.5 {
		t.Errorf("late layer Overlap = %v, want 1.5", b.Overlap())
	}
}

func TestSetShowObjectsFansOut(t *testing.T) {
	m := newTestMap(t)
	g := NewObjectGroup("objects")
	m.AddLayer(g)
	m.SetShowObjects(true)
	if !g.ShowObjects || !m.ShowObjects() {
		t.Error("SetShowObjects(true) should reach every object group")
	}
	late := NewObjectGroup("late")
	m.AddLayer(late)
	if !late.ShowObjects {
		t.Error("late object group should pick up the current flag")
	}
	m.SetShowObjects(false)
	if g.ShowObjects || late.ShowObjects {
		t.Error("SetShowObjects(false) should reach every object group")
	}
}

// --- Registry via the map ---

func TestTileDataResolution(t *testing.T) {
	m := newTestMap(t)
	first := NewTileset("first", 1, 10, Size{32, 32})
	second := NewTileset("second", 11, 5, Size{32, 32})
	m.RegisterTileset(first)
	m.RegisterTileset(second)

	data := m.TileData(12)
	if data == nil {
		t.Fatal("TileData(12) = nil")
	}
	if data.Tileset() != second || data.LocalID != 1 {
		t.Errorf("TileData(12) = tileset %q local %d, want second/1", data.Tileset().Name, data.LocalID)
	}
	if m.LastGID() != 15 {
		t.Errorf("LastGID = %d, want 15", m.LastGID())
	}
	if m.TileData(16) != nil {
		t.Error("TileData(16) should be nil")
	}
	if m.TileData(0) != nil {
		t.Error("TileData(0) should be nil")
	}
	if m.GetTileset("second") != second {
		t.Error("GetTileset(second) != second")
	}
}

func TestLastGIDEmptyRegistry(t *testing.T) {
	m := newTestMap(t)
	if m.LastGID() != 0 {
		t.Errorf("LastGID = %d, want 0", m.LastGID())
	}
}

// Overlapping ranges are permitted; the first registered tileset wins.
func TestTileDataOverlapFirstRegisteredWins(t *testing.T) {
	m := newTestMap(t)
	first := NewTileset("first", 1, 10, Size{32, 32})
	overlap := NewTileset("overlap", 5, 10, Size{32, 32})
	m.RegisterTileset(first)
	m.RegisterTileset(overlap)
	if data := m.TileData(7); data.Tileset() != first {
		t.Errorf("TileData(7) from %q, want first", data.Tileset().Name)
	}
}

// --- Fades ---

func TestUpdateAdvancesLayerFades(t *testing.T) {
	m := newTestMap(t)
	l := NewTileLayer("fading")
	m.AddLayer(l)

	l.FadeOut(1.0)
	m.Update(0.5)
	if !approxEqual(l.Opacity, 0.5, 1e-6) {
		t.Errorf("Opacity after half fade = %v, want 0.5", l.Opacity)
	}
	m.Update(0.6)
	if l.Opacity != 0 {
		t.Errorf("Opacity after fade out = %v, want 0", l.Opacity)
	}

	l.FadeIn(2.0)
	m.Update(1.0)
	if !approxEqual(l.Opacity, 0.5, 1e-6) {
		t.Errorf("Opacity mid fade in = %v, want 0.5", l.Opacity)
	}
	m.Update(1.0)
	if l.Opacity != 1 {
		t.Errorf("Opacity after fade in = %v, want 1", l.Opacity)
	}
}
