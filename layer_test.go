package tilemap

import "testing"

func TestLayerDefaults(t *testing.T) {
	l := NewTileLayer("ground")
	if l.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if l.Name != "ground" || l.Kind != LayerKindTile {
		t.Errorf("Name/Kind = %q/%v", l.Name, l.Kind)
	}
	if !l.Visible {
		t.Error("Visible should default to true")
	}
	if l.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", l.Opacity)
	}
	if l.Index() != -1 {
		t.Errorf("unattached Index = %d, want -1", l.Index())
	}
	if l.Tilemap() != nil {
		t.Error("unattached layer should have no map")
	}
}

func TestLayerKindStrings(t *testing.T) {
	if LayerKindTile.String() != "tile" || LayerKindObject.String() != "object" || LayerKindImage.String() != "image" {
		t.Error("LayerKind strings wrong")
	}
}

func TestLayerIsValid(t *testing.T) {
	m := newTestMap(t) // 10x8
	l := m.BaseLayer()
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{Coord(0, 0), true},
		{Coord(9, 7), true},
		{Coord(10, 7), false},
		{Coord(9, 8), false},
		{Coord(-1, 0), false},
		{Coord(0, -1), false},
	}
	for _, tt := range tests {
		if got := l.IsValid(tt.c); got != tt.want {
			t.Errorf("IsValid(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}

	unattached := NewTileLayer("floating")
	if unattached.IsValid(Coord(0, 0)) {
		t.Error("unattached layer should reject every coordinate")
	}
}

func TestLayerPointForCoordinateAppliesOffset(t *testing.T) {
	m := newTestMap(t)
	l := m.BaseLayer()
	l.Offset = Vec2{X: 8, Y: -4}

	p := l.PointForCoordinate(Coord(3, 2))
	// Cell center (112, 80) plus the layer offset.
	if p.X != 120 || p.Y != 76 {
		t.Errorf("PointForCoordinate = %v, want (120, 76)", p)
	}
	if got := l.CoordinateForPoint(p); got != Coord(3, 2) {
		t.Errorf("CoordinateForPoint(%v) = %v, want (3, 2)", p, got)
	}
}

func TestLayerRoundTripWithOffset(t *testing.T) {
	m, err := NewTilemap(MapInfo{
		Width: 6, Height: 7,
		TileWidth: 12, TileHeight: 14,
		Orientation: "hexagonal", StaggerAxis: "y", StaggerIndex: "even",
		HexSideLength: 6,
	})
	if err != nil {
		t.Fatalf("NewTilemap: %v", err)
	}
	l := m.BaseLayer()
	l.Offset = Vec2{X: -3, Y: 5}
	for y := 0; y < 7; y++ {
		for x := 0; x < 6; x++ {
			c := Coord(x, y)
			if got := l.CoordinateForPoint(l.PointForCoordinate(c)); got != c {
				t.Fatalf("round trip %v -> %v", c, got)
			}
		}
	}
}

func TestLayerGeometryPanicsUnattached(t *testing.T) {
	l := NewTileLayer("floating")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unattached layer")
		}
	}()
	l.PointForCoordinate(Coord(0, 0))
}

func TestLayerProperties(t *testing.T) {
	l := NewObjectGroup("meta")
	l.Properties["depth"] = "3"
	if v, ok := l.Property("depth"); !ok || v != "3" {
		t.Errorf("Property(depth) = %q, %v", v, ok)
	}
	if _, ok := l.Property("missing"); ok {
		t.Error("missing property should not be found")
	}
}

func TestLayerFadeDirect(t *testing.T) {
	l := NewTileLayer("fading")
	l.FadeOut(2.0)
	l.update(1.0)
	if !approxEqual(l.Opacity, 0.5, 1e-6) {
		t.Errorf("Opacity = %v, want 0.5", l.Opacity)
	}
	l.update(1.5)
	if l.Opacity != 0 {
		t.Errorf("Opacity = %v, want 0", l.Opacity)
	}
	// No active fade: update is a no-op.
	l.Opacity = 0.7
	l.update(1.0)
	if l.Opacity != 0.7 {
		t.Errorf("Opacity = %v, want 0.7", l.Opacity)
	}
}
