package tilemap

// Tile is a single tile instance in a tile layer. Its visual and behavioral
// identity flows entirely from its TilesetData; the instance only adds the
// coordinate and the TMX flip flags.
type Tile struct {
	Coord Coordinate
	Data  *TilesetData
	Flags uint32 // TileFlipH/V/D bits
}

// FlippedH reports whether the tile is flipped horizontally.
func (t *Tile) FlippedH() bool { return t.Flags&TileFlipH != 0 }

// FlippedV reports whether the tile is flipped vertically.
func (t *Tile) FlippedV() bool { return t.Flags&TileFlipV != 0 }

// FlippedD reports whether the tile is flipped diagonally (rotated 90°).
func (t *Tile) FlippedD() bool { return t.Flags&TileFlipD != 0 }

// allocateGrid sizes the tile grid to the owning map. Called by AddLayer.
func (l *Layer) allocateGrid(size Size) {
	if l.Kind != LayerKindTile {
		return
	}
	l.tiles = make([]*Tile, size.Width*size.Height)
}

// tileIndex converts a coordinate to a row-major grid index. Returns -1 for
// out-of-range coordinates.
func (l *Layer) tileIndex(c Coordinate) int {
	if !l.IsValid(c) {
		return -1
	}
	return c.Y*l.tilemap.Size().Width + c.X
}

// TileAt returns the tile at c, or nil if the cell is empty or out of range.
func (l *Layer) TileAt(c Coordinate) *Tile {
	l.requireKind(LayerKindTile, "TileAt")
	i := l.tileIndex(c)
	if i < 0 {
		return nil
	}
	return l.tiles[i]
}

// SetTile places a tile with the given tileset data at c and returns it.
// Out-of-range coordinates are ignored and return nil.
func (l *Layer) SetTile(c Coordinate, data *TilesetData) *Tile {
	l.requireKind(LayerKindTile, "SetTile")
	i := l.tileIndex(c)
	if i < 0 {
		debugWarnf("SetTile at out-of-range coordinate %v on layer %q", c, l.Name)
		return nil
	}
	tile := &Tile{Coord: c, Data: data}
	l.tiles[i] = tile
	return tile
}

// SetTileWithGID resolves gid through the map's tileset registry and places
// the resulting tile at c. Flip flag bits are masked off the gid and kept on
// the tile. Returns nil if the gid matches no registered tileset or the
// coordinate is out of range.
func (l *Layer) SetTileWithGID(c Coordinate, gid uint32) *Tile {
	l.requireKind(LayerKindTile, "SetTileWithGID")
	if l.tilemap == nil {
		panic("tilemap: layer is not attached to a map")
	}
	flags := gid & TileFlagMask
	data := l.tilemap.TileData(gid &^ TileFlagMask)
	if data == nil {
		debugWarnf("SetTileWithGID: no tileset registered for gid %d", gid&^TileFlagMask)
		return nil
	}
	tile := l.SetTile(c, data)
	if tile != nil {
		tile.Flags = flags
	}
	return tile
}

// RemoveTile clears the cell at c and returns the removed tile, if any.
func (l *Layer) RemoveTile(c Coordinate) *Tile {
	l.requireKind(LayerKindTile, "RemoveTile")
	i := l.tileIndex(c)
	if i < 0 {
		return nil
	}
	tile := l.tiles[i]
	l.tiles[i] = nil
	return tile
}

// Tiles returns every occupied cell in row-major storage order.
func (l *Layer) Tiles() []*Tile {
	l.requireKind(LayerKindTile, "Tiles")
	result := make([]*Tile, 0, len(l.tiles))
	for _, t := range l.tiles {
		if t != nil {
			result = append(result, t)
		}
	}
	return result
}

// TileCount returns the number of occupied cells.
func (l *Layer) TileCount() int {
	l.requireKind(LayerKindTile, "TileCount")
	count := 0
	for _, t := range l.tiles {
		if t != nil {
			count++
		}
	}
	return count
}

// GetTilesOfType returns the layer's tiles whose tileset data has the given
// type string, in row-major storage order.
func (l *Layer) GetTilesOfType(typ string) []*Tile {
	l.requireKind(LayerKindTile, "GetTilesOfType")
	var result []*Tile
	for _, t := range l.tiles {
		if t != nil && t.Data != nil && t.Data.Type == typ {
			result = append(result, t)
		}
	}
	return result
}

// GetTilesWithID returns the layer's tiles whose global id equals gid, in
// row-major storage order.
func (l *Layer) GetTilesWithID(gid uint32) []*Tile {
	l.requireKind(LayerKindTile, "GetTilesWithID")
	var result []*Tile
	for _, t := range l.tiles {
		if t != nil && t.Data != nil && t.Data.GID == gid {
			result = append(result, t)
		}
	}
	return result
}

// GetTilesWithProperty returns the layer's tiles whose tileset data carries
// the named custom property with the given value, in row-major storage
// order.
func (l *Layer) GetTilesWithProperty(name, value string) []*Tile {
	l.requireKind(LayerKindTile, "GetTilesWithProperty")
	var result []*Tile
	for _, t := range l.tiles {
		if t != nil && t.Data != nil && t.Data.Properties[name] == value {
			result = append(result, t)
		}
	}
	return result
}

// requireKind panics when a kind-specific method is called on the wrong
// layer kind.
func (l *Layer) requireKind(kind LayerKind, op string) {
	if l.Kind != kind {
		panic("tilemap: " + op + " called on " + l.Kind.String() + " layer " + l.Name)
	}
}
