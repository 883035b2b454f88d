// Package tilemap is a runtime model for tile-based maps as produced by a
// map editor, together with the grid geometry needed to place, query, and
// order tiles, objects, and layers across the four supported projections:
// orthogonal, isometric, hexagonal, and staggered.
//
// The package holds data and geometry only. Parsing the source map format,
// drawing, and input handling are left to consumers: a loader fills in a
// [MapInfo] record and populates layers and tilesets, and from then on
// renderers and input handlers call the read side of [Tilemap].
//
// # Quick start
//
//	m, err := tilemap.NewTilemap(tilemap.MapInfo{
//		Width: 10, Height: 8,
//		TileWidth: 32, TileHeight: 32,
//		Orientation: "orthogonal",
//	})
//	if err != nil {
//		// unsupported orientation/render-order/stagger attribute
//	}
//
//	ts := tilemap.NewTileset("terrain", 1, 64, tilemap.Size{Width: 32, Height: 32})
//	m.RegisterTileset(ts)
//
//	ground := tilemap.NewTileLayer("ground")
//	m.AddLayer(ground)
//	ground.SetTileWithGID(tilemap.Coord(2, 3), 17)
//
// # Coordinates and geometry
//
// A [Coordinate] is an integer cell address; any pair is a valid value and
// out-of-range cells are rejected only at query time. Pixel<->tile
// conversion is bound to the map's orientation at construction:
// [Tilemap.PointForCoordinate] returns a cell's center point and
// [Tilemap.CoordinateForPoint] is its exact inverse for every in-bounds
// cell, across all four orientations. Hexagonal and staggered maps expose
// the stagger parity ([Tilemap.IsStaggered]) and the four diagonal
// neighbor helpers.
//
// # Layers
//
// Every layer is a [Layer] with a [LayerKind] discriminant: a tile grid, an
// object group, or an image layer. [Tilemap.AddLayer] assigns a monotonic
// index that drives the default z-stacking (index × ZDeltaForLayers);
// [Tilemap.SortLayers] re-flattens z after external manipulation, and
// [Tilemap.IsolateLayer] toggles visibility for debugging. Layer opacity
// can be tweened with [Layer.FadeTo] (via [gween]), advanced by
// [Tilemap.Update].
//
// # Concurrency
//
// The model assumes a single writer and any number of readers with
// non-overlapping access; it performs no locking of its own.
//
// [gween]: https://github.com/tanema/gween
package tilemap
