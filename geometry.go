package tilemap

import "math"

// geometry holds the per-orientation conversion math for a map. It is bound
// once at map construction and never mutated, so every conversion is a pure
// function of its inputs. Pixel positions returned by tileToPixel are cell
// centers; pixelToTile returns the containing cell and is the exact inverse
// for every integer coordinate.
//
// The hexagonal and staggered formulas follow the TMX reference renderer:
// a "column width" of (tileWidth - sideLengthX)/2 + sideLengthX and a
// "row height" built the same way on Y, with row/column interleaving
// controlled by the stagger axis and index.
type geometry struct {
	orientation  Orientation
	size         Size // map size in tiles
	tileWidth    float64
	tileHeight   float64
	staggerAxis  StaggerAxis
	staggerIndex StaggerIndex

	// Derived hex/staggered parameters. Zero for the other orientations.
	sideLengthX float64
	sideLengthY float64
	sideOffsetX float64
	sideOffsetY float64
	columnWidth float64
	rowHeight   float64
}

// newGeometry derives the conversion parameters for a map. hexSideLength is
// only meaningful for hexagonal maps; staggered maps behave like hexagonal
// maps with a side length of zero.
func newGeometry(orientation Orientation, size Size, tileSize Size, staggerAxis StaggerAxis, staggerIndex StaggerIndex, hexSideLength int) geometry {
	g := geometry{
		orientation:  orientation,
		size:         size,
		tileWidth:    float64(tileSize.Width),
		tileHeight:   float64(tileSize.Height),
		staggerAxis:  staggerAxis,
		staggerIndex: staggerIndex,
	}
	if orientation == Hexagonal || orientation == Staggered {
		side := 0.0
		if orientation == Hexagonal {
			side = float64(hexSideLength)
		}
		if staggerAxis == StaggerX {
			g.sideLengthX = side
		} else {
			g.sideLengthY = side
		}
		g.sideOffsetX = (g.tileWidth - g.sideLengthX) / 2
		g.sideOffsetY = (g.tileHeight - g.sideLengthY) / 2
		g.columnWidth = g.sideOffsetX + g.sideLengthX
		g.rowHeight = g.sideOffsetY + g.sideLengthY
	}
	return g
}

// staggerEvenBit is 1 when even indices are the staggered ones.
func (g geometry) staggerEvenBit() int {
	if g.staggerIndex == StaggerEven {
		return 1
	}
	return 0
}

// isStaggered reports whether the row or column at the given index along the
// stagger axis is an offset one. For StaggerOdd, odd indices are staggered;
// StaggerEven inverts the parity.
func (g geometry) isStaggered(index int) bool {
	return (index&1)^g.staggerEvenBit() != 0
}

// doStaggerX reports whether column x is staggered on a StaggerX map.
func (g geometry) doStaggerX(x int) bool {
	return g.staggerAxis == StaggerX && g.isStaggered(x)
}

// doStaggerY reports whether row y is staggered on a StaggerY map.
func (g geometry) doStaggerY(y int) bool {
	return g.staggerAxis == StaggerY && g.isStaggered(y)
}

// mapSizeInPoints returns the overall pixel extent of the map.
func (g geometry) mapSizeInPoints() Vec2 {
	w := float64(g.size.Width)
	h := float64(g.size.Height)

	switch g.orientation {
	case Isometric:
		// Diamond projection: both pixel extents derive from the sum of
		// the grid dimensions times half a tile.
		side := w + h
		return Vec2{X: side * g.tileWidth / 2, Y: side * g.tileHeight / 2}

	case Hexagonal, Staggered:
		if g.staggerAxis == StaggerX {
			size := Vec2{
				X: w*g.columnWidth + g.sideOffsetX,
				Y: h * (g.tileHeight + g.sideLengthY),
			}
			if g.size.Width > 1 {
				size.Y += g.rowHeight
			}
			return size
		}
		size := Vec2{
			X: w * (g.tileWidth + g.sideLengthX),
			Y: h*g.rowHeight + g.sideOffsetY,
		}
		if g.size.Height > 1 {
			size.X += g.columnWidth
		}
		return size

	default: // Orthogonal
		return Vec2{X: w * g.tileWidth, Y: h * g.tileHeight}
	}
}

// tileToPixel returns the pixel position of the center of cell c.
func (g geometry) tileToPixel(c Coordinate) Vec2 {
	x := float64(c.X)
	y := float64(c.Y)

	switch g.orientation {
	case Isometric:
		originX := float64(g.size.Height) * g.tileWidth / 2
		return Vec2{
			X: (x-y)*g.tileWidth/2 + originX,
			Y: (x+y)*g.tileHeight/2 + g.tileHeight/2,
		}

	case Hexagonal, Staggered:
		var pos Vec2
		if g.staggerAxis == StaggerX {
			pos.Y = y * (g.tileHeight + g.sideLengthY)
			if g.doStaggerX(c.X) {
				pos.Y += g.rowHeight
			}
			pos.X = x * g.columnWidth
		} else {
			pos.X = x * (g.tileWidth + g.sideLengthX)
			if g.doStaggerY(c.Y) {
				pos.X += g.columnWidth
			}
			pos.Y = y * g.rowHeight
		}
		// pos is the top-left of the tile's bounding box.
		return Vec2{X: pos.X + g.tileWidth/2, Y: pos.Y + g.tileHeight/2}

	default: // Orthogonal
		return Vec2{
			X: x*g.tileWidth + g.tileWidth/2,
			Y: y*g.tileHeight + g.tileHeight/2,
		}
	}
}

// pixelToTile returns the cell containing the given pixel position.
func (g geometry) pixelToTile(p Vec2) Coordinate {
	switch g.orientation {
	case Isometric:
		px := p.X - float64(g.size.Height)*g.tileWidth/2
		tileX := px / g.tileWidth
		tileY := p.Y / g.tileHeight
		return CoordinateFromFloats(tileY+tileX, tileY-tileX)

	case Hexagonal, Staggered:
		return g.hexPixelToTile(p)

	default: // Orthogonal
		return CoordinateFromFloats(p.X/g.tileWidth, p.Y/g.tileHeight)
	}
}

// hexPixelToTile locates the hex (or staggered diamond) cell under a pixel
// position. It first finds a doubled-grid reference tile, then picks the
// nearest of four candidate cell centers.
func (g geometry) hexPixelToTile(p Vec2) Coordinate {
	x, y := p.X, p.Y

	if g.staggerAxis == StaggerX {
		if g.staggerIndex == StaggerEven {
			x -= g.tileWidth
		} else {
			x -= g.sideOffsetX
		}
	} else {
		if g.staggerIndex == StaggerEven {
			y -= g.tileHeight
		} else {
			y -= g.sideOffsetY
		}
	}

	// Grid-aligned reference tile in doubled coordinates along the
	// stagger axis.
	refX := int(math.Floor(x / (g.columnWidth * 2)))
	refY := int(math.Floor(y / (g.rowHeight * 2)))

	// Relative position on the reference tile's base square.
	relX := x - float64(refX)*g.columnWidth*2
	relY := y - float64(refY)*g.rowHeight*2

	if g.staggerAxis == StaggerX {
		refX *= 2
		if g.staggerIndex == StaggerEven {
			refX++
		}
	} else {
		refY *= 2
		if g.staggerIndex == StaggerEven {
			refY++
		}
	}

	// Candidate cell centers relative to the base square, and the tile
	// offsets they correspond to.
	var centers [4]Vec2
	var offsets [4]Coordinate
	if g.staggerAxis == StaggerX {
		left := g.sideLengthX / 2
		centerX := left + g.columnWidth
		centerY := g.tileHeight / 2
		centers = [4]Vec2{
			{X: left, Y: centerY},
			{X: centerX, Y: centerY - g.rowHeight},
			{X: centerX, Y: centerY + g.rowHeight},
			{X: centerX + g.columnWidth, Y: centerY},
		}
		offsets = [4]Coordinate{{0, 0}, {1, -1}, {1, 0}, {2, 0}}
	} else {
		top := g.sideLengthY / 2
		centerX := g.tileWidth / 2
		centerY := top + g.rowHeight
		centers = [4]Vec2{
			{X: centerX, Y: top},
			{X: centerX - g.columnWidth, Y: centerY},
			{X: centerX + g.columnWidth, Y: centerY},
			{X: centerX, Y: centerY + g.rowHeight},
		}
		offsets = [4]Coordinate{{0, 0}, {-1, 1}, {0, 1}, {0, 2}}
	}

	nearest := 0
	minDist := math.MaxFloat64
	for i, center := range centers {
		dx := center.X - relX
		dy := center.Y - relY
		if d := dx*dx + dy*dy; d < minDist {
			minDist = d
			nearest = i
		}
	}

	return Coordinate{
		X: refX + offsets[nearest].X,
		Y: refY + offsets[nearest].Y,
	}
}

// --- Diagonal neighbors (hex/staggered) ---
//
// The adjacent cell in a diagonal direction depends on the parity of the
// coordinate along the stagger axis. These are used to compute cell
// boundaries and corner points, not for pathfinding.

func (g geometry) topLeft(c Coordinate) Coordinate {
	if g.staggerAxis == StaggerY {
		if g.isStaggered(c.Y) {
			return Coordinate{X: c.X, Y: c.Y - 1}
		}
		return Coordinate{X: c.X - 1, Y: c.Y - 1}
	}
	if g.isStaggered(c.X) {
		return Coordinate{X: c.X - 1, Y: c.Y}
	}
	return Coordinate{X: c.X - 1, Y: c.Y - 1}
}

func (g geometry) topRight(c Coordinate) Coordinate {
	if g.staggerAxis == StaggerY {
		if g.isStaggered(c.Y) {
			return Coordinate{X: c.X + 1, Y: c.Y - 1}
		}
		return Coordinate{X: c.X, Y: c.Y - 1}
	}
	if g.isStaggered(c.X) {
		return Coordinate{X: c.X + 1, Y: c.Y}
	}
	return Coordinate{X: c.X + 1, Y: c.Y - 1}
}

func (g geometry) bottomLeft(c Coordinate) Coordinate {
	if g.staggerAxis == StaggerY {
		if g.isStaggered(c.Y) {
			return Coordinate{X: c.X, Y: c.Y + 1}
		}
		return Coordinate{X: c.X - 1, Y: c.Y + 1}
	}
	if g.isStaggered(c.X) {
		return Coordinate{X: c.X - 1, Y: c.Y + 1}
	}
	return Coordinate{X: c.X - 1, Y: c.Y}
}

func (g geometry) bottomRight(c Coordinate) Coordinate {
	if g.staggerAxis == StaggerY {
		if g.isStaggered(c.Y) {
			return Coordinate{X: c.X + 1, Y: c.Y + 1}
		}
		return Coordinate{X: c.X, Y: c.Y + 1}
	}
	if g.isStaggered(c.X) {
		return Coordinate{X: c.X + 1, Y: c.Y + 1}
	}
	return Coordinate{X: c.X + 1, Y: c.Y}
}
