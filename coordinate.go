package tilemap

import (
	"fmt"
	"math"
)

// Coordinate identifies a cell in the map grid. It is an immutable value
// type; any integer pair is a valid coordinate, and out-of-range values are
// rejected only at query time (see Layer.IsValid).
type Coordinate struct {
	X, Y int
}

// Coord is shorthand for constructing a Coordinate from two ints.
func Coord(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// CoordinateFromFloats builds the coordinate of the cell containing the
// given fractional grid position. Components are floored toward negative
// infinity, not rounded: -0.3 belongs to cell -1.
func CoordinateFromFloats(x, y float64) Coordinate {
	return Coordinate{
		X: int(math.Floor(x)),
		Y: int(math.Floor(y)),
	}
}

// Vec2 returns the coordinate as a float vector.
func (c Coordinate) Vec2() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Delta returns the component-wise difference c - other.
func (c Coordinate) Delta(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
