package point

import (
	"fmt"
	"image"
)

// Point is a 2D integer co-ordinate. Primarily used for representing a
// position on a grid or in a 2D array. Points are plain values: compare them
// with == and use them as map keys directly.
type Point struct {
	X int32
	Y int32
}

// Origin is the point at (0, 0).
var Origin = Point{0, 0}

// New returns a point with the given x and y positions.
func New(x int32, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns a new point containing the sum of both points' x and y values.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new point containing the difference of both points' x and y values.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Neg returns the point with both co-ordinates negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Div returns a new point with each co-ordinate divided (truncating) by
// divisor. Dividing by zero panics, same as any other integer division.
func (p Point) Div(divisor int32) Point {
	return Point{X: p.X / divisor, Y: p.Y / divisor}
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ImagePoint converts to the standard library's image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// FromImagePoint converts from image.Point. Values outside the int32 range
// are truncated.
func FromImagePoint(ip image.Point) Point {
	return Point{X: int32(ip.X), Y: int32(ip.Y)}
}
