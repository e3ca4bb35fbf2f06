package point

// All rotations are about the origin and exact; no rounding is involved.

// RotateCW returns the point rotated 90 degrees clockwise: (x, y) -> (y, -x).
func (p Point) RotateCW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// RotateCCW returns the point rotated 90 degrees anti-clockwise: (x, y) -> (-y, x).
func (p Point) RotateCCW() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rotate180 returns the point rotated 180 degrees. Same result as Neg.
func (p Point) Rotate180() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// RotateCWInPlace rotates p 90 degrees clockwise in place.
func (p *Point) RotateCWInPlace() {
	*p = p.RotateCW()
}

// RotateCCWInPlace rotates p 90 degrees anti-clockwise in place.
func (p *Point) RotateCCWInPlace() {
	*p = p.RotateCCW()
}

// Rotate180InPlace rotates p 180 degrees in place.
func (p *Point) Rotate180InPlace() {
	*p = p.Rotate180()
}
