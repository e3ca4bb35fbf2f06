package point

// AllAdjacent returns the four points orthogonally adjacent to p.
// Order is fixed: starting with the offset (1, 0) and rotating it clockwise,
// giving p+(1,0), p+(0,-1), p+(-1,0), p+(0,1).
func (p Point) AllAdjacent() []Point {
	points := make([]Point, 0, 4)
	offset := Point{X: 1, Y: 0}
	for i := 0; i < 4; i++ {
		points = append(points, p.Add(offset))
		offset.RotateCWInPlace()
	}
	return points
}

// AllAdjacentDiagonal is the same as AllAdjacent but also includes the
// diagonally adjacent points. Ordered by x offset, then y offset, each
// running -1 to 1.
func (p Point) AllAdjacentDiagonal() []Point {
	points := make([]Point, 0, 8)
	for x := int32(-1); x <= 1; x++ {
		for y := int32(-1); y <= 1; y++ {
			if x != 0 || y != 0 {
				points = append(points, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return points
}

// Adjacent returns the orthogonally adjacent points in AllAdjacent order.
// Entries that fail BoundsCheck(maxX, maxY) are nil.
func (p Point) Adjacent(maxX int32, maxY int32) []*Point {
	points := make([]*Point, 0, 4)
	for _, adj := range p.AllAdjacent() {
		if adj.BoundsCheck(maxX, maxY) {
			points = append(points, &adj)
		} else {
			points = append(points, nil)
		}
	}
	return points
}

// BoundsCheck returns true if 0 <= x < maxX and 0 <= y < maxY.
func (p Point) BoundsCheck(maxX int32, maxY int32) bool {
	return 0 <= p.X && p.X < maxX && 0 <= p.Y && p.Y < maxY
}
