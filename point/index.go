package point

// ConvertUp converts a flat index into a co-ordinate given the width of the
// space. The index is assumed to be within the height, so height is not needed.
func ConvertUp(index int, width int) Point {
	w := int32(width)
	i := int32(index)
	return Point{
		X: i % w,
		Y: i / w,
	}
}

// ConvertDown is the inverse of ConvertUp.
func (p Point) ConvertDown(width int) int {
	return int(p.Y)*width + int(p.X)
}
