package point

import "golang.org/x/exp/constraints"

// FromPair builds a point from any integer pair. Values are converted with the
// usual Go integer conversion rules, so out of range values are truncated.
func FromPair[T constraints.Integer](x T, y T) Point {
	return Point{X: int32(x), Y: int32(y)}
}

// ToPair returns the co-ordinates converted to T.
func ToPair[T constraints.Integer](p Point) (T, T) {
	return T(p.X), T(p.Y)
}
