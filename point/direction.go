package point

import "github.com/kpfaulkner/gridpoint/util"

// Unit points, usable as direction markers.
var (
	South = Point{0, -1}
	West  = Point{-1, 0}
	North = Point{0, 1}
	East  = Point{1, 0}
)

// Dir maps the four unit points to 0, 1, 2 and 3 for indexing a collection
// with four elements: South -> 0, West -> 1, North -> 2, East -> 3.
//
// Note: for anything other than the unit points the result is arbitrary.
func (p Point) Dir() int {
	return int(util.Abs(2*int64(p.X) + int64(p.Y) + 1))
}

// InvDir is the index two away from Dir, ie the index of the opposite
// direction. Same caveat as Dir.
func (p Point) InvDir() int {
	dir := p.Dir()
	return util.IfThenElse(dir < 2, dir+2, dir-2)
}
