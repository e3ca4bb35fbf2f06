package point

import (
	"io"

	"github.com/kpfaulkner/gridpoint/util"
)

// LineIter steps over the points on a line between, and including, two
// points. Uses Bresenham's line algorithm. Single pass: construct a new one
// to walk the line again.
type LineIter struct {
	dx  int32
	sx  int32
	dy  int32
	sy  int32
	err int32
	cur Point
	end Point
	// set once end has been handed out
	done bool
}

// PlotLine returns an iterator over all the points on the line from src to dest.
func PlotLine(src Point, dest Point) *LineIter {
	return NewLineIter(src, dest)
}

// NewLineIter is the same as PlotLine.
func NewLineIter(src Point, dest Point) *LineIter {
	dx := util.Abs(dest.X - src.X)
	dy := -util.Abs(dest.Y - src.Y)
	return &LineIter{
		dx:  dx,
		sx:  util.IfThenElse[int32](src.X < dest.X, 1, -1),
		dy:  dy,
		sy:  util.IfThenElse[int32](src.Y < dest.Y, 1, -1),
		err: dx + dy,
		cur: src,
		end: dest,
	}
}

// Next returns the next point on the line, or io.EOF once the destination
// has been returned.
func (l *LineIter) Next() (Point, error) {
	if l.done {
		return Point{}, io.EOF
	}

	p := l.cur
	if p == l.end {
		l.done = true
		return p, nil
	}
	e2 := 2 * l.err

	// x is checked before y; this decides which cells diagonal runs pass through.
	if e2 >= l.dy {
		if l.cur.X == l.end.X {
			l.done = true
			return p, nil
		}
		l.err += l.dy
		l.cur.X += l.sx
	}
	if e2 <= l.dx {
		if l.cur.Y == l.end.Y {
			l.done = true
			return p, nil
		}
		l.err += l.dx
		l.cur.Y += l.sy
	}
	return p, nil
}

// Points drains the iterator and returns everything left on the line.
func (l *LineIter) Points() []Point {
	var points []Point
	for {
		p, err := l.Next()
		if err != nil {
			return points
		}
		points = append(points, p)
	}
}
