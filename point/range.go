package point

import (
	"io"
)

// RangeIterator walks every point of a width x height area, row by row,
// starting at the origin. Returns io.EOF once the area is exhausted.
// COULD use the Go 1.23 iter package, but to keep backwards compatibility
// this is a plain closure.
func RangeIterator(width int, height int) func() (*Point, error) {
	index := 0
	return func() (*Point, error) {
		if width <= 0 || index >= width*height {
			return nil, io.EOF
		}
		p := ConvertUp(index, width)
		index++
		return &p, nil
	}
}
