package util

import (
	"golang.org/x/exp/constraints"
)

// Matrix makes a 1D slice appear as a 2D one, stored row by row.
// Index i holds the cell (i % Width, i / Width).
type Matrix[T constraints.Ordered] struct {
	Width  int32
	Height int32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Ordered](height int32, width int32) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// Fill sets every cell to value.
func (s *Matrix[T]) Fill(value T) {
	for i := range s.Data {
		s.Data[i] = value
	}
}

// Note y is first param...  just for compatibility
func (s *Matrix[T]) Get(y int32, x int32) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int32, x int32, value T) {
	s.Data[y*s.Width+x] = value
}

// GetIndex and SetIndex address the flat row-major index directly.
func (s *Matrix[T]) GetIndex(i int) T {
	return s.Data[i]
}

func (s *Matrix[T]) SetIndex(i int, value T) {
	s.Data[i] = value
}

func (s *Matrix[T]) GetRow(y int32) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}
