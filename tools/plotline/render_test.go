package main

import (
	"bytes"
	"testing"

	"github.com/kpfaulkner/gridpoint/options"
	"github.com/kpfaulkner/gridpoint/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGrid(t *testing.T) {
	opt := options.NewPlotOptions(&options.PlotOptions{
		From:   point.New(0, 0),
		To:     point.New(3, 1),
		Width:  4,
		Height: 2,
	})

	grid, points := renderGrid(opt)
	assert.Len(t, points, 4)

	var buf bytes.Buffer
	require.Nil(t, writeASCII(&buf, grid))
	assert.Equal(t, "A#..\n..#B\n", buf.String())
}

func TestRenderGridIndexesByConvertDown(t *testing.T) {
	opt := options.NewPlotOptions(&options.PlotOptions{
		From:   point.New(1, 4),
		To:     point.New(6, 2),
		Width:  8,
		Height: 5,
	})

	grid, points := renderGrid(opt)
	require.Len(t, points, 6)

	for _, p := range points[1 : len(points)-1] {
		assert.Equal(t, cellLine, grid.GetIndex(p.ConvertDown(int(grid.Width))), "%v", p)
		assert.Equal(t, cellLine, grid.Get(p.Y, p.X), "%v", p)
	}
	assert.Equal(t, cellFrom, grid.GetIndex(opt.From.ConvertDown(8)))
	assert.Equal(t, cellTo, grid.GetIndex(opt.To.ConvertDown(8)))

	lineCells := 0
	for i := range grid.Data {
		if grid.GetIndex(i) != cellEmpty {
			lineCells++
		}
	}
	assert.Equal(t, len(points), lineCells)
}

func TestRenderGridAdjacent(t *testing.T) {
	opt := options.NewPlotOptions(&options.PlotOptions{
		From:     point.New(1, 1),
		To:       point.New(1, 1),
		Width:    3,
		Height:   3,
		Adjacent: true,
	})

	grid, points := renderGrid(opt)
	assert.Equal(t, []point.Point{point.New(1, 1)}, points)

	var buf bytes.Buffer
	require.Nil(t, writeASCII(&buf, grid))
	assert.Equal(t, ".o.\noBo\n.o.\n", buf.String())

	opt.Diagonal = true
	grid, _ = renderGrid(opt)
	buf.Reset()
	require.Nil(t, writeASCII(&buf, grid))
	assert.Equal(t, "ooo\noBo\nooo\n", buf.String())
}

func TestRenderGridAdjacentAtEdge(t *testing.T) {
	opt := options.NewPlotOptions(&options.PlotOptions{
		From:     point.New(0, 0),
		To:       point.New(2, 0),
		Width:    3,
		Height:   2,
		Adjacent: true,
		Diagonal: true,
	})

	grid, _ := renderGrid(opt)
	var buf bytes.Buffer
	require.Nil(t, writeASCII(&buf, grid))
	assert.Equal(t, "A#B\nooo\n", buf.String())
}

func TestToImage(t *testing.T) {
	opt := options.NewPlotOptions(&options.PlotOptions{
		From:   point.New(0, 0),
		To:     point.New(1, 1),
		Width:  2,
		Height: 2,
	})
	grid, _ := renderGrid(opt)

	img := toImage(grid, 3)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	assert.Equal(t, palette[cellFrom], img.At(1, 1))
	assert.Equal(t, palette[cellTo], img.At(4, 4))
	assert.Equal(t, palette[cellEmpty], img.At(4, 1))
}
