package main

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"github.com/kpfaulkner/gridpoint/options"
	"github.com/kpfaulkner/gridpoint/point"
	"github.com/kpfaulkner/gridpoint/util"
	log "github.com/sirupsen/logrus"
)

const (
	cellEmpty     byte = '.'
	cellLine      byte = '#'
	cellFrom      byte = 'A'
	cellTo        byte = 'B'
	cellNeighbour byte = 'o'
)

var palette = map[byte]color.RGBA{
	cellEmpty:     {0xff, 0xff, 0xff, 0xff},
	cellLine:      {0x20, 0x20, 0x20, 0xff},
	cellFrom:      {0x20, 0x90, 0x20, 0xff},
	cellTo:        {0xc0, 0x20, 0x20, 0xff},
	cellNeighbour: {0xa0, 0xa0, 0xe0, 0xff},
}

// renderGrid plots the line described by opt onto a fresh grid and returns
// the grid along with every point on the line.
func renderGrid(opt *options.PlotOptions) (*util.Matrix[byte], []point.Point) {
	grid := util.New2DMatrix[byte](opt.Height, opt.Width)
	grid.Fill(cellEmpty)

	set := func(p point.Point, v byte) {
		if !p.BoundsCheck(grid.Width, grid.Height) {
			log.Debugf("skipping %v, outside grid", p)
			return
		}
		grid.SetIndex(p.ConvertDown(int(grid.Width)), v)
	}

	if opt.Adjacent {
		for _, end := range []point.Point{opt.From, opt.To} {
			if opt.Diagonal {
				for _, n := range end.AllAdjacentDiagonal() {
					set(n, cellNeighbour)
				}
				continue
			}
			for _, n := range end.Adjacent(grid.Width, grid.Height) {
				if n != nil {
					set(*n, cellNeighbour)
				}
			}
		}
	}

	points := point.PlotLine(opt.From, opt.To).Points()
	for _, p := range points {
		set(p, cellLine)
	}
	set(opt.From, cellFrom)
	set(opt.To, cellTo)

	return grid, points
}

// writeASCII writes the grid top row first, one line per row.
func writeASCII(w io.Writer, grid *util.Matrix[byte]) error {
	bw := bufio.NewWriter(w)
	for y := int32(0); y < grid.Height; y++ {
		if _, err := bw.Write(grid.GetRow(y)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// toImage renders each grid cell as a scale x scale block of pixels.
func toImage(grid *util.Matrix[byte], scale int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, int(grid.Width)*scale, int(grid.Height)*scale))
	next := point.RangeIterator(int(grid.Width), int(grid.Height))
	for {
		cell, err := next()
		if err != nil {
			break
		}
		c := palette[grid.Get(cell.Y, cell.X)]
		origin := cell.ImagePoint().Mul(scale)
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetRGBA(origin.X+dx, origin.Y+dy, c)
			}
		}
	}
	return img
}
