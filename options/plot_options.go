package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kpfaulkner/gridpoint/point"
	"github.com/kpfaulkner/gridpoint/util"
)

const (
	defaultWidth  = 16
	defaultHeight = 16
	// MaxGridSize caps both grid dimensions.
	MaxGridSize = 512
)

type PlotOptions struct {
	From point.Point
	To   point.Point

	// Width and Height of the rendered grid. Zero means default.
	Width  int32
	Height int32

	// Mark the neighbours of both endpoints, orthogonal only unless Diagonal is set.
	Adjacent bool
	Diagonal bool

	Debug   bool
	Profile bool
}

func NewPlotOptions(options *PlotOptions) *PlotOptions {

	opt := &PlotOptions{Width: defaultWidth, Height: defaultHeight}
	if options != nil {
		opt.From = options.From
		opt.To = options.To
		opt.Adjacent = options.Adjacent
		opt.Diagonal = options.Diagonal
		opt.Debug = options.Debug
		opt.Profile = options.Profile
		if options.Width > 0 {
			opt.Width = util.Min(options.Width, MaxGridSize)
		}
		if options.Height > 0 {
			opt.Height = util.Min(options.Height, MaxGridSize)
		}
	}
	return opt
}

// Validate checks both endpoints fit on the grid.
func (o *PlotOptions) Validate() error {
	if !o.From.BoundsCheck(o.Width, o.Height) {
		return fmt.Errorf("from %v outside %dx%d grid", o.From, o.Width, o.Height)
	}
	if !o.To.BoundsCheck(o.Width, o.Height) {
		return fmt.Errorf("to %v outside %dx%d grid", o.To, o.Width, o.Height)
	}
	return nil
}

// ParsePoint reads "x,y" (optionally wrapped as "(x, y)") into a point.
func ParsePoint(s string) (point.Point, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return point.Point{}, errors.New("point must be of the form x,y")
	}

	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return point.Point{}, fmt.Errorf("invalid x co-ordinate: %w", err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return point.Point{}, fmt.Errorf("invalid y co-ordinate: %w", err)
	}
	return point.FromPair(x, y), nil
}
