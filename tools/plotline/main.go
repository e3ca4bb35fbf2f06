package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/kpfaulkner/gridpoint/options"
	"github.com/kpfaulkner/gridpoint/point"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	from := flag.String("from", "0,0", "start point x,y")
	to := flag.String("to", "", "end point x,y")
	width := flag.Int("w", 0, "grid width")
	height := flag.Int("h", 0, "grid height")
	adjacent := flag.Bool("adjacent", false, "mark neighbours of both endpoints")
	diagonal := flag.Bool("diagonal", false, "include diagonal neighbours (with -adjacent)")
	outfile := flag.String("o", "", "optional output png file")
	debug := flag.Bool("debug", false, "debug logging")
	profileCPU := flag.Bool("profile", false, "write a cpu profile to the current directory")
	flag.Parse()

	if *to == "" {
		log.Fatalf("end point must be specified with -to")
	}

	src, err := options.ParsePoint(*from)
	if err != nil {
		log.Fatalf("bad -from %q: %v", *from, err)
	}
	dest, err := options.ParsePoint(*to)
	if err != nil {
		log.Fatalf("bad -to %q: %v", *to, err)
	}

	opt := options.NewPlotOptions(&options.PlotOptions{
		From:     src,
		To:       dest,
		Width:    int32(*width),
		Height:   int32(*height),
		Adjacent: *adjacent,
		Diagonal: *diagonal,
		Debug:    *debug,
		Profile:  *profileCPU,
	})
	if opt.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if err := opt.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	var prof interface{ Stop() }
	if opt.Profile {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	err = run(opt, *outfile)
	if prof != nil {
		prof.Stop()
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// run plots and writes everything; errors come back so the profile is
// always stopped before exiting.
func run(opt *options.PlotOptions, outfile string) error {
	grid, points := renderGrid(opt)
	log.Debugf("plotted %d points from %v to %v, distance %.3f", len(points), opt.From, opt.To, opt.From.Dist(opt.To))

	for i, p := range points {
		fmt.Printf("%d: %v\n", i, p)
	}
	fmt.Printf("chebyshev %d, manhattan %d, euclidean %.3f\n", opt.From.ChebyshevDist(opt.To), opt.From.ManhattanDist(opt.To), opt.From.Dist(opt.To))
	if opt.From.Sub(opt.To).ManhattanDist(point.Origin) == 1 {
		fmt.Printf("direction index %d\n", opt.To.Sub(opt.From).Dir())
	}

	if err := writeASCII(os.Stdout, grid); err != nil {
		return fmt.Errorf("error writing grid: %w", err)
	}

	if outfile == "" {
		return nil
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, toImage(grid, 8)); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	if err := os.WriteFile(outfile, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("error writing %s: %w", outfile, err)
	}
	return nil
}
