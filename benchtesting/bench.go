package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/kpfaulkner/gridpoint/point"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	lines := flag.Int("n", 100000, "number of lines to plot")
	span := flag.Int("span", 2000, "co-ordinates are drawn from [-span, span)")
	mode := flag.String("profile", "cpu", "profile mode: cpu, mem or none")
	flag.Parse()

	if *span <= 0 {
		log.Errorf("span must be positive, got %d", *span)
		return
	}

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileHeap, profile.ProfilePath(".")).Stop()
		//defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	case "none":
	default:
		log.Errorf("unknown profile mode %q", *mode)
		return
	}

	rnd := rand.New(rand.NewSource(1))
	randomPoint := func() point.Point {
		return point.New(int32(rnd.Intn(2**span)-*span), int32(rnd.Intn(2**span)-*span))
	}

	start := time.Now()
	total := 0
	for count := 0; count < *lines; count++ {
		src, dest := randomPoint(), randomPoint()
		l := point.PlotLine(src, dest)
		for {
			if _, err := l.Next(); err != nil {
				break
			}
			total++
		}
	}
	fmt.Printf("plotted %d lines, %d points in %d ms\n", *lines, total, time.Since(start).Milliseconds())
}
