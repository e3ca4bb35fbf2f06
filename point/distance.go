package point

import (
	"math"

	"github.com/kpfaulkner/gridpoint/util"
)

// Dist returns the Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	return math.Sqrt(float64(p.DistSquared(other)))
}

// DistSquared returns the squared Euclidean distance. Cheaper than Dist as
// there is no square root. Not guarded against int32 overflow.
func (p Point) DistSquared(other Point) int32 {
	disp := p.Sub(other)
	return disp.X*disp.X + disp.Y*disp.Y
}

// ChebyshevDist returns max(|dx|, |dy|), the number of steps PlotLine takes
// between the two points.
func (p Point) ChebyshevDist(other Point) int32 {
	return util.Max(util.Abs(p.X-other.X), util.Abs(p.Y-other.Y))
}

// ManhattanDist returns |dx| + |dy|.
func (p Point) ManhattanDist(other Point) int32 {
	return util.Abs(p.X-other.X) + util.Abs(p.Y-other.Y)
}
