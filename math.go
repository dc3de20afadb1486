package blob

import (
	"math"

	"golang.org/x/exp/constraints"
)

func lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func clamp[F constraints.Float](v, lo, hi F) F {
	return max(lo, min(v, hi))
}

// Ease maps a linear time fraction t ∈ [0, 1] onto a cosine ease-in-out
// curve. Ease(0) == 0, Ease(0.5) == 0.5 and Ease(1) == 1.
func Ease(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}
