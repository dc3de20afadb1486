package blob

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Radii of control points are clamped to [MinRadius, MaxRadius] so that the
// smoothed outline can neither collapse nor self-intersect.
const (
	MinRadius = 0.6
	MaxRadius = 1.4
)

// RandomSource provides uniformly distributed numbers in [0, 1). Both
// *math/rand.Rand and *math/rand/v2.Rand satisfy it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// ControlPoint is a point of a blob in polar coordinates. The radius is
// normalized, with 1 being the nominal radius.
type ControlPoint struct {
	Angle  float64
	Radius float64
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("(%g rad, r=%g)", cp.Angle, cp.Radius)
}

// Shape is a closed ring of control points, sorted by increasing angle. The
// last point implicitly connects back to the first.
//
// Shapes are immutable. All shapes produced for the same point count share the
// same angles, so two shapes can be interpolated point by point.
type Shape struct {
	points []ControlPoint
}

// Len returns the number of control points.
func (s Shape) Len() int { return len(s.points) }

// At returns the i-th control point.
func (s Shape) At(i int) ControlPoint { return s.points[i] }

// Points returns a copy of the control points.
func (s Shape) Points() []ControlPoint {
	out := make([]ControlPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Radii returns a copy of the control points' radii.
func (s Shape) Radii() []float64 {
	out := make([]float64, len(s.points))
	for i, cp := range s.points {
		out[i] = cp.Radius
	}
	return out
}

// Equal reports whether two shapes have identical control points.
func (s Shape) Equal(o Shape) bool {
	if len(s.points) != len(o.points) {
		return false
	}
	for i := range s.points {
		if s.points[i] != o.points[i] {
			return false
		}
	}
	return true
}

// ringAngle returns the fixed angle of the k-th of n points.
func ringAngle(k, n int) float64 {
	return 2 * math.Pi * float64(k) / float64(n)
}

// Circle returns the shape with n points, all at the nominal radius.
func Circle(n int) Shape {
	if n < 3 {
		panic(fmt.Sprintf("blob: need at least 3 control points, got %d", n))
	}
	pts := make([]ControlPoint, n)
	for k := range pts {
		pts[k] = ControlPoint{Angle: ringAngle(k, n), Radius: 1}
	}
	return Shape{pts}
}

// Sample returns a new random shape with n control points. Each radius is
// 1 + u with u drawn uniformly from [-jitter, jitter], clamped to
// [MinRadius, MaxRadius]. If rng is nil, the global source of math/rand/v2 is
// used.
//
// Sample panics if n < 3.
func Sample(n int, jitter float64, rng RandomSource) Shape {
	if n < 3 {
		panic(fmt.Sprintf("blob: need at least 3 control points, got %d", n))
	}
	if rng == nil {
		rng = globalSource{}
	}
	pts := make([]ControlPoint, n)
	for k := range pts {
		u := (2*rng.Float64() - 1) * jitter
		pts[k] = ControlPoint{
			Angle:  ringAngle(k, n),
			Radius: clamp(1+u, MinRadius, MaxRadius),
		}
	}
	return Shape{pts}
}

// interpolate returns the shape whose radii lie a fraction t of the way from
// a to b. a and b must have the same length.
func interpolate(a, b Shape, t float64) Shape {
	pts := make([]ControlPoint, len(a.points))
	for i := range pts {
		pts[i] = ControlPoint{
			Angle:  a.points[i].Angle,
			Radius: lerp(a.points[i].Radius, b.points[i].Radius, t),
		}
	}
	return Shape{pts}
}
