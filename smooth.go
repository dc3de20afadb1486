package blob

import (
	"math"

	"honnef.co/go/curve"
)

// Shapes are drawn in a 100×100 frame. The nominal radius leaves room for
// MaxRadius without touching the frame's edges.
const (
	FrameSize  = 100
	BaseRadius = 35
)

// Center is the center of the drawing frame.
var Center = curve.Pt(FrameSize/2, FrameSize/2)

// Cartesian returns the position of cp in the drawing frame.
func (cp ControlPoint) Cartesian() curve.Point {
	sin, cos := math.Sincos(cp.Angle)
	r := BaseRadius * cp.Radius
	return curve.Pt(Center.X+r*cos, Center.Y+r*sin)
}

// Smooth converts a shape into a closed sequence of cubic Béziers, one per
// control point, passing through every control point.
//
// Handles are computed by converting a uniform Catmull-Rom spline to Bézier
// form: the handles around P[i] are parallel to the chord P[i-1]→P[i+1] and a
// sixth of its length. This makes the outline C1-continuous everywhere,
// including where the last segment joins the first. The last segment ends on
// exactly the same point the first one starts on.
func Smooth(s Shape) []curve.CubicBez {
	n := s.Len()
	if n == 0 {
		return nil
	}
	pts := make([]curve.Point, n)
	for i := range pts {
		pts[i] = s.At(i).Cartesian()
	}
	at := func(i int) curve.Point {
		return pts[((i%n)+n)%n]
	}

	segs := make([]curve.CubicBez, n)
	for i := range segs {
		p0, p1 := at(i), at(i+1)
		segs[i] = curve.CubicBez{
			P0: p0,
			P1: p0.Translate(at(i + 1).Sub(at(i - 1)).Div(6)),
			P2: p1.Translate(at(i + 2).Sub(at(i)).Div(-6)),
			P3: p1,
		}
	}
	return segs
}

// Outline returns segs as a closed Bézier path, suitable for the rest of the
// curve package.
func Outline(segs []curve.CubicBez) curve.BezPath {
	if len(segs) == 0 {
		return nil
	}
	p := make(curve.BezPath, 0, len(segs)+2)
	p.MoveTo(segs[0].P0)
	for _, seg := range segs {
		p.CubicTo(seg.P1, seg.P2, seg.P3)
	}
	p.ClosePath()
	return p
}
