package blob

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// Rasterize renders the frame's outline, rotated by the frame's rotation, into
// a size×size alpha mask. The 100×100 drawing frame is scaled to fit.
func Rasterize(f Frame, size int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 || len(f.Segments) == 0 {
		return dst
	}
	s := float64(size) / FrameSize
	aff := curve.RotateAbout(f.RotationDegrees*math.Pi/180, Center).
		ThenScale(s, s)

	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Src
	pt := func(p curve.Point) (float32, float32) {
		p = p.Transform(aff)
		return float32(p.X), float32(p.Y)
	}
	z.MoveTo(pt(f.Segments[0].P0))
	for _, seg := range f.Segments {
		x1, y1 := pt(seg.P1)
		x2, y2 := pt(seg.P2)
		x3, y3 := pt(seg.P3)
		z.CubeTo(x1, y1, x2, y2, x3, y3)
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
