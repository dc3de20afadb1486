package blob

import (
	"io"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// PathOptions specifies optional settings for [Path] and [WritePath].
type PathOptions struct {
	// The maximum number of fractional digits with which to format
	// coordinates. A value of 0 chooses the highest precision necessary to
	// unambiguously represent any given coordinate.
	MaxPrecision int
}

func (opts PathOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Path converts a closed sequence of cubic Béziers to an SVG path string.
//
// See [WritePath] for a version that writes to an [io.Writer] instead of
// returning a string.
func Path(segs []curve.CubicBez, opts PathOptions) (string, error) {
	sb := &strings.Builder{}
	if err := WritePath(sb, segs, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WritePath writes segs as an SVG path to w. The output consists of a single
// move to the first segment's start point, one cubic curve per segment and a
// closing command:
//
//	M x,y C x1,y1 x2,y2 x,y C … Z
//
// The segments are assumed to be contiguous; only the first segment's start
// point is written.
func WritePath(w io.Writer, segs []curve.CubicBez, opts PathOptions) error {
	if len(segs) == 0 {
		return ErrEmptyPath
	}
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	pt := func(p curve.Point) string {
		return opts.format(p.X) + "," + opts.format(p.Y)
	}

	write("M ")
	write(pt(segs[0].P0))
	for _, seg := range segs {
		write(" C ")
		write(pt(seg.P1))
		write(" ")
		write(pt(seg.P2))
		write(" ")
		write(pt(seg.P3))
	}
	write(" Z")
	return err
}
