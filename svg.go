package blob

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DocumentOptions specifies optional settings for [Frame.WriteSVG].
type DocumentOptions struct {
	// Rendered width and height of the indicator, in CSS pixels. Values
	// <= 0 use 48.
	Diameter float64
	// Whether to blur the outline slightly, softening its edge.
	SoftEdge bool
	// See [PathOptions.MaxPrecision]. Only used when formatting the frame's
	// segments; Frame.Path is written as is if it is set.
	Precision int
}

// DefaultDocumentOptions returns the settings of the stock indicator.
func DefaultDocumentOptions() DocumentOptions {
	return DocumentOptions{Diameter: 48, SoftEdge: true, Precision: 2}
}

// SVG renders the frame as a standalone SVG document.
//
// See [Frame.WriteSVG] for a version that writes to an [io.Writer] instead.
func (f Frame) SVG(opts DocumentOptions) string {
	sb := &strings.Builder{}
	f.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the frame as a standalone SVG document. The viewBox is the
// 100×100 drawing frame; the document is sized to opts.Diameter and rotated by
// the frame's rotation. The outline is filled with currentColor so that the
// embedding context decides its color.
func (f Frame) WriteSVG(w io.Writer, opts DocumentOptions) error {
	d := opts.Diameter
	if d <= 0 {
		d = 48
	}
	path := f.Path
	if path == "" {
		var err error
		path, err = Path(f.Segments, PathOptions{MaxPrecision: opts.Precision})
		if err != nil {
			return err
		}
	}

	size := strconv.FormatFloat(d, 'f', -1, 64)
	rot := strconv.FormatFloat(f.RotationDegrees, 'f', -1, 64)

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	writef(`<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" style="width:%spx;height:%spx;transform:rotate(%sdeg)">`,
		FrameSize, FrameSize, size, size, rot)
	if opts.SoftEdge {
		writef(`<defs><filter id="softEdge"><feGaussianBlur stdDeviation="0.5"/></filter></defs>`)
		writef(`<path d="%s" fill="currentColor" filter="url(#softEdge)"/>`, path)
	} else {
		writef(`<path d="%s" fill="currentColor"/>`, path)
	}
	writef("</svg>\n")
	return err
}
