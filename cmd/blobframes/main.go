// Command blobframes renders frames of the blob loading indicator to SVG or
// PNG files, driving the animation with a virtual clock.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"honnef.co/go/blob"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML file with animation options")
		frames  = flag.Int("frames", 120, "number of frames to render")
		fps     = flag.Int("fps", 60, "frames per second of animation time")
		format  = flag.String("format", "svg", "output format: svg or png")
		size    = flag.Int("size", 48, "diameter in pixels")
		out     = flag.String("out", "frames", "output directory")
		seed    = flag.Uint64("seed", 0, "random seed; 0 picks one at random")
		verbose = flag.Bool("v", false, "log morph cycles")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	blob.SetLogger(logger)

	if err := run(*config, *frames, *fps, *format, *size, *out, *seed); err != nil {
		logger.Error("blobframes failed", "err", err)
		os.Exit(1)
	}
}

func loadOptions(path string) (blob.Options, error) {
	if path == "" {
		return blob.DefaultOptions(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return blob.Options{}, err
	}
	defer f.Close()
	return blob.LoadOptions(f)
}

func run(config string, frames, fps int, format string, size int, out string, seed uint64) error {
	if frames <= 0 || fps <= 0 || size <= 0 {
		return fmt.Errorf("frames, fps and size must be positive")
	}
	var ext string
	switch format {
	case "svg", "png":
		ext = format
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	opts, err := loadOptions(config)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	clock := blob.NewVirtualClock(time.Time{})
	opts.Rand = rand.New(rand.NewPCG(seed, seed))
	opts.Clock = clock
	opts.Scheduler = clock
	opts.TickInterval = time.Second / time.Duration(fps)

	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	var writeErr error
	n := 0
	write := func(f blob.Frame) {
		if writeErr != nil || n >= frames {
			return
		}
		name := filepath.Join(out, fmt.Sprintf("frame-%04d.%s", n, ext))
		n++
		writeErr = writeFrame(name, f, format, size, opts.Precision)
	}

	loop, err := blob.NewLoop(opts, write)
	if err != nil {
		return err
	}
	loop.Start()
	// The first frame is published by Start, the rest by ticks.
	for n < frames && writeErr == nil {
		clock.Advance(opts.TickInterval)
	}
	loop.Stop()
	if writeErr != nil {
		return writeErr
	}

	blob.Logger().Info("wrote frames", "count", n, "dir", out, "seed", seed)
	return nil
}

func writeFrame(name string, f blob.Frame, format string, size, precision int) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "svg":
		opts := blob.DefaultDocumentOptions()
		opts.Diameter = float64(size)
		opts.Precision = precision
		return f.WriteSVG(fd, opts)
	case "png":
		return png.Encode(fd, blob.Rasterize(f, size))
	default:
		panic("unreachable")
	}
}
