package blob

import (
	"slices"
	"strings"
	"sync"
	"time"

	"honnef.co/go/curve"
)

// Frame is the state of the indicator after a tick.
type Frame struct {
	// SVG path of the outline, in the 100×100 drawing frame.
	Path string
	// Rotation to apply to the whole drawing frame, in [0, 360).
	RotationDegrees float64
	// The interpolated shape the path was built from.
	Shape Shape
	// The outline's segments. Segments[len(Segments)-1].P3 == Segments[0].P0.
	Segments []curve.CubicBez
	// Number of completed morphs.
	Cycle int
}

// Loop drives a [Morph] and a [Rotation] from a [Scheduler] and publishes a
// [Frame] after every tick. Both are advanced by the same amount of time per
// tick.
//
// All state changes happen inside ticks, which are serialized. Frames are
// published one at a time and in order, without holding the loop's state
// lock, so the publish callback may call [Loop.Frame], [Loop.Running] and
// [Loop.Ticks]. It must not call [Loop.Start] or [Loop.Stop].
type Loop struct {
	opts     Options
	publish  func(Frame)
	clock    Clock
	sched    Scheduler
	pathOpts PathOptions

	// pubMu serializes calls of publish. It is acquired before mu.
	pubMu sync.Mutex

	mu       sync.Mutex
	morph    *Morph
	rotation *Rotation
	running  bool
	// gen identifies the current subscription. Ticks of older subscriptions
	// are ignored.
	gen    uint64
	cancel func()
	last   time.Time
	frame  Frame
	ticks  uint64
	// seq numbers rendered frames; delivered is the seq of the last frame
	// passed to publish since the last Start.
	seq       uint64
	delivered uint64
}

// NewLoop returns a stopped loop. publish, which may be nil, is called with
// every new frame. An invalid configuration results in a *[ConfigError].
func NewLoop(opts Options, publish func(Frame)) (*Loop, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		opts.Rand = globalSource{}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TickerScheduler{}
	}
	if publish == nil {
		publish = func(Frame) {}
	}

	morph, err := NewMorph(opts.PointCount, opts.Jitter, opts.MorphDuration, opts.Rand)
	if err != nil {
		return nil, err
	}
	rotation, err := NewRotation(opts.RotationPeriod)
	if err != nil {
		return nil, err
	}
	l := &Loop{
		opts:     opts,
		publish:  publish,
		clock:    opts.Clock,
		sched:    opts.Scheduler,
		pathOpts: PathOptions{MaxPrecision: opts.Precision},
		morph:    morph,
		rotation: rotation,
	}
	l.frame = l.render(morph.Interpolated())
	l.seq = 1
	return l, nil
}

// Start subscribes to the scheduler and immediately publishes the current
// frame. Starting a running loop does nothing. Time that passed while the
// loop was stopped does not count towards the animation.
//
// If a tick publishes a newer frame first, the current frame is not published.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.gen++
	gen := l.gen
	l.last = l.clock.Now()
	l.delivered = 0
	l.mu.Unlock()

	// The scheduler may run the first tick before Schedule returns.
	cancel := l.sched.Schedule(func() { l.tick(gen) }, l.opts.TickInterval)

	l.mu.Lock()
	if !l.running || l.gen != gen {
		// Stopped, and possibly restarted, while subscribing.
		l.mu.Unlock()
		cancel()
		return
	}
	l.cancel = cancel
	f, seq := l.frame.clone(), l.seq
	l.mu.Unlock()

	Logger().Info("blob: loop started", "interval", l.opts.TickInterval, "points", l.opts.PointCount)
	l.deliver(gen, seq, f)
}

// Stop cancels the loop's subscription. Once Stop returns, no more frames are
// published until the next call to Start. Stopping a stopped loop does
// nothing.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	cancel := l.cancel
	l.cancel = nil
	ticks := l.ticks
	l.mu.Unlock()

	// Cancelling may wait for an in-flight tick, which needs l.mu.
	if cancel != nil {
		cancel()
	}
	// Wait for a publication that began before running was cleared.
	l.pubMu.Lock()
	l.pubMu.Unlock()
	Logger().Info("blob: loop stopped", "ticks", ticks)
}

// Running reports whether the loop has been started and not stopped since.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Frame returns the most recent frame. The caller owns the returned frame's
// segments.
func (l *Loop) Frame() Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame.clone()
}

// Ticks returns the number of ticks processed so far.
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

func (l *Loop) tick(gen uint64) {
	l.mu.Lock()
	if !l.running || gen != l.gen {
		l.mu.Unlock()
		return
	}
	now := l.clock.Now()
	dt := now.Sub(l.last)
	l.last = now

	shape := l.morph.Advance(dt)
	l.rotation.Advance(dt)
	l.frame = l.render(shape)
	l.ticks++
	l.seq++
	f, seq := l.frame.clone(), l.seq
	l.mu.Unlock()

	l.deliver(gen, seq, f)
}

// deliver passes f to publish unless the loop has been stopped or restarted
// since f was rendered, or a newer frame has already been published.
func (l *Loop) deliver(gen, seq uint64, f Frame) {
	l.pubMu.Lock()
	defer l.pubMu.Unlock()

	l.mu.Lock()
	ok := l.running && l.gen == gen && seq > l.delivered
	if ok {
		l.delivered = seq
	}
	l.mu.Unlock()

	if ok {
		l.publish(f)
	}
}

func (l *Loop) render(shape Shape) Frame {
	segs := Smooth(shape)
	sb := &strings.Builder{}
	// Shapes always have at least 3 points, so this can't fail.
	WritePath(sb, segs, l.pathOpts)
	return Frame{
		Path:            sb.String(),
		RotationDegrees: l.rotation.Degrees(),
		Shape:           shape,
		Segments:        segs,
		Cycle:           l.morph.Cycles(),
	}
}

// clone returns a copy of f that shares no mutable memory with f.
func (f Frame) clone() Frame {
	f.Segments = slices.Clone(f.Segments)
	return f
}
