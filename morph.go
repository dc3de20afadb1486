package blob

import (
	"fmt"
	"time"
)

// Morph interpolates between successive random shapes. It always has a
// current and a target shape; once a morph completes, the target becomes the
// current shape and a new target is sampled.
type Morph struct {
	n        int
	jitter   float64
	rng      RandomSource
	duration time.Duration

	current Shape
	target  Shape
	elapsed time.Duration
	cycles  int
}

// NewMorph returns a morph between shapes of n control points, taking duration
// per shape. The initial current and target shapes are sampled from rng, which
// may be nil.
func NewMorph(n int, jitter float64, duration time.Duration, rng RandomSource) (*Morph, error) {
	if n < 3 {
		return nil, &ConfigError{"point count", fmt.Sprintf("need at least 3 points, got %d", n)}
	}
	if !validJitter(jitter) {
		return nil, jitterError(jitter)
	}
	if duration <= 0 {
		return nil, &ConfigError{"morph duration", fmt.Sprintf("must be positive, got %s", duration)}
	}
	if rng == nil {
		rng = globalSource{}
	}
	m := &Morph{
		n:        n,
		jitter:   jitter,
		rng:      rng,
		duration: duration,
	}
	m.current = Sample(n, jitter, rng)
	m.target = Sample(n, jitter, rng)
	return m, nil
}

// Advance moves the morph forward by dt and returns the interpolated shape.
// Negative values of dt are treated as zero.
//
// When the elapsed time reaches the duration, the target becomes the current
// shape, a new target is sampled and the elapsed time restarts at zero. Any
// time in excess of the duration is discarded.
func (m *Morph) Advance(dt time.Duration) Shape {
	if dt > 0 {
		m.elapsed += dt
	}
	if m.elapsed >= m.duration {
		m.current = m.target
		m.target = Sample(m.n, m.jitter, m.rng)
		m.elapsed = 0
		m.cycles++
		Logger().Debug("blob: morph cycle complete", "cycle", m.cycles)
	}
	return m.Interpolated()
}

// Interpolated returns the shape at the current point of the morph without
// advancing it. The result is computed anew on every call.
func (m *Morph) Interpolated() Shape {
	return interpolate(m.current, m.target, Ease(m.Fraction()))
}

// Fraction returns the linear progress of the current morph in [0, 1].
func (m *Morph) Fraction() float64 {
	return min(float64(m.elapsed)/float64(m.duration), 1)
}

// Current returns the shape the morph started from.
func (m *Morph) Current() Shape { return m.current }

// Target returns the shape the morph is heading towards.
func (m *Morph) Target() Shape { return m.target }

// Elapsed returns the time spent in the current morph.
func (m *Morph) Elapsed() time.Duration { return m.elapsed }

// Duration returns the time each morph takes.
func (m *Morph) Duration() time.Duration { return m.duration }

// PointCount returns the number of control points per shape.
func (m *Morph) PointCount() int { return m.n }

// Jitter returns the maximum radius deviation of sampled shapes.
func (m *Morph) Jitter() float64 { return m.jitter }

// Cycles returns the number of morphs that have completed.
func (m *Morph) Cycles() int { return m.cycles }
