package blob

import (
	"fmt"
	"math"
	"time"
)

// Rotation turns at a constant rate, independently of any morph.
type Rotation struct {
	elapsed time.Duration
	period  time.Duration
}

// NewRotation returns a rotation completing one turn per period.
func NewRotation(period time.Duration) (*Rotation, error) {
	if period <= 0 {
		return nil, &ConfigError{"rotation period", fmt.Sprintf("must be positive, got %s", period)}
	}
	return &Rotation{period: period}, nil
}

// Advance adds dt to the total elapsed time. Negative values of dt are
// treated as zero.
func (r *Rotation) Advance(dt time.Duration) {
	if dt > 0 {
		r.elapsed += dt
	}
}

// Degrees returns the current angle in [0, 360). Whole periods map to exactly
// zero.
func (r *Rotation) Degrees() float64 {
	phase := r.elapsed % r.period
	deg := float64(phase) / float64(r.period) * 360
	if deg >= 360 {
		// Rounding for very long periods.
		return 0
	}
	return deg
}

// Radians returns the current angle in [0, 2π).
func (r *Rotation) Radians() float64 {
	return r.Degrees() * math.Pi / 180
}

// Elapsed returns the total time the rotation has been advanced by.
func (r *Rotation) Elapsed() time.Duration { return r.elapsed }

// Period returns the time of one full turn.
func (r *Rotation) Period() time.Duration { return r.period }
