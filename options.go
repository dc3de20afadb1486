package blob

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v2"
)

// ErrEmptyPath is returned by [WritePath] when given no segments.
var ErrEmptyPath = errors.New("blob: path has no segments")

// ConfigError describes an invalid construction option. It is only ever
// returned by constructors and [Options.Validate], never while animating.
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("blob: invalid %s: %s", err.Field, err.Reason)
}

// Options configures a [Loop].
//
// The zero value is not useful; start from [DefaultOptions] and override
// individual fields. Rand, Clock and Scheduler may be left nil, in which case
// the global random source, [SystemClock] and a [TickerScheduler] are used.
type Options struct {
	// Number of control points on the blob's outline. Must be at least 3.
	PointCount int `yaml:"point_count"`
	// Maximum deviation of a control point's radius from the nominal radius
	// of 1. Radii are additionally clamped to [MinRadius, MaxRadius].
	Jitter float64 `yaml:"jitter"`
	// Time it takes to morph from one shape to the next.
	MorphDuration time.Duration `yaml:"morph_duration"`
	// Time it takes to complete one full turn.
	RotationPeriod time.Duration `yaml:"rotation_period"`
	// Cadence requested from the scheduler.
	TickInterval time.Duration `yaml:"tick_interval"`
	// Maximum number of fractional digits in published paths. A value of 0
	// chooses the shortest exact representation.
	Precision int `yaml:"precision"`

	Rand      RandomSource `yaml:"-"`
	Clock     Clock        `yaml:"-"`
	Scheduler Scheduler    `yaml:"-"`
}

// DefaultOptions returns the options used by the stock loading indicator.
func DefaultOptions() Options {
	return Options{
		PointCount:     8,
		Jitter:         0.2,
		MorphDuration:  2 * time.Second,
		RotationPeriod: 4 * time.Second,
		TickInterval:   16 * time.Millisecond,
		Precision:      2,
	}
}

// Validate reports the first invalid field as a *[ConfigError].
func (opts Options) Validate() error {
	switch {
	case opts.PointCount < 3:
		return &ConfigError{"point count", fmt.Sprintf("need at least 3 points, got %d", opts.PointCount)}
	case !validJitter(opts.Jitter):
		return jitterError(opts.Jitter)
	case opts.MorphDuration <= 0:
		return &ConfigError{"morph duration", fmt.Sprintf("must be positive, got %s", opts.MorphDuration)}
	case opts.RotationPeriod <= 0:
		return &ConfigError{"rotation period", fmt.Sprintf("must be positive, got %s", opts.RotationPeriod)}
	case opts.TickInterval <= 0:
		return &ConfigError{"tick interval", fmt.Sprintf("must be positive, got %s", opts.TickInterval)}
	case opts.Precision < 0:
		return &ConfigError{"precision", fmt.Sprintf("must not be negative, got %d", opts.Precision)}
	}
	return nil
}

// validJitter reports whether j is finite and not negative. NaN fails the
// comparison.
func validJitter(j float64) bool {
	return j >= 0 && !math.IsInf(j, 1)
}

func jitterError(j float64) *ConfigError {
	return &ConfigError{"jitter", fmt.Sprintf("must be finite and not negative, got %g", j)}
}

// LoadOptions reads YAML-encoded options from r. Keys that are absent keep
// their value from [DefaultOptions]. Durations use Go's duration syntax, for
// example "1500ms".
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	b, err := io.ReadAll(r)
	if err != nil {
		return Options{}, err
	}
	if err := yaml.UnmarshalStrict(b, &opts); err != nil {
		return Options{}, fmt.Errorf("blob: couldn't decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
