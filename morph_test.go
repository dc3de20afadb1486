package blob

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestEase(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	} {
		if got := Ease(tt.in); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Ease(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Ease(float64(i) / 100)
		if v < prev {
			t.Fatalf("Ease isn't monotonic at %v", float64(i)/100)
		}
		prev = v
	}
}

func TestNewMorphInvalid(t *testing.T) {
	for _, tt := range []struct {
		n        int
		jitter   float64
		duration time.Duration
		field    string
	}{
		{2, 0.2, time.Second, "point count"},
		{8, -0.1, time.Second, "jitter"},
		{8, math.NaN(), time.Second, "jitter"},
		{8, math.Inf(1), time.Second, "jitter"},
		{8, 0.2, 0, "morph duration"},
		{8, 0.2, -time.Second, "morph duration"},
	} {
		m, err := NewMorph(tt.n, tt.jitter, tt.duration, nil)
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("got error %v, want *ConfigError", err)
		}
		if cerr.Field != tt.field {
			t.Errorf("got field %q, want %q", cerr.Field, tt.field)
		}
		if m != nil {
			t.Errorf("got usable morph despite error")
		}
	}
}

func TestMorphStartsAtCurrent(t *testing.T) {
	m, err := NewMorph(8, 0.2, time.Second, seeded(1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, m.Current().Radii(), m.Interpolated().Radii())
	diff(t, m.Current().Radii(), m.Advance(0).Radii())
}

func TestMorphApproachesTarget(t *testing.T) {
	m, err := NewMorph(8, 0.2, time.Second, seeded(2))
	if err != nil {
		t.Fatal(err)
	}
	target := m.Target()
	got := m.Advance(time.Second - time.Millisecond)
	if m.Cycles() != 0 {
		t.Fatalf("morph completed early")
	}
	for i := range got.Len() {
		if d := math.Abs(got.At(i).Radius - target.At(i).Radius); d > 1e-5 {
			t.Errorf("radius %d is %v away from target", i, d)
		}
	}
}

func TestMorphSwap(t *testing.T) {
	const jitter = 0.2
	m, err := NewMorph(8, jitter, time.Second, seeded(3))
	if err != nil {
		t.Fatal(err)
	}
	oldTarget := m.Target()
	got := m.Advance(time.Second)

	if !m.Current().Equal(oldTarget) {
		t.Errorf("current isn't the former target")
	}
	if m.Target().Equal(oldTarget) {
		t.Errorf("no new target was sampled")
	}
	if m.Target().Len() != 8 {
		t.Errorf("new target has %d points, want 8", m.Target().Len())
	}
	for i, r := range m.Target().Radii() {
		if r < 1-jitter || r > 1+jitter {
			t.Errorf("new target radius %d = %v out of range", i, r)
		}
	}
	if m.Elapsed() != 0 {
		t.Errorf("got elapsed %v, want 0", m.Elapsed())
	}
	if m.Cycles() != 1 {
		t.Errorf("got %d cycles, want 1", m.Cycles())
	}
	// A fresh morph starts at its current shape.
	diff(t, oldTarget.Radii(), got.Radii())
}

func TestMorphDiscardsOvershoot(t *testing.T) {
	m, err := NewMorph(5, 0.2, time.Second, seeded(4))
	if err != nil {
		t.Fatal(err)
	}
	m.Advance(2500 * time.Millisecond)
	if m.Cycles() != 1 {
		t.Errorf("got %d cycles, want 1", m.Cycles())
	}
	if m.Elapsed() != 0 {
		t.Errorf("got elapsed %v, want 0", m.Elapsed())
	}
}

func TestMorphNegativeDelta(t *testing.T) {
	m, err := NewMorph(5, 0.2, time.Second, seeded(5))
	if err != nil {
		t.Fatal(err)
	}
	m.Advance(300 * time.Millisecond)
	before := m.Interpolated()
	after := m.Advance(-time.Hour)
	if m.Elapsed() != 300*time.Millisecond {
		t.Errorf("got elapsed %v, want 300ms", m.Elapsed())
	}
	if !before.Equal(after) {
		t.Errorf("negative delta changed the shape")
	}
}

func TestMorphScenario(t *testing.T) {
	m, err := NewMorph(8, 0.2, time.Second, seeded(6))
	if err != nil {
		t.Fatal(err)
	}
	current, target := m.Current(), m.Target()

	shape := m.Advance(500 * time.Millisecond)
	path, err := Path(Smooth(shape), PathOptions{MaxPrecision: 2})
	if err != nil {
		t.Fatal(err)
	}
	checkPath(t, path, 8)
	for i := range shape.Len() {
		lo := min(current.At(i).Radius, target.At(i).Radius)
		hi := max(current.At(i).Radius, target.At(i).Radius)
		if r := shape.At(i).Radius; r < lo || r > hi {
			t.Errorf("radius %d = %v not in [%v, %v]", i, r, lo, hi)
		}
	}
	// Halfway through, the cosine ease is exactly halfway too.
	for i := range shape.Len() {
		want := (current.At(i).Radius + target.At(i).Radius) / 2
		if math.Abs(shape.At(i).Radius-want) > 1e-12 {
			t.Errorf("radius %d = %v, want %v", i, shape.At(i).Radius, want)
		}
	}

	m.Advance(600 * time.Millisecond)
	if m.Cycles() != 1 {
		t.Fatalf("got %d cycles, want 1", m.Cycles())
	}
	if m.Target().Equal(target) {
		t.Errorf("target didn't change")
	}
	if !m.Current().Equal(target) {
		t.Errorf("current isn't the former target")
	}
	if m.Elapsed() > 100*time.Millisecond {
		t.Errorf("got elapsed %v, want at most 100ms", m.Elapsed())
	}
}
