package blob

import (
	"errors"
	"strings"
	"testing"

	"honnef.co/go/curve"
)

func TestPathSingle(t *testing.T) {
	segs := []curve.CubicBez{{
		P0: curve.Pt(10, 10),
		P1: curve.Pt(20, 20),
		P2: curve.Pt(30, 30),
		P3: curve.Pt(10, 10),
	}}
	got, err := Path(segs, PathOptions{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "M 10,10 C 20,20 30,30 10,10 Z", got)
}

func TestPathPrecision(t *testing.T) {
	segs := []curve.CubicBez{{
		P0: curve.Pt(50, 12.5),
		P1: curve.Pt(1.0/3, 2.0/3),
		P2: curve.Pt(49.999999, 0.004),
		P3: curve.Pt(50, 12.5),
	}}
	for _, tt := range []struct {
		prec int
		want string
	}{
		{2, "M 50,12.5 C 0.33,0.67 50,0 50,12.5 Z"},
		{4, "M 50,12.5 C 0.3333,0.6667 50,0.004 50,12.5 Z"},
		{0, "M 50,12.5 C 0.3333333333333333,0.6666666666666666 49.999999,0.004 50,12.5 Z"},
	} {
		got, err := Path(segs, PathOptions{MaxPrecision: tt.prec})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got)
	}
}

func TestPathEmpty(t *testing.T) {
	if _, err := Path(nil, PathOptions{}); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want %v", err, ErrEmptyPath)
	}
}

// checkPath verifies the externally observable structure of a blob path: a
// single leading move, n curves and a single trailing close, with the curve
// ending where the move started.
func checkPath(t *testing.T, path string, n int) {
	t.Helper()
	if !strings.HasPrefix(path, "M ") {
		t.Errorf("path doesn't start with a move: %q", path)
	}
	if !strings.HasSuffix(path, " Z") {
		t.Errorf("path doesn't end with a close: %q", path)
	}
	if got := strings.Count(path, "M"); got != 1 {
		t.Errorf("got %d move commands, want 1", got)
	}
	if got := strings.Count(path, "C"); got != n {
		t.Errorf("got %d curve commands, want %d", got, n)
	}
	if got := strings.Count(path, "Z"); got != 1 {
		t.Errorf("got %d close commands, want 1", got)
	}
	fields := strings.Fields(path)
	if len(fields) < 3 {
		t.Fatalf("path too short: %q", path)
	}
	if first, last := fields[1], fields[len(fields)-2]; first != last {
		t.Errorf("path starts at %s but ends at %s", first, last)
	}
}

func TestPathStructure(t *testing.T) {
	rng := seeded(11)
	for n := 3; n <= 12; n++ {
		for _, prec := range []int{0, 2} {
			path, err := Path(Smooth(Sample(n, 0.2, rng)), PathOptions{MaxPrecision: prec})
			if err != nil {
				t.Fatal(err)
			}
			checkPath(t, path, n)
		}
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(b), nil
}

func TestWritePathError(t *testing.T) {
	err := WritePath(&failingWriter{n: 3}, Smooth(Circle(3)), PathOptions{})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("got error %v, want disk full", err)
	}
}
