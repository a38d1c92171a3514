package linegraph

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalEqualTests = []struct {
	i, j Interval
	want bool
}{
	{Interval{3, 6}, Interval{3, 6}, true},
	{Interval{3, 6}, Interval{3, 7}, false},
	{Interval{2, 6}, Interval{3, 6}, false},
	{Interval{nan, nan}, Interval{nan, nan}, true},
	{Interval{nan, 6}, Interval{nan, 6}, true},
	{Interval{nan, 6}, Interval{nan, 7}, false},
	{Interval{nan, 6}, Interval{nan, nan}, false},
	{Interval{3, nan}, Interval{3, 6}, false},
}

func TestIntervalEqual(t *testing.T) {
	for i, tc := range intervalEqualTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.i.Equal(tc.j); got != tc.want {
				t.Errorf("%v.Equal(%v) = %t, want %t", tc.i, tc.j, got, tc.want)
			}
			if got := tc.j.Equal(tc.i); got != tc.want {
				t.Errorf("%v.Equal(%v) = %t, want %t", tc.j, tc.i, got, tc.want)
			}
		})
	}
}

var newAxisTests = []struct {
	start, end, length float64
	ok                 bool
	scale              float64
}{
	{0, 25, 600, true, 24},
	{0, 40, 300, true, 7.5},
	{-10, 10, 100, true, 5},
	{5, 5, 100, false, 0},
	{10, 5, 100, false, 0},
	{0, 10, 0, false, 0},
	{0, 10, -3, false, 0},
	{nan, 10, 100, false, 0},
	{0, math.Inf(1), 100, false, 0},
}

func TestNewAxis(t *testing.T) {
	for i, tc := range newAxisTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, err := NewAxis("x", tc.start, tc.end, tc.length)
			if !tc.ok {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("NewAxis(%g,%g,%g) err = %v, want invalid range",
						tc.start, tc.end, tc.length, err)
				}
				var ire *InvalidRangeError
				if !errors.As(err, &ire) || ire.Axis != "x" {
					t.Errorf("got %#v, want *InvalidRangeError on x", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !equal64(a.Scale(), tc.scale) {
				t.Errorf("scale = %g, want %g", a.Scale(), tc.scale)
			}
		})
	}
}

func TestAxisScaleRecomputed(t *testing.T) {
	a, err := NewAxis("y", 0, 40, 300)
	if err != nil {
		t.Fatal(err)
	}
	b, err := a.WithRange(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if b.Scale() != 30 {
		t.Errorf("scale after range change = %g, want 30", b.Scale())
	}
	c, err := b.WithLength(600)
	if err != nil {
		t.Fatal(err)
	}
	if c.Scale() != 60 {
		t.Errorf("scale after resize = %g, want 60", c.Scale())
	}
	if _, err := a.WithRange(3, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("degenerate range: err = %v", err)
	}
	if a.Scale() != 7.5 {
		t.Errorf("original axis modified: scale = %g", a.Scale())
	}
}

func TestMapperEnds(t *testing.T) {
	for i, r := range []Interval{{0, 25}, {-3.5, 1e-3}, {1e6, 1e6 + 0.1}, {-100, -20}} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, err := NewAxis("x", r.Min, r.Max, 600)
			if err != nil {
				t.Fatal(err)
			}
			y, err := NewAxis("y", r.Min, r.Max, 300)
			if err != nil {
				t.Fatal(err)
			}
			m, err := NewMapper(50, 350, x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.ToScreenX(r.Min); !close64(got, 50) {
				t.Errorf("ToScreenX(start) = %g, want 50", got)
			}
			if got := m.ToScreenX(r.Max); !close64(got, 650) {
				t.Errorf("ToScreenX(end) = %g, want 650", got)
			}
			if got := m.ToScreenY(r.Min); !close64(got, 350) {
				t.Errorf("ToScreenY(start) = %g, want 350", got)
			}
			if got := m.ToScreenY(r.Max); !close64(got, 50) {
				t.Errorf("ToScreenY(end) = %g, want 50", got)
			}
		})
	}
}

func TestMapperRoundTrip(t *testing.T) {
	x, _ := NewAxis("x", 0, 25, 600)
	y, _ := NewAxis("y", 0, 40, 300)
	m, err := NewMapper(50, 350, x, y)
	if err != nil {
		t.Fatal(err)
	}
	p := Point{2, 4}
	s := m.ToScreen(p)
	if s.X != 98 || s.Y != 320 {
		t.Errorf("ToScreen(%v) = %v, want (98,320)", p, s)
	}
	if back := m.ToData(s); !equal64(back.X, p.X) || !equal64(back.Y, p.Y) {
		t.Errorf("ToData(%v) = %v, want %v", s, back, p)
	}
}

func TestNewMapperRejectsBadAxis(t *testing.T) {
	x, _ := NewAxis("x", 0, 25, 600)
	if _, err := NewMapper(0, 0, x, Axis{Name: "y", Start: 1, End: 1, Length: 10}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want invalid range", err)
	}
}

// close64 reports whether a and b agree up to a tiny relative error.
func close64(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
