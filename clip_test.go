package linegraph

import (
	"strconv"
	"testing"
)

var view = Rect{Min: Point{0, 0}, Max: Point{10, 10}}

var clipTests = []struct {
	p, q    Point
	visible bool
	want    Segment
}{
	// Fully inside, including points on the border.
	{Point{1, 1}, Point{9, 5}, true, Segment{Point{1, 1}, Point{9, 5}}},
	{Point{0, 0}, Point{10, 10}, true, Segment{Point{0, 0}, Point{10, 10}}},

	// One endpoint outside.
	{Point{5, 5}, Point{5, 20}, true, Segment{Point{5, 5}, Point{5, 10}}},
	{Point{5, 5}, Point{-5, 5}, true, Segment{Point{5, 5}, Point{0, 5}}},
	{Point{3, 8}, Point{4, 50}, true, Segment{Point{3, 8}, Point{3 + 2.0/42, 10}}},
	{Point{15, 5}, Point{5, 5}, true, Segment{Point{10, 5}, Point{5, 5}}},

	// Both outside, crossing the viewport.
	{Point{-5, 5}, Point{15, 5}, true, Segment{Point{0, 5}, Point{10, 5}}},
	{Point{5, -5}, Point{5, 15}, true, Segment{Point{5, 0}, Point{5, 10}}},
	{Point{-10, -5}, Point{20, 10}, true, Segment{Point{0, 0}, Point{10, 5}}},

	// Both outside, missing the viewport.
	{Point{-5, -5}, Point{-1, 20}, false, Segment{}},
	{Point{11, 11}, Point{20, 20}, false, Segment{}},
	{Point{-5, 12}, Point{15, 11}, false, Segment{}},
	{Point{20, 5}, Point{30, 5}, false, Segment{}},
}

func TestClip(t *testing.T) {
	for i, tc := range clipTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, ok := Clip(tc.p, tc.q, view)
			if ok != tc.visible {
				t.Fatalf("Clip(%v,%v) visible = %t, want %t", tc.p, tc.q, ok, tc.visible)
			}
			if !ok {
				return
			}
			if !samePoint(got.P, tc.want.P) || !samePoint(got.Q, tc.want.Q) {
				t.Errorf("Clip(%v,%v) = %v, want %v", tc.p, tc.q, got, tc.want)
			}
		})
	}
}

func TestClipInsideUnchanged(t *testing.T) {
	p, q := Point{0.1234, 9.876}, Point{7.25, 3.5}
	got, ok := Clip(p, q, view)
	if !ok || got.P != p || got.Q != q {
		t.Errorf("Clip(%v,%v) = %v, %t; want unchanged", p, q, got, ok)
	}
}

func TestIntersect(t *testing.T) {
	s := Segment{Point{0, 0}, Point{10, 10}}
	if x, ok := Intersect(s, Segment{Point{0, 10}, Point{10, 0}}); !ok || !samePoint(x, Point{5, 5}) {
		t.Errorf("crossing diagonals: got %v, %t", x, ok)
	}
	if _, ok := Intersect(s, Segment{Point{1, 0}, Point{11, 10}}); ok {
		t.Errorf("parallel segments intersect")
	}
	if _, ok := Intersect(s, Segment{Point{20, 0}, Point{0, 20}}); !ok {
		t.Errorf("segments crossing at (10,10) do not intersect")
	}
	if _, ok := Intersect(s, Segment{Point{30, 0}, Point{0, 30}}); ok {
		t.Errorf("lines crossing outside the segments intersect")
	}
}

func samePoint(a, b Point) bool {
	return close64(a.X, b.X) && close64(a.Y, b.Y)
}
