package linegraph

import (
	"fmt"
	"math"
)

// Point is a data space coordinate pair.
type Point struct {
	X, Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Segment is the straight line from P to Q.
type Segment struct {
	P, Q Point
}

// Rect is a closed axis-parallel rectangle in data space.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside or on the border of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// edges returns the top, bottom, left and right border of r.
func (r Rect) edges() [4]Segment {
	tl, tr := Point{r.Min.X, r.Max.Y}, r.Max
	bl, br := r.Min, Point{r.Max.X, r.Min.Y}
	return [4]Segment{
		{tl, tr},
		{bl, br},
		{bl, tl},
		{br, tr},
	}
}

// Intersect returns the crossing point of the segments s and t.
// Parallel (and collinear) segments and segments whose lines cross
// outside of either segment do not intersect.
func Intersect(s, t Segment) (Point, bool) {
	x1, y1, x2, y2 := s.P.X, s.P.Y, s.Q.X, s.Q.Y
	x3, y3, x4, y4 := t.P.X, t.P.Y, t.Q.X, t.Q.Y

	n := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if n == 0 {
		return Point{}, false
	}
	u := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / n
	v := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / n
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return Point{}, false
	}
	return Point{x1 + u*(x2-x1), y1 + u*(y2-y1)}, true
}

// Clip restricts the segment p-q to the viewport view.
// A segment completely inside view is returned unchanged. An endpoint
// outside of view is replaced by the nearest crossing of the segment
// with the border of view. If an outside endpoint cannot be resolved
// the segment does not cross view and Clip reports false.
func Clip(p, q Point, view Rect) (Segment, bool) {
	pIn, qIn := view.Contains(p), view.Contains(q)
	if pIn && qIn {
		return Segment{p, q}, true
	}

	var hits []Point
	seg := Segment{p, q}
	for _, edge := range view.edges() {
		if x, ok := Intersect(seg, edge); ok {
			hits = append(hits, x)
		}
	}

	var ok bool
	if !pIn {
		if p, ok = nearest(p, hits); !ok {
			return Segment{}, false
		}
	}
	if !qIn {
		if q, ok = nearest(q, hits); !ok {
			return Segment{}, false
		}
	}
	return Segment{p, q}, true
}

// nearest returns the point in cands closest to p.
func nearest(p Point, cands []Point) (Point, bool) {
	best, dist := Point{}, math.Inf(1)
	for _, c := range cands {
		if d := math.Hypot(c.X-p.X, c.Y-p.Y); d < dist {
			best, dist = c, d
		}
	}
	return best, !math.IsInf(dist, 1)
}
