package linegraph

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
)

// SeriesID identifies a series of a Graph. IDs are handed out in creation
// order starting at 0.
type SeriesID int

// Series is one colored polyline. Points are kept in append order; segment
// i connects point i-1 with point i.
type Series struct {
	Name  string
	Color color.Color

	points []Point
}

var _ plotter.XYer = (*Series)(nil)

// Len implements plotter.XYer.
func (s *Series) Len() int { return len(s.points) }

// XY implements plotter.XYer.
func (s *Series) XY(i int) (x, y float64) { return s.points[i].X, s.points[i].Y }

// Points returns a copy of the points of s.
func (s *Series) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s *Series) append(p Point) { s.points = append(s.points, p) }

// ----------------------------------------------------------------------------
// Store

// store is the append-only collection of series of a graph.
type store struct {
	series []*Series
}

func (st *store) create(name string, col color.Color, pts []Point) SeriesID {
	s := &Series{Name: name, Color: col, points: append([]Point(nil), pts...)}
	st.series = append(st.series, s)
	return SeriesID(len(st.series) - 1)
}

func (st *store) get(id SeriesID) (*Series, error) {
	if id < 0 || int(id) >= len(st.series) {
		return nil, &UnknownSeriesError{ID: id}
	}
	return st.series[id], nil
}

// dataRange returns the range covered by all points of all series.
func (st *store) dataRange() (xr, yr Interval) {
	xr, yr = unsetInterval(), unsetInterval()
	for _, s := range st.series {
		if s.Len() == 0 {
			continue
		}
		xmin, xmax, ymin, ymax := plotter.XYRange(s)
		xr.Update(xmin, xmax)
		yr.Update(ymin, ymax)
	}
	return xr, yr
}

// pointFromCoords validates a raw coordinate pair.
func pointFromCoords(coords []float64) (Point, error) {
	if len(coords) != 2 {
		return Point{}, &InvalidPointError{Coords: coords}
	}
	return checkPoint(Point{coords[0], coords[1]})
}

func checkPoint(p Point) (Point, error) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return Point{}, &InvalidPointError{Coords: []float64{p.X, p.Y}}
	}
	return p, nil
}
