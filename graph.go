package linegraph

import (
	"image/color"
	"math"
)

// ----------------------------------------------------------------------------
// Graph

// A Graph is a line graph with two axes, optional tick marks and any
// number of series. Every mutation invalidates the current Scene; the
// next call to Scene rebuilds it from scratch.
//
// A Graph is not safe for concurrent use. Use Live to mutate a graph
// from other goroutines.
type Graph struct {
	mapper  Mapper
	store   store
	marking *Marking
	style   Style

	scene *Scene
}

// New creates a graph whose axes start at the screen position (x,y),
// the bottom-left corner, and extend width pixels to the right and
// height pixels upward. The visible data range is [xStart,xEnd] x
// [yStart,yEnd].
func New(x, y, width, height, xStart, xEnd, yStart, yEnd float64) (*Graph, error) {
	xa, err := NewAxis("x", xStart, xEnd, width)
	if err != nil {
		return nil, err
	}
	ya, err := NewAxis("y", yStart, yEnd, height)
	if err != nil {
		return nil, err
	}
	return &Graph{
		mapper: Mapper{OriginX: x, OriginY: y, X: xa, Y: ya},
		style:  DefaultStyle(10),
	}, nil
}

func (g *Graph) invalidate() { g.scene = nil }

// Mapper returns the current coordinate mapping of g.
func (g *Graph) Mapper() Mapper { return g.mapper }

// Style returns the current style of g.
func (g *Graph) Style() Style { return g.style }

// SetStyle replaces the style of g.
func (g *Graph) SetStyle(s Style) {
	g.style = s
	g.invalidate()
}

// SetXRange changes the visible x range to [start,end].
func (g *Graph) SetXRange(start, end float64) error {
	return g.SetRange(start, end, g.mapper.Y.Start, g.mapper.Y.End)
}

// SetYRange changes the visible y range to [start,end].
func (g *Graph) SetYRange(start, end float64) error {
	return g.SetRange(g.mapper.X.Start, g.mapper.X.End, start, end)
}

// SetRange changes both visible ranges. Either both ranges are changed
// or, on error, none. Setting the current ranges keeps the scene.
func (g *Graph) SetRange(xStart, xEnd, yStart, yEnd float64) error {
	xa, err := g.mapper.X.WithRange(xStart, xEnd)
	if err != nil {
		return err
	}
	ya, err := g.mapper.Y.WithRange(yStart, yEnd)
	if err != nil {
		return err
	}
	if xa.Interval().Equal(g.mapper.X.Interval()) && ya.Interval().Equal(g.mapper.Y.Interval()) {
		return nil
	}
	g.mapper.X, g.mapper.Y = xa, ya
	g.invalidate()
	return nil
}

// Resize changes the pixel extent of the axes.
func (g *Graph) Resize(width, height float64) error {
	xa, err := g.mapper.X.WithLength(width)
	if err != nil {
		return err
	}
	ya, err := g.mapper.Y.WithLength(height)
	if err != nil {
		return err
	}
	g.mapper.X, g.mapper.Y = xa, ya
	g.invalidate()
	return nil
}

// Move places the origin of the axes at the screen position (x,y).
func (g *Graph) Move(x, y float64) {
	g.mapper.OriginX, g.mapper.OriginY = x, y
	g.invalidate()
}

// Fit sets both ranges to the range covered by all points, widened on
// each side by relative times its width. A dimension where all points
// share the same value is widened by 1 on each side. Fit does nothing
// if there are no points.
func (g *Graph) Fit(relative float64) error {
	xr, yr := g.store.dataRange()
	if !xr.IsSet() || !yr.IsSet() {
		return nil
	}
	fit := func(i Interval) Interval {
		if i.Min == i.Max {
			return i.Expand(0, 1)
		}
		return i.Expand(relative, 0)
	}
	xr, yr = fit(xr), fit(yr)
	return g.SetRange(xr.Min, xr.Max, yr.Min, yr.Max)
}

// SetMarking enables tick marks as described by m. A nil m removes all
// tick marks.
func (g *Graph) SetMarking(m *Marking) error {
	if m == nil {
		g.marking = nil
		g.invalidate()
		return nil
	}
	if err := m.Validate(); err != nil {
		return err
	}
	cpy := *m
	g.marking = &cpy
	g.invalidate()
	return nil
}

// Marking returns a copy of the current marking or nil.
func (g *Graph) Marking() *Marking {
	if g.marking == nil {
		return nil
	}
	cpy := *g.marking
	return &cpy
}

// ----------------------------------------------------------------------------
// Series operations

// AddSeries adds a new series drawn in col starting with the given
// points.
func (g *Graph) AddSeries(col color.Color, pts ...Point) (SeriesID, error) {
	return g.AddNamedSeries("", col, pts...)
}

// AddNamedSeries is like AddSeries but names the series. The name shows
// up in the tooltips of the series' markers.
func (g *Graph) AddNamedSeries(name string, col color.Color, pts ...Point) (SeriesID, error) {
	for _, p := range pts {
		if _, err := checkPoint(p); err != nil {
			return NoSeries, err
		}
	}
	id := g.store.create(name, col, pts)
	g.invalidate()
	return id, nil
}

// Append adds the point (x,y) to the end of series id.
func (g *Graph) Append(id SeriesID, x, y float64) error {
	return g.AppendPoint(id, Point{x, y})
}

// AppendPoint adds p to the end of series id.
func (g *Graph) AppendPoint(id SeriesID, p Point) error {
	s, err := g.store.get(id)
	if err != nil {
		return err
	}
	if p, err = checkPoint(p); err != nil {
		return err
	}
	s.append(p)
	g.invalidate()
	return nil
}

// AppendCoords adds the coordinate pair coords to series id.
// Coords must have exactly two finite elements.
func (g *Graph) AppendCoords(id SeriesID, coords []float64) error {
	if _, err := g.store.get(id); err != nil {
		return err
	}
	p, err := pointFromCoords(coords)
	if err != nil {
		return err
	}
	return g.AppendPoint(id, p)
}

// Points returns a copy of the points of series id in append order.
func (g *Graph) Points(id SeriesID) ([]Point, error) {
	s, err := g.store.get(id)
	if err != nil {
		return nil, err
	}
	return s.Points(), nil
}

// Series returns the series id. The returned series must not be
// modified.
func (g *Graph) Series(id SeriesID) (*Series, error) {
	return g.store.get(id)
}

// NumSeries returns the number of series in g.
func (g *Graph) NumSeries() int { return len(g.store.series) }

// ----------------------------------------------------------------------------
// Rendering

// Scene returns the drawable primitives of g. The scene is rebuilt only
// after g was mutated.
func (g *Graph) Scene() *Scene {
	if g.scene == nil {
		g.scene = g.render()
	}
	return g.scene
}

// Extent returns the screen size needed to show the whole graph
// including tick labels, measured from the screen origin.
func (g *Graph) Extent() (width, height float64) {
	width = g.mapper.OriginX + g.mapper.X.Length
	height = g.mapper.OriginY
	for _, p := range g.Scene().Primitives {
		b := p.Bounds()
		width = math.Max(width, float64(b.Max.X))
		height = math.Max(height, float64(b.Max.Y))
	}
	return width, height
}
