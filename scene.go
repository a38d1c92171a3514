package linegraph

import (
	"image/color"
	"math"

	"github.com/vdobler/linegraph/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NoSeries marks primitives which do not belong to a series, e.g. axes
// and ticks.
const NoSeries SeriesID = -1

// A Primitive is one drawable element of a Scene. Coordinates are screen
// coordinates: the origin is the top-left corner and y grows downward.
type Primitive interface {
	// Bounds returns the screen area covered by the primitive.
	Bounds() vg.Rectangle

	draw(c draw.Canvas, flip func(vg.Point) vg.Point)
}

// Line is a straight line from From to To.
type Line struct {
	From, To vg.Point
	Style    draw.LineStyle
	Series   SeriesID
}

func (l Line) Bounds() vg.Rectangle {
	return canonic(vg.Rectangle{Min: l.From, Max: l.To})
}

func (l Line) draw(c draw.Canvas, flip func(vg.Point) vg.Point) {
	from, to := flip(l.From), flip(l.To)
	c.StrokeLine2(l.Style, from.X, from.Y, to.X, to.Y)
}

// Marker is the glyph drawn at a data point.
type Marker struct {
	At      vg.Point
	Style   draw.GlyphStyle
	Series  SeriesID
	Index   int   // Index of the point in its series.
	Data    Point // The data coordinates of the point.
	Tooltip string
}

func (m Marker) Bounds() vg.Rectangle {
	r := m.Style.Radius
	return vg.Rectangle{
		Min: vg.Point{X: m.At.X - r, Y: m.At.Y - r},
		Max: vg.Point{X: m.At.X + r, Y: m.At.Y + r},
	}
}

func (m Marker) draw(c draw.Canvas, flip func(vg.Point) vg.Point) {
	c.DrawGlyph(m.Style, flip(m.At))
}

// Label is a tick label anchored at At with the alignment of its Style.
// Box is the area covered by the text as measured with the label font.
type Label struct {
	At    vg.Point
	Text  string
	Style draw.TextStyle
	Box   vg.Rectangle
}

func (l Label) Bounds() vg.Rectangle { return l.Box }

func (l Label) draw(c draw.Canvas, flip func(vg.Point) vg.Point) {
	c.FillText(l.Style, flip(l.At), l.Text)
}

// ----------------------------------------------------------------------------
// Scene

// Scene is the immutable list of primitives of one redraw in drawing
// order.
type Scene struct {
	// Background fills the whole canvas before any primitive is drawn
	// unless nil.
	Background color.Color

	Primitives []Primitive

	// segments holds the clipped data space segments per series.
	segments map[SeriesID]data.XYUVs
}

// Lines returns all lines of s.
func (s *Scene) Lines() []Line {
	var lines []Line
	for _, p := range s.Primitives {
		if l, ok := p.(Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// SeriesLines returns the lines belonging to series id.
func (s *Scene) SeriesLines(id SeriesID) []Line {
	var lines []Line
	for _, l := range s.Lines() {
		if l.Series == id {
			lines = append(lines, l)
		}
	}
	return lines
}

// Markers returns all markers of s.
func (s *Scene) Markers() []Marker {
	var markers []Marker
	for _, p := range s.Primitives {
		if m, ok := p.(Marker); ok {
			markers = append(markers, m)
		}
	}
	return markers
}

// Labels returns all tick labels of s.
func (s *Scene) Labels() []Label {
	var labels []Label
	for _, p := range s.Primitives {
		if l, ok := p.(Label); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// Segments returns the visible part of the polyline of series id in
// data coordinates.
func (s *Scene) Segments(id SeriesID) data.XYUVs {
	return s.segments[id]
}

// TooltipAt returns the marker closest to the screen point pt if its
// center lies within radius.
func (s *Scene) TooltipAt(pt vg.Point, radius vg.Length) (Marker, bool) {
	var best Marker
	dist := math.Inf(1)
	for _, m := range s.Markers() {
		d := math.Hypot(float64(m.At.X-pt.X), float64(m.At.Y-pt.Y))
		if d <= float64(radius) && d < dist {
			best, dist = m, d
		}
	}
	return best, !math.IsInf(dist, 1)
}

// Draw paints s onto c. The screen origin is mapped to the top-left
// corner of c.
func (s *Scene) Draw(c draw.Canvas) {
	flip := func(p vg.Point) vg.Point {
		return vg.Point{X: c.Min.X + p.X, Y: c.Max.Y - p.Y}
	}
	if s.Background != nil {
		c.SetColor(s.Background)
		c.Fill(c.Rectangle.Path())
	}
	for _, p := range s.Primitives {
		p.draw(c, flip)
	}
}

// canonic returns r with its Min point having the smaller coordinates.
func canonic(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}
