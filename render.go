package linegraph

import (
	"strings"

	"github.com/vdobler/linegraph/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// render builds the scene of g from scratch.
func (g *Graph) render() *Scene {
	m := g.mapper
	sty := g.style
	scene := &Scene{
		Background: sty.Background,
		segments:   make(map[SeriesID]data.XYUVs),
	}
	add := func(p Primitive) { scene.Primitives = append(scene.Primitives, p) }

	// The axes.
	origin := vg.Point{X: vg.Length(m.OriginX), Y: vg.Length(m.OriginY)}
	add(Line{
		From:   origin,
		To:     vg.Point{X: origin.X, Y: origin.Y - vg.Length(m.Y.Length)},
		Style:  sty.Axis,
		Series: NoSeries,
	})
	add(Line{
		From:   origin,
		To:     vg.Point{X: origin.X + vg.Length(m.X.Length), Y: origin.Y},
		Style:  sty.Axis,
		Series: NoSeries,
	})

	if g.marking != nil {
		g.renderTicks(add)
	}

	for i, s := range g.store.series {
		id := SeriesID(i)
		g.renderSeries(id, s, add, scene)
	}

	return scene
}

func (g *Graph) renderTicks(add func(Primitive)) {
	m, mk := g.mapper, g.marking
	sty := g.style
	length := mk.TickLength

	// Marking was validated in SetMarking, errors cannot happen here.
	xt := mk.XTicker()
	for _, tick := range xt.Ticks(m.X.Start, m.X.End) {
		x := vg.Length(m.ToScreenX(tick.Value))
		y0 := vg.Length(m.OriginY)
		add(Line{
			From:   vg.Point{X: x, Y: y0},
			To:     vg.Point{X: x, Y: y0 + length},
			Style:  sty.Tick.LineStyle,
			Series: NoSeries,
		})
		ts := labelStyle(sty.Tick.XLabel, mk.Font)
		at := vg.Point{X: x, Y: y0 + length + sty.Tick.Pad}
		w, h := textSize(ts, tick.Label)
		add(Label{
			At:    at,
			Text:  tick.Label,
			Style: ts,
			Box: vg.Rectangle{
				Min: vg.Point{X: at.X - w/2, Y: at.Y},
				Max: vg.Point{X: at.X + w/2, Y: at.Y + h},
			},
		})
	}

	yt := mk.YTicker()
	for _, tick := range yt.Ticks(m.Y.Start, m.Y.End) {
		y := vg.Length(m.ToScreenY(tick.Value))
		x0 := vg.Length(m.OriginX)
		add(Line{
			From:   vg.Point{X: x0 - length, Y: y},
			To:     vg.Point{X: x0, Y: y},
			Style:  sty.Tick.LineStyle,
			Series: NoSeries,
		})
		ts := labelStyle(sty.Tick.YLabel, mk.Font)
		at := vg.Point{X: x0 - length - sty.Tick.Pad, Y: y}
		w, h := textSize(ts, tick.Label)
		add(Label{
			At:    at,
			Text:  tick.Label,
			Style: ts,
			Box: vg.Rectangle{
				Min: vg.Point{X: at.X - w, Y: at.Y - h/2},
				Max: vg.Point{X: at.X, Y: at.Y + h/2},
			},
		})
	}
}

// renderSeries adds the clipped lines and the in-range markers of s.
// Every adjacent pair is clipped anew as range changes may re-expose
// segments which were invisible before.
func (g *Graph) renderSeries(id SeriesID, s *Series, add func(Primitive), scene *Scene) {
	m := g.mapper
	view := m.Viewport()

	line := draw.LineStyle{
		Color:  s.Color,
		Width:  g.style.Series.LineWidth,
		Dashes: g.style.Series.Dashes,
	}
	var segs data.XYUVs
	for i := 1; i < len(s.points); i++ {
		seg, ok := Clip(s.points[i-1], s.points[i], view)
		if !ok {
			continue
		}
		segs.Append(seg.P.X, seg.P.Y, seg.Q.X, seg.Q.Y)
		add(Line{
			From:   m.ToScreen(seg.P),
			To:     m.ToScreen(seg.Q),
			Style:  line,
			Series: id,
		})
	}
	scene.segments[id] = segs

	glyph := g.style.Series.Marker
	glyph.Color = s.Color
	for i, p := range s.points {
		if !m.InRangeXY(p.X, p.Y) {
			continue
		}
		add(Marker{
			At:      m.ToScreen(p),
			Style:   glyph,
			Series:  id,
			Index:   i,
			Data:    p,
			Tooltip: g.tooltip(s, p),
		})
	}
}

// tooltip returns the text shown for p. With a marking the coordinates
// are formatted like the tick labels, otherwise as by Point.String.
func (g *Graph) tooltip(s *Series, p Point) string {
	text := p.String()
	if g.marking != nil {
		x := strings.TrimSpace(g.marking.XTicker().Label(p.X))
		y := strings.TrimSpace(g.marking.YTicker().Label(p.Y))
		text = "(" + x + ", " + y + ")"
	}
	if s.Name == "" {
		return text
	}
	return s.Name + " " + text
}

// labelStyle returns ts with font replaced by f unless f is the zero Font.
func labelStyle(ts draw.TextStyle, f vg.Font) draw.TextStyle {
	if f != (vg.Font{}) {
		ts.Font = f
	}
	return ts
}

// textSize measures text set in the font of ts.
func textSize(ts draw.TextStyle, text string) (w, h vg.Length) {
	font := ts.Font
	return font.Width(text), font.Extents().Height
}
