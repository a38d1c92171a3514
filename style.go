package linegraph

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Graph is drawn.
type Style struct {
	Background color.Color

	Axis draw.LineStyle

	Tick struct {
		draw.LineStyle
		XLabel draw.TextStyle
		YLabel draw.TextStyle
		Pad    vg.Length // Gap between tick and label.
	}

	Series struct {
		LineWidth vg.Length
		Dashes    []vg.Length
		Marker    draw.GlyphStyle // Color is taken from the series.
	}
}

// DefaultStyle returns the style of the classic line graph: thick black
// axes, thin ticks, small circular markers.
// The baseFontSize is the font size of the tick labels.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	labelFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Axis.Color = color.Black
	s.Axis.Width = vg.Length(2.5)

	s.Tick.Color = color.Gray16{0x1111}
	s.Tick.Width = vg.Length(1)
	s.Tick.Pad = scale(baseFontSize, 0.25)

	s.Tick.XLabel.Color = color.Black
	s.Tick.XLabel.Font = labelFont
	s.Tick.XLabel.XAlign = draw.XCenter
	s.Tick.XLabel.YAlign = draw.YTop

	s.Tick.YLabel.Color = color.Black
	s.Tick.YLabel.Font = labelFont
	s.Tick.YLabel.XAlign = draw.XRight
	s.Tick.YLabel.YAlign = draw.YCenter

	s.Series.LineWidth = vg.Length(1)
	s.Series.Marker.Radius = vg.Length(2)
	s.Series.Marker.Shape = draw.CircleGlyph{}

	return s
}
