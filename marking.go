package linegraph

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Marking

// Marking configures the tick marks of both axes. Labels are formatted
// fixed point with a leading sign slot, padded to the integer digits and
// rounded to the fraction digits.
type Marking struct {
	CountX, CountY                   int // Number of ticks, at least 2.
	IntegerDigitsX, IntegerDigitsY   int
	FractionDigitsX, FractionDigitsY int

	// TickLength is the length of a tick line in pixels.
	TickLength vg.Length

	// Font is used for the labels. The zero Font selects the font of
	// the graph's Style.
	Font vg.Font
}

// Validate checks the tick counts and digit counts of m.
func (m *Marking) Validate() error {
	if m.CountX < 2 {
		return &InvalidTickCountError{Axis: "x", Count: m.CountX}
	}
	if m.CountY < 2 {
		return &InvalidTickCountError{Axis: "y", Count: m.CountY}
	}
	if m.IntegerDigitsX < 0 || m.IntegerDigitsY < 0 ||
		m.FractionDigitsX < 0 || m.FractionDigitsY < 0 {
		return fmt.Errorf("linegraph: negative digit count in marking %+v", *m)
	}
	return nil
}

// XTicker returns the ticker for the x axis.
func (m *Marking) XTicker() Evenly {
	return Evenly{Count: m.CountX, IntegerDigits: m.IntegerDigitsX, FractionDigits: m.FractionDigitsX}
}

// YTicker returns the ticker for the y axis.
func (m *Marking) YTicker() Evenly {
	return Evenly{Count: m.CountY, IntegerDigits: m.IntegerDigitsY, FractionDigits: m.FractionDigitsY}
}

// ----------------------------------------------------------------------------
// Evenly

// Evenly places Count labeled ticks evenly from min to max, both included.
type Evenly struct {
	Count          int
	IntegerDigits  int
	FractionDigits int
}

var _ plot.Ticker = Evenly{}

// Ticks implements plot.Ticker. It returns nil if e.Count is less than 2.
func (e Evenly) Ticks(min, max float64) []plot.Tick {
	values, err := TickValues(min, max, e.Count)
	if err != nil {
		return nil
	}
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: e.Label(v)}
	}
	return ticks
}

// Label formats v.
func (e Evenly) Label(v float64) string {
	return FormatLabel(v, e.IntegerDigits, e.FractionDigits)
}

// TickValues returns count values evenly spaced from start to end.
func TickValues(start, end float64, count int) ([]float64, error) {
	if count < 2 {
		return nil, &InvalidTickCountError{Count: count}
	}
	index := Interval{0, float64(count - 1)}
	span := Interval{start, end}
	values := make([]float64, count)
	for i := range values {
		values[i] = LinearTrans.Trans(index, span, float64(i))
	}
	return values, nil
}

// FormatLabel formats v in fixed point like the printf verb "% <i>.<f>f":
// a blank stands in for the plus sign and the result is padded to a
// width of integerDigits.
func FormatLabel(v float64, integerDigits, fractionDigits int) string {
	return fmt.Sprintf("% *.*f", integerDigits, fractionDigits, v)
}
