package linegraph

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Axis

// Axis maps one data dimension onto a pixel extent.
// The scale factor is recomputed whenever the range or the length changes;
// use NewAxis, WithRange and WithLength to obtain valid axes.
type Axis struct {
	// Name is "x" or "y" and used in error messages only.
	Name string

	// Start and End delimit the visible data range. Start < End.
	Start, End float64

	// Length is the number of pixels the range is mapped onto.
	Length float64

	scale float64
}

// NewAxis returns an axis covering [start,end] on length pixels.
func NewAxis(name string, start, end, length float64) (Axis, error) {
	a := Axis{Name: name, Start: start, End: end, Length: length}
	if err := a.validate(); err != nil {
		return Axis{}, err
	}
	a.scale = a.Length / (a.End - a.Start)
	return a, nil
}

func (a Axis) validate() error {
	if !(a.Start < a.End) || math.IsInf(a.Start, 0) || math.IsInf(a.End, 0) ||
		!(a.Length > 0) {
		return &InvalidRangeError{Axis: a.Name, Start: a.Start, End: a.End, Length: a.Length}
	}
	return nil
}

// WithRange returns a copy of a covering [start,end].
func (a Axis) WithRange(start, end float64) (Axis, error) {
	return NewAxis(a.Name, start, end, a.Length)
}

// WithLength returns a copy of a mapped onto length pixels.
func (a Axis) WithLength(length float64) (Axis, error) {
	return NewAxis(a.Name, a.Start, a.End, length)
}

// Scale is the number of pixels per data unit.
func (a Axis) Scale() float64 { return a.scale }

// Offset returns the pixel distance of v from the start of a.
// Values outside the range yield offsets < 0 or > Length.
func (a Axis) Offset(v float64) float64 {
	return (v - a.Start) * a.scale
}

// Contains reports whether v lies in the closed range of a.
func (a Axis) Contains(v float64) bool {
	return v >= a.Start && v <= a.End
}

// Interval returns the data range of a.
func (a Axis) Interval() Interval {
	return Interval{a.Start, a.End}
}

func (a Axis) String() string {
	return fmt.Sprintf("%s=[%g:%g] on %gpx (%.4g px/unit)", a.Name, a.Start, a.End, a.Length, a.scale)
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether both edges of i and j agree. Two unset edges
// are equal.
func (i Interval) Equal(j Interval) bool {
	return sameEdge(i.Min, j.Min) && sameEdge(i.Max, j.Max)
}

func sameEdge(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Expand returns i widened on both sides by relative times its width
// plus absolute.
func (i Interval) Expand(relative, absolute float64) Interval {
	ext := relative*(i.Max-i.Min) + absolute
	return Interval{i.Min - ext, i.Max + ext}
}
