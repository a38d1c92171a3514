package linegraph

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is.
var (
	ErrInvalidRange     = errors.New("invalid axis range")
	ErrInvalidTickCount = errors.New("invalid tick count")
	ErrUnknownSeries    = errors.New("unknown series")
	ErrInvalidPoint     = errors.New("invalid point")
)

// InvalidRangeError reports an axis whose start is not below its end
// or whose pixel length is not positive.
type InvalidRangeError struct {
	Axis       string // "x" or "y"
	Start, End float64
	Length     float64
}

func (e *InvalidRangeError) Error() string {
	if e.Length <= 0 && e.Start < e.End {
		return fmt.Sprintf("invalid %s axis: length %g must be positive", e.Axis, e.Length)
	}
	return fmt.Sprintf("invalid %s axis range [%g:%g]", e.Axis, e.Start, e.End)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// InvalidTickCountError reports a tick count below two.
type InvalidTickCountError struct {
	Axis  string
	Count int
}

func (e *InvalidTickCountError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("invalid tick count %d: need at least 2", e.Count)
	}
	return fmt.Sprintf("invalid tick count %d on %s axis: need at least 2", e.Count, e.Axis)
}

func (e *InvalidTickCountError) Is(target error) bool { return target == ErrInvalidTickCount }

// UnknownSeriesError reports an operation on a series the graph does
// not own.
type UnknownSeriesError struct {
	ID SeriesID
}

func (e *UnknownSeriesError) Error() string {
	return fmt.Sprintf("unknown series %d", int(e.ID))
}

func (e *UnknownSeriesError) Is(target error) bool { return target == ErrUnknownSeries }

// InvalidPointError reports a malformed coordinate pair.
type InvalidPointError struct {
	Coords []float64
}

func (e *InvalidPointError) Error() string {
	if len(e.Coords) != 2 {
		return fmt.Sprintf("invalid point %v: want 2 coordinates, got %d", e.Coords, len(e.Coords))
	}
	return fmt.Sprintf("invalid point %v: coordinates must be finite", e.Coords)
}

func (e *InvalidPointError) Is(target error) bool { return target == ErrInvalidPoint }
