package linegraph

// A Transformation bundles two functions Trans and Inverse which map
// between two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to.
// The intervals may be reversed, e.g. to map data y onto screen pixels
// which grow downward.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}
