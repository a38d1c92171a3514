// Package linegraph draws line graphs which can be extended while they
// are displayed.
//
// A Graph has an x- and a y-axis, optional tick marks with fixed point
// labels (see Marking) and any number of series. A series is a colored
// polyline; points are appended in order and never removed.
//
// Rendering
//
// Graph.Scene returns the list of drawable primitives (lines, markers
// and tick labels) in screen coordinates. The scene is rebuilt from
// scratch after every mutation: all adjacent point pairs are clipped
// against the visible data range, so changing the range re-exposes
// segments which were hidden before. A Scene can be painted onto any
// gonum.org/v1/plot/vg/draw.Canvas, e.g. a PNG or SVG canvas.
//
// Concurrency
//
// A Graph must be owned by a single goroutine. Live runs that goroutine:
// other goroutines submit mutations which are applied in batches, each
// batch followed by one redraw.
package linegraph
