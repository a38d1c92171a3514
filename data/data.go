// Package data contains the interface for line segments given as
// x, y, u, v quadruples and a slice implementation.
package data

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns the segment from (x,y) to (u,v).
	XYUV(int) (x, y, u, v float64)
}

// XYUVs implements the XYUVer interface.
type XYUVs []struct{ X, Y, U, V float64 }

var _ XYUVer = XYUVs(nil)

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }

// Append adds the segment from (x,y) to (u,v).
func (d *XYUVs) Append(x, y, u, v float64) {
	*d = append(*d, struct{ X, Y, U, V float64 }{x, y, u, v})
}
