package linegraph

import (
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Mapper

// A Mapper converts data coordinates into screen pixels. The origin is
// the screen position of (X.Start, Y.Start), i.e. the bottom-left corner
// of the axes. Screen y grows downward while data y grows upward.
type Mapper struct {
	OriginX, OriginY float64
	X, Y             Axis
}

// NewMapper validates both axes and returns the mapper.
func NewMapper(originX, originY float64, x, y Axis) (Mapper, error) {
	var err error
	if x, err = NewAxis(x.Name, x.Start, x.End, x.Length); err != nil {
		return Mapper{}, err
	}
	if y, err = NewAxis(y.Name, y.Start, y.End, y.Length); err != nil {
		return Mapper{}, err
	}
	return Mapper{OriginX: originX, OriginY: originY, X: x, Y: y}, nil
}

// ToScreenX maps the data value x to a horizontal pixel position.
func (m Mapper) ToScreenX(x float64) float64 {
	return m.OriginX + m.X.Offset(x)
}

// ToScreenY maps the data value y to a vertical pixel position.
func (m Mapper) ToScreenY(y float64) float64 {
	return m.OriginY - m.Y.Offset(y)
}

// ToScreen maps the data point p to a screen point.
func (m Mapper) ToScreen(p Point) vg.Point {
	return vg.Point{X: vg.Length(m.ToScreenX(p.X)), Y: vg.Length(m.ToScreenY(p.Y))}
}

// ToData maps the screen point s back to data coordinates.
func (m Mapper) ToData(s vg.Point) Point {
	sx := Interval{m.OriginX, m.OriginX + m.X.Length}
	sy := Interval{m.OriginY, m.OriginY - m.Y.Length}
	return Point{
		X: LinearTrans.Inverse(m.X.Interval(), sx, float64(s.X)),
		Y: LinearTrans.Inverse(m.Y.Interval(), sy, float64(s.Y)),
	}
}

// InRangeXY reports whether (x,y) lies in the visible data range.
func (m Mapper) InRangeXY(x, y float64) bool {
	return m.X.Contains(x) && m.Y.Contains(y)
}

// Viewport is the visible data range.
func (m Mapper) Viewport() Rect {
	return Rect{
		Min: Point{m.X.Start, m.Y.Start},
		Max: Point{m.X.End, m.Y.End},
	}
}

// Frame is the rectangle of the axes in screen coordinates, Min being
// the top-left corner.
func (m Mapper) Frame() vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: vg.Length(m.OriginX), Y: vg.Length(m.OriginY - m.Y.Length)},
		Max: vg.Point{X: vg.Length(m.OriginX + m.X.Length), Y: vg.Length(m.OriginY)},
	}
}
