package linegraph

import (
	"bytes"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

func TestTooltipAt(t *testing.T) {
	g, id := newTestGraph(t)
	scene := g.Scene()
	at := g.Mapper().ToScreen(Point{2, 4})

	m, ok := scene.TooltipAt(vg.Point{X: at.X + 1, Y: at.Y - 1}, 3)
	if !ok {
		t.Fatalf("no marker near %v", at)
	}
	if m.Series != id || m.Index != 2 || m.Data != (Point{2, 4}) {
		t.Errorf("got marker %+v, want point 2 of series %d", m, id)
	}
	if m.Tooltip != "(2, 4)" {
		t.Errorf("tooltip = %q, want %q", m.Tooltip, "(2, 4)")
	}

	if _, ok := scene.TooltipAt(vg.Point{X: 400, Y: 100}, 3); ok {
		t.Errorf("found a marker far away from all points")
	}
}

func TestNamedSeriesTooltip(t *testing.T) {
	g, _ := newTestGraph(t)
	id, err := g.AddNamedSeries("cubes", red, Point{2, 8})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range g.Scene().Markers() {
		if m.Series == id && m.Tooltip != "cubes (2, 8)" {
			t.Errorf("tooltip = %q, want %q", m.Tooltip, "cubes (2, 8)")
		}
	}
}

func TestTooltipUsesMarkingDigits(t *testing.T) {
	g, id := newTestGraph(t)
	err := g.SetMarking(&Marking{CountX: 6, CountY: 5, IntegerDigitsX: 2,
		FractionDigitsX: 1, IntegerDigitsY: 3, FractionDigitsY: 2, TickLength: 5})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range g.Scene().Markers() {
		if m.Series == id && m.Index == 2 && m.Tooltip != "(2.0, 4.00)" {
			t.Errorf("tooltip = %q, want %q", m.Tooltip, "(2.0, 4.00)")
		}
	}

	g.SetMarking(nil)
	for _, m := range g.Scene().Markers() {
		if m.Series == id && m.Index == 2 && m.Tooltip != "(2, 4)" {
			t.Errorf("tooltip without marking = %q, want %q", m.Tooltip, "(2, 4)")
		}
	}
}

func TestMarkerStyleFollowsSeries(t *testing.T) {
	g, id := newTestGraph(t)
	for _, m := range g.Scene().Markers() {
		if m.Series == id && m.Style.Color != red {
			t.Errorf("marker color = %v, want %v", m.Style.Color, red)
		}
	}
	for _, l := range g.Scene().SeriesLines(id) {
		if l.Style.Color != red {
			t.Errorf("line color = %v, want %v", l.Style.Color, red)
		}
	}
}

func TestBounds(t *testing.T) {
	l := Line{From: vg.Point{X: 10, Y: 20}, To: vg.Point{X: 5, Y: 2}}
	b := l.Bounds()
	if b.Min.X != 5 || b.Min.Y != 2 || b.Max.X != 10 || b.Max.Y != 20 {
		t.Errorf("Bounds() = %v", b)
	}

	g, _ := newTestGraph(t)
	g.SetMarking(&Marking{CountX: 2, CountY: 2, TickLength: 5})
	w, h := g.Extent()
	if w < 650 || h <= 355 {
		t.Errorf("Extent() = %gx%g, want at least 650x355", w, h)
	}
}

func TestDraw(t *testing.T) {
	g, id := newTestGraph(t)
	g.Append(id, 3, 8)
	g.SetMarking(&Marking{CountX: 6, CountY: 5, IntegerDigitsX: 2,
		IntegerDigitsY: 2, FractionDigitsY: 1, TickLength: 5})

	img := vgimg.New(700, 400)
	g.Scene().Draw(draw.New(img))
	var png bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&png); err != nil {
		t.Fatal(err)
	}
	if png.Len() == 0 {
		t.Errorf("empty PNG")
	}

	svg := vgsvg.New(700, 400)
	g.Scene().Draw(draw.New(svg))
	var out bytes.Buffer
	if _, err := svg.WriteTo(&out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<path", "> 40.0</text>", "> 25</text>"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("SVG lacks %q", want)
		}
	}
}
