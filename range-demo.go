//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/vdobler/linegraph"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Draws the graph before and after shrinking the y range: the last
// segment leaves the viewport through the top border.
func main() {
	g, err := linegraph.New(50, 350, 600, 300, 0, 25, 0, 40)
	if err != nil {
		panic(err)
	}
	red := color.RGBA{0xff, 0, 0, 0xff}
	id, _ := g.AddNamedSeries("squares", red,
		linegraph.Point{X: 0, Y: 0},
		linegraph.Point{X: 1, Y: 1},
		linegraph.Point{X: 2, Y: 4},
		linegraph.Point{X: 3, Y: 8},
	)
	g.SetMarking(&linegraph.Marking{
		CountX: 6, CountY: 5,
		IntegerDigitsX: 2, IntegerDigitsY: 2,
		FractionDigitsY: 1,
		TickLength: 5,
	})
	write(g, "testdata/range-00.png")

	g.SetYRange(0, 10)
	g.Append(id, 4, 50)
	write(g, "testdata/range-01.png")
}

func write(g *linegraph.Graph, name string) {
	img := vgimg.New(700, 400)
	g.Scene().Draw(draw.New(img))

	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	fmt.Println("wrote", name)
}
