// Command linegraph-demo draws a live line graph to an image file. A
// background feed appends points to the graph and every redraw
// overwrites the output file.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vdobler/linegraph"
	"github.com/vdobler/linegraph/feed"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	outputPath string
	count      int
	interval   time.Duration
	followPath string
	marking    bool
	fit        float64
)

var palette = []color.Color{
	color.RGBA{R: 0xff, A: 0xff},
	color.RGBA{G: 0x80, A: 0xff},
	color.RGBA{B: 0xff, A: 0xff},
	color.RGBA{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "linegraph-demo",
		Short: "Draw a live line graph into an image file",
		Long: `linegraph-demo starts with the series (0,0) (1,1) (2,4) and appends
a point every interval, either (3+i, 8+i) or the rows of a followed CSV file.
Each redraw overwrites the output file (PNG or SVG by extension).`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "linegraph.png", "Output file (.png or .svg)")
	rootCmd.Flags().IntVar(&count, "count", 30, "Number of synthetic points to append")
	rootCmd.Flags().DurationVar(&interval, "interval", 600*time.Millisecond, "Delay between synthetic points")
	rootCmd.Flags().StringVar(&followPath, "follow", "", "Follow a CSV file of x,y or series,x,y rows instead")
	rootCmd.Flags().BoolVar(&marking, "marking", true, "Draw tick marks and labels")
	rootCmd.Flags().Float64Var(&fit, "fit", 0, "Fit the ranges to the data after each point, expanded by this fraction (0 keeps the ranges)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(outputPath))
	if ext != ".png" && ext != ".svg" {
		return fmt.Errorf("unsupported output format %q (must be .png or .svg)", ext)
	}

	g, err := linegraph.New(50, 350, 600, 300, 0, 25, 0, 40)
	if err != nil {
		return err
	}
	if _, err := g.AddNamedSeries("series 0", palette[0],
		linegraph.Point{X: 0, Y: 0},
		linegraph.Point{X: 1, Y: 1},
		linegraph.Point{X: 2, Y: 4},
	); err != nil {
		return err
	}
	if marking {
		if err := g.SetMarking(&linegraph.Marking{
			CountX: 6, CountY: 5,
			IntegerDigitsX: 2, IntegerDigitsY: 2,
			FractionDigitsX: 0, FractionDigitsY: 1,
			TickLength: 5,
		}); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	frames := 0
	live := linegraph.NewLive(g, func(s *linegraph.Scene) error {
		frames++
		return writeFrame(outputPath, ext, g, s)
	}, 16)
	live.OnError = func(err error) { log.Printf("dropped update: %v", err) }

	emit := liveEmit(live, fit)

	// runCtx ends the feed as well if drawing fails.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	liveErr := make(chan error, 1)
	go func() {
		err := live.Run(runCtx)
		cancel()
		liveErr <- err
	}()

	var feedErr error
	if followPath != "" {
		feedErr = feed.Follow(runCtx, followPath, emit)
	} else {
		ramp := feed.Ramp{
			Start:    linegraph.Point{X: 3, Y: 8},
			Step:     linegraph.Point{X: 1, Y: 1},
			Count:    count,
			Interval: interval,
		}
		feedErr = ramp.Run(runCtx, emit)
	}

	// Let the final posted points be drawn before shutting down.
	if feedErr == nil {
		feedErr = live.Do(runCtx, func(*linegraph.Graph) error { return nil })
	}
	cancel()
	if err := <-liveErr; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("drawing failed: %w", err)
	}
	if feedErr != nil && !errors.Is(feedErr, context.Canceled) {
		return fmt.Errorf("feed failed: %w", feedErr)
	}
	log.Printf("wrote %d frames to %s", frames, outputPath)
	return nil
}

// liveEmit returns a feed.Emit which posts every record to live.
func liveEmit(live *linegraph.Live, fit float64) feed.Emit {
	return func(ctx context.Context, rec feed.Record) error {
		return live.Post(ctx, appendRecord(rec, fit))
	}
}

// appendRecord returns the mutation which appends rec to its series.
// A record may only name an existing series or the next new one, which
// is then created. With fit > 0 the ranges are fitted to the data.
func appendRecord(rec feed.Record, fit float64) linegraph.Mutation {
	return func(g *linegraph.Graph) error {
		id := linegraph.SeriesID(rec.Series)
		switch n := g.NumSeries(); {
		case rec.Series == n:
			col := palette[n%len(palette)]
			if _, err := g.AddNamedSeries(fmt.Sprintf("series %d", n), col, rec.Point); err != nil {
				return err
			}
		case rec.Series < 0 || rec.Series > n:
			return fmt.Errorf("record %v: %w", rec.Point, &linegraph.UnknownSeriesError{ID: id})
		default:
			if err := g.AppendPoint(id, rec.Point); err != nil {
				return err
			}
		}
		if fit > 0 {
			return g.Fit(fit)
		}
		return nil
	}
}

// writeFrame paints s and atomically replaces the file at path.
func writeFrame(path, ext string, g *linegraph.Graph, s *linegraph.Scene) error {
	w, h := g.Extent()
	width, height := vg.Length(w+20), vg.Length(h+20)

	var canvas interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch ext {
	case ".svg":
		canvas = vgsvg.New(width, height)
	default:
		img := vgimg.New(width, height)
		canvas = vgimg.PngCanvas{Canvas: img}
	}
	s.Draw(draw.New(canvas))

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed creating frame: %w", err)
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed writing frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
