package feed

import (
	"context"
	"time"

	"github.com/vdobler/linegraph"
)

// Ramp emits Count points to Series, one every Interval. Point i is
// Start + (i * Step).
type Ramp struct {
	Series   int
	Start    linegraph.Point
	Step     linegraph.Point
	Count    int
	Interval time.Duration
}

// Run emits the points of r. It returns nil after the last point or the
// context's error if ctx is done first.
func (r Ramp) Run(ctx context.Context, emit Emit) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for i := 0; i < r.Count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		p := linegraph.Point{
			X: r.Start.X + float64(i)*r.Step.X,
			Y: r.Start.Y + float64(i)*r.Step.Y,
		}
		if err := emit(ctx, Record{Series: r.Series, Point: p}); err != nil {
			return err
		}
	}
	return nil
}
