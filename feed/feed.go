// Package feed produces data points for a live line graph, either
// synthetically at a fixed rate or by following a growing CSV file.
package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vdobler/linegraph"
)

// Record is one point destined for a series.
type Record struct {
	Series int
	linegraph.Point
}

// Emit consumes records. Feeds stop at the first error returned by Emit.
type Emit func(ctx context.Context, rec Record) error

// ParseRecord parses the CSV fields "x,y" (series 0) or "series,x,y".
func ParseRecord(fields []string) (Record, error) {
	var rec Record
	switch len(fields) {
	case 2:
	case 3:
		s, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return Record{}, fmt.Errorf("failed parsing series %q: %w", fields[0], err)
		}
		rec.Series = s
		fields = fields[1:]
	default:
		return Record{}, fmt.Errorf("want 2 or 3 fields, got %d", len(fields))
	}

	coords := make([]float64, 2)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Record{}, fmt.Errorf("failed parsing coordinate %q: %w", f, err)
		}
		coords[i] = v
	}
	rec.X, rec.Y = coords[0], coords[1]
	return rec, nil
}
