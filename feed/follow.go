package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Follow emits a record for every row of the CSV file at path, then
// waits for the file to grow and continues with the new rows until ctx
// is done. Lines starting with '#' are ignored, malformed rows are
// logged and skipped.
func Follow(ctx context.Context, path string, emit Emit) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed opening feed: %w", err)
	}
	defer f.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed watching %s: %w", path, err)
	}

	csvReader := csv.NewReader(newLineReader(f))
	csvReader.FieldsPerRecord = -1
	csvReader.Comment = '#'
	csvReader.TrimLeadingSpace = true

readLoop:
	for {
		fields, err := csvReader.Read()
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Printf("skipping malformed feed line: %v", err)
				continue
			}
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed reading %s: %w", path, err)
			}
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					return fmt.Errorf("watching %s: %w", path, err)
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Op&fsnotify.Write != 0 {
						continue readLoop
					}
				}
			}
		}
		rec, err := ParseRecord(fields)
		if err != nil {
			log.Printf("skipping feed line %v: %v", fields, err)
			continue
		}
		if err := emit(ctx, rec); err != nil {
			return err
		}
	}
}
