package feed

import (
	"bufio"
	"io"
)

// lineReader hands out only complete newline terminated lines of a file
// which is still being written. A trailing line without newline is held
// back and reported as io.EOF until its newline arrives.
type lineReader struct {
	r *bufio.Reader

	// ready holds the unread rest of the last complete line.
	ready []byte
	// partial collects an incomplete line across reads.
	partial []byte
}

var _ io.Reader = (*lineReader)(nil)

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// Read copies as much of the current line into b as fits. The rest is
// returned by the following calls before the next line is read.
func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.ready) == 0 {
		data, err := l.r.ReadBytes('\n')
		l.partial = append(l.partial, data...)
		if err != nil {
			return 0, err
		}
		l.ready, l.partial = l.partial, nil
	}
	n := copy(b, l.ready)
	l.ready = l.ready[n:]
	return n, nil
}
