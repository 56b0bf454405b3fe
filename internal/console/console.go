// internal/console/console.go
//
// Line-oriented stream adapters used by the game session.
// A LineReader yields one line per call and io.EOF at end of data.
// A LineWriter makes each line visible to the reader immediately.

package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader is a source of text lines.
type LineReader interface {
	// ReadLine returns the next line without its terminator.
	// It returns io.EOF once no more lines are available.
	ReadLine() (string, error)
}

// LineWriter is a sink of text lines.
type LineWriter interface {
	// WriteLine writes s followed by a newline and flushes it.
	WriteLine(s string) error
}

type lineReader struct {
	r *bufio.Reader
}

// NewReader wraps r as a LineReader. Lines may be of any length.
func NewReader(r io.Reader) LineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	// a final line without a terminator is still a line
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type flushWriter struct {
	w *bufio.Writer
}

// NewWriter wraps w as a LineWriter that flushes after every line.
func NewWriter(w io.Writer) LineWriter {
	return &flushWriter{w: bufio.NewWriter(w)}
}

func (f *flushWriter) WriteLine(s string) error {
	if _, err := f.w.WriteString(s); err != nil {
		return err
	}
	if err := f.w.WriteByte('\n'); err != nil {
		return err
	}
	return f.w.Flush()
}
