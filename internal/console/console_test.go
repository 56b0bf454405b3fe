package console

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderYieldsLinesThenEOF(t *testing.T) {
	r := NewReader(strings.NewReader("5\r\n  9 \nlast"))
	want := []string{"5", "  9 ", "last"}
	for i, w := range want {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("line %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
			t.Fatalf("expected io.EOF, got %v", err)
		}
	}
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("a", 70_000)
	r := NewReader(strings.NewReader(long + "\n7\n"))
	got, err := r.ReadLine()
	if err != nil {
		t.Fatalf("long line: unexpected error: %v", err)
	}
	if got != long {
		t.Fatalf("expected %d characters, got %d", len(long), len(got))
	}
	got, err = r.ReadLine()
	if err != nil || got != "7" {
		t.Fatalf("expected \"7\", got %q (%v)", got, err)
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReaderPropagatesErrors(t *testing.T) {
	r := NewReader(failingReader{})
	_, err := r.ReadLine()
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestWriterFlushesEachLine(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	if err := w.WriteLine("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != "hello\n" {
		t.Fatalf("expected flushed line, got %q", sb.String())
	}
	if err := w.WriteLine("again"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != "hello\nagain\n" {
		t.Fatalf("got %q", sb.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterReportsErrors(t *testing.T) {
	w := NewWriter(failingWriter{})
	if err := w.WriteLine("x"); err == nil {
		t.Fatal("expected error")
	}
}
