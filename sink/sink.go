// Package sink provides the line-oriented output destinations candidates
// are streamed to: stdout, a plain file, or a gzip-compressed file, with a
// fan-out wrapper for writing to several at once.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Sink receives one candidate per WriteLine call. Close flushes and
// releases the destination; a failed write is fatal for the run, partial
// output already written stays in place.
type Sink interface {
	WriteLine(line string) error
	Close() error
}

type writerSink struct {
	w     *bufio.Writer
	gz    *gzip.Writer
	close io.Closer // nil for stdout
	path  string
}

// NewConsole returns a buffered sink over stdout.
func NewConsole() Sink {
	return &writerSink{w: bufio.NewWriter(os.Stdout), path: "stdout"}
}

// NewFile opens (or with force, overwrites) path as an output sink,
// creating parent directories. A path ending in .gz gets gzip-compressed
// transparently.
func NewFile(path string, force bool) (Sink, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, fmt.Errorf("output file exists: %s (use --force to overwrite)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output file: %w", err)
	}

	s := &writerSink{close: f, path: path}
	if strings.HasSuffix(path, ".gz") {
		s.gz = gzip.NewWriter(f)
		s.w = bufio.NewWriter(s.gz)
	} else {
		s.w = bufio.NewWriter(f)
	}
	return s, nil
}

func (s *writerSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("writing to %s: %w", s.path, err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing to %s: %w", s.path, err)
	}
	return nil
}

func (s *writerSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", s.path, err)
	}
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			return fmt.Errorf("closing gzip stream %s: %w", s.path, err)
		}
	}
	if s.close != nil {
		if err := s.close.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", s.path, err)
		}
	}
	return nil
}

// Discard swallows every line; used when the caller only wants the count.
func Discard() Sink {
	return discardSink{}
}

type discardSink struct{}

func (discardSink) WriteLine(string) error { return nil }
func (discardSink) Close() error           { return nil }

// Multi fans every line out to all given sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) WriteLine(line string) error {
	for _, s := range m {
		if err := s.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Close() error {
	var first error
	for _, s := range m {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
