// Package slio holds small io.Writer helpers for wiring sinks to the logging
// engine. The consumer goroutine is the only writer the engine itself ever
// uses, so sinks do not have to be concurrency-safe; LockedWriter covers
// the case of a sink shared with foreign writers.
package slio

import (
	"io"
	"sync"
	"sync/atomic"
	"testing"
)

type (
	// TeeWriter fans every batch out to several sinks. The first sink's
	// byte count and the first error win.
	TeeWriter []io.Writer

	// WriterFunc adapts a function to io.Writer.
	WriterFunc func(p []byte) (int, error)

	// LockedWriter serializes writes to a shared sink.
	LockedWriter struct {
		mu sync.Mutex
		w  io.Writer
	}

	// CountingDiscard discards data but counts operations and bytes.
	// Safe for concurrent use.
	CountingDiscard struct {
		Bytes, Operations int64
	}
)

func NewTeeWriter(ws ...io.Writer) (w TeeWriter) {
	return w.Append(ws...)
}

func (w TeeWriter) Append(ws ...io.Writer) TeeWriter {
	for _, s := range ws {
		if tee, ok := s.(TeeWriter); ok {
			w = append(w, tee...)
		} else {
			w = append(w, s)
		}
	}

	return w
}

func (w TeeWriter) Write(p []byte) (n int, err error) {
	for i, w := range w {
		m, e := w.Write(p)

		if i == 0 {
			n = m
		}

		if err == nil {
			err = e
		}
	}

	return
}

func (f WriterFunc) Write(p []byte) (int, error) { return f(p) }

func NewLockedWriter(w io.Writer) *LockedWriter {
	return &LockedWriter{w: w}
}

func (w *LockedWriter) Write(p []byte) (int, error) {
	defer w.mu.Unlock()
	w.mu.Lock()

	return w.w.Write(p)
}

func (w *CountingDiscard) Write(p []byte) (int, error) {
	atomic.AddInt64(&w.Operations, 1)
	atomic.AddInt64(&w.Bytes, int64(len(p)))

	return len(p), nil
}

func (w *CountingDiscard) ReportDisk(b *testing.B) {
	b.ReportMetric(float64(atomic.LoadInt64(&w.Bytes))/float64(b.N), "disk_B/op")
}
