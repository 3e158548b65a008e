package steroidslog

import (
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Consumer states. Transitions are Running -> Draining -> Stopped, driven by
// Shutdown and acknowledged by the consumer goroutine.
const (
	stateRunning int32 = iota
	stateDraining
	stateStopped
)

const (
	// spinPasses empty poll passes are tolerated before the consumer starts
	// sleeping between passes.
	spinPasses = 64

	idleSleepMin = 50 * time.Microsecond
	idleSleepMax = time.Millisecond
)

// run is the consumer loop, the only goroutine that formats and writes.
func (l *Logger) run() {
	defer close(l.done)

	idle := 0

	for l.state.Load() == stateRunning {
		n := l.pass(l.cfg.BatchSize)
		l.flush()

		if n > 0 {
			idle = 0
			continue
		}

		idle++
		l.backoff(idle)
	}

	// Draining: one terminal sweep over every node, inactive included, so
	// nothing buffered before shutdown is lost.
	for l.pass(-1) > 0 {
	}
	l.flush()

	l.state.Store(stateStopped)
}

// pass polls every registered node round-robin, dequeuing up to batch
// records from each. batch < 0 means unbounded. Returns the number of
// records rendered.
func (l *Logger) pass(batch int) (n int) {
	draining := batch < 0

	l.reg.walk(func(nd *node) {
		if !draining && !nd.active.Load() && nd.q.Empty() {
			return
		}

		var r Record
		for i := 0; draining || i < batch; i++ {
			if !nd.q.Dequeue(&r) {
				break
			}

			l.render(&r)
			n++
		}
	})

	return n
}

// render formats one record into the batch buffer.
func (l *Logger) render(r *Record) {
	text := l.fmts.lookup(r.ID)

	msg := appendMessage(l.msg[:0], text, r)

	if r.PC != 0 {
		_, file, line := r.PC.NameFileLine()

		msg = append(msg, " ("...)
		msg = append(msg, filepath.Base(file)...)
		msg = append(msg, ':')
		msg = strconv.AppendInt(msg, int64(line), 10)
		msg = append(msg, ')')
	}

	msg = truncate(msg, 0, l.cfg.MaxMessageLen)
	l.msg = msg

	l.buf = append(l.buf, '[')
	l.buf = append(l.buf, r.Level.String()...)
	l.buf = append(l.buf, "] "...)
	l.buf = append(l.buf, msg...)
	l.buf.NewLine()
}

// flush writes the batch buffer to the sink in one call. Write errors are
// remembered, not propagated: producers never see sink failures.
func (l *Logger) flush() {
	if l.buf.Len() == 0 {
		return
	}

	_, err := l.w.Write(l.buf.Bytes())
	if err != nil {
		l.werr.Store(err)
	}

	l.buf.Reset()
}

// backoff yields for a while, then sleeps in growing steps. Bounded: the
// consumer always comes back to poll, it never parks on a signal.
func (l *Logger) backoff(idle int) {
	if idle <= spinPasses {
		runtime.Gosched()
		return
	}

	d := idleSleepMin << uint(idle-spinPasses)
	if d <= 0 || d > idleSleepMax {
		d = idleSleepMax
	}

	time.Sleep(d)
}
