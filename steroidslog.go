// Package steroidslog is an asynchronous logging engine: producer goroutines encode
// structured records into per-producer lock-free rings at near-zero cost and
// one consumer goroutine formats and writes them.
//
// The hot path never allocates, never locks and never touches the sink.
// Format literals are interned once per call site into a write-once id
// table; records carry the id and up to eight tagged argument slots. The
// consumer polls all rings round-robin, renders the {} template grammar and
// emits "[LEVEL] message" lines.
//
// Delivery is deliberately best-effort: full rings drop (or spin, under the
// steroidslog_block build tag), long messages truncate, colliding format
// ids render the first registered text. Shutdown drains every ring before
// the consumer exits.
package steroidslog

import (
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
	"tlog.app/go/loc"

	"github.com/nfedotenko/steroidslog/low"
)

type Logger struct {
	w io.Writer // owned by the consumer goroutine after New

	reg   registry
	fmts  *fmtTable
	sites *siteCache

	// idle nodes for Producer reuse; locked only at handle creation and
	// release, never per message
	freeMu sync.Mutex
	free   []*node

	// shared node for the convenience path; the mutex serializes writers so
	// the ring keeps its single-producer discipline and convenience calls
	// keep their global FIFO order
	fbMu     sync.Mutex
	fallback *node

	cfg   Config
	level atomic.Int32

	state   atomic.Int32
	done    chan struct{}
	dropped atomic.Uint64
	werr    atomic.Error

	msg []byte  // scratch for one message
	buf low.Buf // batch buffer, one sink write per pass
}

// New builds a Logger writing to w and starts its consumer goroutine.
// Remember to Shutdown (or Close): records buffered at exit are lost
// otherwise.
func New(w io.Writer, ops ...Option) (*Logger, error) {
	l := &Logger{
		w:    w,
		cfg:  DefaultConfig(),
		done: make(chan struct{}),
	}

	for _, o := range ops {
		o(l)
	}

	err := l.cfg.Validate()
	if err != nil {
		return nil, err
	}

	lvl, _ := ParseLevel(l.cfg.Level)
	l.level.Store(int32(lvl))

	l.reg.capacity = l.cfg.Capacity
	l.fmts = newFmtTable(fmtTableSize)
	l.sites = newSiteCache(siteTableSize)
	l.fallback = l.reg.register()

	l.state.Store(stateRunning)

	go l.run()

	return l, nil
}

// NewFromEnv is New configured from the STEROIDSLOG_* environment.
func NewFromEnv(w io.Writer, ops ...Option) (*Logger, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	return New(w, append([]Option{WithConfig(cfg)}, ops...)...)
}

// Level returns the runtime severity filter.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel adjusts the runtime severity filter. The build-time floor still
// applies underneath.
func (l *Logger) SetLevel(lvl Level) {
	l.level.Store(int32(lvl))
}

// Dropped reports records lost to full rings since construction.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Err returns the last sink write error, if any.
func (l *Logger) Err() error {
	return l.werr.Load()
}

// Shutdown drains every producer ring, stops the consumer and waits for it.
// Idempotent and safe from any goroutine; log calls racing it may be
// silently dropped but never corrupt a ring.
func (l *Logger) Shutdown() {
	l.state.CompareAndSwap(stateRunning, stateDraining)
	<-l.done
}

// Close is Shutdown returning the sink status, for use with defer.
func (l *Logger) Close() error {
	l.Shutdown()

	return l.Err()
}

func (l *Logger) Debug(format string, args ...any) {
	if minLevel > LevelDebug {
		return
	}

	l.log(LevelDebug, format, args)
}

func (l *Logger) Info(format string, args ...any) {
	if minLevel > LevelInfo {
		return
	}

	l.log(LevelInfo, format, args)
}

func (l *Logger) Warning(format string, args ...any) {
	if minLevel > LevelWarning {
		return
	}

	l.log(LevelWarning, format, args)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args)
}

// log is the convenience path: all callers share one node behind a mutex.
// That keeps the ring single-writer and convenience calls globally ordered,
// at the cost of contention. Hot goroutines should hold a Producer, which
// has neither.
func (l *Logger) log(lvl Level, format string, args []any) {
	if !l.serviceable(lvl) {
		return
	}

	var r Record
	l.prepare(&r, lvl, format, args, 3)

	l.fbMu.Lock()
	l.push(l.fallback, r)
	l.fbMu.Unlock()
}

func (l *Logger) serviceable(lvl Level) bool {
	return lvl >= Level(l.level.Load()) && l.state.Load() == stateRunning
}

// prepare resolves the call-site id and encodes args into r. d is the
// loc.Caller skip to the user frame.
func (l *Logger) prepare(r *Record, lvl Level, format string, args []any, d int) {
	r.ID = l.sites.id(l.fmts, lvl, format)
	r.Level = lvl

	if l.cfg.Caller {
		r.PC = loc.Caller(d)
	}

	encode(r, args)
}

// checkout hands a node to a Producer, reusing a released one when
// available so producer churn does not grow the arena without bound.
func (l *Logger) checkout() *node {
	l.freeMu.Lock()

	if n := len(l.free); n > 0 {
		nd := l.free[n-1]
		l.free = l.free[:n-1]
		l.freeMu.Unlock()

		nd.active.Store(true)

		return nd
	}

	l.freeMu.Unlock()

	return l.reg.register()
}

func (l *Logger) checkin(n *node) {
	n.deactivate()

	l.freeMu.Lock()
	l.free = append(l.free, n)
	l.freeMu.Unlock()
}

var (
	defOnce sync.Once
	def     *Logger
)

// Default is the process-wide Logger, created on first use, writing to
// stderr with default configuration.
func Default() *Logger {
	defOnce.Do(func() {
		def, _ = New(os.Stderr)
	})

	return def
}

func Debug(format string, args ...any) {
	if minLevel > LevelDebug {
		return
	}

	Default().log(LevelDebug, format, args)
}

func Info(format string, args ...any) {
	if minLevel > LevelInfo {
		return
	}

	Default().log(LevelInfo, format, args)
}

func Warning(format string, args ...any) {
	if minLevel > LevelWarning {
		return
	}

	Default().log(LevelWarning, format, args)
}

func Error(format string, args ...any) {
	Default().log(LevelError, format, args)
}

// Shutdown drains and stops the default Logger.
func Shutdown() {
	Default().Shutdown()
}
