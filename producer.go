package steroidslog

// Producer is a dedicated handle for one goroutine: Go's stand-in for the
// per-thread queue node. Logging through a Producer is the pure SPSC fast
// path with no checkout step. A Producer must not be shared between
// goroutines; that is the single-writer contract of its ring.
//
// Close releases the handle on goroutine exit. It only flips the node
// inactive and recycles it; buffered records are still drained.
type Producer struct {
	l *Logger
	n *node
}

// Producer registers (or recycles) a queue node and hands it to the caller.
func (l *Logger) Producer() *Producer {
	return &Producer{l: l, n: l.checkout()}
}

func (p *Producer) Close() {
	if p.n == nil {
		return
	}

	p.l.checkin(p.n)
	p.n = nil
}

func (p *Producer) Debug(format string, args ...any) {
	if minLevel > LevelDebug {
		return
	}

	p.log(LevelDebug, format, args)
}

func (p *Producer) Info(format string, args ...any) {
	if minLevel > LevelInfo {
		return
	}

	p.log(LevelInfo, format, args)
}

func (p *Producer) Warning(format string, args ...any) {
	if minLevel > LevelWarning {
		return
	}

	p.log(LevelWarning, format, args)
}

func (p *Producer) Error(format string, args ...any) {
	p.log(LevelError, format, args)
}

func (p *Producer) log(lvl Level, format string, args []any) {
	if p.n == nil || !p.l.serviceable(lvl) {
		return
	}

	var r Record
	p.l.prepare(&r, lvl, format, args, 3)

	p.l.push(p.n, r)
}
