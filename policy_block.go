//go:build steroidslog_block

package steroidslog

import "runtime"

// Block policy: spin on a full ring, yielding between attempts, until the
// consumer frees a slot. Delivery is guaranteed at the price of producer
// latency. Shutdown aborts the spin so producers cannot wedge on a stopped
// consumer.
func (l *Logger) push(n *node, r Record) bool {
	for !n.q.Enqueue(r) {
		if l.state.Load() != stateRunning {
			l.dropped.Inc()

			return false
		}

		runtime.Gosched()
	}

	return true
}
