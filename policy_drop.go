//go:build !steroidslog_block

package steroidslog

// Drop policy: a full ring costs the producer nothing and the record is
// gone. Dropped counts them. Build with -tags steroidslog_block for the
// delivery-guaranteeing variant; the two are never mixed in one binary.
func (l *Logger) push(n *node, r Record) bool {
	if n.q.Enqueue(r) {
		return true
	}

	l.dropped.Inc()

	return false
}
