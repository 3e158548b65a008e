package steroidslog

import (
	stdatomic "sync/atomic"

	"go.uber.org/atomic"
)

type (
	// node pairs one SPSC ring with its place in the producer registry. The
	// registry is an intrusive append-only singly linked list behind one
	// atomic head: registering is a CAS push-to-front, contested only when
	// producers appear, never per message. Nodes are never unlinked or
	// freed; the process owns them for its lifetime, which is what makes
	// the consumer's lock-free traversal safe. Idle nodes are recycled
	// through a pool instead of being removed.
	node struct {
		q      *ring[Record]
		active atomic.Bool
		next   *node // immutable once published
	}

	registry struct {
		head     stdatomic.Pointer[node]
		capacity int
	}
)

// register allocates a node and publishes it at the front of the list. The
// node is observed by the consumer only after the CAS, fully constructed.
func (r *registry) register() *node {
	n := &node{q: newRing[Record](r.capacity)}
	n.active.Store(true)

	for {
		head := r.head.Load()
		n.next = head

		if r.head.CompareAndSwap(head, n) {
			return n
		}
	}
}

// deactivate flips the node inactive. The ring stays intact: anything still
// buffered is drained by the consumer as usual.
func (n *node) deactivate() {
	n.active.Store(false)
}

// walk calls f on a snapshot of the list. Nodes pushed during the walk are
// picked up on the next pass.
func (r *registry) walk(f func(*node)) {
	for n := r.head.Load(); n != nil; n = n.next {
		f(n)
	}
}
