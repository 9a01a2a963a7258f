// Package btree implements an in-memory B-tree whose fan-out is fixed at
// construction time.
//
// A tree of maxDegree m keeps every node except the root between
// ceil(m/2)-1 and m-1 keys. Inserts split full nodes, deletes restore the
// lower bound by borrowing a key from a sibling or merging with it.
//
// A BTree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize access themselves.
package btree

// MinDegree is the smallest maxDegree a tree accepts.
const MinDegree = 3

// layout is shared by every node of one tree. maxDegree and compare are
// fixed when the tree is created.
type layout[K, V any] struct {
	maxDegree int
	compare   func(a, b K) int
	stats     *counters
}

// t = ceil(maxDegree/2), the minimum number of children of an internal
// non-root node.
func (l *layout[K, V]) minDegree() int {
	return (l.maxDegree + 1) / 2
}

func (l *layout[K, V]) minKeys() int {
	return l.minDegree() - 1
}

func (l *layout[K, V]) maxKeys() int {
	return l.maxDegree - 1
}

// Splitting a full node ahead of the descent only keeps both halves above
// minKeys when maxDegree is even. Odd degrees rebalance on the way back up.
func (l *layout[K, V]) preemptive() bool {
	return l.maxDegree%2 == 0
}

func (l *layout[K, V]) newNode(leaf bool) *node[K, V] {
	l.stats.nodes++
	return &node[K, V]{layout: l, leaf: leaf}
}
