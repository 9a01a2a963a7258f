package btree

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

/*
BTree only keeps a pointer to root node of the tree.
A tree is made up of nodes. Each node contains data items.
*/
type BTree[K, V any] struct {
	root   *node[K, V]
	layout *layout[K, V]
	length int
	logger Logger
}

// New creates an empty tree of the given maxDegree for naturally ordered keys.
func New[K cmp.Ordered, V any](maxDegree int, opts ...Option) (*BTree[K, V], error) {
	return NewFunc[K, V](maxDegree, cmp.Compare[K], opts...)
}

// NewFunc creates an empty tree ordered by compare, which must return a negative
// number, zero or a positive number as a sorts before, equal to or after b.
func NewFunc[K, V any](maxDegree int, compare func(a, b K) int, opts ...Option) (*BTree[K, V], error) {
	if maxDegree < MinDegree {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, maxDegree)
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &BTree[K, V]{
		layout: &layout[K, V]{
			maxDegree: maxDegree,
			compare:   compare,
			stats:     &counters{},
		},
		logger: options.logger,
	}, nil
}

// MaxDegree returns the fan-out bound the tree was created with.
func (t *BTree[K, V]) MaxDegree() int {
	return t.layout.maxDegree
}

// Len returns the number of keys in the tree.
func (t *BTree[K, V]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree, 0 when it is empty.
func (t *BTree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height()
}

func (t *BTree[K, V]) search(key K) (*node[K, V], int) {
	if t.root == nil {
		return nil, -1
	}
	return t.root.find(key)
}

// Find returns the value stored under key, or an error wrapping ErrKeyNotFound.
func (t *BTree[K, V]) Find(key K) (V, error) {
	n, pos := t.search(key)
	if n == nil {
		var zero V
		return zero, fmt.Errorf("key %v: %w", key, ErrKeyNotFound)
	}
	return n.items[pos].val, nil
}

// Has reports whether key is in the tree.
func (t *BTree[K, V]) Has(key K) bool {
	n, _ := t.search(key)
	return n != nil
}

/*
Create a new root node.
The existing root then becomes the new root's only child and is split right away,
so the new root ends up with one item and two children.
*/
func (t *BTree[K, V]) growRoot() {
	newRoot := t.layout.newNode(false)
	newRoot.insertChildAt(0, t.root)
	newRoot.splitChild(0)
	t.root = newRoot
	t.layout.stats.rootGrowths++
}

// Insert stores val under key. It returns false if key was already present, in
// which case only the value is replaced and the tree keeps its shape.
func (t *BTree[K, V]) Insert(key K, val V) bool {
	it := item[K, V]{key, val}

	// The tree is empty, so initialize a new node.
	if t.root == nil {
		t.root = t.layout.newNode(true)
		t.root.insertItemAt(0, it)
		t.length++
		return true
	}

	if n, pos := t.root.find(key); n != nil {
		n.items[pos].val = val
		t.logger.Info("key already present, value replaced", "key", key)
		return false
	}

	if t.layout.preemptive() {
		// The tree root is full, so perform a split on the root.
		if t.root.full() {
			t.growRoot()
			i := 0
			if t.layout.compare(t.root.items[0].key, key) < 0 {
				i++
			}
			t.root.children[i].insertNonFull(it)
		} else {
			t.root.insertNonFull(it)
		}
	} else {
		t.root.insertBottomUp(it)
		if len(t.root.items) > t.layout.maxKeys() {
			t.growRoot()
		}
	}

	t.length++
	return true
}

// Delete removes key from the tree and reports whether it was present.
// Deleting from an empty tree or deleting an absent key leaves the tree untouched.
func (t *BTree[K, V]) Delete(key K) bool {
	if t.root == nil {
		t.logger.Info("tree is empty", "key", key)
		return false
	}
	if !t.Has(key) {
		t.logger.Info("key not found", "key", key)
		return false
	}

	var removed bool
	if t.layout.preemptive() {
		removed = t.root.remove(key)
	} else {
		removed = t.root.removeBottomUp(key)
	}
	if !removed {
		panic(fmt.Sprintf("BUG: key %v found by search but not by remove", key))
	}
	t.length--

	// The root lost its last item, so its only child (if any) takes over.
	if len(t.root.items) == 0 {
		if t.root.isLeaf() {
			t.root = nil
		} else {
			t.root = t.root.children[0]
		}
		t.layout.stats.nodes--
		t.layout.stats.rootShrinks++
	}
	return true
}

// All returns an iterator over the key/value pairs in ascending key order.
func (t *BTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root != nil {
			t.root.ascend(yield)
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (t *BTree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the tree's shape and structural counters.
func (t *BTree[K, V]) Stats() Stats {
	c := t.layout.stats
	return Stats{
		Keys:            t.length,
		Height:          t.Height(),
		Nodes:           c.nodes,
		Splits:          c.splits,
		Merges:          c.merges,
		BorrowsFromPrev: c.borrowsFromPrev,
		BorrowsFromNext: c.borrowsFromNext,
		RootGrowths:     c.rootGrowths,
		RootShrinks:     c.rootShrinks,
	}
}

// String returns the keys in ascending order separated by spaces.
func (t *BTree[K, V]) String() string {
	var sb strings.Builder
	sep := ""
	for k := range t.Keys() {
		fmt.Fprint(&sb, sep, k)
		sep = " "
	}
	return sb.String()
}
