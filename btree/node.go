package btree

import "fmt"

// item is a key with its value. Splits, rotations and merges move both together.
type item[K, V any] struct {
	key K
	val V
}

type node[K, V any] struct {
	// slices rather than the fixed-size arrays of a disk layout: the capacity
	// depends on maxDegree, so every shift goes through insertItemAt/removeItemAt.
	items    []item[K, V]
	children []*node[K, V]
	leaf     bool
	layout   *layout[K, V]
}

func (n *node[K, V]) isLeaf() bool {
	return n.leaf
}

func (n *node[K, V]) full() bool {
	return len(n.items) >= n.layout.maxKeys()
}

/*
If data item with key k is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present in the node.
Basically, lower bound of the key in the node -- this coincides with position of the child pointer !!
So, we can continue the traversal down the tree if the returned boolean value is false.
*/
func (n *node[K, V]) search(key K) (int, bool) {
	low, high := 0, len(n.items)
	var mid int
	for low < high {
		mid = (low + high) / 2
		cmp := n.layout.compare(key, n.items[mid].key)
		switch {
		case cmp > 0:
			low = mid + 1
		case cmp < 0:
			high = mid
		case cmp == 0:
			return mid, true
		}
	}
	return low, false
}

// find returns the node holding key and the key's position in it, or nil.
func (n *node[K, V]) find(key K) (*node[K, V], int) {
	pos, found := n.search(key)
	if found {
		return n, pos
	}
	if n.isLeaf() {
		return nil, -1
	}
	return n.children[pos].find(key)
}

// helper method to insert data item at an arbitrary position of a B-tree node
func (n *node[K, V]) insertItemAt(pos int, it item[K, V]) {
	n.items = append(n.items, item[K, V]{})
	copy(n.items[pos+1:], n.items[pos:])
	n.items[pos] = it
}

// helper method to insert child pointer at an arbitrary position of a B-tree node
func (n *node[K, V]) insertChildAt(pos int, child *node[K, V]) {
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

// removeItemAt clears the vacated tail slot so the backing array does not pin the value.
func (n *node[K, V]) removeItemAt(pos int) item[K, V] {
	it := n.items[pos]
	copy(n.items[pos:], n.items[pos+1:])
	n.items[len(n.items)-1] = item[K, V]{}
	n.items = n.items[:len(n.items)-1]
	return it
}

func (n *node[K, V]) removeChildAt(pos int) *node[K, V] {
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

func (n *node[K, V]) truncateItems(size int) {
	clear(n.items[size:])
	n.items = n.items[:size]
}

func (n *node[K, V]) truncateChildren(size int) {
	clear(n.children[size:])
	n.children = n.children[:size]
}

/*
splitChild divides the i-th child of n, which holds at least maxKeys items.
With t = ceil(maxDegree/2), the child keeps its bottom t-1 items (and t child pointers),
item t-1 is promoted into n at position i, and everything above it moves to a new
sibling that becomes child i+1.
Note: This doesn't include creating a new root. For that check growRoot() in tree.go
*/
func (n *node[K, V]) splitChild(i int) {
	child := n.children[i]
	if len(child.items) < n.layout.maxKeys() {
		panic(fmt.Sprintf("BUG: splitChild on child %d with %d items, want at least %d",
			i, len(child.items), n.layout.maxKeys()))
	}

	mid := n.layout.minDegree() - 1
	median := child.items[mid]

	sibling := n.layout.newNode(child.isLeaf())
	sibling.items = append(sibling.items, child.items[mid+1:]...)
	if !child.isLeaf() {
		sibling.children = append(sibling.children, child.children[mid+1:]...)
		child.truncateChildren(mid + 1)
	}
	child.truncateItems(mid)

	n.insertItemAt(i, median)
	n.insertChildAt(i+1, sibling)
	n.layout.stats.splits++
}

/*
insertNonFull places it in the subtree rooted at n, which must have room for one more item.
Every full child on the way down is split before we descend into it, so the node we end up
in always has space and nothing ever has to be split from below.
*/
func (n *node[K, V]) insertNonFull(it item[K, V]) {
	if n.full() {
		panic(fmt.Sprintf("BUG: insertNonFull on full node with %d items", len(n.items)))
	}

	pos, _ := n.search(it.key)

	// If we reach a leaf node -> it has sufficient space for the new item so, insert the new item
	if n.isLeaf() {
		n.insertItemAt(pos, it)
		return
	}

	// If the next node on the traversal path is already full, split it
	if n.children[pos].full() {
		n.splitChild(pos)

		// The middle item that we took from the child has a key that is smaller than the one we
		// are inserting, so we need to change our direction.
		if n.layout.compare(n.items[pos].key, it.key) < 0 {
			pos++
		}
	}

	n.children[pos].insertNonFull(it)
}

/*
insertBottomUp is the insert path for odd maxDegree. The item goes straight into its leaf,
and a child that ends up with maxKeys+1 items is split once the recursion returns to its
parent. The caller splits the root itself.
*/
func (n *node[K, V]) insertBottomUp(it item[K, V]) {
	pos, _ := n.search(it.key)
	if n.isLeaf() {
		n.insertItemAt(pos, it)
		return
	}

	child := n.children[pos]
	child.insertBottomUp(it)
	if len(child.items) > n.layout.maxKeys() {
		n.splitChild(pos)
	}
}

// ascend yields the items of the subtree in key order and reports whether to keep going.
func (n *node[K, V]) ascend(yield func(K, V) bool) bool {
	for i, it := range n.items {
		if !n.isLeaf() && !n.children[i].ascend(yield) {
			return false
		}
		if !yield(it.key, it.val) {
			return false
		}
	}
	if !n.isLeaf() {
		return n.children[len(n.items)].ascend(yield)
	}
	return true
}

func (n *node[K, V]) height() int {
	h := 1
	for cur := n; !cur.isLeaf(); cur = cur.children[0] {
		h++
	}
	return h
}
