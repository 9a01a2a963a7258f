package btree

/*
remove deletes key from the subtree rooted at n and reports whether it was there.
Before descending into a child we make sure it holds more than minKeys items, so the
node we finally delete from can always afford to lose one. Used for even maxDegree.
*/
func (n *node[K, V]) remove(key K) bool {
	idx, found := n.search(key)

	if found {
		if n.isLeaf() {
			n.removeFromLeaf(idx)
		} else {
			n.removeFromNonLeaf(idx)
		}
		return true
	}

	if n.isLeaf() {
		return false
	}

	// fill may merge the last child into its left sibling, which takes one item out of n.
	// Remember where we were headed before the indexes shift.
	last := idx == len(n.items)
	if len(n.children[idx].items) <= n.layout.minKeys() {
		n.fill(idx)
	}
	if last && idx > len(n.items) {
		return n.children[idx-1].remove(key)
	}
	return n.children[idx].remove(key)
}

func (n *node[K, V]) removeFromLeaf(idx int) {
	n.removeItemAt(idx)
}

/*
removeFromNonLeaf deletes items[idx] from an internal node. The key is replaced by its
in-order predecessor or successor when the child holding it can spare an item; otherwise
both children are merged around the key and the delete continues in the merged node.
*/
func (n *node[K, V]) removeFromNonLeaf(idx int) {
	key := n.items[idx].key
	minKeys := n.layout.minKeys()

	switch {
	case len(n.children[idx].items) > minKeys:
		pred := n.predecessor(idx)
		n.items[idx] = pred
		n.children[idx].remove(pred.key)
	case len(n.children[idx+1].items) > minKeys:
		succ := n.successor(idx)
		n.items[idx] = succ
		n.children[idx+1].remove(succ.key)
	default:
		n.merge(idx)
		n.children[idx].remove(key)
	}
}

// predecessor returns the rightmost item of the subtree left of items[idx].
func (n *node[K, V]) predecessor(idx int) item[K, V] {
	cur := n.children[idx]
	for !cur.isLeaf() {
		cur = cur.children[len(cur.items)]
	}
	return cur.items[len(cur.items)-1]
}

// successor returns the leftmost item of the subtree right of items[idx].
func (n *node[K, V]) successor(idx int) item[K, V] {
	cur := n.children[idx+1]
	for !cur.isLeaf() {
		cur = cur.children[0]
	}
	return cur.items[0]
}

/*
fill tops up children[idx]. Borrow from the left sibling if it has an item to spare,
else from the right one, else merge with a sibling: the right one unless idx is the
last child.
*/
func (n *node[K, V]) fill(idx int) {
	minKeys := n.layout.minKeys()

	switch {
	case idx > 0 && len(n.children[idx-1].items) > minKeys:
		n.borrowFromPrev(idx)
	case idx < len(n.items) && len(n.children[idx+1].items) > minKeys:
		n.borrowFromNext(idx)
	case idx < len(n.items):
		n.merge(idx)
	default:
		n.merge(idx - 1)
	}
}

// borrowFromPrev rotates the left sibling's last item up into n and n's separator down into children[idx].
func (n *node[K, V]) borrowFromPrev(idx int) {
	child, sibling := n.children[idx], n.children[idx-1]

	child.insertItemAt(0, n.items[idx-1])
	if !child.isLeaf() {
		child.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}
	n.items[idx-1] = sibling.removeItemAt(len(sibling.items) - 1)
	n.layout.stats.borrowsFromPrev++
}

// borrowFromNext rotates the right sibling's first item up into n and n's separator down into children[idx].
func (n *node[K, V]) borrowFromNext(idx int) {
	child, sibling := n.children[idx], n.children[idx+1]

	child.items = append(child.items, n.items[idx])
	if !child.isLeaf() {
		child.children = append(child.children, sibling.removeChildAt(0))
	}
	n.items[idx] = sibling.removeItemAt(0)
	n.layout.stats.borrowsFromNext++
}

/*
merge folds items[idx] and children[idx+1] into children[idx].
The right sibling hands over its items and child pointers and is dropped from n.
*/
func (n *node[K, V]) merge(idx int) {
	child, sibling := n.children[idx], n.children[idx+1]

	child.items = append(child.items, n.removeItemAt(idx))
	child.items = append(child.items, sibling.items...)
	if !child.isLeaf() {
		child.children = append(child.children, sibling.children...)
	}
	n.removeChildAt(idx + 1)

	sibling.items, sibling.children = nil, nil
	n.layout.stats.merges++
	n.layout.stats.nodes--
}

/*
removeBottomUp is the delete path for odd maxDegree. An internal key is overwritten with
its predecessor, which is then deleted from the left subtree. A child left with fewer than
minKeys items is repaired by fill once the recursion returns; merging it then yields at
most 2*minKeys items, which always fits.
*/
func (n *node[K, V]) removeBottomUp(key K) bool {
	idx, found := n.search(key)

	if n.isLeaf() {
		if found {
			n.removeFromLeaf(idx)
		}
		return found
	}

	if found {
		pred := n.predecessor(idx)
		n.items[idx] = pred
		n.children[idx].removeBottomUp(pred.key)
	} else if !n.children[idx].removeBottomUp(key) {
		return false
	}

	if len(n.children[idx].items) < n.layout.minKeys() {
		n.fill(idx)
	}
	return true
}
