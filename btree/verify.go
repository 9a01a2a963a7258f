package btree

import "fmt"

// Verify walks the whole tree and returns an error wrapping ErrCorrupted for the
// first broken invariant it finds: key order, node occupancy, child count, leaf
// depth or the key count reported by Len.
func (t *BTree[K, V]) Verify() error {
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree reports %d keys", ErrCorrupted, t.length)
		}
		return nil
	}
	if len(t.root.items) == 0 {
		return fmt.Errorf("%w: root holds no keys", ErrCorrupted)
	}

	v := verifier[K, V]{leafDepth: -1}
	if err := v.walk(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.keys != t.length {
		return fmt.Errorf("%w: found %d keys, tree reports %d", ErrCorrupted, v.keys, t.length)
	}
	if v.nodes != t.layout.stats.nodes {
		return fmt.Errorf("%w: found %d nodes, tree reports %d", ErrCorrupted, v.nodes, t.layout.stats.nodes)
	}
	return nil
}

type verifier[K, V any] struct {
	leafDepth int
	keys      int
	nodes     int
}

// walk checks n, whose keys must all lie strictly between lo and hi (nil meaning unbounded).
func (v *verifier[K, V]) walk(n *node[K, V], depth int, lo, hi *K) error {
	l := n.layout
	v.nodes++
	v.keys += len(n.items)

	if len(n.items) > l.maxKeys() {
		return fmt.Errorf("%w: node at depth %d holds %d keys, max %d",
			ErrCorrupted, depth, len(n.items), l.maxKeys())
	}
	if depth > 0 && len(n.items) < l.minKeys() {
		return fmt.Errorf("%w: node at depth %d holds %d keys, min %d",
			ErrCorrupted, depth, len(n.items), l.minKeys())
	}

	for i, it := range n.items {
		if i > 0 && l.compare(n.items[i-1].key, it.key) >= 0 {
			return fmt.Errorf("%w: keys %v and %v out of order at depth %d",
				ErrCorrupted, n.items[i-1].key, it.key, depth)
		}
		if (lo != nil && l.compare(*lo, it.key) >= 0) || (hi != nil && l.compare(it.key, *hi) >= 0) {
			return fmt.Errorf("%w: key %v at depth %d escapes its parent's range",
				ErrCorrupted, it.key, depth)
		}
	}

	if n.isLeaf() {
		if len(n.children) != 0 {
			return fmt.Errorf("%w: leaf at depth %d has %d children", ErrCorrupted, depth, len(n.children))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaves at depths %d and %d", ErrCorrupted, v.leafDepth, depth)
		}
		return nil
	}

	if len(n.children) != len(n.items)+1 {
		return fmt.Errorf("%w: internal node at depth %d has %d keys and %d children",
			ErrCorrupted, depth, len(n.items), len(n.children))
	}
	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.items[i-1].key
		}
		if i < len(n.items) {
			childHi = &n.items[i].key
		}
		if err := v.walk(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
