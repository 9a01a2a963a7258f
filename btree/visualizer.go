package btree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	internalColor = color.New(color.FgCyan, color.Bold)
	leafColor     = color.New(color.FgGreen)
)

// Visualizer renders a tree one level per line, left to right, e.g.
//
//	[10 20]
//	[5 6 7] [12 17] [30]
//
// Internal nodes and leaves are colored differently when the output supports it.
type Visualizer[K, V any] struct {
	Tree *BTree[K, V]
}

func (v *Visualizer[K, V]) Visualize() string {
	if v.Tree == nil || v.Tree.root == nil {
		return "(empty)"
	}

	var sb strings.Builder
	level := []*node[K, V]{v.Tree.root}
	for len(level) > 0 {
		var next []*node[K, V]
		for i, n := range level {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(v.render(n))
			next = append(next, n.children...)
		}
		sb.WriteByte('\n')
		level = next
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (v *Visualizer[K, V]) render(n *node[K, V]) string {
	keys := make([]string, len(n.items))
	for i, it := range n.items {
		keys[i] = fmt.Sprint(it.key)
	}
	c := leafColor
	if !n.isLeaf() {
		c = internalColor
	}
	return c.Sprint("[" + strings.Join(keys, " ") + "]")
}
