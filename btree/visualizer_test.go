package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualize(t *testing.T) {
	tree := setup(t, 4)
	v := &Visualizer[int, string]{Tree: tree}
	assert.Equal(t, "(empty)", v.Visualize())

	tree.Insert(1, "one")
	assert.Equal(t, "[1]", v.Visualize())

	for _, k := range []int{2, 3, 4, 5, 6, 7, 8, 9, 10} {
		tree.Insert(k, "")
	}
	assert.Equal(t, "[4]\n[2] [6 8]\n[1] [3] [5] [7] [9 10]", v.Visualize())
}

func TestVisualizeNilTree(t *testing.T) {
	v := &Visualizer[int, string]{}
	assert.Equal(t, "(empty)", v.Visualize())
}
