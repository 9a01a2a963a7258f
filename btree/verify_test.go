package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *BTree[int, string])
		want    string
	}{
		{
			name: "keys out of order",
			corrupt: func(tree *BTree[int, string]) {
				leaf := tree.root.children[0]
				leaf.items[0], leaf.items[1] = leaf.items[1], leaf.items[0]
			},
			want: "out of order",
		},
		{
			name: "key outside its parent's range",
			corrupt: func(tree *BTree[int, string]) {
				tree.root.children[2].items[0].key = 1
			},
			want: "escapes",
		},
		{
			name: "underfull node",
			corrupt: func(tree *BTree[int, string]) {
				tree.root.children[1].items = nil
			},
			want: "min 1",
		},
		{
			name: "overfull node",
			corrupt: func(tree *BTree[int, string]) {
				tree.root.children[0].items = append(tree.root.children[0].items, item[int, string]{8, ""}, item[int, string]{9, ""})
			},
			want: "max 3",
		},
		{
			name: "missing child",
			corrupt: func(tree *BTree[int, string]) {
				tree.root.children = tree.root.children[:2]
			},
			want: "children",
		},
		{
			name: "wrong length",
			corrupt: func(tree *BTree[int, string]) {
				tree.length++
			},
			want: "tree reports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := setup(t, 4, 10, 20, 5, 6, 12, 30, 7, 17)
			require.NoError(t, tree.Verify())

			tt.corrupt(tree)

			err := tree.Verify()
			assert.ErrorIs(t, err, ErrCorrupted)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestVerifyUnevenLeafDepth(t *testing.T) {
	tree := setup(t, 4, 10, 20, 5, 6, 12, 30, 7, 17)
	l := tree.layout
	tree.root.children[2] = newTestInternal(l, []int{30}, newTestLeaf(l, 25), newTestLeaf(l, 35))
	l.stats.nodes += 2

	err := tree.Verify()
	assert.ErrorIs(t, err, ErrCorrupted)
	assert.ErrorContains(t, err, "leaves at depths")
}

func TestVerifyEmptyTree(t *testing.T) {
	tree := setup(t, 4)
	assert.NoError(t, tree.Verify())

	tree.length = 3
	assert.ErrorIs(t, tree.Verify(), ErrCorrupted)
}
