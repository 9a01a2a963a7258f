package cli

import (
	"fmt"
	"io"

	"btreekit/btree"
)

var (
	demoInserts = []int{10, 20, 5, 6, 12, 30, 7, 17}
	demoDeletes = []int{6, 13, 7, 4, 2, 16}
)

// RunDemo replays a fixed sequence of inserts and deletes on t and prints the
// traversal after every step.
func RunDemo(w io.Writer, t *btree.BTree[int, string]) {
	for _, k := range demoInserts {
		t.Insert(k, fmt.Sprint(k))
	}
	fmt.Fprintf(w, "Traversal of the constructed tree is %s\n", t)

	for _, k := range demoDeletes {
		if !t.Delete(k) {
			noteColor.Fprintf(w, "The key %d is not present in the tree\n", k)
		}
		fmt.Fprintf(w, "Traversal of the tree after removing %d is %s\n", k, t)
	}
}
