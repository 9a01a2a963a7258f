package btree

// counters is bumped by the node operations of a single tree.
type counters struct {
	nodes           int
	splits          uint64
	merges          uint64
	borrowsFromPrev uint64
	borrowsFromNext uint64
	rootGrowths     uint64
	rootShrinks     uint64
}

// Stats is a point-in-time snapshot of a tree's shape and of the structural
// work it has done since it was created.
type Stats struct {
	Keys   int // Number of keys stored.
	Height int // Levels from root to leaves, 0 for an empty tree.
	Nodes  int // Live nodes.

	Splits          uint64 // Nodes split while inserting, root splits included.
	Merges          uint64 // Sibling pairs fused while deleting.
	BorrowsFromPrev uint64 // Rotations from a left sibling.
	BorrowsFromNext uint64 // Rotations from a right sibling.
	RootGrowths     uint64 // Times the tree grew a level.
	RootShrinks     uint64 // Times the tree lost a level or became empty.
}
