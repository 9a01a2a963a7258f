package btree

import "errors"

var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvalidDegree = errors.New("max degree must be at least 3")
	ErrCorrupted     = errors.New("tree invariant violated")
)
