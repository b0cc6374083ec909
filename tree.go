package canopy

import (
	"golang.org/x/exp/constraints"
)

// Comparator is a three-way comparison over keys: negative when a < b, zero
// when a == b, positive when a > b. It must implement a strict total order.
type Comparator[K any] func(a, b K) int

// Ordered is the Comparator for any naturally ordered key type.
func Ordered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Tree is a handle to one version of the dictionary. A handle is immutable:
// Insert and Update return a new handle and leave the receiver untouched, so
// any number of goroutines may read distinct handles concurrently. Keys are
// unique per tree as decided by the comparator.
type Tree[K, V any] struct {
	root  *node[K, V]
	cmp   Comparator[K]
	count int
}

// New creates an empty tree ordered by cmp.
func New[K, V any](cmp Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		cmp:   cmp,
		count: 0,
	}
}

// NewOrdered creates an empty tree over a naturally ordered key type.
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V] {
	return New[K, V](Ordered[K])
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Size is the number of entries currently in the tree.
func (t *Tree[K, V]) Size() int {
	return t.count
}

// Height is the number of nodes on the longest root-to-leaf path. An empty
// tree has height 0; with n entries the height never exceeds
// 1.4405*log2(n+2).
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}
