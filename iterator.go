package canopy

import "iter"

// All ranges over the entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.inorder(yield)
	}
}

func (p *node[K, V]) inorder(yield func(K, V) bool) bool {
	if p == nil {
		return true
	}
	return p.left.inorder(yield) &&
		yield(p.key, p.value) &&
		p.right.inorder(yield)
}

// Min returns the entry with the lowest key, or false on an empty tree.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	p := t.root
	if p == nil {
		return Entry[K, V]{}, false
	}
	for p.left != nil {
		p = p.left
	}
	return Entry[K, V]{Key: p.key, Value: p.value}, true
}

// Max returns the entry with the highest key, or false on an empty tree.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	p := t.root
	if p == nil {
		return Entry[K, V]{}, false
	}
	for p.right != nil {
		p = p.right
	}
	return Entry[K, V]{Key: p.key, Value: p.value}, true
}
