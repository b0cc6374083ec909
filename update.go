package canopy

// Update applies fn to the value stored under key and returns the resulting
// tree. When the key is absent the receiver itself is returned. Update only
// rebuilds the path to the key: it never moves a node, never changes a
// balance tag and never rotates, since replacing a value cannot change any
// height.
func (t *Tree[K, V]) Update(key K, fn func(V) V) *Tree[K, V] {
	root, ok := update(t.cmp, t.root, key, fn)
	if !ok {
		return t
	}
	return &Tree[K, V]{
		root:  root,
		cmp:   t.cmp,
		count: t.count,
	}
}

func update[K, V any](cmp Comparator[K], p *node[K, V], key K, fn func(V) V) (*node[K, V], bool) {
	if p == nil {
		return nil, false
	}

	switch c := cmp(key, p.key); {
	case c < 0:
		l, ok := update(cmp, p.left, key, fn)
		if !ok {
			return nil, false
		}
		p = p.clone()
		p.left = l
		return p, true
	case c > 0:
		r, ok := update(cmp, p.right, key, fn)
		if !ok {
			return nil, false
		}
		p = p.clone()
		p.right = r
		return p, true
	default:
		p = p.clone()
		p.value = fn(p.value)
		return p, true
	}
}
