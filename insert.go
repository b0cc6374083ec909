package canopy

// Insert associates key with value and returns the resulting tree. An
// existing key has its value replaced without moving any node or touching
// any balance tag. The receiver is left unchanged.
func (t *Tree[K, V]) Insert(key K, value V) *Tree[K, V] {
	root, added, _ := insert(t.cmp, t.root, key, value)
	count := t.count
	if added {
		count++
	}
	return &Tree[K, V]{
		root:  root,
		cmp:   t.cmp,
		count: count,
	}
}

// internal routine for Insert. Rebuilds the path down to the insertion point
// and reports two facts to the caller: added is true when a new key was
// created (rather than a value replaced), grew is true when the height of
// the returned subtree is one more than p's height. The grew signal is what
// drives the balance bookkeeping: a caller that absorbs the extra height
// (tag moves toward even, or a rotation fires) reports grew=false upward.
func insert[K, V any](cmp Comparator[K], p *node[K, V], key K, value V) (_ *node[K, V], added, grew bool) {
	if p == nil { // insert new node
		p = &node[K, V]{key: key, value: value, balance: even}
		return p, true, true
	}

	switch c := cmp(key, p.key); {
	case c < 0:
		l, added, grew := insert(cmp, p.left, key, value)
		p = p.clone()
		p.left = l
		if !grew {
			return p, added, false
		}

		// left branch has grown
		switch p.balance {
		case rightHeavy:
			p.balance = even
			return p, added, false
		case even:
			p.balance = leftHeavy
			return p, added, true
		default: // leftHeavy, rebalance
			return rotateRight(p), added, false
		}

	case c > 0:
		r, added, grew := insert(cmp, p.right, key, value)
		p = p.clone()
		p.right = r
		if !grew {
			return p, added, false
		}

		// right branch has grown
		switch p.balance {
		case leftHeavy:
			p.balance = even
			return p, added, false
		case even:
			p.balance = rightHeavy
			return p, added, true
		default: // rightHeavy, rebalance
			return rotateLeft(p), added, false
		}

	default: // equal key: replace value, same structure, same tag
		p = p.clone()
		p.value = value
		return p, false, false
	}
}

// rotateRight restores the invariant at p after its left branch grew while p
// was already left heavy. Only nodes rebuilt by the current insert are
// relinked (p, p.left, and in the double case p.left.right, which is fresh
// because a right-heavy grown child can only have grown on its right), so no
// published node is ever touched. The rotated subtree ends at the height it
// had before the triggering insert, hence the caller reports grew=false.
func rotateRight[K, V any](p *node[K, V]) *node[K, V] {
	p1 := p.left
	if p1.balance != rightHeavy {
		// single LL rotation. An even p1 cannot occur on an
		// insert-only history; it takes the same shape here.
		p.left = p1.right
		p1.right = p
		p.balance = even
		p1.balance = even
		return p1
	}

	// double LR rotation
	p2 := p1.right
	if p2 == nil {
		panic("canopy: rotateRight: left-right grandchild missing")
	}
	p1.right = p2.left
	p2.left = p1
	p.left = p2.right
	p2.right = p
	if p2.balance == leftHeavy {
		p.balance = rightHeavy
	} else {
		p.balance = even
	}
	if p2.balance == rightHeavy {
		p1.balance = leftHeavy
	} else {
		p1.balance = even
	}
	p2.balance = even
	return p2
}

// rotateLeft is the exact mirror of rotateRight: p's right branch grew while
// p was already right heavy.
func rotateLeft[K, V any](p *node[K, V]) *node[K, V] {
	p1 := p.right
	if p1.balance != leftHeavy {
		// single RR rotation
		p.right = p1.left
		p1.left = p
		p.balance = even
		p1.balance = even
		return p1
	}

	// double RL rotation
	p2 := p1.left
	if p2 == nil {
		panic("canopy: rotateLeft: right-left grandchild missing")
	}
	p1.left = p2.right
	p2.right = p1
	p.right = p2.left
	p2.left = p
	if p2.balance == rightHeavy {
		p.balance = leftHeavy
	} else {
		p.balance = even
	}
	if p2.balance == leftHeavy {
		p1.balance = rightHeavy
	} else {
		p1.balance = even
	}
	p2.balance = even
	return p2
}
