package canopy

import "github.com/pkg/errors"

// check recomputes every subtree height and verifies the whole tree: the
// height difference at each node is at most one, each stored balance tag
// matches the true difference, keys are strictly ordered, and the entry
// count agrees with the handle. Used by tests after every mutation; any
// non-nil result means a bug in the insert bookkeeping.
func (t *Tree[K, V]) check() error {
	_, n, err := checkNode(t.cmp, t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return errors.Errorf("count mismatch: handle says %d, tree holds %d", t.count, n)
	}
	return nil
}

func checkNode[K, V any](cmp Comparator[K], p *node[K, V], lo, hi *K) (height, count int, err error) {
	if p == nil {
		return 0, 0, nil
	}

	if lo != nil && cmp(p.key, *lo) <= 0 {
		return 0, 0, errors.Errorf("order violation: key %v not above left bound %v", p.key, *lo)
	}
	if hi != nil && cmp(p.key, *hi) >= 0 {
		return 0, 0, errors.Errorf("order violation: key %v not below right bound %v", p.key, *hi)
	}

	lh, lc, err := checkNode(cmp, p.left, lo, &p.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := checkNode(cmp, p.right, &p.key, hi)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case lh-rh > 1 || rh-lh > 1:
		return 0, 0, errors.Errorf("height violation at key %v: left %d right %d", p.key, lh, rh)
	case lh == rh && p.balance != even:
		return 0, 0, errors.Errorf("tag mismatch at key %v: subtrees even, tag %v", p.key, p.balance)
	case lh == rh+1 && p.balance != leftHeavy:
		return 0, 0, errors.Errorf("tag mismatch at key %v: left taller, tag %v", p.key, p.balance)
	case rh == lh+1 && p.balance != rightHeavy:
		return 0, 0, errors.Errorf("tag mismatch at key %v: right taller, tag %v", p.key, p.balance)
	}

	h := lh
	if rh > h {
		h = rh
	}
	return h + 1, lc + rc + 1, nil
}
