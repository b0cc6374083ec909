package canopy

// Entry is one key value pair of a tree, as produced by ToList and consumed
// by FromList.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Fold reduces the tree in-order, visiting the rightmost subtree first, so
// an accumulator built by prepending comes out in ascending key order. Fold
// is a free function because Go methods cannot introduce the accumulator
// type parameter.
func Fold[K, V, A any](t *Tree[K, V], step func(K, V, A) A, init A) A {
	return fold(t.root, step, init)
}

func fold[K, V, A any](p *node[K, V], step func(K, V, A) A, acc A) A {
	if p == nil {
		return acc
	}
	acc = fold(p.right, step, acc)
	acc = step(p.key, p.value, acc)
	return fold(p.left, step, acc)
}

// ToList returns all entries in ascending key order.
func (t *Tree[K, V]) ToList() []Entry[K, V] {
	i := t.count
	list := make([]Entry[K, V], t.count)
	Fold(t, func(k K, v V, _ struct{}) struct{} {
		i--
		list[i] = Entry[K, V]{Key: k, Value: v}
		return struct{}{}
	}, struct{}{})
	return list
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	i := t.count
	keys := make([]K, t.count)
	Fold(t, func(k K, _ V, _ struct{}) struct{} {
		i--
		keys[i] = k
		return struct{}{}
	}, struct{}{})
	return keys
}

// Values returns all values in ascending order of their keys.
func (t *Tree[K, V]) Values() []V {
	i := t.count
	values := make([]V, t.count)
	Fold(t, func(_ K, v V, _ struct{}) struct{} {
		i--
		values[i] = v
		return struct{}{}
	}, struct{}{})
	return values
}

// FindKeyWhere returns the smallest key whose value satisfies pred. The
// second result is false when no value matches.
func (t *Tree[K, V]) FindKeyWhere(pred func(V) bool) (K, bool) {
	var (
		found K
		ok    bool
	)
	for k, v := range t.All() {
		if pred(v) {
			found, ok = k, true
			break
		}
	}
	return found, ok
}

// ContainsValue reports whether any entry of t holds value. A free function
// since it needs equality on V, which Tree itself does not require.
func ContainsValue[K any, V comparable](t *Tree[K, V], value V) bool {
	for _, v := range t.All() {
		if v == value {
			return true
		}
	}
	return false
}

// FromList builds a tree by inserting entries in order; on duplicate keys
// the last value wins. O(n log n), there is no batch construction path.
func FromList[K, V any](cmp Comparator[K], entries []Entry[K, V]) *Tree[K, V] {
	t := New[K, V](cmp)
	for _, e := range entries {
		t = t.Insert(e.Key, e.Value)
	}
	return t
}
