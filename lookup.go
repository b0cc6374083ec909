package canopy

import "github.com/pkg/errors"

// Lookup finds the value associated with key. The second result is false
// when the key is absent.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	p := t.root
	for p != nil {
		switch c := t.cmp(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p.value, true
		}
	}

	var zero V
	return zero, false
}

// Get is Lookup with an error result, for callers that thread errors rather
// than ok-booleans. Absence is reported as ErrKeyNotFound wrapped with the
// failing key.
func (t *Tree[K, V]) Get(key K) (V, error) {
	value, ok := t.Lookup(key)
	if !ok {
		return value, errors.Wrapf(ErrKeyNotFound, "get %v", key)
	}
	return value, nil
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	_, ok := t.Lookup(key)
	return ok
}
