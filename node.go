package canopy

// balanceTag records which subtree of a node is the taller one. The height
// difference between the two subtrees of any node never exceeds one.
type balanceTag int8

const (
	leftHeavy  balanceTag = -1 // height(left) == height(right) + 1
	even       balanceTag = 0  // height(left) == height(right)
	rightHeavy balanceTag = +1 // height(right) == height(left) + 1
)

func (b balanceTag) String() string {
	switch b {
	case leftHeavy:
		return "-"
	case rightHeavy:
		return "+"
	default:
		return "="
	}
}

// node is a single key value pair in the tree. Nodes are never mutated after
// they become reachable from a published tree handle; every write rebuilds
// the nodes along the modified path.
type node[K, V any] struct {
	left    *node[K, V]
	right   *node[K, V]
	key     K
	value   V
	balance balanceTag
}

// clone makes a private copy of a node so the path being rebuilt can be
// relinked without touching the published version.
func (p *node[K, V]) clone() *node[K, V] {
	n := *p
	return &n
}

// height walks the taller branch of each node, so it costs O(height) rather
// than visiting the whole subtree.
func (p *node[K, V]) height() int {
	h := 0
	for p != nil {
		h++
		if p.balance == rightHeavy {
			p = p.right
		} else {
			p = p.left
		}
	}
	return h
}
