package canopy

import (
	"fmt"
	"strings"
)

// to control the dump routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Dump renders the structure of the tree as ASCII, one node per line with
// its balance tag, right subtree above left. Intended for debugging and for
// shape comparison in tests; values are deliberately omitted so two trees
// with equal layout and tags dump identically.
func (t *Tree[K, V]) Dump() string {
	var sb strings.Builder
	dumpNode(&sb, t.root, "", atRoot)
	return sb.String()
}

func dumpNode[K, V any](sb *strings.Builder, p *node[K, V], prefix string, br branch) {
	if p == nil {
		return
	}

	pad := "       "
	if br == atLeft {
		pad = "|      "
	}
	dumpNode(sb, p.right, prefix+pad, atRight)

	switch br {
	case atRoot:
		fmt.Fprintf(sb, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(sb, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(sb, "%s/------+ ", prefix)
	}
	fmt.Fprintf(sb, "%v %v\n", p.key, p.balance)

	pad = "       "
	if br == atRight {
		pad = "|      "
	}
	dumpNode(sb, p.left, prefix+pad, atLeft)
}
