package canopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The audit itself must catch hand-corrupted trees, otherwise the property
// tests built on it prove nothing.
func Test_check_detectsBrokenTrees(t *testing.T) {
	t.Run("stale balance tag", func(t *testing.T) {
		tree := intTreeOf(2, 1, 3)
		tree.root.balance = leftHeavy

		err := tree.check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tag mismatch")
	})

	t.Run("height difference above one", func(t *testing.T) {
		// hand-built left spine 3-2-1 that no insert would produce
		tree := NewOrdered[int, string]()
		tree.root = &node[int, string]{
			key:     3,
			balance: leftHeavy,
			left: &node[int, string]{
				key:     2,
				balance: leftHeavy,
				left:    &node[int, string]{key: 1, balance: even},
			},
		}
		tree.count = 3

		err := tree.check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "height violation")
	})

	t.Run("order violation", func(t *testing.T) {
		tree := intTreeOf(2, 1, 3)
		tree.root.right.key = 0

		err := tree.check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order violation")
	})

	t.Run("count mismatch", func(t *testing.T) {
		tree := intTreeOf(2, 1, 3)
		tree.count = 5

		err := tree.check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count mismatch")
	})
}

func Test_balanceTag_String(t *testing.T) {
	assert.Equal(t, "-", leftHeavy.String())
	assert.Equal(t, "=", even.String())
	assert.Equal(t, "+", rightHeavy.String())
}
