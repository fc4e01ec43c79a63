package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	t.Run("reports an ongoing game as zero", func(t *testing.T) {
		require.Zero(t, New().Outcome())
	})

	t.Run("reports the opponent's completed row as a loss for the mover", func(t *testing.T) {
		p := FromCells([]int8{
			-1, -1, -1,
			1, 1, 0,
			1, 0, 0,
		})
		require.Equal(t, -1.0, p.Outcome())
	})

	t.Run("reports a full board without lines as a small draw epsilon", func(t *testing.T) {
		p := FromCells([]int8{
			1, -1, 1,
			1, -1, -1,
			-1, 1, 1,
		})
		require.Equal(t, DrawValue, p.Outcome())
	})
}

func TestApply(t *testing.T) {
	t.Run("canonicalizes to the next mover's perspective", func(t *testing.T) {
		next := New().Apply(4)

		require.Equal(t, float32(-1), next.Encode()[4],
			"The previous mover's mark should read as the opponent's")
	})

	t.Run("does not mutate the original position", func(t *testing.T) {
		p := New()
		p.Apply(0)

		require.Equal(t, New().Key(), p.Key())
	})

	t.Run("panics on an occupied cell", func(t *testing.T) {
		next := New().Apply(0)
		require.Panics(t, func() {
			next.Apply(0)
		})
	})
}

func TestLegalMask(t *testing.T) {
	t.Run("marks exactly the empty cells", func(t *testing.T) {
		p := New().Apply(0).Apply(4)

		mask := p.LegalMask()

		require.Len(t, mask, ActionSize)
		require.False(t, mask[0])
		require.False(t, mask[4])
		for _, a := range []int{1, 2, 3, 5, 6, 7, 8} {
			require.True(t, mask[a])
		}
	})
}

func TestKey(t *testing.T) {
	t.Run("distinguishes positions", func(t *testing.T) {
		require.NotEqual(t, New().Apply(0).Key(), New().Apply(1).Key())
	})

	t.Run("is stable for equal positions", func(t *testing.T) {
		require.Equal(t, New().Apply(0).Apply(4).Key(), New().Apply(0).Apply(4).Key())
	})
}

func TestFromCells(t *testing.T) {
	t.Run("panics on a wrong cell count", func(t *testing.T) {
		require.Panics(t, func() {
			FromCells([]int8{1, 0})
		})
	})

	t.Run("panics on out-of-range values", func(t *testing.T) {
		require.Panics(t, func() {
			FromCells([]int8{2, 0, 0, 0, 0, 0, 0, 0, 0})
		})
	})
}
