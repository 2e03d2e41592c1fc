package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePiles(t *testing.T) {
	t.Run("empty board favours the side to move", func(t *testing.T) {
		require.Equal(t, 100, EvaluatePiles(Piles{0, 0, 0, 0}, true))
		require.Equal(t, -100, EvaluatePiles(Piles{0, 0, 0, 0}, false))
	})

	t.Run("odd number of single stones is bad for the side to move", func(t *testing.T) {
		require.Equal(t, -10, EvaluatePiles(Piles{1, 0, 1, 1}, true))
		require.Equal(t, 10, EvaluatePiles(Piles{1, 0, 1, 1}, false))
	})

	t.Run("even number of single stones is good for the side to move", func(t *testing.T) {
		require.Equal(t, 10, EvaluatePiles(Piles{1, 1, 0, 0}, true))
		require.Equal(t, -10, EvaluatePiles(Piles{1, 1, 0, 0}, false))
	})

	t.Run("single stone piles take precedence over the nim-sum", func(t *testing.T) {
		// [1 1] has nim-sum 0 but is scored by parity
		require.Equal(t, 0, Piles{1, 1}.NimSum())
		require.Equal(t, 10, EvaluatePiles(Piles{1, 1}, true))
	})

	t.Run("zero nim-sum", func(t *testing.T) {
		require.Equal(t, 1, EvaluatePiles(Piles{1, 3, 5, 7}, true))
		require.Equal(t, -1, EvaluatePiles(Piles{2, 2}, false))
	})

	t.Run("nonzero nim-sum is neutral", func(t *testing.T) {
		require.Equal(t, 0, EvaluatePiles(Piles{1, 3, 5, 6}, true))
		require.Equal(t, 0, EvaluatePiles(Piles{0, 2}, false))
	})
}
