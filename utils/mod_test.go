package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"first", "second"}, "second"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
}

func TestParseInts(t *testing.T) {
	t.Run("parsing with spaces", func(t *testing.T) {
		got, err := ParseInts("1, 3,5 ,7")

		require.NoError(t, err)
		require.Equal(t, []int{1, 3, 5, 7}, got)
	})

	t.Run("rejecting a non-number", func(t *testing.T) {
		_, err := ParseInts("1,x")

		require.Error(t, err)
	})

	t.Run("rejecting an empty list", func(t *testing.T) {
		_, err := ParseInts(" ")

		require.Error(t, err)
	})
}
