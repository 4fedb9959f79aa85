package ordmap_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/ehsanranjbar/reportutils/internal/ordmap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := ordmap.New[string, int]()
	require.NoError(t, m.Add("c", 3))
	require.NoError(t, m.Add("a", 1))
	require.NoError(t, m.Add("b", 2))

	t.Run("Duplicate", func(t *testing.T) {
		err := m.Add("a", 10)
		require.ErrorIs(t, err, ordmap.ErrKeyExists)

		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, v)
		require.Equal(t, 3, m.Len())
	})

	t.Run("Order", func(t *testing.T) {
		require.Equal(t, []string{"c", "a", "b"}, slices.Collect(m.Keys()))
		require.Equal(t, []int{3, 1, 2}, slices.Collect(m.Values()))
		require.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, maps.Collect(m.Iter()))
	})

	t.Run("Break", func(t *testing.T) {
		var keys []string
		for k := range m.Iter() {
			keys = append(keys, k)
			if len(keys) == 2 {
				break
			}
		}
		require.Equal(t, []string{"c", "a"}, keys)
	})

	t.Run("Missing", func(t *testing.T) {
		_, ok := m.Get("z")
		require.False(t, ok)
	})
}
