package iters_test

import (
	"fmt"
	"testing"

	"github.com/ehsanranjbar/reportutils/iters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groups(gs ...[]string) *iters.SliceIterator[iters.ValueIterator[string]] {
	its := make([]iters.ValueIterator[string], len(gs))
	for i, g := range gs {
		its[i] = iters.Slice(g)
	}
	return iters.Slice(its)
}

func TestFlatten(t *testing.T) {
	flatten := iters.Flatten[string](groups([]string{"a", "b"}, []string{"c"}, []string{"d", "e", "f"}))
	defer flatten.Close()

	var values []string
	for flatten.Rewind(); flatten.Valid(); flatten.Next() {
		v, err := flatten.Value()
		require.NoError(t, err)
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, values)

	again, err := iters.Collect(flatten)
	require.NoError(t, err)
	assert.Equal(t, values, again)
}

func TestFlattenSkipsEmpty(t *testing.T) {
	flatten := iters.Flatten[string](groups(nil, []string{"a"}, []string{}, nil, []string{"b"}, nil))
	defer flatten.Close()

	values, err := iters.Collect(flatten)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestFlattenAllEmpty(t *testing.T) {
	t.Run("NoGroups", func(t *testing.T) {
		flatten := iters.Flatten[string](groups())
		flatten.Rewind()
		require.False(t, flatten.Valid())
	})

	t.Run("EmptyGroups", func(t *testing.T) {
		flatten := iters.Flatten[string](groups(nil, []string{}))
		flatten.Rewind()
		require.False(t, flatten.Valid())
	})
}

func TestFlattenClosesInner(t *testing.T) {
	a := NewMockIterator([]int{1})
	b := NewMockIterator([]int{2})
	flatten := iters.Flatten[int](iters.Slice([]iters.ValueIterator[int]{a, b}))

	flatten.Rewind()
	flatten.Next()
	require.True(t, a.closed)
	require.False(t, b.closed)

	flatten.Close()
	require.True(t, b.closed)
}

func TestFlattenBaseError(t *testing.T) {
	base := iters.Map(iters.Slice([]int{0, 1, 2}), func(v int) (iters.ValueIterator[int], error) {
		if v == 1 {
			return nil, fmt.Errorf("broken group %d", v)
		}
		return iters.Slice([]int{v}), nil
	})
	flatten := iters.Flatten[int](base)
	defer flatten.Close()

	_, err := iters.Collect(flatten)
	require.EqualError(t, err, "broken group 1")

	var values []int
	var errs int
	for flatten.Rewind(); flatten.Valid(); flatten.Next() {
		v, err := flatten.Value()
		if err != nil {
			errs++
			continue
		}
		values = append(values, v)
	}
	require.Equal(t, 1, errs)
	require.Equal(t, []int{0, 2}, values)
}
