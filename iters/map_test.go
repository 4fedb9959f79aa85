package iters_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/ehsanranjbar/reportutils/iters"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	it := iters.Map(iters.Slice([]int{1, 2}), func(v int) (string, error) {
		return strconv.Itoa(v * 10), nil
	})
	defer it.Close()

	collected, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []string{"10", "20"}, collected)

	it.Rewind()
	it.Next()
	require.Equal(t, 1, it.Key())
}

func TestMapError(t *testing.T) {
	it := iters.Map(iters.Slice([]int{1}), func(v int) (string, error) {
		return "", fmt.Errorf("bad value %d", v)
	})

	_, err := iters.Collect(it)
	require.EqualError(t, err, "bad value 1")
}
