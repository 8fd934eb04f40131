package topk

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLessRetainsKSmallest(t *testing.T) {
	k := New[float64](3, Less[float64])
	for _, v := range []float64{5, 1, 9, 2, 8, 0, 7} {
		k.Push(v)
	}
	require.Equal(t, 3, k.Size())

	items := k.Items()
	sort.Float64s(items)
	require.Equal(t, []float64{0, 1, 2}, items)
}

func TestGreaterRetainsKLargest(t *testing.T) {
	k := New[int](3, Greater[int])
	for _, v := range []int{5, 1, 9, 2, 8, 0, 7} {
		k.Push(v)
	}
	items := k.Items()
	sort.Ints(items)
	require.Equal(t, []int{7, 8, 9}, items)
}

func TestBelowCapacityKeepsEverything(t *testing.T) {
	k := New[int](10, Less[int])
	k.Push(3)
	k.Push(1)
	require.Equal(t, 2, k.Size())
}

func TestNonPositiveCapacityClampsToOne(t *testing.T) {
	k := New[int](0, Less[int])
	k.Push(5)
	k.Push(1)
	require.Equal(t, 1, k.Size())
	require.Equal(t, 1, k.Top())
}

func TestResetEmptiesStructure(t *testing.T) {
	k := New[int](2, Less[int])
	k.Push(1)
	k.Push(2)
	k.Reset()
	require.Equal(t, 0, k.Size())
}
