package boundedpq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopOrdersByWeight(t *testing.T) {
	q := New[string](10)
	require.NoError(t, q.Push("c", 5))
	require.NoError(t, q.Push("a", 1))
	require.NoError(t, q.Push("b", 3))

	require.Equal(t, 1, q.TopWeight())
	require.Equal(t, "a", q.Pop())
	require.Equal(t, 3, q.TopWeight())
	require.Equal(t, "b", q.Pop())
	require.Equal(t, "c", q.Pop())
	require.True(t, q.Empty())
}

func TestPushRejectsOutOfRangeWeight(t *testing.T) {
	q := New[int](4)
	require.ErrorIs(t, q.Push(1, -1), ErrWeightOutOfRange)
	require.ErrorIs(t, q.Push(1, 5), ErrWeightOutOfRange)
	require.NoError(t, q.Push(1, 4))
}

func TestSameWeightLIFO(t *testing.T) {
	q := New[int](1)
	require.NoError(t, q.Push(1, 0))
	require.NoError(t, q.Push(2, 0))
	require.NoError(t, q.Push(3, 0))

	require.Equal(t, 3, q.Pop())
	require.Equal(t, 2, q.Pop())
	require.Equal(t, 1, q.Pop())
}

func TestResetAllowsReuse(t *testing.T) {
	q := New[int](3)
	require.NoError(t, q.Push(1, 2))
	require.NoError(t, q.Push(2, 0))
	q.Reset()

	require.True(t, q.Empty())
	require.Equal(t, 0, q.Size())

	require.NoError(t, q.Push(9, 1))
	require.Equal(t, 1, q.TopWeight())
	require.Equal(t, 9, q.Pop())
}

func TestSizeTracksPushesAndPops(t *testing.T) {
	q := New[int](5)
	require.Equal(t, 0, q.Size())
	require.NoError(t, q.Push(1, 1))
	require.NoError(t, q.Push(2, 2))
	require.Equal(t, 2, q.Size())
	q.Pop()
	require.Equal(t, 1, q.Size())
}
