package collections

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adobaai/vecz"
	"github.com/adobaai/vecz/internal/heap"
	"github.com/adobaai/vecz/testingz"
)

func ints(t *testing.T, values ...int) *vecz.Vector[int] {
	return testingz.R(vecz.Of(values...)).Must(t)
}

func TestFilter(t *testing.T) {
	list := ints(t, 1, 2, 3, 4, 5, 6)
	even := testingz.R(Filter(list, func(it int) bool {
		return it%2 == 0
	})).Must(t)
	assert.Equal(t, []int{2, 4, 6}, even.Slice())
	assert.Equal(t, 3, even.Cap())
	assert.Equal(t, 6, list.Len())
}

func TestMap(t *testing.T) {
	ids := ints(t, 1, 2, 3, 4)
	idStrs := testingz.R(Map(ids, func(it int) string { return strconv.Itoa(it) })).Must(t)
	assert.Equal(t, []string{"1", "2", "3", "4"}, idStrs.Slice())
	assert.Equal(t, 4, idStrs.Cap())

	empty := testingz.R(Map(vecz.New[int](), strconv.Itoa)).Must(t)
	assert.True(t, empty.IsEmpty())

	defer heap.SetLimit(3)()
	testingz.R(Map(ids, strconv.Itoa)).ErrorIs(t, vecz.ErrAllocation)
}

func TestReduce(t *testing.T) {
	sum := Reduce(ints(t, 1, 2, 3), func(agg, it int) int { return agg + it }, 10)
	assert.Equal(t, 16, sum)
}

func TestSearch(t *testing.T) {
	list := ints(t, 3, 1, 3)
	assert.True(t, Contains(list, 1))
	assert.False(t, Contains(list, 2))
	assert.Equal(t, 0, IndexOf(list, 3))
	assert.Equal(t, -1, IndexOf(list, 2))

	list.PopBack()
	list.PopBack()
	assert.False(t, Contains(list, 1), "popped elements are not searched")
}

func TestUniq(t *testing.T) {
	u := testingz.R(Uniq(ints(t, 3, 1, 3, 2, 1))).Must(t)
	assert.Equal(t, []int{3, 1, 2}, u.Slice())
}

func TestChunk(t *testing.T) {
	chunks := testingz.R(Chunk(ints(t, 1, 2, 3, 4, 5), 2)).Must(t)
	require.Equal(t, 3, chunks.Len())

	var got [][]int
	for c := range chunks.Values() {
		got = append(got, c.Slice())
	}
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
}

func TestChunkSize(t *testing.T) {
	list := ints(t, 1, 2, 3)
	for _, size := range []int{0, -1} {
		testingz.R(Chunk(list, size)).ErrorIs(t, ErrChunkSize)
	}

	empty := testingz.R(Chunk(vecz.New[int](), 2)).Must(t)
	assert.True(t, empty.IsEmpty())
}
