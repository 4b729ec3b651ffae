package vecz

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"last_element", []int{1, 2, 3}, []int{1, 2, 4}, -1},
		{"prefix", []int{1, 2}, []int{1, 2, 3}, -1},
		{"first_element", []int{2}, []int{1, 9, 9}, 1},
		{"empty", nil, nil, 0},
		{"empty_prefix", nil, []int{0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := of(t, tt.a...), of(t, tt.b...)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a))

			assert.Equal(t, tt.want == 0, Equal(a, b))
			assert.Equal(t, tt.want != 0, NotEqual(a, b))
			assert.Equal(t, tt.want < 0, Less(a, b))
			assert.Equal(t, tt.want <= 0, LessEqual(a, b))
			assert.Equal(t, tt.want > 0, Greater(a, b))
			assert.Equal(t, tt.want >= 0, GreaterEqual(a, b))
		})
	}
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := of(t, 1, 2)
	b := New[int]()
	require.NoError(t, b.Reserve(8))
	require.NoError(t, b.Append(1, 2, 3))
	b.PopBack()

	assert.True(t, Equal(a, b))
	assert.True(t, LessEqual(a, b))
	assert.True(t, GreaterEqual(a, b))
}

func TestCompareFunc(t *testing.T) {
	type user struct {
		Name string
		Tags []string
	}
	a := of(t, user{"alice", []string{"x"}}, user{"bob", nil})
	b := of(t, user{"Alice", []string{"x"}}, user{"Bob", nil})

	sameName := func(x, y user) bool { return strings.EqualFold(x.Name, y.Name) }
	assert.True(t, EqualFunc(a, b, sameName))

	byName := func(x, y user) int { return strings.Compare(x.Name, y.Name) }
	assert.Equal(t, 1, CompareFunc(a, b, byName))
	assert.Equal(t, 0, CompareFunc(a, a, byName))
}

func TestCompareNaN(t *testing.T) {
	nan := of(t, math.NaN())
	one := of(t, 1.0)

	assert.False(t, Less(nan, one))
	assert.False(t, Less(one, nan))
	assert.Equal(t, 0, Compare(nan, one))
	assert.True(t, LessEqual(nan, one))
	assert.True(t, GreaterEqual(nan, one))

	assert.True(t, Less(of(t, math.NaN(), 1), of(t, math.NaN(), 2)))
	assert.False(t, Equal(nan, nan), "NaN never equals itself")
}
