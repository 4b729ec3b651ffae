package testingz

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

func TestResult(t *testing.T) {
	v := R(1, nil).Equal(t, 1).Must(t)
	assert.Equal(t, 1, v)

	R(2, nil).Do(t, func(t testing.TB, it int) {
		assert.Equal(t, 2, it)
	})

	errBoom := errors.New("boom")
	r := R(0, fmt.Errorf("wrapped: %w", errBoom)).ErrorIs(t, errBoom)
	assert.Zero(t, r.V())

	var ce *codeError
	R("", error(&codeError{7})).ErrorAs(t, &ce)
	assert.Equal(t, 7, ce.code)
}

func TestCollect(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Collect(slices.Values([]int{1, 2, 3})))
	assert.Nil(t, Collect(slices.Values([]int(nil))))

	ks, vs := Collect2(slices.All([]string{"a", "b"}))
	assert.Equal(t, []int{0, 1}, ks)
	assert.Equal(t, []string{"a", "b"}, vs)
}

func TestPanicsAs(t *testing.T) {
	err := PanicsAs[*codeError](t, func() {
		panic(&codeError{42})
	})
	assert.Equal(t, 42, err.code)
}
