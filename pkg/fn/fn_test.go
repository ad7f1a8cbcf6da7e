package fn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/typekit/pkg/fn"
)

func TestPredicateCombinators(t *testing.T) {
	t.Parallel()

	even := fn.Predicate[int](func(v int) bool { return v%2 == 0 })
	positive := fn.Predicate[int](func(v int) bool { return v > 0 })

	t.Run("and", func(t *testing.T) {
		p := even.And(positive)
		assert.True(t, p(4))
		assert.False(t, p(-4))
		assert.False(t, p(3))
	})

	t.Run("and short-circuits", func(t *testing.T) {
		called := false
		tracking := fn.Predicate[int](func(int) bool { called = true; return true })
		even.And(tracking)(3)
		assert.False(t, called)
	})

	t.Run("or", func(t *testing.T) {
		p := even.Or(positive)
		assert.True(t, p(3))
		assert.True(t, p(-4))
		assert.False(t, p(-3))
	})

	t.Run("or short-circuits", func(t *testing.T) {
		called := false
		tracking := fn.Predicate[int](func(int) bool { called = true; return false })
		even.Or(tracking)(4)
		assert.False(t, called)
	})

	t.Run("negate", func(t *testing.T) {
		odd := even.Negate()
		assert.True(t, odd(3))
		assert.False(t, odd(4))
	})
}

func TestConsumerAndThen(t *testing.T) {
	t.Parallel()

	var order []string
	first := fn.Consumer[string](func(v string) { order = append(order, "first:"+v) })
	second := fn.Consumer[string](func(v string) { order = append(order, "second:"+v) })

	first.AndThen(second)("x")
	assert.Equal(t, []string{"first:x", "second:x"}, order)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	double := fn.Function[int, int](func(v int) int { return v * 2 })
	describe := fn.Function[int, string](func(v int) string {
		return strings.Repeat("*", v)
	})

	t.Run("applies the second argument first", func(t *testing.T) {
		f := fn.Compose(describe, double)
		assert.Equal(t, "******", f(3))
	})

	t.Run("then applies the first argument first", func(t *testing.T) {
		f := fn.Then(double, describe)
		assert.Equal(t, "******", f(3))
	})

	t.Run("then mirrors compose with flipped arguments", func(t *testing.T) {
		inc := fn.Function[int, int](func(v int) int { return v + 1 })
		for _, v := range []int{-1, 0, 5} {
			assert.Equal(t, fn.Compose(describe, inc)(v+1), fn.Then(inc, describe)(v+1))
		}
	})
}

func TestIdentityAndConstant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, fn.Identity[int]()(42))
	assert.Equal(t, "x", fn.Constant("x")())
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("applies operators left to right", func(t *testing.T) {
		normalize := fn.Chain(strings.TrimSpace, strings.ToLower)
		assert.Equal(t, "hello", normalize("  HeLLo  "))
	})

	t.Run("empty chain is identity", func(t *testing.T) {
		assert.Equal(t, "x", fn.Chain[string]()("x"))
	})
}
