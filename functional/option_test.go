package functional_test

import (
	"testing"

	"github.com/authcorp/optics/functional"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestOptionBasics(t *testing.T) {
	some := functional.Some(42)
	none := functional.None[int]()

	assert.True(t, some.IsSome())
	assert.True(t, none.IsNone())
	assert.Equal(t, 42, some.Unwrap())
	assert.Equal(t, 7, none.UnwrapOr(7))
	assert.Equal(t, 9, none.UnwrapOrElse(func() int { return 9 }))
	assert.Panics(t, func() { none.Unwrap() })

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	assert.True(t, some.Filter(func(n int) bool { return n > 40 }).IsSome())
	assert.True(t, some.Filter(func(n int) bool { return n > 50 }).IsNone())
	assert.Equal(t, []int{42}, some.ToSlice())
	assert.Empty(t, none.ToSlice())
	assert.Equal(t, some, none.OrElse(some))
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.Equal(t, functional.Some(1), functional.FromOk(m["a"], true))

	v, ok := m["b"]
	assert.True(t, functional.FromOk(v, ok).IsNone())
}

// TestOptionMapIdentity verifies MapOption(o, id) == o.
func TestOptionMapIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hasSome := rapid.Bool().Draw(t, "hasSome")
		value := rapid.Int().Draw(t, "value")

		opt := functional.FromOk(value, hasSome)
		mapped := functional.MapOption(opt, functional.IdentityFunc[int])

		if !functional.OptionEqual(opt, mapped, functional.Equal[int]) {
			t.Fatalf("identity law violated: %v != %v", opt, mapped)
		}
	})
}

// TestOptionMapComposition verifies MapOption(MapOption(o, f), g) == MapOption(o, g∘f).
func TestOptionMapComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int().Draw(t, "value")
		addend := rapid.IntRange(1, 100).Draw(t, "addend")
		multiplier := rapid.IntRange(1, 10).Draw(t, "multiplier")

		f := func(x int) int { return x + addend }
		g := func(x int) int { return x * multiplier }

		opt := functional.Some(value)
		left := functional.MapOption(functional.MapOption(opt, f), g)
		right := functional.MapOption(opt, functional.ComposeFunc(f, g))

		if left.Unwrap() != right.Unwrap() {
			t.Fatalf("composition law violated: %d != %d", left.Unwrap(), right.Unwrap())
		}
	})
}

func TestEither(t *testing.T) {
	r := functional.Right[string](3)
	l := functional.Left[string, int]("boom")

	assert.True(t, r.IsRight())
	assert.True(t, l.IsLeft())
	assert.Equal(t, 3, r.RightValue())
	assert.Equal(t, "boom", l.LeftValue())
	assert.Panics(t, func() { r.LeftValue() })
	assert.Panics(t, func() { l.RightValue() })

	assert.Equal(t, functional.Some(3), r.RightOption())
	assert.True(t, r.LeftOption().IsNone())
	assert.Equal(t, functional.Left[int, string](3), r.Swap())

	doubled := functional.MapEitherRight(r, func(n int) int { return n * 2 })
	assert.Equal(t, 6, doubled.RightValue())
	assert.Equal(t, l, functional.MapEitherRight(l, func(n int) int { return n * 2 }))

	size := functional.MatchEither(l, func(s string) int { return len(s) }, func(n int) int { return n })
	assert.Equal(t, 4, size)

	assert.True(t, functional.EitherEqual(r, functional.Right[string](3), functional.Equal[string], functional.Equal[int]))
	assert.False(t, functional.EitherEqual(r, l, functional.Equal[string], functional.Equal[int]))
}

func TestPair(t *testing.T) {
	p := functional.NewPair("a", 1)
	a, n := p.Unpack()
	assert.Equal(t, "a", a)
	assert.Equal(t, 1, n)
	assert.Equal(t, functional.NewPair(1, "a"), p.Swap())
	assert.Equal(t, functional.NewPair("a", 2), functional.MapPairSecond(p, func(n int) int { return n + 1 }))
	assert.Equal(t, functional.NewPair(1, 1), functional.MapPairFirst(p, func(s string) int { return len(s) }))
}
