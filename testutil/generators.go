// Package testutil provides rapid generators for property-based tests of
// optics and the data types they focus on.
package testutil

import (
	"unicode"

	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
		)
	})
}

// SeqGen generates fingertree sequences of up to maxLen elements.
func SeqGen[T any](elemGen *rapid.Generator[T], maxLen int) *rapid.Generator[fingertree.Seq[T]] {
	return rapid.Custom(func(t *rapid.T) fingertree.Seq[T] {
		return fingertree.FromSlice(rapid.SliceOfN(elemGen, 0, maxLen).Draw(t, "elems"))
	})
}

// MapGen generates maps with up to maxLen entries.
func MapGen[K comparable, V any](keyGen *rapid.Generator[K], valueGen *rapid.Generator[V], maxLen int) *rapid.Generator[map[K]V] {
	return rapid.MapOfN(keyGen, valueGen, 0, maxLen)
}

// SetGen generates sets with up to maxLen members.
func SetGen[T comparable](elemGen *rapid.Generator[T], maxLen int) *rapid.Generator[map[T]struct{}] {
	return rapid.MapOfN(elemGen, rapid.Just(struct{}{}), 0, maxLen)
}

// SmallIntGen generates integers in a range small enough to collide often.
func SmallIntGen() *rapid.Generator[int] {
	return rapid.IntRange(-100, 100)
}

// KeyGen generates short lowercase keys.
func KeyGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-e]{1,2}`)
}

// IntEndo generates functions from int to int: constants, shifts, scalings
// and the identity.
func IntEndo() *rapid.Generator[func(int) int] {
	return rapid.Custom(func(t *rapid.T) func(int) int {
		k := rapid.IntRange(-10, 10).Draw(t, "k")
		switch rapid.IntRange(0, 3).Draw(t, "shape") {
		case 0:
			return functional.IdentityFunc[int]
		case 1:
			return functional.ConstFunc[int](k)
		case 2:
			return func(x int) int { return x + k }
		default:
			return func(x int) int { return x * k }
		}
	})
}

// StringEndo generates functions from string to string.
func StringEndo() *rapid.Generator[func(string) string] {
	return rapid.Custom(func(t *rapid.T) func(string) string {
		s := rapid.StringN(0, 3, -1).Draw(t, "s")
		switch rapid.IntRange(0, 3).Draw(t, "shape") {
		case 0:
			return functional.IdentityFunc[string]
		case 1:
			return functional.ConstFunc[string](s)
		case 2:
			return func(x string) string { return x + s }
		default:
			return func(x string) string { return s + x }
		}
	})
}

// RuneEndo generates functions from rune to rune that always return valid
// runes.
func RuneEndo() *rapid.Generator[func(rune) rune] {
	return rapid.Custom(func(t *rapid.T) func(rune) rune {
		r := rapid.Rune().Draw(t, "r")
		switch rapid.IntRange(0, 3).Draw(t, "shape") {
		case 0:
			return functional.IdentityFunc[rune]
		case 1:
			return functional.ConstFunc[rune](r)
		case 2:
			return unicode.ToUpper
		default:
			return unicode.ToLower
		}
	})
}
