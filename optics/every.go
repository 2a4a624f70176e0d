package optics

import (
	"cmp"
	"iter"
	"slices"

	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
)

// SliceTraversal visits every element of a slice from first to last.
func SliceTraversal[A any]() Traversal[[]A, A] {
	return NewTraversal(
		func(s []A) iter.Seq[A] { return slices.Values(s) },
		func(s []A, fn func(A) A) []A {
			out := make([]A, len(s))
			for i, a := range s {
				out[i] = fn(a)
			}
			return out
		},
	)
}

// StringTraversal visits every rune of a string from first to last.
// Invalid bytes are skipped and kept as they are.
func StringTraversal() Traversal[string, rune] {
	return NewTraversal(
		func(s string) iter.Seq[rune] {
			return func(yield func(rune) bool) {
				for _, r := range validRunes(s) {
					if !yield(r) {
						return
					}
				}
			}
		},
		func(s string, fn func(rune) rune) string {
			return mapRunes(s, func(_ int, r rune) rune { return fn(r) })
		},
	)
}

// SeqTraversal visits every element of a fingertree sequence from first to last.
func SeqTraversal[A any]() Traversal[fingertree.Seq[A], A] {
	return NewTraversal(fingertree.Seq[A].All, fingertree.Seq[A].Map)
}

// OptionTraversal visits the value of a Some.
func OptionTraversal[A any]() Traversal[functional.Option[A], A] {
	return SomePrism[A]().AsTraversal()
}

// EitherTraversal visits the value of a Right.
func EitherTraversal[L, R any]() Traversal[functional.Either[L, R], R] {
	return RightPrism[L, R]().AsTraversal()
}

// MapValuesTraversal visits every value of a map in ascending key order.
func MapValuesTraversal[K cmp.Ordered, V any]() Traversal[map[K]V, V] {
	return mapTraversal[K, V](func(K) bool { return true })
}
