package optics

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/authcorp/optics/collections/fingertree"
)

// FilterIndex traverses the elements of S whose index satisfies a predicate.
type FilterIndex[S, I, A any] interface {
	Filter(predicate func(I) bool) Traversal[S, A]
}

// FilterIndexFunc adapts a function to the FilterIndex interface.
type FilterIndexFunc[S, I, A any] func(predicate func(I) bool) Traversal[S, A]

// Filter calls f(predicate).
func (f FilterIndexFunc[S, I, A]) Filter(predicate func(I) bool) Traversal[S, A] {
	return f(predicate)
}

// SliceFilterIndex traverses the slice positions accepted by the predicate.
func SliceFilterIndex[A any]() FilterIndex[[]A, int, A] {
	return FilterIndexFunc[[]A, int, A](func(predicate func(int) bool) Traversal[[]A, A] {
		return NewTraversal(
			func(s []A) iter.Seq[A] {
				return func(yield func(A) bool) {
					for i, a := range s {
						if predicate(i) && !yield(a) {
							return
						}
					}
				}
			},
			func(s []A, fn func(A) A) []A {
				out := slices.Clone(s)
				for i, a := range out {
					if predicate(i) {
						out[i] = fn(a)
					}
				}
				return out
			},
		)
	})
}

// StringFilterIndex traverses the runes at the rune positions accepted by
// the predicate.
func StringFilterIndex() FilterIndex[string, int, rune] {
	return FilterIndexFunc[string, int, rune](func(predicate func(int) bool) Traversal[string, rune] {
		return NewTraversal(
			func(s string) iter.Seq[rune] {
				return func(yield func(rune) bool) {
					for i, r := range validRunes(s) {
						if predicate(i) && !yield(r) {
							return
						}
					}
				}
			},
			func(s string, fn func(rune) rune) string {
				return mapRunes(s, func(i int, r rune) rune {
					if predicate(i) {
						return fn(r)
					}
					return r
				})
			},
		)
	})
}

// mapRunes rebuilds s with fn applied to every rune. Runes fn leaves
// unchanged keep their original bytes, so invalid UTF-8 survives.
func mapRunes(s string, fn func(int, rune) rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; len(s) > 0; i++ {
		r, size, ok := decodeRune(s)
		if ok {
			if nr := fn(i, r); nr != r {
				b.WriteRune(nr)
				s = s[size:]
				continue
			}
		}
		b.WriteString(s[:size])
		s = s[size:]
	}
	return b.String()
}

// decodeRune decodes the first rune of s. ok is false when s starts with a
// byte that does not begin a valid encoding; that byte still has size 1.
func decodeRune(s string) (r rune, size int, ok bool) {
	r, size = utf8.DecodeRuneInString(s)
	return r, size, r != utf8.RuneError || size != 1
}

// validRunes yields the rune position and value of every validly encoded
// rune of s. Invalid bytes are counted as positions but not yielded.
func validRunes(s string) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; len(s) > 0; i++ {
			r, size, ok := decodeRune(s)
			if ok && !yield(i, r) {
				return
			}
			s = s[size:]
		}
	}
}

// MapFilterIndex traverses the values whose key is accepted by the
// predicate, in ascending key order.
func MapFilterIndex[K cmp.Ordered, V any]() FilterIndex[map[K]V, K, V] {
	return FilterIndexFunc[map[K]V, K, V](func(predicate func(K) bool) Traversal[map[K]V, V] {
		return mapTraversal[K, V](predicate)
	})
}

func mapTraversal[K cmp.Ordered, V any](predicate func(K) bool) Traversal[map[K]V, V] {
	return NewTraversal(
		func(m map[K]V) iter.Seq[V] {
			return func(yield func(V) bool) {
				for _, k := range slices.Sorted(maps.Keys(m)) {
					if predicate(k) && !yield(m[k]) {
						return
					}
				}
			}
		},
		func(m map[K]V, fn func(V) V) map[K]V {
			out := maps.Clone(m)
			for _, k := range slices.Sorted(maps.Keys(m)) {
				if predicate(k) {
					out[k] = fn(m[k])
				}
			}
			return out
		},
	)
}

// SeqFilterIndex traverses the sequence positions accepted by the predicate.
func SeqFilterIndex[A any]() FilterIndex[fingertree.Seq[A], int, A] {
	return FilterIndexFunc[fingertree.Seq[A], int, A](func(predicate func(int) bool) Traversal[fingertree.Seq[A], A] {
		return NewTraversal(
			func(s fingertree.Seq[A]) iter.Seq[A] {
				return func(yield func(A) bool) {
					i := 0
					for a := range s.All() {
						if predicate(i) && !yield(a) {
							return
						}
						i++
					}
				}
			},
			func(s fingertree.Seq[A], fn func(A) A) fingertree.Seq[A] {
				i := -1
				return s.Map(func(a A) A {
					i++
					if predicate(i) {
						return fn(a)
					}
					return a
				})
			},
		)
	})
}
