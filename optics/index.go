package optics

import (
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
)

// Index gives partial access to the element at index I of S: an absent
// index has no focus and setting it leaves S unchanged.
type Index[S, I, A any] interface {
	Index(i I) Optional[S, A]
}

// IndexFunc adapts a function to the Index interface.
type IndexFunc[S, I, A any] func(i I) Optional[S, A]

// Index calls f(i).
func (f IndexFunc[S, I, A]) Index(i I) Optional[S, A] {
	return f(i)
}

// SliceIndex focuses on a slice position. Set copies the slice.
func SliceIndex[A any]() Index[[]A, int, A] {
	return IndexFunc[[]A, int, A](func(i int) Optional[[]A, A] {
		return NewPartialOptional(
			func(s []A) functional.Option[A] {
				if i < 0 || i >= len(s) {
					return functional.None[A]()
				}
				return functional.Some(s[i])
			},
			func(s []A, a A) []A {
				out := slices.Clone(s)
				out[i] = a
				return out
			},
		)
	})
}

// StringIndex focuses on the rune at a rune position. Bytes outside that
// rune are copied unchanged. A position holding an invalid byte has no
// focus, see StringCons.
func StringIndex() Index[string, int, rune] {
	return IndexFunc[string, int, rune](func(i int) Optional[string, rune] {
		return NewPartialOptional(
			func(s string) functional.Option[rune] {
				off, size := runeOffset(s, i)
				if size == 0 {
					return functional.None[rune]()
				}
				r, _, ok := decodeRune(s[off:])
				if !ok {
					return functional.None[rune]()
				}
				return functional.Some(r)
			},
			func(s string, r rune) string {
				off, size := runeOffset(s, i)
				if size == 0 {
					return s
				}
				if old, _, ok := decodeRune(s[off:]); !ok || old == r {
					return s
				}
				return s[:off] + string(r) + s[off+size:]
			},
		)
	})
}

// runeOffset returns the byte offset and width of the i-th rune of s, or a
// zero width when s has fewer runes.
func runeOffset(s string, i int) (int, int) {
	if i < 0 {
		return 0, 0
	}
	n := 0
	for off, r := range s {
		if n == i {
			if r == utf8.RuneError {
				_, size := utf8.DecodeRuneInString(s[off:])
				return off, size
			}
			return off, utf8.RuneLen(r)
		}
		n++
	}
	return 0, 0
}

// MapIndex focuses on the value stored under a key, if any. Set on an
// absent key is a no-op; otherwise it copies the map.
func MapIndex[K comparable, V any]() Index[map[K]V, K, V] {
	return IndexFunc[map[K]V, K, V](func(key K) Optional[map[K]V, V] {
		return NewPartialOptional(
			func(m map[K]V) functional.Option[V] {
				v, ok := m[key]
				return functional.FromOk(v, ok)
			},
			func(m map[K]V, v V) map[K]V {
				out := maps.Clone(m)
				out[key] = v
				return out
			},
		)
	})
}

// SeqIndex focuses on a position of a fingertree sequence.
func SeqIndex[A any]() Index[fingertree.Seq[A], int, A] {
	return IndexFunc[fingertree.Seq[A], int, A](func(i int) Optional[fingertree.Seq[A], A] {
		return NewPartialOptional(
			func(s fingertree.Seq[A]) functional.Option[A] { return s.Get(i) },
			func(s fingertree.Seq[A], a A) fingertree.Seq[A] { return s.Set(i, a) },
		)
	})
}

// IndexFromIso derives an Index on S from an Index on T and an Iso between them.
func IndexFromIso[S, T, I, A any](idx Index[T, I, A], iso Iso[S, T]) Index[S, I, A] {
	return IndexFunc[S, I, A](func(i I) Optional[S, A] {
		return ComposeOptional[S, T, A](iso, idx.Index(i))
	})
}
