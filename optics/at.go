package optics

import (
	"maps"

	"github.com/authcorp/optics/functional"
)

// At gives total access to the slot at index I of S. The focus A is usually
// an Option or a bool so that an absent slot is an ordinary value.
type At[S, I, A any] interface {
	At(i I) Lens[S, A]
}

// AtFunc adapts a function to the At interface.
type AtFunc[S, I, A any] func(i I) Lens[S, A]

// At calls f(i).
func (f AtFunc[S, I, A]) At(i I) Lens[S, A] {
	return f(i)
}

// MapAt focuses on a map key as an Option. Setting None deletes the key;
// setting Some inserts or replaces it. The source map is never mutated.
func MapAt[K comparable, V any]() At[map[K]V, K, functional.Option[V]] {
	return AtFunc[map[K]V, K, functional.Option[V]](func(key K) Lens[map[K]V, functional.Option[V]] {
		return NewLens(
			func(m map[K]V) functional.Option[V] {
				v, ok := m[key]
				return functional.FromOk(v, ok)
			},
			func(m map[K]V, o functional.Option[V]) map[K]V {
				v, ok := o.Get()
				if !ok {
					if _, present := m[key]; !present {
						return m
					}
					out := maps.Clone(m)
					delete(out, key)
					return out
				}
				out := maps.Clone(m)
				if out == nil {
					out = make(map[K]V, 1)
				}
				out[key] = v
				return out
			},
		)
	})
}

// SetAt focuses on membership of an element in a set.
func SetAt[T comparable]() At[map[T]struct{}, T, bool] {
	return AtFunc[map[T]struct{}, T, bool](func(elem T) Lens[map[T]struct{}, bool] {
		return NewLens(
			func(s map[T]struct{}) bool {
				_, ok := s[elem]
				return ok
			},
			func(s map[T]struct{}, member bool) map[T]struct{} {
				if _, ok := s[elem]; ok == member {
					return s
				}
				out := maps.Clone(s)
				if member {
					if out == nil {
						out = make(map[T]struct{}, 1)
					}
					out[elem] = struct{}{}
				} else {
					delete(out, elem)
				}
				return out
			},
		)
	})
}

// Remove deletes index i from s through an Option-valued At.
func Remove[S, I, A any](at At[S, I, functional.Option[A]], s S, i I) S {
	return at.At(i).Set(s, functional.None[A]())
}
