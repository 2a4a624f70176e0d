package optics

import (
	"iter"

	"github.com/authcorp/optics/functional"
)

// Fold reads zero or more foci in a fixed order. Every query is derived
// from the ordered focus sequence; queries that need only a prefix stop
// iterating early.
type Fold[S, A any] struct {
	foci func(S) iter.Seq[A]
}

// NewFold creates a fold from a function listing the foci of a source.
// The sequence must be the same for equal sources.
func NewFold[S, A any](foci func(S) iter.Seq[A]) Fold[S, A] {
	return Fold[S, A]{foci: foci}
}

// IdentityFold has the whole source as its single focus.
func IdentityFold[S any]() Fold[S, S] {
	return IdentityLens[S]().AsFold()
}

// SelectFold has the source as its focus when it satisfies predicate.
func SelectFold[S any](predicate func(S) bool) Fold[S, S] {
	return NewFold(func(s S) iter.Seq[S] {
		return func(yield func(S) bool) {
			if predicate(s) {
				yield(s)
			}
		}
	})
}

// Iter returns the foci of source in order.
func (f Fold[S, A]) Iter(source S) iter.Seq[A] {
	return f.foci(source)
}

// GetAll collects the foci of source.
func (f Fold[S, A]) GetAll(source S) []A {
	out := []A{}
	for a := range f.foci(source) {
		out = append(out, a)
	}
	return out
}

// Size counts the foci of source.
func (f Fold[S, A]) Size(source S) int {
	n := 0
	for range f.foci(source) {
		n++
	}
	return n
}

// IsEmpty reports whether source has no focus.
func (f Fold[S, A]) IsEmpty(source S) bool {
	return f.FirstOption(source).IsNone()
}

// NonEmpty reports whether source has at least one focus.
func (f Fold[S, A]) NonEmpty(source S) bool {
	return !f.IsEmpty(source)
}

// Find returns the first focus satisfying predicate.
func (f Fold[S, A]) Find(source S, predicate func(A) bool) functional.Option[A] {
	for a := range f.foci(source) {
		if predicate(a) {
			return functional.Some(a)
		}
	}
	return functional.None[A]()
}

// Exists reports whether any focus satisfies predicate.
func (f Fold[S, A]) Exists(source S, predicate func(A) bool) bool {
	return f.Find(source, predicate).IsSome()
}

// ForAll reports whether every focus satisfies predicate.
func (f Fold[S, A]) ForAll(source S, predicate func(A) bool) bool {
	return !f.Exists(source, func(a A) bool { return !predicate(a) })
}

// FirstOption returns the first focus.
func (f Fold[S, A]) FirstOption(source S) functional.Option[A] {
	return f.Find(source, func(A) bool { return true })
}

// LastOption returns the last focus.
func (f Fold[S, A]) LastOption(source S) functional.Option[A] {
	last := functional.None[A]()
	for a := range f.foci(source) {
		last = functional.Some(a)
	}
	return last
}

// AsFold returns f.
func (f Fold[S, A]) AsFold() Fold[S, A] {
	return f
}

// Optic returns the Fold as a tagged optic value.
func (f Fold[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindFold, value: f}
}

// FoldMap maps every focus of source into a monoid and combines the results
// left to right.
func FoldMap[S, A, R any](f FoldLike[S, A], m functional.Monoid[R], source S, fn func(A) R) R {
	acc := m.Empty()
	for a := range f.AsFold().foci(source) {
		acc = m.Combine(acc, fn(a))
	}
	return acc
}

// CombineAll combines the foci of source with m.
func CombineAll[S, A any](f FoldLike[S, A], m functional.Monoid[A], source S) A {
	return FoldMap(f, m, source, functional.IdentityFunc[A])
}
