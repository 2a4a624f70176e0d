package optics

import (
	"iter"

	"github.com/authcorp/optics/functional"
)

// Lens focuses on exactly one A inside an S, like a struct field.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// IdentityLens focuses on the whole source.
func IdentityLens[S any]() Lens[S, S] {
	return IdentityIso[S]().AsLens()
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Lift turns an endo function on A into one on S.
func (l Lens[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return l.Modify(s, fn) }
}

// AsLens returns l.
func (l Lens[S, A]) AsLens() Lens[S, A] {
	return l
}

// AsOptional views the Lens as an Optional whose focus is always present.
func (l Lens[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{
		getOrModify: func(s S) functional.Either[S, A] { return functional.Right[S](l.get(s)) },
		set:         l.set,
	}
}

// AsTraversal views the Lens as a Traversal with exactly one focus.
func (l Lens[S, A]) AsTraversal() Traversal[S, A] {
	return NewTraversal(l.foci, l.Modify)
}

// AsSetter views the Lens as a Setter.
func (l Lens[S, A]) AsSetter() Setter[S, A] {
	return NewSetter(l.Modify)
}

// AsFold views the Lens as a Fold with exactly one focus.
func (l Lens[S, A]) AsFold() Fold[S, A] {
	return NewFold(l.foci)
}

// Optic returns the Lens as a tagged optic value.
func (l Lens[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindLens, value: l}
}

func (l Lens[S, A]) foci(s S) iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(l.get(s))
	}
}

// LensFirst lifts l to act on the first component of a pair, leaving the
// second untouched.
func LensFirst[S, A, C any](l Lens[S, A]) Lens[functional.Pair[S, C], functional.Pair[A, C]] {
	return NewLens(
		func(p functional.Pair[S, C]) functional.Pair[A, C] {
			return functional.NewPair(l.get(p.First), p.Second)
		},
		func(p functional.Pair[S, C], v functional.Pair[A, C]) functional.Pair[S, C] {
			return functional.NewPair(l.set(p.First, v.First), v.Second)
		},
	)
}

// LensSecond lifts l to act on the second component of a pair, leaving the
// first untouched.
func LensSecond[S, A, C any](l Lens[S, A]) Lens[functional.Pair[C, S], functional.Pair[C, A]] {
	return NewLens(
		func(p functional.Pair[C, S]) functional.Pair[C, A] {
			return functional.NewPair(p.First, l.get(p.Second))
		},
		func(p functional.Pair[C, S], v functional.Pair[C, A]) functional.Pair[C, S] {
			return functional.NewPair(v.First, l.set(p.Second, v.Second))
		},
	)
}

// PairFirst focuses on the first element of a pair.
func PairFirst[A, B any]() Lens[functional.Pair[A, B], A] {
	return NewLens(
		func(p functional.Pair[A, B]) A { return p.First },
		func(p functional.Pair[A, B], a A) functional.Pair[A, B] { return functional.NewPair(a, p.Second) },
	)
}

// PairSecond focuses on the second element of a pair.
func PairSecond[A, B any]() Lens[functional.Pair[A, B], B] {
	return NewLens(
		func(p functional.Pair[A, B]) B { return p.Second },
		func(p functional.Pair[A, B], b B) functional.Pair[A, B] { return functional.NewPair(p.First, b) },
	)
}
