package optics

import (
	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
)

// Iso is a lossless conversion between S and A. Get and ReverseGet must be
// mutual inverses; Iso is the identity of composition on both sides.
type Iso[S, A any] struct {
	get        func(S) A
	reverseGet func(A) S
}

// NewIso creates an isomorphism from a pair of inverse functions.
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, reverseGet: reverseGet}
}

// IdentityIso is the isomorphism between S and itself.
func IdentityIso[S any]() Iso[S, S] {
	return NewIso(functional.IdentityFunc[S], functional.IdentityFunc[S])
}

// PairSwap exchanges the components of a pair.
func PairSwap[A, B any]() Iso[functional.Pair[A, B], functional.Pair[B, A]] {
	return NewIso(
		functional.Pair[A, B].Swap,
		functional.Pair[B, A].Swap,
	)
}

// Get converts a source into its focus.
func (i Iso[S, A]) Get(source S) A {
	return i.get(source)
}

// ReverseGet converts a focus back into a source.
func (i Iso[S, A]) ReverseGet(value A) S {
	return i.reverseGet(value)
}

// Set replaces the whole focus, which for an Iso rebuilds the source from value.
func (i Iso[S, A]) Set(_ S, value A) S {
	return i.reverseGet(value)
}

// Modify converts, applies fn and converts back.
func (i Iso[S, A]) Modify(source S, fn func(A) A) S {
	return i.reverseGet(fn(i.get(source)))
}

// Lift turns an endo function on A into one on S.
func (i Iso[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return i.Modify(s, fn) }
}

// Reverse swaps the direction of the isomorphism.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return Iso[A, S]{get: i.reverseGet, reverseGet: i.get}
}

// AsLens views the Iso as a Lens.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return Lens[S, A]{get: i.get, set: i.Set}
}

// AsPrism views the Iso as a Prism that always matches.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{
		getOrModify: func(s S) functional.Either[S, A] { return functional.Right[S](i.get(s)) },
		reverseGet:  i.reverseGet,
	}
}

// AsOptional views the Iso as an Optional.
func (i Iso[S, A]) AsOptional() Optional[S, A] {
	return i.AsLens().AsOptional()
}

// AsTraversal views the Iso as a Traversal with exactly one focus.
func (i Iso[S, A]) AsTraversal() Traversal[S, A] {
	return i.AsLens().AsTraversal()
}

// AsSetter views the Iso as a Setter.
func (i Iso[S, A]) AsSetter() Setter[S, A] {
	return NewSetter(i.Modify)
}

// AsFold views the Iso as a Fold with exactly one focus.
func (i Iso[S, A]) AsFold() Fold[S, A] {
	return i.AsLens().AsFold()
}

// Optic returns the Iso as a tagged optic value.
func (i Iso[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindIso, value: i}
}

// SliceToSeq converts between slices and fingertree sequences.
func SliceToSeq[A any]() Iso[[]A, fingertree.Seq[A]] {
	return NewIso(fingertree.FromSlice[A], fingertree.Seq[A].Slice)
}
