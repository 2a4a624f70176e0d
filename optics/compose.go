package optics

import (
	"iter"

	"github.com/authcorp/optics/functional"
)

// LensLike is implemented by optics that can act as a Lens: Iso and Lens.
type LensLike[S, A any] interface {
	AsLens() Lens[S, A]
}

// PrismLike is implemented by optics that can act as a Prism: Iso and Prism.
type PrismLike[S, A any] interface {
	AsPrism() Prism[S, A]
}

// OptionalLike is implemented by Iso, Lens, Prism and Optional.
type OptionalLike[S, A any] interface {
	AsOptional() Optional[S, A]
}

// TraversalLike is implemented by every optic that can both read and write.
type TraversalLike[S, A any] interface {
	AsTraversal() Traversal[S, A]
}

// SetterLike is implemented by every optic that can write.
type SetterLike[S, A any] interface {
	AsSetter() Setter[S, A]
}

// FoldLike is implemented by every optic that can read.
type FoldLike[S, A any] interface {
	AsFold() Fold[S, A]
}

// The Compose functions below are named after the kind they produce. Each
// accepts any pair of optics that can be viewed as that kind, so the meet
// of the operands' kinds is the most capable function that compiles:
// ComposeOptional(lens, prism) is valid, ComposeLens(lens, prism) is not,
// and no function accepts a Setter together with a Fold.

// ComposeIso composes two isomorphisms.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		get:        func(s S) B { return inner.get(outer.get(s)) },
		reverseGet: func(b B) S { return outer.reverseGet(inner.reverseGet(b)) },
	}
}

// ComposeLens creates a lens focusing deeper.
func ComposeLens[S, A, B any](outer LensLike[S, A], inner LensLike[A, B]) Lens[S, B] {
	o, i := outer.AsLens(), inner.AsLens()
	return Lens[S, B]{
		get: func(s S) B {
			return i.get(o.get(s))
		},
		set: func(s S, b B) S {
			return o.set(s, i.set(o.get(s), b))
		},
	}
}

// ComposePrism creates a prism focusing deeper.
func ComposePrism[S, A, B any](outer PrismLike[S, A], inner PrismLike[A, B]) Prism[S, B] {
	o, i := outer.AsPrism(), inner.AsPrism()
	return Prism[S, B]{
		getOrModify: func(s S) functional.Either[S, B] {
			return nestGetOrModify(s, o.getOrModify, i.getOrModify)
		},
		reverseGet: func(b B) S {
			return o.reverseGet(i.reverseGet(b))
		},
	}
}

// ComposeOptional creates an optional focusing deeper.
func ComposeOptional[S, A, B any](outer OptionalLike[S, A], inner OptionalLike[A, B]) Optional[S, B] {
	o, i := outer.AsOptional(), inner.AsOptional()
	return Optional[S, B]{
		getOrModify: func(s S) functional.Either[S, B] {
			return nestGetOrModify(s, o.getOrModify, i.getOrModify)
		},
		set: func(s S, b B) S {
			return o.Modify(s, func(a A) A { return i.set(a, b) })
		},
	}
}

// ComposeTraversal creates a traversal visiting every inner focus of every
// outer focus, outer order first.
func ComposeTraversal[S, A, B any](outer TraversalLike[S, A], inner TraversalLike[A, B]) Traversal[S, B] {
	o, i := outer.AsTraversal(), inner.AsTraversal()
	return NewTraversal(
		nestFoci(o.foci, i.foci),
		nestModify(o.modify, i.modify),
	)
}

// ComposeSetter creates a setter modifying every inner focus of every outer focus.
func ComposeSetter[S, A, B any](outer SetterLike[S, A], inner SetterLike[A, B]) Setter[S, B] {
	o, i := outer.AsSetter(), inner.AsSetter()
	return NewSetter(nestModify(o.modify, i.modify))
}

// ComposeFold creates a fold reading every inner focus of every outer focus.
func ComposeFold[S, A, B any](outer FoldLike[S, A], inner FoldLike[A, B]) Fold[S, B] {
	o, i := outer.AsFold(), inner.AsFold()
	return NewFold(nestFoci(o.foci, i.foci))
}

// nestGetOrModify matches outer then inner; a miss at either level returns
// the original source.
func nestGetOrModify[S, A, B any](s S, outer func(S) functional.Either[S, A], inner func(A) functional.Either[A, B]) functional.Either[S, B] {
	oa := outer(s)
	if oa.IsLeft() {
		return functional.Left[S, B](s)
	}
	ib := inner(oa.RightValue())
	if ib.IsLeft() {
		return functional.Left[S, B](s)
	}
	return functional.Right[S](ib.RightValue())
}

func nestFoci[S, A, B any](outer func(S) iter.Seq[A], inner func(A) iter.Seq[B]) func(S) iter.Seq[B] {
	return func(s S) iter.Seq[B] {
		return func(yield func(B) bool) {
			for a := range outer(s) {
				for b := range inner(a) {
					if !yield(b) {
						return
					}
				}
			}
		}
	}
}

func nestModify[S, A, B any](outer func(S, func(A) A) S, inner func(A, func(B) B) A) func(S, func(B) B) S {
	return func(s S, fn func(B) B) S {
		return outer(s, func(a A) A { return inner(a, fn) })
	}
}
