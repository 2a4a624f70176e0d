package optics

import (
	"iter"

	"github.com/authcorp/optics/functional"
)

// Traversal reads and rewrites zero or more foci. The embedded Fold and
// Setter visit the foci in the same left-to-right order; effectful
// rewrites through ModifyF rely on that agreement.
type Traversal[S, A any] struct {
	Fold[S, A]
	Setter[S, A]
}

// NewTraversal creates a traversal from a function listing the foci of a
// source and a modify function that calls fn once per focus, in that order.
func NewTraversal[S, A any](foci func(S) iter.Seq[A], modify func(S, func(A) A) S) Traversal[S, A] {
	return Traversal[S, A]{
		Fold:   NewFold(foci),
		Setter: NewSetter(modify),
	}
}

// IdentityTraversal has the whole source as its single focus.
func IdentityTraversal[S any]() Traversal[S, S] {
	return IdentityLens[S]().AsTraversal()
}

// AsTraversal returns t.
func (t Traversal[S, A]) AsTraversal() Traversal[S, A] {
	return t
}

// Optic returns the Traversal as a tagged optic value.
func (t Traversal[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindTraversal, value: t}
}

// ModifyOption rewrites every focus with fn, or returns None as soon as fn does.
func (t Traversal[S, A]) ModifyOption(source S, fn func(A) functional.Option[A]) functional.Option[S] {
	return ModifyF(t, source, fn, OptionApplicative[A, S]())
}

// ModifyErr rewrites every focus with fn and stops at the first error.
func (t Traversal[S, A]) ModifyErr(source S, fn func(A) (A, error)) (S, error) {
	var results []A
	for a := range t.foci(source) {
		b, err := fn(a)
		if err != nil {
			var zero S
			return zero, err
		}
		results = append(results, b)
	}
	return t.refill(source, results), nil
}

// refill writes values back into the foci of source in visiting order.
func (t Traversal[S, A]) refill(source S, values []A) S {
	i := 0
	return t.modify(source, func(A) A {
		v := values[i]
		i++
		return v
	})
}

// ModifyF rewrites every focus with an effectful fn. Effects run left to
// right in focus order and ap combines them into an effect on the source.
func ModifyF[S, A, FA, FS any](t TraversalLike[S, A], source S, fn func(A) FA, ap Applicative[A, FA, S, FS]) FS {
	tr := t.AsTraversal()
	var effects []FA
	for a := range tr.foci(source) {
		effects = append(effects, fn(a))
	}
	return ap.Sequence(effects, func(values []A) S {
		return tr.refill(source, values)
	})
}

// PairBoth focuses on both components of a homogeneous pair.
func PairBoth[A any]() Traversal[functional.Pair[A, A], A] {
	return NewTraversal(
		func(p functional.Pair[A, A]) iter.Seq[A] {
			return func(yield func(A) bool) {
				if yield(p.First) {
					yield(p.Second)
				}
			}
		},
		func(p functional.Pair[A, A], fn func(A) A) functional.Pair[A, A] {
			return functional.NewPair(fn(p.First), fn(p.Second))
		},
	)
}
