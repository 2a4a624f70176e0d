package optics

import "github.com/authcorp/optics/functional"

// Applicative is an applicative effect F, passed explicitly at the call
// site. FA is F applied to a focus A and FS is F applied to a source S.
//
// Sequence runs effects left to right, collecting their results, and maps
// the rebuild function over the collected results. rebuild must receive
// exactly len(effects) values.
type Applicative[A, FA, S, FS any] interface {
	Sequence(effects []FA, rebuild func([]A) S) FS
}

type idApplicative[A, S any] struct{}

func (idApplicative[A, S]) Sequence(effects []A, rebuild func([]A) S) S {
	return rebuild(effects)
}

// IdApplicative is the effect-free applicative; ModifyF with it is Modify.
func IdApplicative[A, S any]() Applicative[A, A, S, S] {
	return idApplicative[A, S]{}
}

type optionApplicative[A, S any] struct{}

func (optionApplicative[A, S]) Sequence(effects []functional.Option[A], rebuild func([]A) S) functional.Option[S] {
	values := make([]A, 0, len(effects))
	for _, e := range effects {
		v, ok := e.Get()
		if !ok {
			return functional.None[S]()
		}
		values = append(values, v)
	}
	return functional.Some(rebuild(values))
}

// OptionApplicative fails the whole rewrite when any effect is None.
func OptionApplicative[A, S any]() Applicative[A, functional.Option[A], S, functional.Option[S]] {
	return optionApplicative[A, S]{}
}

type eitherApplicative[E, A, S any] struct{}

func (eitherApplicative[E, A, S]) Sequence(effects []functional.Either[E, A], rebuild func([]A) S) functional.Either[E, S] {
	values := make([]A, 0, len(effects))
	for _, e := range effects {
		if e.IsLeft() {
			return functional.Left[E, S](e.LeftValue())
		}
		values = append(values, e.RightValue())
	}
	return functional.Right[E](rebuild(values))
}

// EitherApplicative stops at the leftmost Left.
func EitherApplicative[E, A, S any]() Applicative[A, functional.Either[E, A], S, functional.Either[E, S]] {
	return eitherApplicative[E, A, S]{}
}

type constApplicative[R, A, S any] struct {
	m functional.Monoid[R]
}

func (c constApplicative[R, A, S]) Sequence(effects []R, _ func([]A) S) R {
	return functional.CombineAll(c.m, effects)
}

// ConstApplicative accumulates effects in m and never rebuilds the source;
// ModifyF with it is FoldMap.
func ConstApplicative[R, A, S any](m functional.Monoid[R]) Applicative[A, R, S, R] {
	return constApplicative[R, A, S]{m: m}
}

type sliceApplicative[A, S any] struct{}

func (sliceApplicative[A, S]) Sequence(effects [][]A, rebuild func([]A) S) []S {
	combos := [][]A{{}}
	for _, choices := range effects {
		next := make([][]A, 0, len(combos)*len(choices))
		for _, prefix := range combos {
			for _, c := range choices {
				combo := make([]A, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, c))
			}
		}
		combos = next
	}
	out := make([]S, 0, len(combos))
	for _, combo := range combos {
		out = append(out, rebuild(combo))
	}
	return out
}

// SliceApplicative is non-determinism: every combination of choices, in
// lexicographic order of the effects.
func SliceApplicative[A, S any]() Applicative[A, []A, S, []S] {
	return sliceApplicative[A, S]{}
}

type composedApplicative[A, GA, S, GS, FGA, FGS any] struct {
	outer Applicative[GA, FGA, GS, FGS]
	inner Applicative[A, GA, S, GS]
}

func (c composedApplicative[A, GA, S, GS, FGA, FGS]) Sequence(effects []FGA, rebuild func([]A) S) FGS {
	return c.outer.Sequence(effects, func(inner []GA) GS {
		return c.inner.Sequence(inner, rebuild)
	})
}

// ComposeApplicative nests inner inside outer: effects are F[G[A]] and the
// result is F[G[S]].
func ComposeApplicative[A, GA, S, GS, FGA, FGS any](outer Applicative[GA, FGA, GS, FGS], inner Applicative[A, GA, S, GS]) Applicative[A, FGA, S, FGS] {
	return composedApplicative[A, GA, S, GS, FGA, FGS]{outer: outer, inner: inner}
}
