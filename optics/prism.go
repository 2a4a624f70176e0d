package optics

import (
	"iter"
	"strconv"

	"github.com/authcorp/optics/functional"
)

// Prism focuses on one case of a sum type. GetOrModify returns Right(focus)
// when the case matches and Left(source), untouched, when it does not;
// ReverseGet builds a source of that case from a focus.
type Prism[S, A any] struct {
	getOrModify func(S) functional.Either[S, A]
	reverseGet  func(A) S
}

// NewPrism creates a prism from getOrModify and reverseGet functions.
func NewPrism[S, A any](getOrModify func(S) functional.Either[S, A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{getOrModify: getOrModify, reverseGet: reverseGet}
}

// NewPartialPrism creates a prism from a getOption function.
func NewPartialPrism[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{getOrModify: optionToEither(getOption), reverseGet: reverseGet}
}

// GetOrModify returns the focus, or the source unchanged when the case does not match.
func (p Prism[S, A]) GetOrModify(source S) functional.Either[S, A] {
	return p.getOrModify(source)
}

// GetOption attempts to extract the focused value.
func (p Prism[S, A]) GetOption(source S) functional.Option[A] {
	return p.getOrModify(source).RightOption()
}

// ReverseGet constructs the source from the focused value.
func (p Prism[S, A]) ReverseGet(value A) S {
	return p.reverseGet(value)
}

// IsMatch reports whether the source is of the prism's case.
func (p Prism[S, A]) IsMatch(source S) bool {
	return p.getOrModify(source).IsRight()
}

// Modify applies a function to the focused value if present.
func (p Prism[S, A]) Modify(source S, fn func(A) A) S {
	e := p.getOrModify(source)
	if e.IsLeft() {
		return source
	}
	return p.reverseGet(fn(e.RightValue()))
}

// ModifyOption applies fn and returns None when the case does not match.
func (p Prism[S, A]) ModifyOption(source S, fn func(A) A) functional.Option[S] {
	e := p.getOrModify(source)
	if e.IsLeft() {
		return functional.None[S]()
	}
	return functional.Some(p.reverseGet(fn(e.RightValue())))
}

// Set sets the focused value if the prism matches.
func (p Prism[S, A]) Set(source S, value A) S {
	return p.Modify(source, functional.ConstFunc[A](value))
}

// SetOption sets the focused value, returning None when the case does not match.
func (p Prism[S, A]) SetOption(source S, value A) functional.Option[S] {
	return p.ModifyOption(source, functional.ConstFunc[A](value))
}

// Lift turns an endo function on A into one on S.
func (p Prism[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return p.Modify(s, fn) }
}

// AsPrism returns p.
func (p Prism[S, A]) AsPrism() Prism[S, A] {
	return p
}

// AsOptional forgets that the prism can build a source.
func (p Prism[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{getOrModify: p.getOrModify, set: p.Set}
}

// AsTraversal views the Prism as a Traversal with zero or one focus.
func (p Prism[S, A]) AsTraversal() Traversal[S, A] {
	return NewTraversal(p.foci, p.Modify)
}

// AsSetter views the Prism as a Setter.
func (p Prism[S, A]) AsSetter() Setter[S, A] {
	return NewSetter(p.Modify)
}

// AsFold views the Prism as a Fold of size one when matched, zero otherwise.
func (p Prism[S, A]) AsFold() Fold[S, A] {
	return NewFold(p.foci)
}

// Optic returns the Prism as a tagged optic value.
func (p Prism[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindPrism, value: p}
}

func (p Prism[S, A]) foci(s S) iter.Seq[A] {
	return eitherFoci(p.getOrModify(s))
}

// PrismFirst lifts p to match on the first component of a pair, carrying
// the second along.
func PrismFirst[S, A, C any](p Prism[S, A]) Prism[functional.Pair[S, C], functional.Pair[A, C]] {
	return NewPrism(
		func(pair functional.Pair[S, C]) functional.Either[functional.Pair[S, C], functional.Pair[A, C]] {
			e := p.getOrModify(pair.First)
			if e.IsLeft() {
				return functional.Left[functional.Pair[S, C], functional.Pair[A, C]](pair)
			}
			return functional.Right[functional.Pair[S, C]](functional.NewPair(e.RightValue(), pair.Second))
		},
		func(v functional.Pair[A, C]) functional.Pair[S, C] {
			return functional.NewPair(p.reverseGet(v.First), v.Second)
		},
	)
}

// PrismSecond lifts p to match on the second component of a pair, carrying
// the first along.
func PrismSecond[S, A, C any](p Prism[S, A]) Prism[functional.Pair[C, S], functional.Pair[C, A]] {
	return NewPrism(
		func(pair functional.Pair[C, S]) functional.Either[functional.Pair[C, S], functional.Pair[C, A]] {
			e := p.getOrModify(pair.Second)
			if e.IsLeft() {
				return functional.Left[functional.Pair[C, S], functional.Pair[C, A]](pair)
			}
			return functional.Right[functional.Pair[C, S]](functional.NewPair(pair.First, e.RightValue()))
		},
		func(v functional.Pair[C, A]) functional.Pair[C, S] {
			return functional.NewPair(v.First, p.reverseGet(v.Second))
		},
	)
}

// Only matches exactly one value according to eq.
func Only[A any](value A, eq func(A, A) bool) Prism[A, struct{}] {
	return NewPrism(
		func(a A) functional.Either[A, struct{}] {
			if eq(a, value) {
				return functional.Right[A](struct{}{})
			}
			return functional.Left[A, struct{}](a)
		},
		func(struct{}) A { return value },
	)
}

// SomePrism focuses on the value inside a present Option.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return NewPartialPrism(
		functional.IdentityFunc[functional.Option[T]],
		functional.Some[T],
	)
}

// NonePrism matches an empty Option.
func NonePrism[T any]() Prism[functional.Option[T], struct{}] {
	return NewPrism(
		func(o functional.Option[T]) functional.Either[functional.Option[T], struct{}] {
			if o.IsNone() {
				return functional.Right[functional.Option[T]](struct{}{})
			}
			return functional.Left[functional.Option[T], struct{}](o)
		},
		func(struct{}) functional.Option[T] { return functional.None[T]() },
	)
}

// LeftPrism focuses on the left case of an Either.
func LeftPrism[L, R any]() Prism[functional.Either[L, R], L] {
	return NewPartialPrism(
		functional.Either[L, R].LeftOption,
		functional.Left[L, R],
	)
}

// RightPrism focuses on the right case of an Either.
func RightPrism[L, R any]() Prism[functional.Either[L, R], R] {
	return NewPartialPrism(
		functional.Either[L, R].RightOption,
		functional.Right[L, R],
	)
}

// StringToInt matches strings holding the canonical decimal form of an int.
// "007" and "+7" do not match, so ReverseGet always restores the source.
func StringToInt() Prism[string, int] {
	return NewPartialPrism(
		func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil || strconv.Itoa(n) != s {
				return functional.None[int]()
			}
			return functional.Some(n)
		},
		strconv.Itoa,
	)
}

func optionToEither[S, A any](getOption func(S) functional.Option[A]) func(S) functional.Either[S, A] {
	return func(s S) functional.Either[S, A] {
		if a, ok := getOption(s).Get(); ok {
			return functional.Right[S](a)
		}
		return functional.Left[S, A](s)
	}
}

func eitherFoci[S, A any](e functional.Either[S, A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		if e.IsRight() {
			yield(e.RightValue())
		}
	}
}
