package optics

import (
	"iter"

	"github.com/authcorp/optics/functional"
)

// Optional focuses on zero or one A inside an S. Unlike a Prism it cannot
// build an S from an A; Set on a source without a focus returns it unchanged.
type Optional[S, A any] struct {
	getOrModify func(S) functional.Either[S, A]
	set         func(S, A) S
}

// NewOptional creates an optional from getOrModify and set functions.
// set is only called for sources where getOrModify returned Right.
func NewOptional[S, A any](getOrModify func(S) functional.Either[S, A], set func(S, A) S) Optional[S, A] {
	o := Optional[S, A]{getOrModify: getOrModify}
	o.set = func(s S, a A) S {
		if getOrModify(s).IsLeft() {
			return s
		}
		return set(s, a)
	}
	return o
}

// NewPartialOptional creates an optional from getOption and set functions.
func NewPartialOptional[S, A any](getOption func(S) functional.Option[A], set func(S, A) S) Optional[S, A] {
	return NewOptional(optionToEither(getOption), set)
}

// IdentityOptional focuses on the whole source, which is always present.
func IdentityOptional[S any]() Optional[S, S] {
	return IdentityLens[S]().AsOptional()
}

// VoidOptional never has a focus.
func VoidOptional[S, A any]() Optional[S, A] {
	return Optional[S, A]{
		getOrModify: functional.Left[S, A],
		set:         func(s S, _ A) S { return s },
	}
}

// GetOrModify returns the focus, or the source unchanged when there is none.
func (o Optional[S, A]) GetOrModify(source S) functional.Either[S, A] {
	return o.getOrModify(source)
}

// GetOption attempts to extract the focused value.
func (o Optional[S, A]) GetOption(source S) functional.Option[A] {
	return o.getOrModify(source).RightOption()
}

// IsMatch reports whether the source has a focus.
func (o Optional[S, A]) IsMatch(source S) bool {
	return o.getOrModify(source).IsRight()
}

// Set replaces the focus; sources without one are returned unchanged.
func (o Optional[S, A]) Set(source S, value A) S {
	return o.set(source, value)
}

// SetOption replaces the focus, returning None when there is none.
func (o Optional[S, A]) SetOption(source S, value A) functional.Option[S] {
	return o.ModifyOption(source, functional.ConstFunc[A](value))
}

// Modify applies a function if value exists.
func (o Optional[S, A]) Modify(source S, fn func(A) A) S {
	e := o.getOrModify(source)
	if e.IsLeft() {
		return source
	}
	return o.set(source, fn(e.RightValue()))
}

// ModifyOption applies fn and returns None when there is no focus.
func (o Optional[S, A]) ModifyOption(source S, fn func(A) A) functional.Option[S] {
	e := o.getOrModify(source)
	if e.IsLeft() {
		return functional.None[S]()
	}
	return functional.Some(o.set(source, fn(e.RightValue())))
}

// Lift turns an endo function on A into one on S.
func (o Optional[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return o.Modify(s, fn) }
}

// AsOptional returns o.
func (o Optional[S, A]) AsOptional() Optional[S, A] {
	return o
}

// AsTraversal views the Optional as a Traversal with zero or one focus.
func (o Optional[S, A]) AsTraversal() Traversal[S, A] {
	return NewTraversal(o.foci, o.Modify)
}

// AsSetter views the Optional as a Setter.
func (o Optional[S, A]) AsSetter() Setter[S, A] {
	return NewSetter(o.Modify)
}

// AsFold views the Optional as a Fold with zero or one focus.
func (o Optional[S, A]) AsFold() Fold[S, A] {
	return NewFold(o.foci)
}

// Optic returns the Optional as a tagged optic value.
func (o Optional[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindOptional, value: o}
}

func (o Optional[S, A]) foci(s S) iter.Seq[A] {
	return eitherFoci(o.getOrModify(s))
}
