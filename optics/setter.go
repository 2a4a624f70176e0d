package optics

import "github.com/authcorp/optics/functional"

// Setter can only modify its foci; it cannot read them.
type Setter[S, A any] struct {
	modify func(S, func(A) A) S
}

// NewSetter creates a setter from a modify function.
func NewSetter[S, A any](modify func(S, func(A) A) S) Setter[S, A] {
	return Setter[S, A]{modify: modify}
}

// IdentitySetter modifies the whole source.
func IdentitySetter[S any]() Setter[S, S] {
	return NewSetter(func(s S, fn func(S) S) S { return fn(s) })
}

// Modify applies fn to every focus.
func (st Setter[S, A]) Modify(source S, fn func(A) A) S {
	return st.modify(source, fn)
}

// Set replaces every focus with value.
func (st Setter[S, A]) Set(source S, value A) S {
	return st.modify(source, functional.ConstFunc[A](value))
}

// Lift turns an endo function on A into one on S.
func (st Setter[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return st.modify(s, fn) }
}

// AsSetter returns st.
func (st Setter[S, A]) AsSetter() Setter[S, A] {
	return st
}

// Optic returns the Setter as a tagged optic value.
func (st Setter[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindSetter, value: st}
}
