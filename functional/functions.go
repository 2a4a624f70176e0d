// Package functional provides the small algebraic vocabulary the optics
// packages are written in: Option, Either, Pair, Monoid and a few function
// combinators.
package functional

// IdentityFunc is the identity function.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc returns g after f.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// ConstFunc returns a function that ignores its argument and returns v.
func ConstFunc[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}

// Equal is an equality predicate for comparable types.
func Equal[T comparable](a, b T) bool {
	return a == b
}
