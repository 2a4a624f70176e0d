package functional

// Either represents a value of one of two possible types.
// Optics use Left for "no focus, here is the original source" and Right for
// the focused value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("called LeftValue on Right")
	}
	return e.left
}

// RightValue returns the right value or panics.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("called RightValue on Left")
	}
	return e.right
}

// LeftOption returns the left value as an Option.
func (e Either[L, R]) LeftOption() Option[L] {
	return FromOk(e.left, !e.isRight)
}

// RightOption returns the right value as an Option.
func (e Either[L, R]) RightOption() Option[R] {
	return FromOk(e.right, e.isRight)
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// MapEitherRight applies a function to the right value.
func MapEitherRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L, U](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapEitherLeft applies a function to the left value.
func MapEitherLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U, R](e.right)
}

// FlatMapEitherRight applies a function that returns an Either.
func FlatMapEitherRight[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// MatchEither executes one of two functions and returns the result.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// EitherEqual compares two Eithers side by side.
func EitherEqual[L, R any](a, b Either[L, R], eqL func(L, L) bool, eqR func(R, R) bool) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return eqR(a.right, b.right)
	}
	return eqL(a.left, b.left)
}
