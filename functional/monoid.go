package functional

// Semigroup is an associative binary operation.
type Semigroup[A any] interface {
	Combine(x, y A) A
}

// Monoid is a Semigroup with an identity element.
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

type monoid[A any] struct {
	empty   func() A
	combine func(A, A) A
}

func (m monoid[A]) Empty() A         { return m.empty() }
func (m monoid[A]) Combine(x, y A) A { return m.combine(x, y) }

// MonoidOf builds a Monoid from an identity element and a combine function.
// The caller guarantees associativity and identity.
func MonoidOf[A any](empty A, combine func(A, A) A) Monoid[A] {
	return monoid[A]{
		empty:   func() A { return empty },
		combine: combine,
	}
}

// Number is the constraint satisfied by the numeric monoids.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SumMonoid adds numbers, starting at zero.
func SumMonoid[N Number]() Monoid[N] {
	return MonoidOf(N(0), func(x, y N) N { return x + y })
}

// ProductMonoid multiplies numbers, starting at one.
func ProductMonoid[N Number]() Monoid[N] {
	return MonoidOf(N(1), func(x, y N) N { return x * y })
}

// StringMonoid concatenates strings.
func StringMonoid() Monoid[string] {
	return MonoidOf("", func(x, y string) string { return x + y })
}

// SliceMonoid concatenates slices into a fresh slice.
func SliceMonoid[T any]() Monoid[[]T] {
	return monoid[[]T]{
		empty: func() []T { return nil },
		combine: func(x, y []T) []T {
			out := make([]T, 0, len(x)+len(y))
			out = append(out, x...)
			return append(out, y...)
		},
	}
}

// AllMonoid is boolean conjunction.
func AllMonoid() Monoid[bool] {
	return MonoidOf(true, func(x, y bool) bool { return x && y })
}

// AnyMonoid is boolean disjunction.
func AnyMonoid() Monoid[bool] {
	return MonoidOf(false, func(x, y bool) bool { return x || y })
}

// FirstMonoid keeps the leftmost present value.
func FirstMonoid[T any]() Monoid[Option[T]] {
	return MonoidOf(None[T](), func(x, y Option[T]) Option[T] { return x.OrElse(y) })
}

// LastMonoid keeps the rightmost present value.
func LastMonoid[T any]() Monoid[Option[T]] {
	return MonoidOf(None[T](), func(x, y Option[T]) Option[T] { return y.OrElse(x) })
}

// EndoMonoid composes endo functions; Combine(f, g) applies g first, then f.
func EndoMonoid[T any]() Monoid[func(T) T] {
	return monoid[func(T) T]{
		empty: func() func(T) T { return IdentityFunc[T] },
		combine: func(f, g func(T) T) func(T) T {
			return func(v T) T { return f(g(v)) }
		},
	}
}

// CombineAll folds xs left to right with m.
func CombineAll[A any](m Monoid[A], xs []A) A {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}
