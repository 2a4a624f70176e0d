package optics

import (
	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
)

// Cons splits a sequence-like S into its first element and the rest.
type Cons[S, A any] interface {
	Cons() Prism[S, functional.Pair[A, S]]
}

type consInstance[S, A any] struct {
	prism Prism[S, functional.Pair[A, S]]
}

func (c consInstance[S, A]) Cons() Prism[S, functional.Pair[A, S]] {
	return c.prism
}

// ConsOf wraps a (head, tail) prism as a Cons instance.
func ConsOf[S, A any](prism Prism[S, functional.Pair[A, S]]) Cons[S, A] {
	return consInstance[S, A]{prism: prism}
}

// SliceCons is the Cons instance for slices. The tail shares the source's
// backing array but has no spare capacity, so appending to it copies.
func SliceCons[A any]() Cons[[]A, A] {
	return ConsOf(NewPrism(
		func(s []A) functional.Either[[]A, functional.Pair[A, []A]] {
			if len(s) == 0 {
				return functional.Left[[]A, functional.Pair[A, []A]](s)
			}
			return functional.Right[[]A](functional.NewPair(s[0], s[1:len(s):len(s)]))
		},
		func(p functional.Pair[A, []A]) []A {
			out := make([]A, 0, len(p.Second)+1)
			out = append(out, p.First)
			return append(out, p.Second...)
		},
	))
}

// StringCons is the Cons instance for strings, split on the first rune.
//
// All string instances share one rule for invalid UTF-8: a byte that does
// not begin a valid encoding takes up one rune position but has no focus.
// A string starting with such a byte therefore has no match here, just as
// StringIndex().Index(0) has no focus on it.
func StringCons() Cons[string, rune] {
	return ConsOf(NewPrism(
		func(s string) functional.Either[string, functional.Pair[rune, string]] {
			r, size, ok := decodeRune(s)
			if size == 0 || !ok {
				return functional.Left[string, functional.Pair[rune, string]](s)
			}
			return functional.Right[string](functional.NewPair(r, s[size:]))
		},
		func(p functional.Pair[rune, string]) string {
			return string(p.First) + p.Second
		},
	))
}

// SeqCons is the Cons instance for fingertree sequences.
func SeqCons[A any]() Cons[fingertree.Seq[A], A] {
	return ConsOf(NewPartialPrism(
		fingertree.Seq[A].ViewFront,
		func(p functional.Pair[A, fingertree.Seq[A]]) fingertree.Seq[A] {
			return p.Second.PushFront(p.First)
		},
	))
}

// Prepend builds a sequence from a head and a tail.
func Prepend[S, A any](c Cons[S, A], head A, tail S) S {
	return c.Cons().ReverseGet(functional.NewPair(head, tail))
}

// Uncons splits s into its head and tail, or returns None when s is empty.
func Uncons[S, A any](c Cons[S, A], s S) functional.Option[functional.Pair[A, S]] {
	return c.Cons().GetOption(s)
}

// HeadOption focuses on the first element of a sequence.
func HeadOption[S, A any](c Cons[S, A]) Optional[S, A] {
	return ComposeOptional[S, functional.Pair[A, S], A](c.Cons(), PairFirst[A, S]())
}

// TailOption focuses on everything after the first element.
func TailOption[S, A any](c Cons[S, A]) Optional[S, S] {
	return ComposeOptional[S, functional.Pair[A, S], S](c.Cons(), PairSecond[A, S]())
}
