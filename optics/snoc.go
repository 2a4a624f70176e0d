package optics

import (
	"unicode/utf8"

	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
)

// Snoc splits a sequence-like S into everything but its last element and
// the last element.
type Snoc[S, A any] interface {
	Snoc() Prism[S, functional.Pair[S, A]]
}

type snocInstance[S, A any] struct {
	prism Prism[S, functional.Pair[S, A]]
}

func (c snocInstance[S, A]) Snoc() Prism[S, functional.Pair[S, A]] {
	return c.prism
}

// SnocOf wraps an (init, last) prism as a Snoc instance.
func SnocOf[S, A any](prism Prism[S, functional.Pair[S, A]]) Snoc[S, A] {
	return snocInstance[S, A]{prism: prism}
}

// SliceSnoc is the Snoc instance for slices.
func SliceSnoc[A any]() Snoc[[]A, A] {
	return SnocOf(NewPrism(
		func(s []A) functional.Either[[]A, functional.Pair[[]A, A]] {
			n := len(s)
			if n == 0 {
				return functional.Left[[]A, functional.Pair[[]A, A]](s)
			}
			return functional.Right[[]A](functional.NewPair(s[:n-1:n-1], s[n-1]))
		},
		func(p functional.Pair[[]A, A]) []A {
			out := make([]A, 0, len(p.First)+1)
			out = append(out, p.First...)
			return append(out, p.Second)
		},
	))
}

// StringSnoc is the Snoc instance for strings, split on the last rune.
// A string ending in a byte that is not part of a valid UTF-8 encoding has
// no match, following the rule described on StringCons.
func StringSnoc() Snoc[string, rune] {
	return SnocOf(NewPrism(
		func(s string) functional.Either[string, functional.Pair[string, rune]] {
			r, size := utf8.DecodeLastRuneInString(s)
			if size == 0 || (r == utf8.RuneError && size == 1) {
				return functional.Left[string, functional.Pair[string, rune]](s)
			}
			return functional.Right[string](functional.NewPair(s[:len(s)-size], r))
		},
		func(p functional.Pair[string, rune]) string {
			return p.First + string(p.Second)
		},
	))
}

// SeqSnoc is the Snoc instance for fingertree sequences.
func SeqSnoc[A any]() Snoc[fingertree.Seq[A], A] {
	return SnocOf(NewPartialPrism(
		fingertree.Seq[A].ViewBack,
		func(p functional.Pair[fingertree.Seq[A], A]) fingertree.Seq[A] {
			return p.First.PushBack(p.Second)
		},
	))
}

// Append builds a sequence from an init and a last element.
func Append[S, A any](c Snoc[S, A], init S, last A) S {
	return c.Snoc().ReverseGet(functional.NewPair(init, last))
}

// Unsnoc splits s into its init and last element, or returns None when s is empty.
func Unsnoc[S, A any](c Snoc[S, A], s S) functional.Option[functional.Pair[S, A]] {
	return c.Snoc().GetOption(s)
}

// InitOption focuses on everything before the last element.
func InitOption[S, A any](c Snoc[S, A]) Optional[S, S] {
	return ComposeOptional[S, functional.Pair[S, A], S](c.Snoc(), PairFirst[S, A]())
}

// LastOption focuses on the last element of a sequence.
func LastOption[S, A any](c Snoc[S, A]) Optional[S, A] {
	return ComposeOptional[S, functional.Pair[S, A], A](c.Snoc(), PairSecond[S, A]())
}
