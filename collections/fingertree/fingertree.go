// Package fingertree provides a persistent sequence backed by a 2-3 finger
// tree annotated with sizes.
//
// Both ends are reachable in amortised O(1); positional lookup and update
// descend the size annotations in O(log n). Every operation returns a new
// Seq and leaves the receiver untouched, sharing unchanged structure.
package fingertree

import (
	"fmt"
	"iter"

	"github.com/authcorp/optics/functional"
)

// Seq is an immutable sequence of A. The zero value is an empty sequence.
type Seq[A any] struct {
	root tree
}

// Empty returns an empty sequence.
func Empty[A any]() Seq[A] {
	return Seq[A]{root: emptyTree{}}
}

// Of builds a sequence holding items in order.
func Of[A any](items ...A) Seq[A] {
	return FromSlice(items)
}

// FromSlice builds a sequence holding the elements of items in order.
func FromSlice[A any](items []A) Seq[A] {
	var t tree = emptyTree{}
	for _, item := range items {
		t = pushBack(t, leaf{value: item})
	}
	return Seq[A]{root: t}
}

// unbox recovers an element stored as any. A nil interface element comes
// back as the zero A.
func unbox[A any](v any) A {
	a, _ := v.(A)
	return a
}

func (t Seq[A]) node() tree {
	if t.root == nil {
		return emptyTree{}
	}
	return t.root
}

// Len returns the number of elements.
func (t Seq[A]) Len() int {
	return t.node().size()
}

// IsEmpty reports whether the sequence has no elements.
func (t Seq[A]) IsEmpty() bool {
	return t.Len() == 0
}

// PushFront returns a sequence with a prepended.
func (t Seq[A]) PushFront(a A) Seq[A] {
	return Seq[A]{root: pushFront(t.node(), leaf{value: a})}
}

// PushBack returns a sequence with a appended.
func (t Seq[A]) PushBack(a A) Seq[A] {
	return Seq[A]{root: pushBack(t.node(), leaf{value: a})}
}

// ViewFront splits the sequence into its first element and the rest.
func (t Seq[A]) ViewFront() functional.Option[functional.Pair[A, Seq[A]]] {
	e, rest, ok := viewFront(t.node())
	if !ok {
		return functional.None[functional.Pair[A, Seq[A]]]()
	}
	return functional.Some(functional.NewPair(unbox[A](e.(leaf).value), Seq[A]{root: rest}))
}

// ViewBack splits the sequence into everything but the last element, and the last element.
func (t Seq[A]) ViewBack() functional.Option[functional.Pair[Seq[A], A]] {
	rest, e, ok := viewBack(t.node())
	if !ok {
		return functional.None[functional.Pair[Seq[A], A]]()
	}
	return functional.Some(functional.NewPair(Seq[A]{root: rest}, unbox[A](e.(leaf).value)))
}

// First returns the leftmost element.
func (t Seq[A]) First() functional.Option[A] {
	return functional.MapOption(t.ViewFront(), func(p functional.Pair[A, Seq[A]]) A { return p.First })
}

// Last returns the rightmost element.
func (t Seq[A]) Last() functional.Option[A] {
	return functional.MapOption(t.ViewBack(), func(p functional.Pair[Seq[A], A]) A { return p.Second })
}

// Get returns the element at position i, or None when i is out of range.
func (t Seq[A]) Get(i int) functional.Option[A] {
	if i < 0 || i >= t.Len() {
		return functional.None[A]()
	}
	return functional.Some(unbox[A](lookup(t.node(), i).value))
}

// Update returns a sequence with f applied to the element at position i.
// Out-of-range positions leave the sequence unchanged.
func (t Seq[A]) Update(i int, f func(A) A) Seq[A] {
	if i < 0 || i >= t.Len() {
		return t
	}
	return Seq[A]{root: adjust(t.node(), i, func(v any) any { return f(unbox[A](v)) })}
}

// Set returns a sequence with the element at position i replaced by a.
func (t Seq[A]) Set(i int, a A) Seq[A] {
	return t.Update(i, func(A) A { return a })
}

// All iterates the elements left to right.
func (t Seq[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		walk(t.node(), func(v any) bool { return yield(unbox[A](v)) })
	}
}

// Backward iterates the elements right to left.
func (t Seq[A]) Backward() iter.Seq[A] {
	return func(yield func(A) bool) {
		walkBackward(t.node(), func(v any) bool { return yield(unbox[A](v)) })
	}
}

// Slice copies the elements into a new slice.
func (t Seq[A]) Slice() []A {
	out := make([]A, 0, t.Len())
	for a := range t.All() {
		out = append(out, a)
	}
	return out
}

// Map returns a sequence with f applied to every element.
func (t Seq[A]) Map(f func(A) A) Seq[A] {
	var out tree = emptyTree{}
	for a := range t.All() {
		out = pushBack(out, leaf{value: f(a)})
	}
	return Seq[A]{root: out}
}

// Equal compares two sequences element-wise with eq.
func (t Seq[A]) Equal(other Seq[A], eq func(A, A) bool) bool {
	if t.Len() != other.Len() {
		return false
	}
	next, stop := iter.Pull(other.All())
	defer stop()
	for a := range t.All() {
		b, _ := next()
		if !eq(a, b) {
			return false
		}
	}
	return true
}

// String formats the sequence like a slice.
func (t Seq[A]) String() string {
	return fmt.Sprint(t.Slice())
}
