package optics

import (
	"errors"
	"fmt"
)

// ErrIncompatibleKinds is returned when two optics have no common kind.
var ErrIncompatibleKinds = errors.New("optics: incompatible optic kinds")

// Optic is an optic of any kind, tagged with that kind. It is the dynamic
// counterpart of the typed Compose functions: composition looks up the
// resulting kind in the meet table at run time.
type Optic[S, A any] struct {
	kind  Kind
	value any
}

// Kind returns the optic's kind, or KindUnknown for the zero Optic.
func (o Optic[S, A]) Kind() Kind {
	return o.kind
}

func (o Optic[S, A]) String() string {
	return fmt.Sprintf("Optic(%s)", o.kind)
}

// ToIso returns the optic as an Iso if its kind is Iso.
func (o Optic[S, A]) ToIso() (Iso[S, A], bool) {
	i, ok := o.value.(Iso[S, A])
	return i, ok
}

// ToLens returns the optic as a Lens if its kind can be viewed as one.
func (o Optic[S, A]) ToLens() (Lens[S, A], bool) {
	if l, ok := o.value.(LensLike[S, A]); ok {
		return l.AsLens(), true
	}
	return Lens[S, A]{}, false
}

// ToPrism returns the optic as a Prism if its kind can be viewed as one.
func (o Optic[S, A]) ToPrism() (Prism[S, A], bool) {
	if p, ok := o.value.(PrismLike[S, A]); ok {
		return p.AsPrism(), true
	}
	return Prism[S, A]{}, false
}

// ToOptional returns the optic as an Optional if its kind can be viewed as one.
func (o Optic[S, A]) ToOptional() (Optional[S, A], bool) {
	if op, ok := o.value.(OptionalLike[S, A]); ok {
		return op.AsOptional(), true
	}
	return Optional[S, A]{}, false
}

// ToTraversal returns the optic as a Traversal if its kind can be viewed as one.
func (o Optic[S, A]) ToTraversal() (Traversal[S, A], bool) {
	if t, ok := o.value.(TraversalLike[S, A]); ok {
		return t.AsTraversal(), true
	}
	return Traversal[S, A]{}, false
}

// ToSetter returns the optic as a Setter if its kind can be viewed as one.
func (o Optic[S, A]) ToSetter() (Setter[S, A], bool) {
	if st, ok := o.value.(SetterLike[S, A]); ok {
		return st.AsSetter(), true
	}
	return Setter[S, A]{}, false
}

// ToFold returns the optic as a Fold if its kind can be viewed as one.
func (o Optic[S, A]) ToFold() (Fold[S, A], bool) {
	if f, ok := o.value.(FoldLike[S, A]); ok {
		return f.AsFold(), true
	}
	return Fold[S, A]{}, false
}

// Compose composes two tagged optics. The result's kind is the meet of the
// operands' kinds; composing a Setter with a Fold, or a zero Optic with
// anything, returns ErrIncompatibleKinds.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) (Optic[S, B], error) {
	kind, ok := Meet(outer.kind, inner.kind)
	if !ok {
		return Optic[S, B]{}, fmt.Errorf("%w: %s with %s", ErrIncompatibleKinds, outer.kind, inner.kind)
	}
	switch kind {
	case KindIso:
		o, _ := outer.ToIso()
		i, _ := inner.ToIso()
		return ComposeIso(o, i).Optic(), nil
	case KindLens:
		o, _ := outer.ToLens()
		i, _ := inner.ToLens()
		return ComposeLens(o, i).Optic(), nil
	case KindPrism:
		o, _ := outer.ToPrism()
		i, _ := inner.ToPrism()
		return ComposePrism(o, i).Optic(), nil
	case KindOptional:
		o, _ := outer.ToOptional()
		i, _ := inner.ToOptional()
		return ComposeOptional(o, i).Optic(), nil
	case KindTraversal:
		o, _ := outer.ToTraversal()
		i, _ := inner.ToTraversal()
		return ComposeTraversal(o, i).Optic(), nil
	case KindSetter:
		o, _ := outer.ToSetter()
		i, _ := inner.ToSetter()
		return ComposeSetter(o, i).Optic(), nil
	default:
		o, _ := outer.ToFold()
		i, _ := inner.ToFold()
		return ComposeFold(o, i).Optic(), nil
	}
}

// MustCompose is like Compose but panics on incompatible kinds.
func MustCompose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	c, err := Compose(outer, inner)
	if err != nil {
		panic(err)
	}
	return c
}
