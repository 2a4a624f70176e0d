package optics

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven optic kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindIso
	KindLens
	KindPrism
	KindOptional
	KindTraversal
	KindSetter
	KindFold
)

var kindNames = [...]string{
	KindUnknown:   "Unknown",
	KindIso:       "Iso",
	KindLens:      "Lens",
	KindPrism:     "Prism",
	KindOptional:  "Optional",
	KindTraversal: "Traversal",
	KindSetter:    "Setter",
	KindFold:      "Fold",
}

// String returns the kind's name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the seven optic kinds.
func (k Kind) Valid() bool {
	return k >= KindIso && k <= KindFold
}

// Kinds returns the seven optic kinds from most to least capable.
func Kinds() []Kind {
	return []Kind{KindIso, KindLens, KindPrism, KindOptional, KindTraversal, KindSetter, KindFold}
}

// ParseKind parses a kind name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("optics: unknown optic kind %q", name)
}

// meetTable[x-1][y-1] is the kind produced by composing an x with a y.
// KindUnknown marks pairs that cannot be composed: a Setter cannot read
// and a Fold cannot write, so nothing sits below both. Rows and columns
// follow the order of Kinds().
var meetTable = [7][7]Kind{
	{KindIso, KindLens, KindPrism, KindOptional, KindTraversal, KindSetter, KindFold},
	{KindLens, KindLens, KindOptional, KindOptional, KindTraversal, KindSetter, KindFold},
	{KindPrism, KindOptional, KindPrism, KindOptional, KindTraversal, KindSetter, KindFold},
	{KindOptional, KindOptional, KindOptional, KindOptional, KindTraversal, KindSetter, KindFold},
	{KindTraversal, KindTraversal, KindTraversal, KindTraversal, KindTraversal, KindSetter, KindFold},
	{KindSetter, KindSetter, KindSetter, KindSetter, KindSetter, KindSetter, KindUnknown},
	{KindFold, KindFold, KindFold, KindFold, KindFold, KindUnknown, KindFold},
}

// Meet returns the kind of x composed with y: the most capable kind both
// can be viewed as. It reports false for Setter with Fold in either order.
func Meet(x, y Kind) (Kind, bool) {
	if !x.Valid() || !y.Valid() {
		return KindUnknown, false
	}
	k := meetTable[x-1][y-1]
	return k, k != KindUnknown
}

// Capabilities returns every kind k can be converted to, itself included,
// from most to least capable.
func (k Kind) Capabilities() []Kind {
	switch k {
	case KindIso:
		return Kinds()
	case KindLens:
		return []Kind{KindLens, KindOptional, KindTraversal, KindSetter, KindFold}
	case KindPrism:
		return []Kind{KindPrism, KindOptional, KindTraversal, KindSetter, KindFold}
	case KindOptional:
		return []Kind{KindOptional, KindTraversal, KindSetter, KindFold}
	case KindTraversal:
		return []Kind{KindTraversal, KindSetter, KindFold}
	case KindSetter:
		return []Kind{KindSetter}
	case KindFold:
		return []Kind{KindFold}
	default:
		return nil
	}
}

// ViewableAs reports whether an optic of kind k can be used as kind target.
func (k Kind) ViewableAs(target Kind) bool {
	for _, c := range k.Capabilities() {
		if c == target {
			return true
		}
	}
	return false
}

// CanRead reports whether the kind exposes its foci.
func (k Kind) CanRead() bool {
	return k.ViewableAs(KindFold)
}

// CanWrite reports whether the kind can rebuild its source.
func (k Kind) CanWrite() bool {
	return k.ViewableAs(KindSetter)
}
