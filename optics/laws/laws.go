// Package laws checks optics against the algebraic laws of their kind.
//
// Each constructor returns named properties over rapid generators. Run
// executes them as subtests; Evaluate runs them outside of go test and
// reports a verdict per law.
package laws

import (
	"github.com/authcorp/optics/functional"
	"pgregory.net/rapid"
)

// Law is a named property. Check fails t when the law does not hold for
// the values it draws.
type Law struct {
	Name  string
	Check func(t *rapid.T)
}

// Inputs holds the generators and equality predicates a law suite draws from.
type Inputs[S, A any] struct {
	Source *rapid.Generator[S]
	Focus  *rapid.Generator[A]
	Endo   *rapid.Generator[func(A) A]
	EqS    func(S, S) bool
	EqA    func(A, A) bool
}

func (in Inputs[S, A]) draw(t *rapid.T) S {
	return in.Source.Draw(t, "source")
}

func (in Inputs[S, A]) focus(t *rapid.T, label string) A {
	return in.Focus.Draw(t, label)
}

func (in Inputs[S, A]) endo(t *rapid.T, label string) func(A) A {
	return in.Endo.Draw(t, label)
}

func (in Inputs[S, A]) eqOption(x, y functional.Option[A]) bool {
	return functional.OptionEqual(x, y, in.EqA)
}

func (in Inputs[S, A]) eqSlice(x, y []A) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !in.EqA(x[i], y[i]) {
			return false
		}
	}
	return true
}

func law(kind, name string, check func(t *rapid.T)) Law {
	return Law{Name: kind + "/" + name, Check: check}
}

// modifyLaws are shared by every kind that can write.
func modifyLaws[S, A any](kind string, in Inputs[S, A], modify func(S, func(A) A) S, set func(S, A) S) []Law {
	return []Law{
		law(kind, "modify-identity", func(t *rapid.T) {
			s := in.draw(t)
			if got := modify(s, functional.IdentityFunc[A]); !in.EqS(got, s) {
				t.Fatalf("modify(s, id) = %v, want %v", got, s)
			}
		}),
		law(kind, "compose-modify", func(t *rapid.T) {
			s := in.draw(t)
			f, g := in.endo(t, "f"), in.endo(t, "g")
			twice := modify(modify(s, f), g)
			once := modify(s, functional.ComposeFunc(f, g))
			if !in.EqS(twice, once) {
				t.Fatalf("modify(modify(s, f), g) = %v, modify(s, g.f) = %v", twice, once)
			}
		}),
		law(kind, "consistent-set-modify", func(t *rapid.T) {
			s, a := in.draw(t), in.focus(t, "a")
			viaSet := set(s, a)
			viaModify := modify(s, functional.ConstFunc[A](a))
			if !in.EqS(viaSet, viaModify) {
				t.Fatalf("set(s, a) = %v, modify(s, const a) = %v", viaSet, viaModify)
			}
		}),
		law(kind, "set-idempotent", func(t *rapid.T) {
			s, a := in.draw(t), in.focus(t, "a")
			once := set(s, a)
			if twice := set(once, a); !in.EqS(twice, once) {
				t.Fatalf("set(set(s, a), a) = %v, set(s, a) = %v", twice, once)
			}
		}),
	}
}
