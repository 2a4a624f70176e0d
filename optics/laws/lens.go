package laws

import (
	"github.com/authcorp/optics/optics"
	"pgregory.net/rapid"
)

// IsoLaws checks that iso's two directions are mutual inverses and that
// it behaves as a lawful Lens.
func IsoLaws[S, A any](iso optics.Iso[S, A], in Inputs[S, A]) []Law {
	laws := []Law{
		law("Iso", "round-trip-one-way", func(t *rapid.T) {
			s := in.draw(t)
			if got := iso.ReverseGet(iso.Get(s)); !in.EqS(got, s) {
				t.Fatalf("reverseGet(get(s)) = %v, want %v", got, s)
			}
		}),
		law("Iso", "round-trip-other-way", func(t *rapid.T) {
			a := in.focus(t, "a")
			if got := iso.Get(iso.ReverseGet(a)); !in.EqA(got, a) {
				t.Fatalf("get(reverseGet(a)) = %v, want %v", got, a)
			}
		}),
	}
	return append(laws, modifyLaws("Iso", in, iso.Modify, iso.Set)...)
}

// LensLaws checks the get/set laws of a lens.
func LensLaws[S, A any](lens optics.LensLike[S, A], in Inputs[S, A]) []Law {
	l := lens.AsLens()
	laws := []Law{
		law("Lens", "get-set", func(t *rapid.T) {
			s := in.draw(t)
			if got := l.Set(s, l.Get(s)); !in.EqS(got, s) {
				t.Fatalf("set(s, get(s)) = %v, want %v", got, s)
			}
		}),
		law("Lens", "set-get", func(t *rapid.T) {
			s, a := in.draw(t), in.focus(t, "a")
			if got := l.Get(l.Set(s, a)); !in.EqA(got, a) {
				t.Fatalf("get(set(s, a)) = %v, want %v", got, a)
			}
		}),
		law("Lens", "set-set", func(t *rapid.T) {
			s := in.draw(t)
			a1, a2 := in.focus(t, "a1"), in.focus(t, "a2")
			twice := l.Set(l.Set(s, a1), a2)
			if once := l.Set(s, a2); !in.EqS(twice, once) {
				t.Fatalf("set(set(s, a1), a2) = %v, set(s, a2) = %v", twice, once)
			}
		}),
		law("Lens", "modify-get", func(t *rapid.T) {
			s, f := in.draw(t), in.endo(t, "f")
			if got, want := l.Get(l.Modify(s, f)), f(l.Get(s)); !in.EqA(got, want) {
				t.Fatalf("get(modify(s, f)) = %v, f(get(s)) = %v", got, want)
			}
		}),
	}
	return append(laws, modifyLaws("Lens", in, l.Modify, l.Set)...)
}
