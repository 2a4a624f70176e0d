package laws

import (
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"pgregory.net/rapid"
)

// PrismLaws checks that a prism's match and build directions agree and
// that a miss hands back the source untouched.
func PrismLaws[S, A any](prism optics.PrismLike[S, A], in Inputs[S, A]) []Law {
	p := prism.AsPrism()
	laws := []Law{
		law("Prism", "partial-round-trip-one-way", func(t *rapid.T) {
			s := in.draw(t)
			got := functional.MatchEither(p.GetOrModify(s),
				functional.IdentityFunc[S],
				p.ReverseGet,
			)
			if !in.EqS(got, s) {
				t.Fatalf("getOrModify(s) rebuilt to %v, want %v", got, s)
			}
		}),
		law("Prism", "round-trip-other-way", func(t *rapid.T) {
			a := in.focus(t, "a")
			got := p.GetOption(p.ReverseGet(a))
			if want := functional.Some(a); !in.eqOption(got, want) {
				t.Fatalf("getOption(reverseGet(a)) = %v, want %v", got, want)
			}
		}),
		law("Prism", "modify-get-option", func(t *rapid.T) {
			s, f := in.draw(t), in.endo(t, "f")
			got := p.GetOption(p.Modify(s, f))
			if want := functional.MapOption(p.GetOption(s), f); !in.eqOption(got, want) {
				t.Fatalf("getOption(modify(s, f)) = %v, want %v", got, want)
			}
		}),
	}
	return append(laws, modifyLaws("Prism", in, p.Modify, p.Set)...)
}

// OptionalLaws checks the get/set laws of an optional on both present and
// absent foci.
func OptionalLaws[S, A any](optional optics.OptionalLike[S, A], in Inputs[S, A]) []Law {
	o := optional.AsOptional()
	laws := []Law{
		law("Optional", "get-option-set", func(t *rapid.T) {
			s := in.draw(t)
			got := functional.MatchEither(o.GetOrModify(s),
				functional.IdentityFunc[S],
				func(a A) S { return o.Set(s, a) },
			)
			if !in.EqS(got, s) {
				t.Fatalf("set(s, getOption(s)) = %v, want %v", got, s)
			}
		}),
		law("Optional", "set-get-option", func(t *rapid.T) {
			s, a := in.draw(t), in.focus(t, "a")
			got := o.GetOption(o.Set(s, a))
			want := functional.MapOption(o.GetOption(s), functional.ConstFunc[A](a))
			if !in.eqOption(got, want) {
				t.Fatalf("getOption(set(s, a)) = %v, want %v", got, want)
			}
		}),
		law("Optional", "set-absent", func(t *rapid.T) {
			s, a := in.draw(t), in.focus(t, "a")
			if o.IsMatch(s) {
				return
			}
			if got := o.Set(s, a); !in.EqS(got, s) {
				t.Fatalf("set on absent focus = %v, want %v", got, s)
			}
		}),
	}
	return append(laws, modifyLaws("Optional", in, o.Modify, o.Set)...)
}
