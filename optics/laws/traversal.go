package laws

import (
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"pgregory.net/rapid"
)

// SetterLaws checks the modify laws of a setter.
func SetterLaws[S, A any](setter optics.SetterLike[S, A], in Inputs[S, A]) []Law {
	st := setter.AsSetter()
	return modifyLaws("Setter", in, st.Modify, st.Set)
}

// TraversalLaws checks the modify laws of a traversal together with the
// identity and composition laws of ModifyF and the stability of its focus
// order.
func TraversalLaws[S, A any](traversal optics.TraversalLike[S, A], in Inputs[S, A]) []Law {
	tr := traversal.AsTraversal()
	laws := []Law{
		law("Traversal", "modify-f-identity", func(t *rapid.T) {
			s := in.draw(t)
			got := optics.ModifyF(tr, s, functional.IdentityFunc[A], optics.IdApplicative[A, S]())
			if !in.EqS(got, s) {
				t.Fatalf("modifyF(s, pure) = %v, want %v", got, s)
			}
		}),
		law("Traversal", "modify-f-composition", func(t *rapid.T) {
			s := in.draw(t)
			f := partialEndo(t, in, "f")
			g := partialEndo(t, in, "g")

			nested := optics.ComposeApplicative(
				optics.OptionApplicative[functional.Option[A], functional.Option[S]](),
				optics.OptionApplicative[A, S](),
			)
			composed := optics.ModifyF(tr, s, func(a A) functional.Option[functional.Option[A]] {
				return functional.MapOption(f(a), g)
			}, nested)

			sequenced := functional.MapOption(
				optics.ModifyF(tr, s, f, optics.OptionApplicative[A, S]()),
				func(s2 S) functional.Option[S] {
					return optics.ModifyF(tr, s2, g, optics.OptionApplicative[A, S]())
				},
			)

			eq := func(x, y functional.Option[S]) bool { return functional.OptionEqual(x, y, in.EqS) }
			if !functional.OptionEqual(composed, sequenced, eq) {
				t.Fatalf("composed effects = %v, sequenced effects = %v", composed, sequenced)
			}
		}),
		law("Traversal", "modify-get-all", func(t *rapid.T) {
			s, f := in.draw(t), in.endo(t, "f")
			got := tr.GetAll(tr.Modify(s, f))
			want := tr.GetAll(s)
			for i := range want {
				want[i] = f(want[i])
			}
			if !in.eqSlice(got, want) {
				t.Fatalf("getAll(modify(s, f)) = %v, want %v", got, want)
			}
		}),
		law("Traversal", "get-all-deterministic", func(t *rapid.T) {
			s := in.draw(t)
			if first, second := tr.GetAll(s), tr.GetAll(s); !in.eqSlice(first, second) {
				t.Fatalf("getAll(s) changed between calls: %v then %v", first, second)
			}
		}),
	}
	return append(laws, modifyLaws("Traversal", in, tr.Modify, tr.Set)...)
}

// partialEndo draws an endo function and a poison value; the result is None
// on the poison value and Some(f(a)) elsewhere.
func partialEndo[S, A any](t *rapid.T, in Inputs[S, A], label string) func(A) functional.Option[A] {
	f := in.endo(t, label)
	poison := in.focus(t, label+"-poison")
	return func(a A) functional.Option[A] {
		if in.EqA(a, poison) {
			return functional.None[A]()
		}
		return functional.Some(f(a))
	}
}

// FoldLaws checks that the derived fold queries agree with FoldMap and
// with each other.
func FoldLaws[S, A any](fold optics.FoldLike[S, A], in Inputs[S, A]) []Law {
	f := fold.AsFold()
	return []Law{
		law("Fold", "fold-map-get-all", func(t *rapid.T) {
			s := in.draw(t)
			got := optics.FoldMap(f, functional.SliceMonoid[A](), s, func(a A) []A { return []A{a} })
			if want := f.GetAll(s); !in.eqSlice(got, want) {
				t.Fatalf("foldMap(s, singleton) = %v, getAll(s) = %v", got, want)
			}
		}),
		law("Fold", "size", func(t *rapid.T) {
			s := in.draw(t)
			if got, want := f.Size(s), len(f.GetAll(s)); got != want {
				t.Fatalf("size(s) = %d, len(getAll(s)) = %d", got, want)
			}
			if f.IsEmpty(s) == f.NonEmpty(s) || f.IsEmpty(s) != (f.Size(s) == 0) {
				t.Fatalf("isEmpty and nonEmpty disagree with size %d", f.Size(s))
			}
		}),
		law("Fold", "first-last", func(t *rapid.T) {
			s := in.draw(t)
			all := f.GetAll(s)
			wantFirst, wantLast := functional.None[A](), functional.None[A]()
			if len(all) > 0 {
				wantFirst, wantLast = functional.Some(all[0]), functional.Some(all[len(all)-1])
			}
			if got := f.FirstOption(s); !in.eqOption(got, wantFirst) {
				t.Fatalf("firstOption(s) = %v, want %v", got, wantFirst)
			}
			if got := f.LastOption(s); !in.eqOption(got, wantLast) {
				t.Fatalf("lastOption(s) = %v, want %v", got, wantLast)
			}
		}),
		law("Fold", "find-exists", func(t *rapid.T) {
			s, a := in.draw(t), in.focus(t, "a")
			matches := func(x A) bool { return in.EqA(x, a) }
			found := f.Find(s, matches)
			if found.IsSome() != f.Exists(s, matches) {
				t.Fatalf("find(s, p) = %v but exists(s, p) = %v", found, f.Exists(s, matches))
			}
			if f.ForAll(s, func(x A) bool { return !matches(x) }) == f.Exists(s, matches) {
				t.Fatalf("forAll(s, not p) agrees with exists(s, p)")
			}
		}),
	}
}
