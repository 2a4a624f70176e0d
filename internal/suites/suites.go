// Package suites registers the law suites of the built-in optics.
package suites

import (
	"maps"
	"slices"

	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/optics/laws"
	"github.com/authcorp/optics/testutil"
	"pgregory.net/rapid"
)

// Suite is the law suite of one optic instance.
type Suite struct {
	Name string
	Kind optics.Kind
	Laws []laws.Law
}

// All returns every built-in suite in a fixed order.
func All() []Suite {
	return []Suite{
		{"PairSwap", optics.KindIso, laws.IsoLaws(optics.PairSwap[int, string](), pairSwapInputs())},
		{"SliceToSeq", optics.KindIso, laws.IsoLaws(optics.SliceToSeq[int](), sliceToSeqInputs())},
		{"PairFirst", optics.KindLens, laws.LensLaws(optics.PairFirst[int, string](), pairFirstInputs())},
		{"NestedPairLens", optics.KindLens, laws.LensLaws(nestedPairLens(), nestedPairInputs())},
		{"MapAt", optics.KindLens, laws.LensLaws(optics.MapAt[string, int]().At("a"), mapAtInputs())},
		{"SetAt", optics.KindLens, laws.LensLaws(optics.SetAt[string]().At("a"), setAtInputs())},
		{"StringToInt", optics.KindPrism, laws.PrismLaws(optics.StringToInt(), stringToIntInputs())},
		{"SomePrism", optics.KindPrism, laws.PrismLaws(optics.SomePrism[int](), somePrismInputs())},
		{"RightPrism", optics.KindPrism, laws.PrismLaws(optics.RightPrism[string, int](), rightPrismInputs())},
		{"SliceCons", optics.KindPrism, laws.PrismLaws(optics.SliceCons[int]().Cons(), sliceConsInputs())},
		{"StringCons", optics.KindPrism, laws.PrismLaws(optics.StringCons().Cons(), stringConsInputs())},
		{"SeqSnoc", optics.KindPrism, laws.PrismLaws(optics.SeqSnoc[int]().Snoc(), seqSnocInputs())},
		{"SliceIndex", optics.KindOptional, laws.OptionalLaws(optics.SliceIndex[int]().Index(1), sliceInputs())},
		{"StringIndex", optics.KindOptional, laws.OptionalLaws(optics.StringIndex().Index(1), stringInputs())},
		{"MapIndex", optics.KindOptional, laws.OptionalLaws(optics.MapIndex[string, int]().Index("a"), mapInputs())},
		{"SeqIndex", optics.KindOptional, laws.OptionalLaws(optics.SeqIndex[int]().Index(2), seqInputs())},
		{"PairFirstStringToInt", optics.KindOptional, laws.OptionalLaws(pairFirstStringToInt(), pairStringInputs())},
		{"SliceTraversal", optics.KindTraversal, laws.TraversalLaws(optics.SliceTraversal[int](), sliceInputs())},
		{"StringTraversal", optics.KindTraversal, laws.TraversalLaws(optics.StringTraversal(), stringInputs())},
		{"SeqTraversal", optics.KindTraversal, laws.TraversalLaws(optics.SeqTraversal[int](), seqInputs())},
		{"MapValuesTraversal", optics.KindTraversal, laws.TraversalLaws(optics.MapValuesTraversal[string, int](), mapInputs())},
		{"OptionTraversal", optics.KindTraversal, laws.TraversalLaws(optics.OptionTraversal[int](), somePrismInputs())},
		{"SliceFilterIndex", optics.KindTraversal, laws.TraversalLaws(optics.SliceFilterIndex[int]().Filter(isEven), sliceInputs())},
		{"SliceRights", optics.KindTraversal, laws.TraversalLaws(sliceRights(), sliceEitherInputs())},
		{"PairBothSetter", optics.KindSetter, laws.SetterLaws(pairBothSetter(), slicePairInputs())},
		{"EvenFold", optics.KindFold, laws.FoldLaws(evenFold(), sliceInputs())},
	}
}

// Select returns the suites whose names are listed, in registry order. An
// empty list selects every suite. Unknown names are returned separately.
func Select(names []string) ([]Suite, []string) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var selected []Suite
	for _, s := range all {
		if wanted[s.Name] {
			selected = append(selected, s)
			delete(wanted, s.Name)
		}
	}
	return selected, slices.Sorted(maps.Keys(wanted))
}

func isEven(i int) bool { return i%2 == 0 }

func eqInt(a, b int) bool { return a == b }

func eqSeq(a, b fingertree.Seq[int]) bool { return a.Equal(b, eqInt) }

func eqMap(a, b map[string]int) bool { return maps.Equal(a, b) }

func eqSet(a, b map[string]struct{}) bool { return maps.Equal(a, b) }

func eqEither(a, b functional.Either[string, int]) bool {
	return functional.EitherEqual(a, b, functional.Equal[string], eqInt)
}

func nestedPairLens() optics.Lens[functional.Pair[functional.Pair[int, string], bool], string] {
	return optics.ComposeLens(
		optics.PairFirst[functional.Pair[int, string], bool](),
		optics.PairSecond[int, string](),
	)
}

func pairFirstStringToInt() optics.Optional[functional.Pair[string, int], int] {
	return optics.ComposeOptional(optics.PairFirst[string, int](), optics.StringToInt())
}

func sliceRights() optics.Traversal[[]functional.Either[string, int], int] {
	return optics.ComposeTraversal(
		optics.SliceTraversal[functional.Either[string, int]](),
		optics.RightPrism[string, int](),
	)
}

func pairBothSetter() optics.Setter[[]functional.Pair[int, int], int] {
	return optics.ComposeSetter(
		optics.SliceTraversal[functional.Pair[int, int]](),
		optics.PairBoth[int](),
	)
}

func evenFold() optics.Fold[[]int, int] {
	return optics.ComposeFold(
		optics.SliceTraversal[int](),
		optics.SelectFold(func(n int) bool { return n%2 == 0 }),
	)
}

func intInputs[S any](source *rapid.Generator[S], eq func(S, S) bool) laws.Inputs[S, int] {
	return laws.Inputs[S, int]{
		Source: source,
		Focus:  testutil.SmallIntGen(),
		Endo:   testutil.IntEndo(),
		EqS:    eq,
		EqA:    eqInt,
	}
}

func sliceInputs() laws.Inputs[[]int, int] {
	return intInputs(rapid.SliceOfN(testutil.SmallIntGen(), 0, 8), slices.Equal[[]int])
}

func seqInputs() laws.Inputs[fingertree.Seq[int], int] {
	return intInputs(testutil.SeqGen(testutil.SmallIntGen(), 40), eqSeq)
}

func mapInputs() laws.Inputs[map[string]int, int] {
	return intInputs(testutil.MapGen(testutil.KeyGen(), testutil.SmallIntGen(), 6), eqMap)
}

func somePrismInputs() laws.Inputs[functional.Option[int], int] {
	return intInputs(testutil.OptionGen(testutil.SmallIntGen()), func(a, b functional.Option[int]) bool {
		return functional.OptionEqual(a, b, eqInt)
	})
}

func rightPrismInputs() laws.Inputs[functional.Either[string, int], int] {
	return intInputs(testutil.EitherGen(rapid.String(), testutil.SmallIntGen()), eqEither)
}

func sliceEitherInputs() laws.Inputs[[]functional.Either[string, int], int] {
	source := rapid.SliceOfN(testutil.EitherGen(rapid.StringN(0, 2, -1), testutil.SmallIntGen()), 0, 6)
	return intInputs(source, func(a, b []functional.Either[string, int]) bool {
		return slices.EqualFunc(a, b, eqEither)
	})
}

func slicePairInputs() laws.Inputs[[]functional.Pair[int, int], int] {
	source := rapid.SliceOfN(testutil.PairGen(testutil.SmallIntGen(), testutil.SmallIntGen()), 0, 6)
	return intInputs(source, slices.Equal[[]functional.Pair[int, int]])
}

func pairStringInputs() laws.Inputs[functional.Pair[string, int], int] {
	first := rapid.OneOf(rapid.StringMatching(`-?[0-9]{1,3}`), rapid.String())
	return intInputs(testutil.PairGen(first, testutil.SmallIntGen()), functional.Equal[functional.Pair[string, int]])
}

func stringToIntInputs() laws.Inputs[string, int] {
	source := rapid.OneOf(rapid.StringMatching(`-?[0-9]{1,4}`), rapid.String())
	return laws.Inputs[string, int]{
		Source: source,
		Focus:  rapid.Int(),
		Endo:   testutil.IntEndo(),
		EqS:    functional.Equal[string],
		EqA:    eqInt,
	}
}

// stringSource mixes valid UTF-8 with raw bytes, which may not be.
func stringSource() *rapid.Generator[string] {
	raw := rapid.Map(rapid.SliceOfN(rapid.Byte(), 0, 8), func(b []byte) string { return string(b) })
	return rapid.OneOf(rapid.StringN(0, 8, -1), raw)
}

func stringInputs() laws.Inputs[string, rune] {
	return laws.Inputs[string, rune]{
		Source: stringSource(),
		Focus:  rapid.Rune(),
		Endo:   testutil.RuneEndo(),
		EqS:    functional.Equal[string],
		EqA:    functional.Equal[rune],
	}
}

func pairSwapInputs() laws.Inputs[functional.Pair[int, string], functional.Pair[string, int]] {
	return laws.Inputs[functional.Pair[int, string], functional.Pair[string, int]]{
		Source: testutil.PairGen(testutil.SmallIntGen(), rapid.String()),
		Focus:  testutil.PairGen(rapid.String(), testutil.SmallIntGen()),
		Endo: rapid.Custom(func(t *rapid.T) func(functional.Pair[string, int]) functional.Pair[string, int] {
			f := testutil.IntEndo().Draw(t, "f")
			return func(p functional.Pair[string, int]) functional.Pair[string, int] {
				return functional.MapPairSecond(p, f)
			}
		}),
		EqS: functional.Equal[functional.Pair[int, string]],
		EqA: functional.Equal[functional.Pair[string, int]],
	}
}

func sliceToSeqInputs() laws.Inputs[[]int, fingertree.Seq[int]] {
	return laws.Inputs[[]int, fingertree.Seq[int]]{
		Source: rapid.SliceOfN(testutil.SmallIntGen(), 0, 20),
		Focus:  testutil.SeqGen(testutil.SmallIntGen(), 20),
		Endo: rapid.Custom(func(t *rapid.T) func(fingertree.Seq[int]) fingertree.Seq[int] {
			k := testutil.SmallIntGen().Draw(t, "k")
			if rapid.Bool().Draw(t, "front") {
				return func(s fingertree.Seq[int]) fingertree.Seq[int] { return s.PushFront(k) }
			}
			f := testutil.IntEndo().Draw(t, "f")
			return func(s fingertree.Seq[int]) fingertree.Seq[int] { return s.Map(f) }
		}),
		EqS: slices.Equal[[]int],
		EqA: eqSeq,
	}
}

func pairFirstInputs() laws.Inputs[functional.Pair[int, string], int] {
	return intInputs(testutil.PairGen(testutil.SmallIntGen(), rapid.String()), functional.Equal[functional.Pair[int, string]])
}

func nestedPairInputs() laws.Inputs[functional.Pair[functional.Pair[int, string], bool], string] {
	inner := testutil.PairGen(testutil.SmallIntGen(), rapid.String())
	return laws.Inputs[functional.Pair[functional.Pair[int, string], bool], string]{
		Source: testutil.PairGen(inner, rapid.Bool()),
		Focus:  rapid.String(),
		Endo:   testutil.StringEndo(),
		EqS:    functional.Equal[functional.Pair[functional.Pair[int, string], bool]],
		EqA:    functional.Equal[string],
	}
}

func mapAtInputs() laws.Inputs[map[string]int, functional.Option[int]] {
	eqOpt := func(a, b functional.Option[int]) bool { return functional.OptionEqual(a, b, eqInt) }
	return laws.Inputs[map[string]int, functional.Option[int]]{
		Source: testutil.MapGen(testutil.KeyGen(), testutil.SmallIntGen(), 6),
		Focus:  testutil.OptionGen(testutil.SmallIntGen()),
		Endo: rapid.Custom(func(t *rapid.T) func(functional.Option[int]) functional.Option[int] {
			if rapid.Bool().Draw(t, "delete") {
				return functional.ConstFunc[functional.Option[int]](functional.None[int]())
			}
			f := testutil.IntEndo().Draw(t, "f")
			return func(o functional.Option[int]) functional.Option[int] { return functional.MapOption(o, f) }
		}),
		EqS: eqMap,
		EqA: eqOpt,
	}
}

func setAtInputs() laws.Inputs[map[string]struct{}, bool] {
	return laws.Inputs[map[string]struct{}, bool]{
		Source: testutil.SetGen(testutil.KeyGen(), 6),
		Focus:  rapid.Bool(),
		Endo: rapid.Custom(func(t *rapid.T) func(bool) bool {
			switch rapid.IntRange(0, 2).Draw(t, "shape") {
			case 0:
				return functional.IdentityFunc[bool]
			case 1:
				return func(b bool) bool { return !b }
			default:
				return functional.ConstFunc[bool](rapid.Bool().Draw(t, "b"))
			}
		}),
		EqS: eqSet,
		EqA: functional.Equal[bool],
	}
}

func sliceConsInputs() laws.Inputs[[]int, functional.Pair[int, []int]] {
	return laws.Inputs[[]int, functional.Pair[int, []int]]{
		Source: rapid.SliceOfN(testutil.SmallIntGen(), 0, 8),
		Focus:  testutil.PairGen(testutil.SmallIntGen(), rapid.SliceOfN(testutil.SmallIntGen(), 0, 8)),
		Endo:   pairFirstEndo[[]int](),
		EqS:    slices.Equal[[]int],
		EqA: func(a, b functional.Pair[int, []int]) bool {
			return functional.PairEqual(a, b, eqInt, slices.Equal[[]int])
		},
	}
}

func stringConsInputs() laws.Inputs[string, functional.Pair[rune, string]] {
	return laws.Inputs[string, functional.Pair[rune, string]]{
		Source: stringSource(),
		Focus:  testutil.PairGen(rapid.Rune(), rapid.StringN(0, 8, -1)),
		Endo: rapid.Custom(func(t *rapid.T) func(functional.Pair[rune, string]) functional.Pair[rune, string] {
			f := testutil.RuneEndo().Draw(t, "f")
			return func(p functional.Pair[rune, string]) functional.Pair[rune, string] {
				return functional.MapPairFirst(p, f)
			}
		}),
		EqS: functional.Equal[string],
		EqA: functional.Equal[functional.Pair[rune, string]],
	}
}

func seqSnocInputs() laws.Inputs[fingertree.Seq[int], functional.Pair[fingertree.Seq[int], int]] {
	return laws.Inputs[fingertree.Seq[int], functional.Pair[fingertree.Seq[int], int]]{
		Source: testutil.SeqGen(testutil.SmallIntGen(), 40),
		Focus:  testutil.PairGen(testutil.SeqGen(testutil.SmallIntGen(), 40), testutil.SmallIntGen()),
		Endo: rapid.Custom(func(t *rapid.T) func(functional.Pair[fingertree.Seq[int], int]) functional.Pair[fingertree.Seq[int], int] {
			f := testutil.IntEndo().Draw(t, "f")
			return func(p functional.Pair[fingertree.Seq[int], int]) functional.Pair[fingertree.Seq[int], int] {
				return functional.MapPairSecond(p, f)
			}
		}),
		EqS: eqSeq,
		EqA: func(a, b functional.Pair[fingertree.Seq[int], int]) bool {
			return functional.PairEqual(a, b, eqSeq, eqInt)
		},
	}
}

func pairFirstEndo[B any]() *rapid.Generator[func(functional.Pair[int, B]) functional.Pair[int, B]] {
	return rapid.Custom(func(t *rapid.T) func(functional.Pair[int, B]) functional.Pair[int, B] {
		f := testutil.IntEndo().Draw(t, "f")
		return func(p functional.Pair[int, B]) functional.Pair[int, B] {
			return functional.MapPairFirst(p, f)
		}
	})
}
