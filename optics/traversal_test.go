package optics_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/authcorp/optics/collections/fingertree"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryElementTraversals(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, []int{2, 4, 6}, optics.SliceTraversal[int]().Modify([]int{1, 2, 3}, double))
	assert.Equal(t, []int{2, 4, 6}, optics.SeqTraversal[int]().Modify(fingertree.Of(1, 2, 3), double).Slice())
	assert.Equal(t, functional.Some(4), optics.OptionTraversal[int]().Modify(functional.Some(2), double))
	assert.Equal(t, functional.None[int](), optics.OptionTraversal[int]().Modify(functional.None[int](), double))
	assert.Equal(t, functional.Right[string](4), optics.EitherTraversal[string, int]().Modify(functional.Right[string](2), double))

	values := optics.MapValuesTraversal[string, int]()
	m := map[string]int{"b": 2, "a": 1}
	assert.Equal(t, []int{1, 2}, values.GetAll(m))
	assert.Equal(t, map[string]int{"a": 2, "b": 4}, values.Modify(m, double))

	pair := optics.PairBoth[int]()
	assert.Equal(t, functional.NewPair(2, 4), pair.Modify(functional.NewPair(1, 2), double))
}

func TestStringTraversalPreservesInvalidBytes(t *testing.T) {
	tr := optics.StringTraversal()
	upper := func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}

	assert.Equal(t, "HÉLLO", tr.Modify("hÉllo", upper))
	assert.Equal(t, "A\xffB", tr.Modify("a\xffb", upper))
	assert.Equal(t, []rune{'a', 'b'}, tr.GetAll("a\xffb"))
	assert.Equal(t, "\xff\xfe", tr.Modify("\xff\xfe", func(rune) rune { return 'x' }))
}

func TestModifyFWithOption(t *testing.T) {
	tr := optics.SliceTraversal[string]()
	parse := func(s string) functional.Option[string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return functional.None[string]()
		}
		return functional.Some(strconv.Itoa(n + 1))
	}

	got := optics.ModifyF(tr, []string{"1", "2"}, parse, optics.OptionApplicative[string, []string]())
	assert.Equal(t, functional.Some([]string{"2", "3"}), got)

	assert.True(t, tr.ModifyOption([]string{"1", "x"}, parse).IsNone())
}

func TestModifyFWithEither(t *testing.T) {
	tr := optics.SliceTraversal[int]()
	check := func(n int) functional.Either[string, int] {
		if n < 0 {
			return functional.Left[string, int]("negative " + strconv.Itoa(n))
		}
		return functional.Right[string](n)
	}

	ok := optics.ModifyF(tr, []int{1, 2}, check, optics.EitherApplicative[string, int, []int]())
	assert.Equal(t, functional.Right[string]([]int{1, 2}), ok)

	bad := optics.ModifyF(tr, []int{1, -2, -3}, check, optics.EitherApplicative[string, int, []int]())
	require.True(t, bad.IsLeft())
	assert.Equal(t, "negative -2", bad.LeftValue())
}

func TestModifyFWithConstIsFoldMap(t *testing.T) {
	tr := optics.SliceTraversal[int]()
	src := []int{1, 2, 3, 4}

	sum := optics.ModifyF(tr, src, functional.IdentityFunc[int], optics.ConstApplicative[int, int, []int](functional.SumMonoid[int]()))
	assert.Equal(t, 10, sum)
	assert.Equal(t, sum, optics.FoldMap(tr, functional.SumMonoid[int](), src, functional.IdentityFunc[int]))
}

func TestModifyFWithSliceEnumeratesChoices(t *testing.T) {
	tr := optics.PairBoth[int]()
	choices := func(n int) []int { return []int{n, -n} }

	got := optics.ModifyF(tr, functional.NewPair(1, 2), choices, optics.SliceApplicative[int, functional.Pair[int, int]]())
	assert.Equal(t, []functional.Pair[int, int]{
		functional.NewPair(1, 2),
		functional.NewPair(1, -2),
		functional.NewPair(-1, 2),
		functional.NewPair(-1, -2),
	}, got)
}

func TestModifyFWithIdentityIsModify(t *testing.T) {
	tr := optics.SeqTraversal[int]()
	src := fingertree.Of(1, 2, 3)
	inc := func(n int) int { return n + 1 }

	got := optics.ModifyF(tr, src, inc, optics.IdApplicative[int, fingertree.Seq[int]]())
	assert.Equal(t, tr.Modify(src, inc).Slice(), got.Slice())
}

func TestModifyErr(t *testing.T) {
	tr := optics.SliceTraversal[int]()
	errOdd := errors.New("odd")
	halve := func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errOdd
		}
		return n / 2, nil
	}

	got, err := tr.ModifyErr([]int{2, 4}, halve)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = tr.ModifyErr([]int{2, 3}, halve)
	assert.ErrorIs(t, err, errOdd)
}

func TestComposedApplicative(t *testing.T) {
	tr := optics.SliceTraversal[int]()
	nested := optics.ComposeApplicative(
		optics.OptionApplicative[functional.Option[int], functional.Option[[]int]](),
		optics.OptionApplicative[int, []int](),
	)
	fn := func(n int) functional.Option[functional.Option[int]] {
		if n == 0 {
			return functional.None[functional.Option[int]]()
		}
		if n < 0 {
			return functional.Some(functional.None[int]())
		}
		return functional.Some(functional.Some(n))
	}

	assert.Equal(t, functional.Some(functional.Some([]int{1, 2})), optics.ModifyF(tr, []int{1, 2}, fn, nested))
	assert.Equal(t, functional.Some(functional.None[[]int]()), optics.ModifyF(tr, []int{1, -2}, fn, nested))
	assert.Equal(t, functional.None[functional.Option[[]int]](), optics.ModifyF(tr, []int{-1, 0}, fn, nested))
}

func TestComposedSetterAndFold(t *testing.T) {
	setter := optics.ComposeSetter(optics.SliceTraversal[functional.Pair[int, int]](), optics.PairBoth[int]())
	got := setter.Set([]functional.Pair[int, int]{functional.NewPair(1, 2)}, 0)
	assert.Equal(t, []functional.Pair[int, int]{functional.NewPair(0, 0)}, got)
	assert.Equal(t, optics.KindSetter, setter.Optic().Kind())

	fold := optics.ComposeFold(optics.SliceTraversal[[]int](), optics.SliceTraversal[int]())
	assert.Equal(t, []int{1, 2, 3}, fold.GetAll([][]int{{1}, {}, {2, 3}}))
	assert.Equal(t, optics.KindFold, fold.Optic().Kind())
}

func TestFoldQueries(t *testing.T) {
	fold := optics.ComposeFold(optics.SliceTraversal[int](), optics.SelectFold(func(n int) bool { return n > 2 }))
	src := []int{1, 3, 2, 5, 4}
	isOdd := func(n int) bool { return n%2 != 0 }

	assert.Equal(t, []int{3, 5, 4}, fold.GetAll(src))
	assert.Equal(t, 3, fold.Size(src))
	assert.True(t, fold.NonEmpty(src))
	assert.True(t, fold.IsEmpty([]int{1}))
	assert.Equal(t, functional.Some(3), fold.FirstOption(src))
	assert.Equal(t, functional.Some(4), fold.LastOption(src))
	assert.Equal(t, functional.Some(4), fold.Find(src, func(n int) bool { return !isOdd(n) }))
	assert.True(t, fold.Exists(src, isOdd))
	assert.False(t, fold.ForAll(src, isOdd))
	assert.True(t, fold.ForAll([]int{}, isOdd))
	assert.Equal(t, 12, optics.CombineAll(fold, functional.SumMonoid[int](), src))
	assert.Equal(t, functional.Some(3), optics.FoldMap(fold, functional.FirstMonoid[int](), src, functional.Some[int]))

	var seen []int
	for n := range fold.Iter(src) {
		seen = append(seen, n)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 5}, seen)
}

func TestSetterBehaviour(t *testing.T) {
	st := optics.NewSetter(func(s []int, fn func(int) int) []int {
		out := make([]int, len(s))
		for i, n := range s {
			out[i] = fn(n)
		}
		return out
	})
	assert.Equal(t, []int{7, 7}, st.Set([]int{1, 2}, 7))
	assert.Equal(t, []int{2, 3}, st.Lift(func(n int) int { return n + 1 })([]int{1, 2}))
	assert.Equal(t, 5, optics.IdentitySetter[int]().Set(1, 5))
}
