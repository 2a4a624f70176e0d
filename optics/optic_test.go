package optics_test

import (
	"testing"

	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/optics/laws"
	"github.com/authcorp/optics/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type pairIntString = functional.Pair[int, string]

// sampleOptics returns one Optic[S, S] per kind over the same pair type so
// that every pair of kinds can be composed.
func sampleOptics() map[optics.Kind]optics.Optic[pairIntString, pairIntString] {
	iso := optics.IdentityIso[pairIntString]()
	lens := optics.LensFirst[int, int, string](optics.NewLens(
		func(n int) int { return n },
		func(_ int, n int) int { return n },
	))
	prism := optics.NewPartialPrism(
		func(p pairIntString) functional.Option[pairIntString] {
			return functional.Some(p).Filter(func(p pairIntString) bool { return p.First >= 0 })
		},
		functional.IdentityFunc[pairIntString],
	)
	return map[optics.Kind]optics.Optic[pairIntString, pairIntString]{
		optics.KindIso:       iso.Optic(),
		optics.KindLens:      lens.Optic(),
		optics.KindPrism:     prism.Optic(),
		optics.KindOptional:  optics.IdentityOptional[pairIntString]().Optic(),
		optics.KindTraversal: optics.IdentityTraversal[pairIntString]().Optic(),
		optics.KindSetter:    optics.IdentitySetter[pairIntString]().Optic(),
		optics.KindFold:      optics.IdentityFold[pairIntString]().Optic(),
	}
}

func TestComposeProducesMeetKind(t *testing.T) {
	samples := sampleOptics()
	for _, x := range optics.Kinds() {
		for _, y := range optics.Kinds() {
			got, err := optics.Compose(samples[x], samples[y])
			want, ok := optics.Meet(x, y)
			if !ok {
				assert.ErrorIs(t, err, optics.ErrIncompatibleKinds, "%s with %s", x, y)
				assert.Equal(t, optics.KindUnknown, got.Kind())
				continue
			}
			require.NoError(t, err, "%s with %s", x, y)
			assert.Equal(t, want, got.Kind(), "%s with %s", x, y)
		}
	}
}

// samplePairInputs draws sources on both sides of the sample prism's match
// and only foci it accepts, so every sample and every composition of them
// is lawful.
func samplePairInputs() laws.Inputs[pairIntString, pairIntString] {
	natural := rapid.IntRange(0, 50)
	return laws.Inputs[pairIntString, pairIntString]{
		Source: testutil.PairGen(rapid.IntRange(-50, 50), rapid.StringN(0, 3, -1)),
		Focus:  testutil.PairGen(natural, rapid.StringN(0, 3, -1)),
		Endo: rapid.Custom(func(t *rapid.T) func(pairIntString) pairIntString {
			f := testutil.IntEndo().Draw(t, "first")
			g := testutil.StringEndo().Draw(t, "second")
			return func(p pairIntString) pairIntString {
				n := f(p.First)
				if n < 0 {
					n = -n
				}
				return functional.NewPair(n, g(p.Second))
			}
		}),
		EqS: functional.Equal[pairIntString],
		EqA: functional.Equal[pairIntString],
	}
}

// lawsOf returns the laws of o's kind, plus the Fold laws when o can read.
func lawsOf(t *testing.T, o optics.Optic[pairIntString, pairIntString]) []laws.Law {
	t.Helper()
	in := samplePairInputs()
	var suite []laws.Law
	switch o.Kind() {
	case optics.KindIso:
		iso, ok := o.ToIso()
		require.True(t, ok)
		suite = laws.IsoLaws(iso, in)
	case optics.KindLens:
		lens, ok := o.ToLens()
		require.True(t, ok)
		suite = laws.LensLaws(lens, in)
	case optics.KindPrism:
		prism, ok := o.ToPrism()
		require.True(t, ok)
		suite = laws.PrismLaws(prism, in)
	case optics.KindOptional:
		optional, ok := o.ToOptional()
		require.True(t, ok)
		suite = laws.OptionalLaws(optional, in)
	case optics.KindTraversal:
		traversal, ok := o.ToTraversal()
		require.True(t, ok)
		suite = laws.TraversalLaws(traversal, in)
	case optics.KindSetter:
		setter, ok := o.ToSetter()
		require.True(t, ok)
		suite = laws.SetterLaws(setter, in)
	case optics.KindFold:
	default:
		t.Fatalf("no laws for kind %s", o.Kind())
	}
	if o.Kind().CanRead() {
		fold, ok := o.ToFold()
		require.True(t, ok)
		suite = append(suite, laws.FoldLaws(fold, in)...)
	}
	return suite
}

func TestEveryCompositionSatisfiesTheLawsOfItsKind(t *testing.T) {
	samples := sampleOptics()
	for _, k := range optics.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			laws.Run(t, lawsOf(t, samples[k]))
		})
	}

	pairs := 0
	for _, x := range optics.Kinds() {
		for _, y := range optics.Kinds() {
			composed, err := optics.Compose(samples[x], samples[y])
			if err != nil {
				continue
			}
			pairs++
			t.Run(x.String()+"-"+y.String(), func(t *testing.T) {
				laws.Run(t, lawsOf(t, composed))
			})
		}
	}
	assert.Equal(t, 47, pairs)
}

func TestComposedOpticBehaves(t *testing.T) {
	samples := sampleOptics()
	src := functional.NewPair(3, "x")

	composed, err := optics.Compose(samples[optics.KindLens], samples[optics.KindPrism])
	require.NoError(t, err)
	opt, ok := composed.ToOptional()
	require.True(t, ok)
	assert.Equal(t, functional.Some(src), opt.GetOption(src))

	_, ok = composed.ToLens()
	assert.False(t, ok)
	_, ok = composed.ToPrism()
	assert.False(t, ok)

	fold, ok := composed.ToFold()
	require.True(t, ok)
	assert.Equal(t, 1, fold.Size(src))

	setter, ok := composed.ToSetter()
	require.True(t, ok)
	assert.Equal(t, functional.NewPair(4, "x"), setter.Modify(src, func(p pairIntString) pairIntString {
		return functional.MapPairFirst(p, func(n int) int { return n + 1 })
	}))
}

func TestOpticConversions(t *testing.T) {
	samples := sampleOptics()
	for _, k := range optics.Kinds() {
		o := samples[k]
		_, isIso := o.ToIso()
		_, isLens := o.ToLens()
		_, isPrism := o.ToPrism()
		_, isOptional := o.ToOptional()
		_, isTraversal := o.ToTraversal()
		_, isSetter := o.ToSetter()
		_, isFold := o.ToFold()

		assert.Equal(t, k.ViewableAs(optics.KindIso), isIso, k.String())
		assert.Equal(t, k.ViewableAs(optics.KindLens), isLens, k.String())
		assert.Equal(t, k.ViewableAs(optics.KindPrism), isPrism, k.String())
		assert.Equal(t, k.ViewableAs(optics.KindOptional), isOptional, k.String())
		assert.Equal(t, k.ViewableAs(optics.KindTraversal), isTraversal, k.String())
		assert.Equal(t, k.ViewableAs(optics.KindSetter), isSetter, k.String())
		assert.Equal(t, k.ViewableAs(optics.KindFold), isFold, k.String())
	}
}

func TestComposeZeroOptic(t *testing.T) {
	var zero optics.Optic[pairIntString, pairIntString]
	_, err := optics.Compose(zero, optics.IdentityLens[pairIntString]().Optic())
	assert.ErrorIs(t, err, optics.ErrIncompatibleKinds)

	assert.Panics(t, func() {
		optics.MustCompose(optics.IdentitySetter[pairIntString]().Optic(), optics.IdentityFold[pairIntString]().Optic())
	})
}
