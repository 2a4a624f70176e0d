package optics_test

import (
	"testing"

	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func personNameLens() optics.Lens[person, string] {
	return optics.NewLens(
		func(p person) string { return p.Name },
		func(p person, name string) person { p.Name = name; return p },
	)
}

func personAddressLens() optics.Lens[person, address] {
	return optics.NewLens(
		func(p person) address { return p.Address },
		func(p person, a address) person { p.Address = a; return p },
	)
}

func addressCityLens() optics.Lens[address, string] {
	return optics.NewLens(
		func(a address) string { return a.City },
		func(a address, city string) address { a.City = city; return a },
	)
}

func TestLensGetSetIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Get(Set(source, value)) == value", prop.ForAll(
		func(name, city, newName string) bool {
			lens := personNameLens()
			p := person{Name: name, Address: address{City: city}}
			return lens.Get(lens.Set(p, newName)) == newName
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("Set(source, Get(source)) == source", prop.ForAll(
		func(name, city string) bool {
			lens := personNameLens()
			p := person{Name: name, Address: address{City: city}}
			return lens.Set(p, lens.Get(p)) == p
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("Set(Set(source, a), b) == Set(source, b)", prop.ForAll(
		func(name, a, b string) bool {
			lens := personNameLens()
			p := person{Name: name}
			return lens.Set(lens.Set(p, a), b) == lens.Set(p, b)
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestComposedLensProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	city := optics.ComposeLens(personAddressLens(), addressCityLens())

	properties.Property("composed Set only changes the nested field", prop.ForAll(
		func(name, street, oldCity, newCity string) bool {
			p := person{Name: name, Address: address{Street: street, City: oldCity}}
			updated := city.Set(p, newCity)
			return updated.Name == name &&
				updated.Address.Street == street &&
				updated.Address.City == newCity
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("Modify(source, id) == source", prop.ForAll(
		func(name, city string) bool {
			lens := optics.ComposeLens(personAddressLens(), addressCityLens())
			p := person{Name: name, Address: address{City: city}}
			return lens.Modify(p, functional.IdentityFunc[string]) == p
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestLensModifyAndLift(t *testing.T) {
	lens := personNameLens()
	p := person{Name: "ada"}

	upper := lens.Lift(func(s string) string { return s + "!" })
	assert.Equal(t, "ada!", upper(p).Name)
	assert.Equal(t, "ada", p.Name)
}

func TestPairLenses(t *testing.T) {
	p := functional.NewPair(1, "one")

	assert.Equal(t, 1, optics.PairFirst[int, string]().Get(p))
	assert.Equal(t, functional.NewPair(1, "uno"), optics.PairSecond[int, string]().Set(p, "uno"))

	lifted := optics.LensSecond[person, string, int](personNameLens())
	src := functional.NewPair(7, person{Name: "ada"})
	got := lifted.Set(src, functional.NewPair(8, "bob"))
	assert.Equal(t, 8, got.First)
	assert.Equal(t, "bob", got.Second.Name)
}

func TestIsoBehaviour(t *testing.T) {
	swap := optics.PairSwap[int, string]()
	p := functional.NewPair(1, "a")

	assert.Equal(t, functional.NewPair("a", 1), swap.Get(p))
	assert.Equal(t, p, swap.ReverseGet(swap.Get(p)))
	assert.Equal(t, p, swap.Reverse().Get(swap.Get(p)))

	twice := optics.ComposeIso(swap, swap.Reverse())
	assert.Equal(t, p, twice.Get(p))

	toSeq := optics.SliceToSeq[int]()
	assert.Equal(t, []int{1, 2, 3}, toSeq.ReverseGet(toSeq.Get([]int{1, 2, 3})))

	lens := swap.AsLens()
	assert.Equal(t, functional.NewPair(2, "b"), lens.Set(p, functional.NewPair("b", 2)))
	prism := swap.AsPrism()
	assert.True(t, prism.IsMatch(p))
}
