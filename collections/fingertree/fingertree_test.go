package fingertree

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqEnds(t *testing.T) {
	tr := Empty[int]()
	assert.True(t, tr.IsEmpty())
	assert.True(t, tr.ViewFront().IsNone())
	assert.True(t, tr.ViewBack().IsNone())

	for i := 1; i <= 20; i++ {
		tr = tr.PushBack(i)
	}
	tr = tr.PushFront(0)
	require.Equal(t, 21, tr.Len())
	assert.Equal(t, 0, tr.First().Unwrap())
	assert.Equal(t, 20, tr.Last().Unwrap())

	head, rest := tr.ViewFront().Unwrap().Unpack()
	assert.Equal(t, 0, head)
	assert.Equal(t, 20, rest.Len())

	init, last := tr.ViewBack().Unwrap().Unpack()
	assert.Equal(t, 20, last)
	assert.Equal(t, 20, init.Len())
	assert.Equal(t, 19, init.Last().Unwrap())
}

func TestZeroValueSeq(t *testing.T) {
	var tr Seq[string]
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, []string{"a"}, tr.PushBack("a").Slice())
	assert.Equal(t, "[]", tr.String())
}

func TestSeqHoldsNilInterfaceElements(t *testing.T) {
	boom := errors.New("boom")
	errs := Of[error](boom, nil).PushFront(nil)

	assert.Equal(t, []error{nil, boom, nil}, errs.Slice())
	assert.Nil(t, errs.Get(2).Unwrap())
	assert.Nil(t, errs.First().Unwrap())
	assert.Nil(t, errs.Last().Unwrap())
	assert.Equal(t, boom, errs.Update(0, func(error) error { return boom }).First().Unwrap())
	assert.True(t, errs.Equal(errs.Map(func(e error) error { return e }), func(a, b error) bool { return a == b }))

	values := Of[any](1, nil, 3)
	head, rest := values.ViewFront().Unwrap().Unpack()
	assert.Equal(t, 1, head)
	assert.Nil(t, rest.First().Unwrap())
	var back []any
	for v := range values.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []any{3, nil, 1}, back)
}

func TestSeqPersistence(t *testing.T) {
	original := Of("a", "b", "c")
	updated := original.Set(2, "z").PushBack("d").PushFront("_")

	assert.Equal(t, []string{"a", "b", "c"}, original.Slice())
	assert.Equal(t, []string{"_", "a", "b", "z", "d"}, updated.Slice())
}

func TestSeqGetOutOfRange(t *testing.T) {
	tr := Of(1, 2, 3)
	assert.True(t, tr.Get(-1).IsNone())
	assert.True(t, tr.Get(3).IsNone())
	assert.Equal(t, tr.Slice(), tr.Set(7, 9).Slice())
}

func TestSeqBackward(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	var got []int
	for v := range tr.Backward() {
		got = append(got, v)
	}
	assert.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, got)
}

func TestSeqEarlyExit(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	var got []int
	for v := range tr.All() {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestAffixPreconditions(t *testing.T) {
	one := affix{leaf{value: 1}}
	full := affix{leaf{value: 1}, leaf{value: 2}, leaf{value: 3}, leaf{value: 4}}

	assert.PanicsWithValue(t, "fingertree: dropFirst on affix of size 1", func() { one.dropFirst() })
	assert.PanicsWithValue(t, "fingertree: dropLast on affix of size 1", func() { one.dropLast() })
	assert.PanicsWithValue(t, "fingertree: prepend to full affix", func() { full.prepend(leaf{value: 0}) })
	assert.PanicsWithValue(t, "fingertree: append to full affix", func() { full.append(leaf{value: 5}) })
	assert.Equal(t, 3, full.dropFirst().size())
	assert.Equal(t, 3, full.dropLast().size())
}

func TestSeqMatchesSlice(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("FromSlice then Slice is the identity", prop.ForAll(
		func(items []int) bool {
			return slices.Equal(items, FromSlice(items).Slice())
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Get agrees with slice indexing", prop.ForAll(
		func(items []int) bool {
			tr := FromSlice(items)
			for i, want := range items {
				if got := tr.Get(i); got.IsNone() || got.Unwrap() != want {
					return false
				}
			}
			return tr.Len() == len(items)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Set replaces exactly one position", prop.ForAll(
		func(items []int, pos int, v int) bool {
			if len(items) == 0 {
				return true
			}
			i := pos % len(items)
			want := slices.Clone(items)
			want[i] = v
			return slices.Equal(want, FromSlice(items).Set(i, v).Slice())
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 1000),
		gen.Int(),
	))

	properties.Property("draining from the front yields the original order", prop.ForAll(
		func(items []int) bool {
			tr := Empty[int]()
			for i := len(items) - 1; i >= 0; i-- {
				tr = tr.PushFront(items[i])
			}
			var out []int
			for {
				view := tr.ViewFront()
				if view.IsNone() {
					break
				}
				head, rest := view.Unwrap().Unpack()
				out = append(out, head)
				tr = rest
			}
			return slices.Equal(items, out)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("draining from the back yields the reverse order", prop.ForAll(
		func(items []int) bool {
			tr := FromSlice(items)
			var out []int
			for {
				view := tr.ViewBack()
				if view.IsNone() {
					break
				}
				rest, last := view.Unwrap().Unpack()
				out = append(out, last)
				tr = rest
			}
			slices.Reverse(out)
			return slices.Equal(items, out)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

// checkInvariant verifies the 2-3 finger tree shape: affixes hold 1 to 4
// elements, every level below the top holds 2-3 nodes one level deeper than
// its parent, and every cached size matches the leaves underneath.
func checkInvariant(t tree) error {
	_, err := checkTree(t, 0)
	return err
}

func checkTree(t tree, depth int) (int, error) {
	switch x := t.(type) {
	case emptyTree:
		return 0, nil
	case singleTree:
		return checkElem(x.e, depth)
	case *deepTree:
		total := 0
		for _, a := range []affix{x.prefix, x.suffix} {
			if len(a) < 1 || len(a) > maxAffix {
				return 0, fmt.Errorf("affix of %d elements at depth %d", len(a), depth)
			}
			for _, e := range a {
				n, err := checkElem(e, depth)
				if err != nil {
					return 0, err
				}
				total += n
			}
		}
		n, err := checkTree(x.middle, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		if x.n != total {
			return 0, fmt.Errorf("deep tree caches size %d, holds %d", x.n, total)
		}
		return total, nil
	default:
		return 0, fmt.Errorf("unexpected tree %T", t)
	}
}

func checkElem(e elem, depth int) (int, error) {
	if depth == 0 {
		if _, ok := e.(leaf); !ok {
			return 0, fmt.Errorf("expected leaf at depth 0, got %T", e)
		}
		return 1, nil
	}
	nd, ok := e.(*node)
	if !ok {
		return 0, fmt.Errorf("expected node at depth %d, got %T", depth, e)
	}
	if len(nd.children) < 2 || len(nd.children) > 3 {
		return 0, fmt.Errorf("node with %d children at depth %d", len(nd.children), depth)
	}
	total := 0
	for _, c := range nd.children {
		n, err := checkElem(c, depth-1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	if nd.n != total {
		return 0, fmt.Errorf("node caches size %d, holds %d", nd.n, total)
	}
	return total, nil
}

func TestMixedEndOperationsMatchSliceModel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 400

	properties := gopter.NewProperties(parameters)

	properties.Property("both ends agree with a slice and keep the tree shape", prop.ForAll(
		func(ops []int) (bool, error) {
			tr := Empty[int]()
			var model []int
			for step, op := range ops {
				switch op % 7 {
				case 0, 1:
					tr = tr.PushFront(op)
					model = slices.Insert(model, 0, op)
				case 2, 3:
					tr = tr.PushBack(op)
					model = append(model, op)
				case 4:
					view := tr.ViewFront()
					if view.IsSome() != (len(model) > 0) {
						return false, fmt.Errorf("step %d: ViewFront presence", step)
					}
					if view.IsSome() {
						head, rest := view.Unwrap().Unpack()
						if head != model[0] {
							return false, fmt.Errorf("step %d: head %d, want %d", step, head, model[0])
						}
						tr, model = rest, model[1:]
					}
				case 5:
					view := tr.ViewBack()
					if view.IsSome() != (len(model) > 0) {
						return false, fmt.Errorf("step %d: ViewBack presence", step)
					}
					if view.IsSome() {
						rest, last := view.Unwrap().Unpack()
						if last != model[len(model)-1] {
							return false, fmt.Errorf("step %d: last %d, want %d", step, last, model[len(model)-1])
						}
						tr, model = rest, model[:len(model)-1]
					}
				case 6:
					if len(model) > 0 {
						i := op % len(model)
						if got := tr.Get(i); got.IsNone() || got.Unwrap() != model[i] {
							return false, fmt.Errorf("step %d: Get(%d)", step, i)
						}
					}
				}
				if err := checkInvariant(tr.node()); err != nil {
					return false, fmt.Errorf("step %d: %w", step, err)
				}
				if tr.Len() != len(model) {
					return false, fmt.Errorf("step %d: length %d, want %d", step, tr.Len(), len(model))
				}
			}
			return slices.Equal(model, tr.Slice()), nil
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	properties.Property("Set keeps the tree shape", prop.ForAll(
		func(items []int, pos int) bool {
			if len(items) == 0 {
				return true
			}
			return checkInvariant(FromSlice(items).Set(pos%len(items), -1).node()) == nil
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
