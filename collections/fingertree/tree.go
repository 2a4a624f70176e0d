package fingertree

// tree is one level of a 2-3 finger tree: empty, a single element or a deep
// node with two affixes around a tree of 2-3 nodes.
type tree interface {
	size() int
}

type emptyTree struct{}

func (emptyTree) size() int { return 0 }

type singleTree struct {
	e elem
}

func (t singleTree) size() int { return t.e.size() }

type deepTree struct {
	n      int
	prefix affix
	middle tree
	suffix affix
}

func (t *deepTree) size() int { return t.n }

func newDeep(prefix affix, middle tree, suffix affix) *deepTree {
	return &deepTree{
		n:      prefix.size() + middle.size() + suffix.size(),
		prefix: prefix,
		middle: middle,
		suffix: suffix,
	}
}

func pushFront(t tree, e elem) tree {
	switch x := t.(type) {
	case emptyTree:
		return singleTree{e: e}
	case singleTree:
		return newDeep(affix{e}, emptyTree{}, affix{x.e})
	case *deepTree:
		if len(x.prefix) == maxAffix {
			p := x.prefix
			return newDeep(affix{e, p[0]}, pushFront(x.middle, node3(p[1], p[2], p[3])), x.suffix)
		}
		return newDeep(x.prefix.prepend(e), x.middle, x.suffix)
	default:
		panic("fingertree: unknown tree")
	}
}

func pushBack(t tree, e elem) tree {
	switch x := t.(type) {
	case emptyTree:
		return singleTree{e: e}
	case singleTree:
		return newDeep(affix{x.e}, emptyTree{}, affix{e})
	case *deepTree:
		if len(x.suffix) == maxAffix {
			s := x.suffix
			return newDeep(x.prefix, pushBack(x.middle, node3(s[0], s[1], s[2])), affix{s[3], e})
		}
		return newDeep(x.prefix, x.middle, x.suffix.append(e))
	default:
		panic("fingertree: unknown tree")
	}
}

func fromAffix(a affix) tree {
	var t tree = emptyTree{}
	for _, e := range a {
		t = pushBack(t, e)
	}
	return t
}

// viewFront splits off the leftmost element.
func viewFront(t tree) (elem, tree, bool) {
	switch x := t.(type) {
	case emptyTree:
		return nil, nil, false
	case singleTree:
		return x.e, emptyTree{}, true
	case *deepTree:
		head := x.prefix.first()
		if len(x.prefix) > 1 {
			return head, newDeep(x.prefix.dropFirst(), x.middle, x.suffix), true
		}
		return head, pullLeft(x.middle, x.suffix), true
	default:
		panic("fingertree: unknown tree")
	}
}

// pullLeft rebuilds a deep tree whose prefix ran empty by borrowing the
// first node of the middle tree.
func pullLeft(middle tree, suffix affix) tree {
	e, rest, ok := viewFront(middle)
	if !ok {
		return fromAffix(suffix)
	}
	return newDeep(affix(e.(*node).children), rest, suffix)
}

// viewBack splits off the rightmost element.
func viewBack(t tree) (tree, elem, bool) {
	switch x := t.(type) {
	case emptyTree:
		return nil, nil, false
	case singleTree:
		return emptyTree{}, x.e, true
	case *deepTree:
		last := x.suffix.last()
		if len(x.suffix) > 1 {
			return newDeep(x.prefix, x.middle, x.suffix.dropLast()), last, true
		}
		return pullRight(x.prefix, x.middle), last, true
	default:
		panic("fingertree: unknown tree")
	}
}

func pullRight(prefix affix, middle tree) tree {
	rest, e, ok := viewBack(middle)
	if !ok {
		return fromAffix(prefix)
	}
	return newDeep(prefix, rest, affix(e.(*node).children))
}

func lookup(t tree, i int) leaf {
	for {
		switch x := t.(type) {
		case singleTree:
			return lookupElem(x.e, i)
		case *deepTree:
			if i < x.prefix.size() {
				j, k := locate(x.prefix, i)
				return lookupElem(x.prefix[j], k)
			}
			i -= x.prefix.size()
			if i < x.middle.size() {
				t = x.middle
				continue
			}
			i -= x.middle.size()
			j, k := locate(x.suffix, i)
			return lookupElem(x.suffix[j], k)
		default:
			panic("fingertree: lookup outside tree")
		}
	}
}

func adjust(t tree, i int, f func(any) any) tree {
	switch x := t.(type) {
	case singleTree:
		return singleTree{e: adjustElem(x.e, i, f)}
	case *deepTree:
		if i < x.prefix.size() {
			j, k := locate(x.prefix, i)
			return &deepTree{n: x.n, prefix: x.prefix.replace(j, adjustElem(x.prefix[j], k, f)), middle: x.middle, suffix: x.suffix}
		}
		i -= x.prefix.size()
		if i < x.middle.size() {
			return &deepTree{n: x.n, prefix: x.prefix, middle: adjust(x.middle, i, f), suffix: x.suffix}
		}
		i -= x.middle.size()
		j, k := locate(x.suffix, i)
		return &deepTree{n: x.n, prefix: x.prefix, middle: x.middle, suffix: x.suffix.replace(j, adjustElem(x.suffix[j], k, f))}
	default:
		panic("fingertree: adjust outside tree")
	}
}

func walk(t tree, yield func(any) bool) bool {
	switch x := t.(type) {
	case emptyTree:
		return true
	case singleTree:
		return walkElem(x.e, yield)
	case *deepTree:
		for _, e := range x.prefix {
			if !walkElem(e, yield) {
				return false
			}
		}
		if !walk(x.middle, yield) {
			return false
		}
		for _, e := range x.suffix {
			if !walkElem(e, yield) {
				return false
			}
		}
		return true
	default:
		panic("fingertree: unknown tree")
	}
}

func walkBackward(t tree, yield func(any) bool) bool {
	switch x := t.(type) {
	case emptyTree:
		return true
	case singleTree:
		return walkElemBackward(x.e, yield)
	case *deepTree:
		for j := len(x.suffix) - 1; j >= 0; j-- {
			if !walkElemBackward(x.suffix[j], yield) {
				return false
			}
		}
		if !walkBackward(x.middle, yield) {
			return false
		}
		for j := len(x.prefix) - 1; j >= 0; j-- {
			if !walkElemBackward(x.prefix[j], yield) {
				return false
			}
		}
		return true
	default:
		panic("fingertree: unknown tree")
	}
}
