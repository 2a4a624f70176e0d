package fingertree

// elem is anything stored in a tree level: a leaf at the top level, a
// 2-3 node further down. The size is the number of leaves underneath.
type elem interface {
	size() int
}

type leaf struct {
	value any
}

func (leaf) size() int { return 1 }

// node groups two or three elements of the level above and caches their size.
type node struct {
	n        int
	children []elem
}

func (nd *node) size() int { return nd.n }

func node3(a, b, c elem) *node {
	return &node{n: a.size() + b.size() + c.size(), children: []elem{a, b, c}}
}

// locate finds the child of elems holding leaf position i and the position
// relative to that child.
func locate(elems []elem, i int) (int, int) {
	for j, c := range elems {
		if i < c.size() {
			return j, i
		}
		i -= c.size()
	}
	panic("fingertree: position outside node")
}

// lookupElem returns the leaf at position i below e.
func lookupElem(e elem, i int) leaf {
	for {
		switch x := e.(type) {
		case leaf:
			return x
		case *node:
			var j int
			j, i = locate(x.children, i)
			e = x.children[j]
		default:
			panic("fingertree: unknown element")
		}
	}
}

// adjustElem rebuilds the path to the leaf at position i with f applied.
func adjustElem(e elem, i int, f func(any) any) elem {
	switch x := e.(type) {
	case leaf:
		return leaf{value: f(x.value)}
	case *node:
		j, k := locate(x.children, i)
		children := make([]elem, len(x.children))
		copy(children, x.children)
		children[j] = adjustElem(children[j], k, f)
		return &node{n: x.n, children: children}
	default:
		panic("fingertree: unknown element")
	}
}

func walkElem(e elem, yield func(any) bool) bool {
	switch x := e.(type) {
	case leaf:
		return yield(x.value)
	case *node:
		for _, c := range x.children {
			if !walkElem(c, yield) {
				return false
			}
		}
		return true
	default:
		panic("fingertree: unknown element")
	}
}

func walkElemBackward(e elem, yield func(any) bool) bool {
	switch x := e.(type) {
	case leaf:
		return yield(x.value)
	case *node:
		for j := len(x.children) - 1; j >= 0; j-- {
			if !walkElemBackward(x.children[j], yield) {
				return false
			}
		}
		return true
	default:
		panic("fingertree: unknown element")
	}
}
