package fingertree

// affix is the one-to-four element digit held at each end of a deep tree.
// Its operations check the node invariant and panic when the surrounding
// algorithm breaks it; callers outside this package never see an affix.
type affix []elem

const maxAffix = 4

func (a affix) size() int {
	n := 0
	for _, e := range a {
		n += e.size()
	}
	return n
}

func (a affix) first() elem {
	if len(a) == 0 {
		panic("fingertree: first of empty affix")
	}
	return a[0]
}

func (a affix) last() elem {
	if len(a) == 0 {
		panic("fingertree: last of empty affix")
	}
	return a[len(a)-1]
}

func (a affix) prepend(e elem) affix {
	if len(a) >= maxAffix {
		panic("fingertree: prepend to full affix")
	}
	out := make(affix, 0, len(a)+1)
	out = append(out, e)
	return append(out, a...)
}

func (a affix) append(e elem) affix {
	if len(a) >= maxAffix {
		panic("fingertree: append to full affix")
	}
	out := make(affix, 0, len(a)+1)
	out = append(out, a...)
	return append(out, e)
}

func (a affix) dropFirst() affix {
	if len(a) < 2 {
		panic("fingertree: dropFirst on affix of size 1")
	}
	return a[1:len(a):len(a)]
}

func (a affix) dropLast() affix {
	if len(a) < 2 {
		panic("fingertree: dropLast on affix of size 1")
	}
	return a[: len(a)-1 : len(a)-1]
}

// replace returns a copy of a with a[i] swapped for e.
func (a affix) replace(i int, e elem) affix {
	out := make(affix, len(a))
	copy(out, a)
	out[i] = e
	return out
}
