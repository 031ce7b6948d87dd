package a

type outer struct {
	in   inner
	link *inner // want "note: Field 'link' declared here"
}

type inner struct {
	data []int // want "note: Field 'data' declared here"
	p    *int
	n    int
}

func (o *outer) Chain(f func(...any)) {
	go func() { // want "remark: Consider copying 'o.in.data'" "remark: Consider copying 'o.link'"
		f(o.in.data) // want "Closure capturing receiver 'o' accesses array-like field 'o.in.data'"
		f(o.link.p)  // want "Closure capturing receiver 'o' accesses pointer-like field 'o.link'"
		f(o.in.n)
	}()
}

type base struct {
	ids []int // want "note: Field 'ids' declared here"
}

type derived struct {
	base
}

func (d *derived) IDs() func() []int {
	return func() []int { // want "remark: Consider copying 'd.ids'"
		return d.ids // want "Closure capturing receiver 'd' accesses array-like field 'd.ids'"
	}
}

type shared struct {
	ids []int
}

type view struct {
	*shared // want "note: Field 'shared' declared here"
}

func (v *view) IDs() func() []int {
	return func() []int { // want "remark: Consider copying 'v.shared'"
		return v.ids // want "Closure capturing receiver 'v' accesses pointer-like field 'v.shared'"
	}
}
