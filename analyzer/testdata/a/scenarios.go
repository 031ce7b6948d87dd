package a

type list struct {
	head *elem // want "note: Field 'head' declared here"
}

type elem struct{ val int }

func (l *list) Walk(f func(*elem)) {
	go func() { // want "remark: Consider copying 'l.head' to a local variable"
		f(l.head) // want "Closure capturing receiver 'l' accesses pointer-like field 'l.head'"
	}()
}

func (l *list) Pinned(f func(*elem)) {
	head := l.head
	go func() {
		f(head)
	}()
}

type local struct {
	ptr *int
}

func (l *local) Copy() func() int {
	c := *l

	return func() int {
		return *c.ptr
	}
}

type buffer struct {
	data  []byte  // want "note: Field 'data' declared here"
	extra [8]byte // want "note: Field 'extra' declared here"
}

func (b *buffer) Flush(w func([]byte)) func() {
	return func() { // want "remark: Consider copying 'b.data'" "remark: Consider copying 'b.extra'"
		w(b.data)     // want "Closure capturing receiver 'b' accesses array-like field 'b.data'"
		w(b.extra[:]) // want "Closure capturing receiver 'b' accesses array-like field 'b.extra'"
	}
}

type counter struct {
	n int
}

func (c *counter) Inc() func() {
	return func() {
		c.n++
	}
}

func (c *counter) Unrelated() func() int {
	x := 1

	return func() int {
		return x
	}
}
