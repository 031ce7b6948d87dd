package fix

type elem struct{ val int }

type list struct {
	head  *elem  // want "note: Field 'head' declared here" "note: Field 'head' declared here" "note: Field 'head' declared here"
	items []int  // want "note: Field 'items' declared here" "note: Field 'items' declared here" "note: Field 'items' declared here"
	buf   [4]int // want "note: Field 'buf' declared here"
}

func (l *list) Walk(f func(*elem)) {
	go func() { // want "remark: Consider copying 'l.head'" "remark: Consider copying 'l.head'"
		f(l.head) // want "accesses pointer-like field 'l.head'"
		f(l.head) // want "accesses pointer-like field 'l.head'"
	}()
}

func (l *list) Sum(items int) func() int {
	return func() int { // want "remark: Consider copying 'l.items'"
		return items + len(l.items) // want "accesses array-like field 'l.items'"
	}
}

func (l *list) Push(v int) func() {
	return func() { // want "remark: Consider copying 'l.items'" "remark: Consider copying 'l.items'"
		l.items = append(l.items, v) // want "accesses array-like field 'l.items'" "accesses array-like field 'l.items'"
	}
}

func (l *list) First() func() int {
	return func() int { // want "remark: Consider copying 'l.buf'"
		return l.buf[0] // want "accesses array-like field 'l.buf'"
	}
}

func (l *list) Guarded(use func(*elem)) {
	defer func() { // want "remark: Consider copying 'l.head'"
		if l != nil {
			use(l.head) // want "accesses pointer-like field 'l.head'"
		}
	}()
}
