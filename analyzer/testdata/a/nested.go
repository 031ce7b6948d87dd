package a

type tree struct {
	left  *tree // want "note: Field 'left' declared here" "note: Field 'left' declared here"
	right *tree // want "note: Field 'right' declared here"
}

func (t *tree) Visit(f func(*tree)) {
	func() { // want "remark: Consider copying 't.left'"
		f(t.left) // want "Closure capturing receiver 't' accesses pointer-like field 't.left'"

		go func() { // want "remark: Consider copying 't.right'"
			f(t.right) // want "Closure capturing receiver 't' accesses pointer-like field 't.right'"
		}()
	}()
}

func (t *tree) Outer(f func(*tree)) {
	func() {
		go func() { // want "remark: Consider copying 't.left'"
			f(t.left) // want "Closure capturing receiver 't' accesses pointer-like field 't.left'"
		}()
	}()
}
