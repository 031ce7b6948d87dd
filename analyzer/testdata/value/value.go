package value

type snapshot struct {
	items []int // want "note: Field 'items' declared here" "note: Field 'items' declared here" "note: Field 'items' declared here"
	total int
}

func (s snapshot) Each(f func(int)) func() {
	return func() { // want "remark: Consider copying 's.items'"
		for _, i := range s.items { // want "Closure capturing receiver 's' accesses array-like field 's.items'"
			f(i + s.total)
		}
	}
}

func (s *snapshot) Last() func() int {
	return func() int { // want "remark: Consider copying 's.items'" "remark: Consider copying 's.items'"
		return s.items[len(s.items)-1] // want "Closure capturing receiver 's' accesses array-like field 's.items'" "Closure capturing receiver 's' accesses array-like field 's.items'"
	}
}
