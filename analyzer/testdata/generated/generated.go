// Code generated by hand for testing. DO NOT EDIT.

package generated

type queue struct {
	items []string // want "note: Field 'items' declared here"
}

func (q *queue) Drain(f func(string)) {
	go func() { // want "remark: Consider copying 'q.items'"
		for _, item := range q.items { // want "Closure capturing receiver 'q' accesses array-like field 'q.items'"
			f(item)
		}
	}()
}
