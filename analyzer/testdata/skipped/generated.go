// Code generated by hand for testing. DO NOT EDIT.

package skipped

type queue struct {
	items []string
}

func (q *queue) Drain(f func(string)) {
	go func() {
		for _, item := range q.items {
			f(item)
		}
	}()
}
