//nolint:capturecheck
package skipped

type stack struct {
	items []string
}

func (s *stack) Drain(f func(string)) {
	go func() {
		for _, item := range s.items {
			f(item)
		}
	}()
}
