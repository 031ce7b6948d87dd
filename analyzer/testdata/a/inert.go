package a

import "unsafe"

type handle struct {
	raw unsafe.Pointer // want "note: Field 'raw' declared here"
}

func (h *handle) Release(free func(unsafe.Pointer)) {
	defer func() { // want "remark: Consider copying 'h.raw'"
		free(h.raw) // want "Closure capturing receiver 'h' accesses pointer-like field 'h.raw'"
	}()
}

type service struct {
	cache map[string]int
	done  chan struct{}
	hook  func()
	log   interface{ Print(v ...any) }
	name  string
}

func (s *service) Run() {
	go func() {
		s.cache["x"]++
		<-s.done
		s.hook()
		s.log.Print(s.name)
		s.stop()
	}()
}

func (s *service) stop() {}

type snapshot struct {
	items []int
}

func (s snapshot) Each(f func(int)) func() {
	return func() {
		for _, i := range s.items {
			f(i)
		}
	}
}

type box[T any] struct {
	v T
}

func (b *box[T]) Get() func() T {
	return func() T {
		return b.v
	}
}

func plain(l *list) func() *elem {
	return func() *elem {
		return l.head
	}
}

func (l *list) Shadow() func(l *list) *elem {
	return func(l *list) *elem {
		return l.head
	}
}

func (l *list) Quiet(f func(*elem)) {
	go func() {
		f(l.head) //nolint:capturecheck
	}()
}

//nolint:capturecheck
func (l *list) Silent(f func(*elem)) {
	go func() {
		f(l.head)
	}()
}
