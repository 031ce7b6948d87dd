package related

type worker struct {
	jobs  []func()
	next  *worker
	limit int
}

func (w *worker) Start() {
	go func() {
		for _, job := range w.jobs { // want "Closure capturing receiver 'w' accesses array-like field 'w.jobs'"
			job()
		}

		if w.next != nil && w.limit > 0 { // want "Closure capturing receiver 'w' accesses pointer-like field 'w.next'"
			w.next.Start() // want "Closure capturing receiver 'w' accesses pointer-like field 'w.next'"
		}
	}()
}
