package sigslot

// Task is the completion handle of a void asynchronous emission. The
// launched walk always runs to completion; a caller that does not care may
// simply drop the handle.
type Task struct {
	done chan struct{}
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

// Wait blocks until the background walk has finished. If a slot panicked,
// the recovered panic is returned as an error here rather than crashing the
// background goroutine's caller.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Done exposes the completion channel for select-based waiting.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Future is the completion handle of a result-bearing asynchronous
// emission.
type Future[R any] struct {
	done chan struct{}
	val  R
	err  error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// Wait blocks until the background walk has finished and returns its
// result. A recovered slot panic is returned as the error, with the zero
// result. Wait may be called any number of times.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.val, f.err
}

// Done exposes the completion channel for select-based waiting.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}
