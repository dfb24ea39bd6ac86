package sigslot

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// AsyncResultSignal0 is ResultSignal0 with gated, detached emission. The
// fold functions return a Future carrying the fold's value.
type AsyncResultSignal0[R any] struct {
	AsyncTracker
}

func NewAsyncResultSignal0[R any](policy ...sync.Locker) *AsyncResultSignal0[R] {
	s := &AsyncResultSignal0[R]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	s.init()
	return s
}

func (s *AsyncResultSignal0[R]) connectSlot(k Key, thunk func(any) R, partner registry) {
	s.AsyncTracker.addToCall(k, thunk, partner)
}

func (s *AsyncResultSignal0[R]) disconnectSlot(k Key, partner registry) {
	s.AsyncTracker.remove(k, partner)
}

func (s *AsyncResultSignal0[R]) Connect(fn func() R) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(any) R { return fn() }, self)
}

func (s *AsyncResultSignal0[R]) Disconnect(fn func() R) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

// Emit starts a background walk, discarding the slot results.
func (s *AsyncResultSignal0[R]) Emit() *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			r.thunk.(func(any) R)(r.key.recv)
		})
	})
}

// Collect starts a background walk invoking sink with each slot's result.
func (s *AsyncResultSignal0[R]) Collect(sink func(R)) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			sink(r.thunk.(func(any) R)(r.key.recv))
		})
	})
}

func (s *AsyncResultSignal0[R]) Copy() *AsyncResultSignal0[R] {
	n := &AsyncResultSignal0[R]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.AsyncTracker, n)
	return n
}

// AsyncResultSignal1 is ResultSignal1 with gated, detached emission.
type AsyncResultSignal1[A, R any] struct {
	AsyncTracker
}

func NewAsyncResultSignal1[A, R any](policy ...sync.Locker) *AsyncResultSignal1[A, R] {
	s := &AsyncResultSignal1[A, R]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	s.init()
	return s
}

func (s *AsyncResultSignal1[A, R]) connectSlot(k Key, thunk func(any, A) R, partner registry) {
	s.AsyncTracker.addToCall(k, thunk, partner)
}

func (s *AsyncResultSignal1[A, R]) disconnectSlot(k Key, partner registry) {
	s.AsyncTracker.remove(k, partner)
}

func (s *AsyncResultSignal1[A, R]) Connect(fn func(A) R) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A) R { return fn(a) }, self)
}

func (s *AsyncResultSignal1[A, R]) Disconnect(fn func(A) R) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *AsyncResultSignal1[A, R]) Emit(a A) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			r.thunk.(func(any, A) R)(r.key.recv, a)
		})
	})
}

func (s *AsyncResultSignal1[A, R]) Collect(sink func(R), a A) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			sink(r.thunk.(func(any, A) R)(r.key.recv, a))
		})
	})
}

func (s *AsyncResultSignal1[A, R]) Copy() *AsyncResultSignal1[A, R] {
	n := &AsyncResultSignal1[A, R]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.AsyncTracker, n)
	return n
}

// AsyncResultSignal2 is ResultSignal2 with gated, detached emission.
type AsyncResultSignal2[A, B, R any] struct {
	AsyncTracker
}

func NewAsyncResultSignal2[A, B, R any](policy ...sync.Locker) *AsyncResultSignal2[A, B, R] {
	s := &AsyncResultSignal2[A, B, R]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	s.init()
	return s
}

func (s *AsyncResultSignal2[A, B, R]) connectSlot(k Key, thunk func(any, A, B) R, partner registry) {
	s.AsyncTracker.addToCall(k, thunk, partner)
}

func (s *AsyncResultSignal2[A, B, R]) disconnectSlot(k Key, partner registry) {
	s.AsyncTracker.remove(k, partner)
}

func (s *AsyncResultSignal2[A, B, R]) Connect(fn func(A, B) R) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A, b B) R { return fn(a, b) }, self)
}

func (s *AsyncResultSignal2[A, B, R]) Disconnect(fn func(A, B) R) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *AsyncResultSignal2[A, B, R]) Emit(a A, b B) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			r.thunk.(func(any, A, B) R)(r.key.recv, a, b)
		})
	})
}

func (s *AsyncResultSignal2[A, B, R]) Collect(sink func(R), a A, b B) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			sink(r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
		})
	})
}

func (s *AsyncResultSignal2[A, B, R]) Copy() *AsyncResultSignal2[A, B, R] {
	n := &AsyncResultSignal2[A, B, R]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.AsyncTracker, n)
	return n
}

// AsyncAccumulate0 starts a background walk folding every slot result into
// init with +.
func AsyncAccumulate0[R Summable](s *AsyncResultSignal0[R], init R) *Future[R] {
	return launchFuture(&s.AsyncTracker, func() R {
		s.slots.eachCall(func(r *record) {
			init = init + r.thunk.(func(any) R)(r.key.recv)
		})
		return init
	})
}

func AsyncAccumulate1[A any, R Summable](s *AsyncResultSignal1[A, R], init R, a A) *Future[R] {
	return launchFuture(&s.AsyncTracker, func() R {
		s.slots.eachCall(func(r *record) {
			init = init + r.thunk.(func(any, A) R)(r.key.recv, a)
		})
		return init
	})
}

func AsyncAccumulate2[A, B any, R Summable](s *AsyncResultSignal2[A, B, R], init R, a A, b B) *Future[R] {
	return launchFuture(&s.AsyncTracker, func() R {
		s.slots.eachCall(func(r *record) {
			init = init + r.thunk.(func(any, A, B) R)(r.key.recv, a, b)
		})
		return init
	})
}

// AsyncAccumulateOp0 starts a background walk folding every slot result
// into init with op.
func AsyncAccumulateOp0[R, I any](s *AsyncResultSignal0[R], init I, op func(I, R) I) *Future[I] {
	return launchFuture(&s.AsyncTracker, func() I {
		s.slots.eachCall(func(r *record) {
			init = op(init, r.thunk.(func(any) R)(r.key.recv))
		})
		return init
	})
}

func AsyncAccumulateOp1[A, R, I any](s *AsyncResultSignal1[A, R], init I, op func(I, R) I, a A) *Future[I] {
	return launchFuture(&s.AsyncTracker, func() I {
		s.slots.eachCall(func(r *record) {
			init = op(init, r.thunk.(func(any, A) R)(r.key.recv, a))
		})
		return init
	})
}

func AsyncAccumulateOp2[A, B, R, I any](s *AsyncResultSignal2[A, B, R], init I, op func(I, R) I, a A, b B) *Future[I] {
	return launchFuture(&s.AsyncTracker, func() I {
		s.slots.eachCall(func(r *record) {
			init = op(init, r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
		})
		return init
	})
}

// AsyncAggregate0 starts a background walk collecting every slot result
// into a fresh slice.
func AsyncAggregate0[R any](s *AsyncResultSignal0[R]) *Future[[]R] {
	return launchFuture(&s.AsyncTracker, func() []R {
		var out []R
		s.slots.eachCall(func(r *record) {
			out = append(out, r.thunk.(func(any) R)(r.key.recv))
		})
		return out
	})
}

func AsyncAggregate1[A, R any](s *AsyncResultSignal1[A, R], a A) *Future[[]R] {
	return launchFuture(&s.AsyncTracker, func() []R {
		var out []R
		s.slots.eachCall(func(r *record) {
			out = append(out, r.thunk.(func(any, A) R)(r.key.recv, a))
		})
		return out
	})
}

func AsyncAggregate2[A, B, R any](s *AsyncResultSignal2[A, B, R], a A, b B) *Future[[]R] {
	return launchFuture(&s.AsyncTracker, func() []R {
		var out []R
		s.slots.eachCall(func(r *record) {
			out = append(out, r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
		})
		return out
	})
}

// AsyncAggregateSet0 starts a background walk collecting every slot result
// into a fresh set.
func AsyncAggregateSet0[R comparable](s *AsyncResultSignal0[R]) *Future[mapset.Set[R]] {
	return launchFuture(&s.AsyncTracker, func() mapset.Set[R] {
		out := mapset.NewThreadUnsafeSet[R]()
		s.slots.eachCall(func(r *record) {
			out.Add(r.thunk.(func(any) R)(r.key.recv))
		})
		return out
	})
}

func AsyncAggregateSet1[A any, R comparable](s *AsyncResultSignal1[A, R], a A) *Future[mapset.Set[R]] {
	return launchFuture(&s.AsyncTracker, func() mapset.Set[R] {
		out := mapset.NewThreadUnsafeSet[R]()
		s.slots.eachCall(func(r *record) {
			out.Add(r.thunk.(func(any, A) R)(r.key.recv, a))
		})
		return out
	})
}

func AsyncAggregateSet2[A, B any, R comparable](s *AsyncResultSignal2[A, B, R], a A, b B) *Future[mapset.Set[R]] {
	return launchFuture(&s.AsyncTracker, func() mapset.Set[R] {
		out := mapset.NewThreadUnsafeSet[R]()
		s.slots.eachCall(func(r *record) {
			out.Add(r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
		})
		return out
	})
}
