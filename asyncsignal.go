package sigslot

import "sync"

// AsyncSignal0 is Signal0 with gated, detached emission. Emit acquires the
// gate on the caller's goroutine, walks the registry on a background
// goroutine and returns the completion handle immediately. The zero value
// is ready to use.
type AsyncSignal0 struct {
	AsyncTracker
}

// NewAsyncSignal0 returns an async signal guarded by the optional locking
// policy, which must be a real mutex. The default is a fresh sync.Mutex.
func NewAsyncSignal0(policy ...sync.Locker) *AsyncSignal0 {
	s := &AsyncSignal0{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	s.init()
	return s
}

func (s *AsyncSignal0) connectSlot(k Key, thunk func(any), partner registry) {
	s.AsyncTracker.addToCall(k, thunk, partner)
}

func (s *AsyncSignal0) disconnectSlot(k Key, partner registry) {
	s.AsyncTracker.remove(k, partner)
}

// Connect adds fn as an untracked slot, waiting out any in-flight emission.
func (s *AsyncSignal0) Connect(fn func()) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(any) { fn() }, self)
}

func (s *AsyncSignal0) Disconnect(fn func()) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

// Emit starts a background walk over the connected slots and returns its
// handle without waiting for it.
func (s *AsyncSignal0) Emit() *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			r.thunk.(func(any))(r.key.recv)
		})
	})
}

// Copy returns an independent signal with an equivalent connection set and
// its own freshly constructed locking policy.
func (s *AsyncSignal0) Copy() *AsyncSignal0 {
	n := &AsyncSignal0{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.AsyncTracker, n)
	return n
}

// AsyncSignal1 is Signal1 with gated, detached emission.
type AsyncSignal1[A any] struct {
	AsyncTracker
}

func NewAsyncSignal1[A any](policy ...sync.Locker) *AsyncSignal1[A] {
	s := &AsyncSignal1[A]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	s.init()
	return s
}

func (s *AsyncSignal1[A]) connectSlot(k Key, thunk func(any, A), partner registry) {
	s.AsyncTracker.addToCall(k, thunk, partner)
}

func (s *AsyncSignal1[A]) disconnectSlot(k Key, partner registry) {
	s.AsyncTracker.remove(k, partner)
}

func (s *AsyncSignal1[A]) Connect(fn func(A)) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A) { fn(a) }, self)
}

func (s *AsyncSignal1[A]) Disconnect(fn func(A)) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *AsyncSignal1[A]) Emit(a A) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			r.thunk.(func(any, A))(r.key.recv, a)
		})
	})
}

func (s *AsyncSignal1[A]) Copy() *AsyncSignal1[A] {
	n := &AsyncSignal1[A]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.AsyncTracker, n)
	return n
}

// AsyncSignal2 is Signal2 with gated, detached emission.
type AsyncSignal2[A, B any] struct {
	AsyncTracker
}

func NewAsyncSignal2[A, B any](policy ...sync.Locker) *AsyncSignal2[A, B] {
	s := &AsyncSignal2[A, B]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	s.init()
	return s
}

func (s *AsyncSignal2[A, B]) connectSlot(k Key, thunk func(any, A, B), partner registry) {
	s.AsyncTracker.addToCall(k, thunk, partner)
}

func (s *AsyncSignal2[A, B]) disconnectSlot(k Key, partner registry) {
	s.AsyncTracker.remove(k, partner)
}

func (s *AsyncSignal2[A, B]) Connect(fn func(A, B)) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A, b B) { fn(a, b) }, self)
}

func (s *AsyncSignal2[A, B]) Disconnect(fn func(A, B)) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *AsyncSignal2[A, B]) Emit(a A, b B) *Task {
	return s.launch(func() {
		s.slots.eachCall(func(r *record) {
			r.thunk.(func(any, A, B))(r.key.recv, a, b)
		})
	})
}

func (s *AsyncSignal2[A, B]) Copy() *AsyncSignal2[A, B] {
	n := &AsyncSignal2[A, B]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.AsyncTracker, n)
	return n
}
