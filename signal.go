package sigslot

import "sync"

// Signal0 dispatches to slots taking no arguments and returning nothing.
// The zero value is ready to use with no locking.
type Signal0 struct {
	Tracker
}

// NewSignal0 returns a signal guarded by the optional locking policy.
func NewSignal0(policy ...sync.Locker) *Signal0 {
	s := &Signal0{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	return s
}

func (s *Signal0) connectSlot(k Key, thunk func(any), partner registry) {
	s.Tracker.addToCall(k, thunk, partner)
}

func (s *Signal0) disconnectSlot(k Key, partner registry) {
	s.Tracker.remove(k, partner)
}

// Connect adds fn as an untracked slot. fn is identified by its code
// pointer; distinct closures built from the same literal share one (see
// Key), so connect per-object state through ConnectMethod0 instead.
func (s *Signal0) Connect(fn func()) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(any) { fn() }, self)
}

// Disconnect removes the first connection of fn. Unconnected fn is a no-op.
func (s *Signal0) Disconnect(fn func()) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

// Emit invokes every connected slot. Emission never mutates the registry.
func (s *Signal0) Emit() {
	s.eachCall(func(r *record) {
		r.thunk.(func(any))(r.key.recv)
	})
}

// Copy returns an independent signal with an equivalent connection set.
// Every partner learns about the copy, so tracked receivers are connected
// to both signals afterwards.
func (s *Signal0) Copy() *Signal0 {
	n := &Signal0{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.Tracker, n)
	return n
}

// Signal1 dispatches to slots taking one argument and returning nothing.
// The zero value is ready to use with no locking.
type Signal1[A any] struct {
	Tracker
}

func NewSignal1[A any](policy ...sync.Locker) *Signal1[A] {
	s := &Signal1[A]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	return s
}

func (s *Signal1[A]) connectSlot(k Key, thunk func(any, A), partner registry) {
	s.Tracker.addToCall(k, thunk, partner)
}

func (s *Signal1[A]) disconnectSlot(k Key, partner registry) {
	s.Tracker.remove(k, partner)
}

// Connect adds fn as an untracked slot.
func (s *Signal1[A]) Connect(fn func(A)) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A) { fn(a) }, self)
}

// Disconnect removes the first connection of fn.
func (s *Signal1[A]) Disconnect(fn func(A)) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

// Emit invokes every connected slot with a.
func (s *Signal1[A]) Emit(a A) {
	s.eachCall(func(r *record) {
		r.thunk.(func(any, A))(r.key.recv, a)
	})
}

func (s *Signal1[A]) Copy() *Signal1[A] {
	n := &Signal1[A]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.Tracker, n)
	return n
}

// Signal2 dispatches to slots taking two arguments and returning nothing.
// The zero value is ready to use with no locking.
type Signal2[A, B any] struct {
	Tracker
}

func NewSignal2[A, B any](policy ...sync.Locker) *Signal2[A, B] {
	s := &Signal2[A, B]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	return s
}

func (s *Signal2[A, B]) connectSlot(k Key, thunk func(any, A, B), partner registry) {
	s.Tracker.addToCall(k, thunk, partner)
}

func (s *Signal2[A, B]) disconnectSlot(k Key, partner registry) {
	s.Tracker.remove(k, partner)
}

func (s *Signal2[A, B]) Connect(fn func(A, B)) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A, b B) { fn(a, b) }, self)
}

func (s *Signal2[A, B]) Disconnect(fn func(A, B)) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *Signal2[A, B]) Emit(a A, b B) {
	s.eachCall(func(r *record) {
		r.thunk.(func(any, A, B))(r.key.recv, a, b)
	})
}

func (s *Signal2[A, B]) Copy() *Signal2[A, B] {
	n := &Signal2[A, B]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.Tracker, n)
	return n
}
