package sigslot

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Summable constrains the Accumulate folds to result types with a built-in
// + operator.
type Summable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~string
}

// ResultSignal0 dispatches to slots taking no arguments and returning R.
// The result-aggregating operations only exist on the result-bearing signal
// types, so using them on a void signature does not compile.
type ResultSignal0[R any] struct {
	Tracker
}

func NewResultSignal0[R any](policy ...sync.Locker) *ResultSignal0[R] {
	s := &ResultSignal0[R]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	return s
}

func (s *ResultSignal0[R]) connectSlot(k Key, thunk func(any) R, partner registry) {
	s.Tracker.addToCall(k, thunk, partner)
}

func (s *ResultSignal0[R]) disconnectSlot(k Key, partner registry) {
	s.Tracker.remove(k, partner)
}

// Connect adds fn as an untracked slot.
func (s *ResultSignal0[R]) Connect(fn func() R) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(any) R { return fn() }, self)
}

func (s *ResultSignal0[R]) Disconnect(fn func() R) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

// Emit invokes every connected slot, discarding the results.
func (s *ResultSignal0[R]) Emit() {
	s.eachCall(func(r *record) {
		r.thunk.(func(any) R)(r.key.recv)
	})
}

// Collect invokes sink with each slot's result, in registry order.
func (s *ResultSignal0[R]) Collect(sink func(R)) {
	s.eachCall(func(r *record) {
		sink(r.thunk.(func(any) R)(r.key.recv))
	})
}

func (s *ResultSignal0[R]) Copy() *ResultSignal0[R] {
	n := &ResultSignal0[R]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.Tracker, n)
	return n
}

// ResultSignal1 dispatches to slots taking one argument and returning R.
type ResultSignal1[A, R any] struct {
	Tracker
}

func NewResultSignal1[A, R any](policy ...sync.Locker) *ResultSignal1[A, R] {
	s := &ResultSignal1[A, R]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	return s
}

func (s *ResultSignal1[A, R]) connectSlot(k Key, thunk func(any, A) R, partner registry) {
	s.Tracker.addToCall(k, thunk, partner)
}

func (s *ResultSignal1[A, R]) disconnectSlot(k Key, partner registry) {
	s.Tracker.remove(k, partner)
}

func (s *ResultSignal1[A, R]) Connect(fn func(A) R) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A) R { return fn(a) }, self)
}

func (s *ResultSignal1[A, R]) Disconnect(fn func(A) R) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *ResultSignal1[A, R]) Emit(a A) {
	s.eachCall(func(r *record) {
		r.thunk.(func(any, A) R)(r.key.recv, a)
	})
}

func (s *ResultSignal1[A, R]) Collect(sink func(R), a A) {
	s.eachCall(func(r *record) {
		sink(r.thunk.(func(any, A) R)(r.key.recv, a))
	})
}

func (s *ResultSignal1[A, R]) Copy() *ResultSignal1[A, R] {
	n := &ResultSignal1[A, R]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.Tracker, n)
	return n
}

// ResultSignal2 dispatches to slots taking two arguments and returning R.
type ResultSignal2[A, B, R any] struct {
	Tracker
}

func NewResultSignal2[A, B, R any](policy ...sync.Locker) *ResultSignal2[A, B, R] {
	s := &ResultSignal2[A, B, R]{}
	if len(policy) > 0 {
		s.lk = policy[0]
	}
	return s
}

func (s *ResultSignal2[A, B, R]) connectSlot(k Key, thunk func(any, A, B) R, partner registry) {
	s.Tracker.addToCall(k, thunk, partner)
}

func (s *ResultSignal2[A, B, R]) disconnectSlot(k Key, partner registry) {
	s.Tracker.remove(k, partner)
}

func (s *ResultSignal2[A, B, R]) Connect(fn func(A, B) R) {
	self := s.slotRegistry()
	self.addToCall(bindFunc(fn), func(_ any, a A, b B) R { return fn(a, b) }, self)
}

func (s *ResultSignal2[A, B, R]) Disconnect(fn func(A, B) R) {
	self := s.slotRegistry()
	self.remove(bindFunc(fn), self)
}

func (s *ResultSignal2[A, B, R]) Emit(a A, b B) {
	s.eachCall(func(r *record) {
		r.thunk.(func(any, A, B) R)(r.key.recv, a, b)
	})
}

func (s *ResultSignal2[A, B, R]) Collect(sink func(R), a A, b B) {
	s.eachCall(func(r *record) {
		sink(r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
	})
}

func (s *ResultSignal2[A, B, R]) Copy() *ResultSignal2[A, B, R] {
	n := &ResultSignal2[A, B, R]{}
	n.lk = clonePolicy(s.lk)
	n.CopyFrom(&s.Tracker, n)
	return n
}

// Accumulate0 folds every slot result into init with +, in registry order.
// Emitting over zero slots returns init unchanged.
func Accumulate0[R Summable](s *ResultSignal0[R], init R) R {
	s.eachCall(func(r *record) {
		init = init + r.thunk.(func(any) R)(r.key.recv)
	})
	return init
}

// Accumulate1 is Accumulate0 for single-argument signals.
func Accumulate1[A any, R Summable](s *ResultSignal1[A, R], init R, a A) R {
	s.eachCall(func(r *record) {
		init = init + r.thunk.(func(any, A) R)(r.key.recv, a)
	})
	return init
}

// Accumulate2 is Accumulate0 for two-argument signals.
func Accumulate2[A, B any, R Summable](s *ResultSignal2[A, B, R], init R, a A, b B) R {
	s.eachCall(func(r *record) {
		init = init + r.thunk.(func(any, A, B) R)(r.key.recv, a, b)
	})
	return init
}

// AccumulateOp0 folds every slot result into init with op. The fold state
// type is independent of the slot result type.
func AccumulateOp0[R, I any](s *ResultSignal0[R], init I, op func(I, R) I) I {
	s.eachCall(func(r *record) {
		init = op(init, r.thunk.(func(any) R)(r.key.recv))
	})
	return init
}

func AccumulateOp1[A, R, I any](s *ResultSignal1[A, R], init I, op func(I, R) I, a A) I {
	s.eachCall(func(r *record) {
		init = op(init, r.thunk.(func(any, A) R)(r.key.recv, a))
	})
	return init
}

func AccumulateOp2[A, B, R, I any](s *ResultSignal2[A, B, R], init I, op func(I, R) I, a A, b B) I {
	s.eachCall(func(r *record) {
		init = op(init, r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
	})
	return init
}

// Aggregate0 collects every slot result into a fresh slice, in registry
// order. Zero connected slots yield an empty slice.
func Aggregate0[R any](s *ResultSignal0[R]) []R {
	var out []R
	s.eachCall(func(r *record) {
		out = append(out, r.thunk.(func(any) R)(r.key.recv))
	})
	return out
}

func Aggregate1[A, R any](s *ResultSignal1[A, R], a A) []R {
	var out []R
	s.eachCall(func(r *record) {
		out = append(out, r.thunk.(func(any, A) R)(r.key.recv, a))
	})
	return out
}

func Aggregate2[A, B, R any](s *ResultSignal2[A, B, R], a A, b B) []R {
	var out []R
	s.eachCall(func(r *record) {
		out = append(out, r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
	})
	return out
}

// AggregateSet0 collects every slot result into a fresh set, deduplicating
// equal results.
func AggregateSet0[R comparable](s *ResultSignal0[R]) mapset.Set[R] {
	out := mapset.NewThreadUnsafeSet[R]()
	s.eachCall(func(r *record) {
		out.Add(r.thunk.(func(any) R)(r.key.recv))
	})
	return out
}

func AggregateSet1[A any, R comparable](s *ResultSignal1[A, R], a A) mapset.Set[R] {
	out := mapset.NewThreadUnsafeSet[R]()
	s.eachCall(func(r *record) {
		out.Add(r.thunk.(func(any, A) R)(r.key.recv, a))
	})
	return out
}

func AggregateSet2[A, B any, R comparable](s *ResultSignal2[A, B, R], a A, b B) mapset.Set[R] {
	out := mapset.NewThreadUnsafeSet[R]()
	s.eachCall(func(r *record) {
		out.Add(r.thunk.(func(any, A, B) R)(r.key.recv, a, b))
	})
	return out
}
