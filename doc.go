// Package sigslot is an in-process signal/slot dispatcher with
// lifetime-aware connections.
//
// A signal holds an ordered multiset of slot bindings and invokes them on
// Emit, either synchronously (Signal0/1/2, ResultSignal0/1/2) or on a
// detached goroutine behind a single-admission gate (the Async variants).
// Receivers that embed Tracker (or AsyncTracker for the async world) get a
// mirror record for every connection, so tearing the receiver down with
// Clear severs all of its connections on both sides:
//
//	type counter struct {
//		sigslot.Tracker
//		n int
//	}
//
//	func (c *counter) Add(v int) { c.n += v }
//
//	s := sigslot.NewSignal1[int]()
//	c := &counter{}
//	sigslot.ConnectMethod1(s, c, (*counter).Add)
//	s.Emit(2)  // c.n == 2
//	c.Clear()  // c is gone from every signal it was connected to
//	s.Emit(2)  // no-op
//
// Locking is a pluggable policy (any sync.Locker). The zero policy is no
// locking; NoLocking, GlobalLocking, *sync.Mutex and RecursiveMutex are the
// stock choices. Go has no destructors, so Clear is the explicit teardown
// that keeps the bidirectional registry consistent; a tracked receiver must
// be cleared before it is abandoned.
package sigslot
