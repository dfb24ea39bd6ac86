package sigslot

import (
	"fmt"
	"sync"
)

// gate is the single-admission counting semaphore serializing emission
// against structural mutation. It is built from the locking policy plus a
// condition variable, and it is the only thing held across the asynchronous
// boundary; the policy itself is only held inside acquire and release.
type gate struct {
	lk    sync.Locker
	cond  *sync.Cond
	count int
}

func newGate(lk sync.Locker) *gate {
	return &gate{lk: lk, cond: sync.NewCond(lk), count: 1}
}

func (g *gate) acquire() {
	g.lk.Lock()
	for g.count <= 0 {
		g.cond.Wait()
	}
	g.count--
	g.lk.Unlock()
}

func (g *gate) release() {
	g.lk.Lock()
	g.count++
	g.cond.Broadcast()
	g.lk.Unlock()
}

// AsyncTracker is the gated registry variant backing the asynchronous
// signals. Structural operations block while an emission is in flight;
// an emission started while another holds the gate blocks the emitting
// caller until admission. The zero value is ready to use with a fresh
// per-instance mutex; NewAsyncTracker selects another policy, which must be
// a real mutex safe to acquire from multiple goroutines.
type AsyncTracker struct {
	once  sync.Once
	lk    sync.Locker
	g     *gate
	slots slotList
}

func NewAsyncTracker(policy sync.Locker) *AsyncTracker {
	t := &AsyncTracker{lk: policy}
	t.init()
	return t
}

func (t *AsyncTracker) init() {
	t.once.Do(func() {
		if t.lk == nil {
			t.lk = new(sync.Mutex)
		}
		t.g = newGate(t.lk)
	})
}

func (t *AsyncTracker) slotRegistry() registry {
	t.init()
	return t
}

func (t *AsyncTracker) addToCall(k Key, thunk any, partner registry) {
	t.init()
	t.g.acquire()
	defer t.g.release()
	t.slots.insert(k, thunk, partner, true)
}

func (t *AsyncTracker) addToTrack(k Key, thunk any, partner registry) {
	t.init()
	t.g.acquire()
	defer t.g.release()
	t.slots.insert(k, thunk, partner, false)
}

func (t *AsyncTracker) remove(k Key, partner registry) {
	t.init()
	t.g.acquire()
	defer t.g.release()
	t.slots.removeFirst(k, partner)
}

// Clear severs every connection in both directions, waiting out any
// in-flight emission first.
func (t *AsyncTracker) Clear() {
	t.init()
	t.g.acquire()
	defer t.g.release()
	t.slots.dropAll(t)
}

// Empty reports whether no connections remain.
func (t *AsyncTracker) Empty() bool {
	t.init()
	t.g.acquire()
	defer t.g.release()
	return t.slots.head == nil
}

// CopyFrom duplicates every connection of other into t, leaving other
// untouched. owner is the object t is embedded in.
func (t *AsyncTracker) CopyFrom(other *AsyncTracker, owner any) {
	t.init()
	other.init()
	t.g.acquire()
	defer t.g.release()
	t.slots.copyFrom(&other.slots, other, t, owner)
}

// launch acquires the gate on the caller's goroutine, then runs walk on a
// detached goroutine which releases the gate and completes the returned
// handle when done. A slot panic aborts the rest of the walk and surfaces
// from the handle's Wait.
func (t *AsyncTracker) launch(walk func()) *Task {
	t.init()
	t.g.acquire()
	task := newTask()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				task.err = fmt.Errorf("sigslot: slot panicked: %v", r)
			}
			t.g.release()
			close(task.done)
		}()
		walk()
	}()
	return task
}

// launchFuture is launch for result-bearing walks.
func launchFuture[R any](t *AsyncTracker, walk func() R) *Future[R] {
	t.init()
	t.g.acquire()
	f := newFuture[R]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("sigslot: slot panicked: %v", r)
			}
			t.g.release()
			close(f.done)
		}()
		f.val = walk()
	}()
	return f
}
