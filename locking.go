package sigslot

import (
	"sync"

	"github.com/petermattis/goid"
)

// All trackers take their mutual-exclusion strategy as a sync.Locker chosen
// at construction. A nil policy means no locking at all, which is the right
// default for single-goroutine use. Note that tearing down a connection
// notifies the partner registry while the local policy is still held, so a
// policy shared between connected trackers (GlobalLocking in particular)
// must be reentrant to be safe; RecursiveMutex is the stock choice for that.

// NoLocking is the explicit no-op policy.
type NoLocking struct{}

func (NoLocking) Lock()   {}
func (NoLocking) Unlock() {}

var globalMu RecursiveMutex

// GlobalLocking shares one process-wide reentrant mutex between every
// tracker that selects it.
type GlobalLocking struct{}

func (GlobalLocking) Lock()   { globalMu.Lock() }
func (GlobalLocking) Unlock() { globalMu.Unlock() }

// RecursiveMutex is a reentrant sync.Locker. The goroutine holding it may
// lock it again without deadlocking; every Lock must be paired with an
// Unlock. The zero value is ready to use.
type RecursiveMutex struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner int64
	depth int
}

func (m *RecursiveMutex) Lock() {
	gid := goid.Get()
	m.mu.Lock()
	if m.cond == nil {
		m.cond = sync.NewCond(&m.mu)
	}
	for m.depth > 0 && m.owner != gid {
		m.cond.Wait()
	}
	m.owner = gid
	m.depth++
	m.mu.Unlock()
}

func (m *RecursiveMutex) Unlock() {
	m.mu.Lock()
	if m.depth == 0 {
		m.mu.Unlock()
		panic("sigslot: unlock of unlocked RecursiveMutex")
	}
	m.depth--
	if m.depth == 0 {
		m.owner = 0
		m.cond.Broadcast()
	}
	m.mu.Unlock()
}

// clonePolicy gives a copied tracker its own policy instance, the way a
// freshly constructed tracker of the same policy type would get one.
// Stateless and deliberately shared policies pass through unchanged.
func clonePolicy(lk sync.Locker) sync.Locker {
	switch lk.(type) {
	case nil:
		return nil
	case *sync.Mutex:
		return new(sync.Mutex)
	case *RecursiveMutex:
		return new(RecursiveMutex)
	default:
		return lk
	}
}
