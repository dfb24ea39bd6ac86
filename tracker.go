package sigslot

import "sync"

// registry is the capability a connection partner exposes to the other side
// of a mirror. Both *Tracker and *AsyncTracker implement it, so mirrors work
// across the sync and async variants. Registries are compared by identity.
type registry interface {
	addToCall(k Key, thunk any, partner registry)
	addToTrack(k Key, thunk any, partner registry)
	remove(k Key, partner registry)
}

// Trackable is satisfied by embedding Tracker or AsyncTracker. Connecting a
// method of a Trackable receiver registers a mirror record in the receiver,
// so clearing the receiver automatically disconnects it from every signal.
type Trackable interface {
	slotRegistry() registry
}

// record is one entry of a connection registry. call selects the role: a
// Call record is invoked on emission, a Track record is the mirror kept so
// the partner can drop us when it goes away, and is never invoked.
// The thunk rides along on both sides of a mirror so a registry copy can
// hand the partner a restorable Call record.
type record struct {
	key     Key
	thunk   any
	partner registry
	call    bool
	next    *record
}

// slotList is the raw singly-linked record list shared by both tracker
// variants. Head insertion, so iteration order is reverse connection order
// and not part of the contract. Callers guard access.
type slotList struct {
	head *record
}

func (l *slotList) insert(k Key, thunk any, partner registry, call bool) {
	l.head = &record{key: k, thunk: thunk, partner: partner, call: call, next: l.head}
}

// removeFirst unlinks the first record matching key and partner. Removing an
// absent record is a no-op.
func (l *slotList) removeFirst(k Key, partner registry) {
	for p := &l.head; *p != nil; p = &(*p).next {
		if (*p).key == k && (*p).partner == partner {
			*p = (*p).next
			return
		}
	}
}

// dropAll tells every foreign partner to forget its mirror of us, then
// empties the list. self is the identity our records point back with.
func (l *slotList) dropAll(self registry) {
	for r := l.head; r != nil; r = r.next {
		if r.partner != self {
			r.partner.remove(r.key, self)
		}
	}
	l.head = nil
}

// eachCall visits every Call record in list order.
func (l *slotList) eachCall(fn func(r *record)) {
	for r := l.head; r != nil; r = r.next {
		if r.call {
			fn(r)
		}
	}
}

// copyFrom duplicates every record of other into l. Track-record keys are
// rewritten to owner, the copy's outer identity, so partners invoke the copy
// rather than the original. Records that referenced other itself are
// remapped to self; every third-party partner is handed the mirror that
// makes it aware of the copy.
func (l *slotList) copyFrom(other *slotList, otherSelf, self registry, owner any) {
	for r := other.head; r != nil; r = r.next {
		key := r.key
		if !r.call {
			key = copyKey(key, owner)
		}

		if r.partner == otherSelf {
			// self-mirrored (untracked) slot, just point it at us
			l.insert(key, r.thunk, self, r.call)
			continue
		}

		l.insert(key, r.thunk, r.partner, r.call)
		if r.call {
			r.partner.addToTrack(key, r.thunk, self)
		} else {
			r.partner.addToCall(key, r.thunk, self)
		}
	}
}

// Tracker is the bidirectional connection registry shared by signals and
// tracked receivers. Embed it in a receiver type to make the receiver's
// connections lifetime-aware. The zero value is ready to use with no
// locking; NewTracker selects a locking policy.
type Tracker struct {
	lk    sync.Locker
	slots slotList
}

// NewTracker returns a tracker guarded by policy. A nil policy means no
// locking.
func NewTracker(policy sync.Locker) *Tracker {
	return &Tracker{lk: policy}
}

func (t *Tracker) slotRegistry() registry { return t }

func (t *Tracker) lock() {
	if t.lk != nil {
		t.lk.Lock()
	}
}

func (t *Tracker) unlock() {
	if t.lk != nil {
		t.lk.Unlock()
	}
}

func (t *Tracker) addToCall(k Key, thunk any, partner registry) {
	t.lock()
	defer t.unlock()
	t.slots.insert(k, thunk, partner, true)
}

func (t *Tracker) addToTrack(k Key, thunk any, partner registry) {
	t.lock()
	defer t.unlock()
	t.slots.insert(k, thunk, partner, false)
}

func (t *Tracker) remove(k Key, partner registry) {
	t.lock()
	defer t.unlock()
	t.slots.removeFirst(k, partner)
}

// Clear severs every connection in both directions and empties the
// registry. It is the teardown a tracked receiver must run before being
// abandoned, and it is idempotent.
func (t *Tracker) Clear() {
	t.lock()
	defer t.unlock()
	t.slots.dropAll(t)
}

// Empty reports whether no connections remain.
func (t *Tracker) Empty() bool {
	t.lock()
	defer t.unlock()
	return t.slots.head == nil
}

// CopyFrom duplicates every connection of other into t, leaving other
// untouched. owner is the object t is embedded in; tracked-slot keys are
// rewritten to it so partner signals invoke the copy. Existing records of t
// are kept.
func (t *Tracker) CopyFrom(other *Tracker, owner any) {
	t.lock()
	defer t.unlock()
	t.slots.copyFrom(&other.slots, other, t, owner)
}

// eachCall visits every Call record with the policy held for the duration
// of the walk, emission included.
func (t *Tracker) eachCall(fn func(r *record)) {
	t.lock()
	defer t.unlock()
	t.slots.eachCall(fn)
}
