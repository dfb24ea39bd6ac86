package sigslot

// connector is the surface the method-binding functions dispatch through.
// F is the erased thunk type of the signal's signature, which is what makes
// a slot/signal signature mismatch a compile error. Both the sync and async
// signal variants implement it.
type connector[F any] interface {
	connectSlot(k Key, thunk F, partner registry)
	disconnectSlot(k Key, partner registry)
	slotRegistry() registry
}

// connectTo inserts the Call record and, for Trackable receivers, the
// mirror on the receiver side.
func connectTo[F any](s connector[F], k Key, thunk F, recv any) {
	if t, ok := recv.(Trackable); ok {
		reg := t.slotRegistry()
		s.connectSlot(k, thunk, reg)
		reg.addToTrack(k, thunk, s.slotRegistry())
		return
	}
	s.connectSlot(k, thunk, s.slotRegistry())
}

// disconnectFrom removes the Call record and, for Trackable receivers, the
// mirror.
func disconnectFrom[F any](s connector[F], k Key, recv any) {
	if t, ok := recv.(Trackable); ok {
		reg := t.slotRegistry()
		s.disconnectSlot(k, reg)
		reg.remove(k, s.slotRegistry())
		return
	}
	s.disconnectSlot(k, s.slotRegistry())
}

// ConnectMethod0 connects recv's method m to a zero-argument signal. Pass
// the method as a method expression, e.g.
//
//	sigslot.ConnectMethod0(sig, obj, (*Obj).Bump)
//
// If *T embeds Tracker or AsyncTracker the connection is tracked: clearing
// recv disconnects it from sig automatically.
func ConnectMethod0[T any](s connector[func(any)], recv *T, m func(*T)) {
	connectTo(s, bindMethod(recv, m), func(o any) { m(o.(*T)) }, recv)
}

// DisconnectMethod0 undoes ConnectMethod0 for the same receiver and method.
// Disconnecting a pair that was never connected is a no-op.
func DisconnectMethod0[T any](s connector[func(any)], recv *T, m func(*T)) {
	disconnectFrom(s, bindMethod(recv, m), recv)
}

// ConnectMethod1 is ConnectMethod0 for single-argument signals.
func ConnectMethod1[T, A any](s connector[func(any, A)], recv *T, m func(*T, A)) {
	connectTo(s, bindMethod(recv, m), func(o any, a A) { m(o.(*T), a) }, recv)
}

func DisconnectMethod1[T, A any](s connector[func(any, A)], recv *T, m func(*T, A)) {
	disconnectFrom(s, bindMethod(recv, m), recv)
}

// ConnectMethod2 is ConnectMethod0 for two-argument signals.
func ConnectMethod2[T, A, B any](s connector[func(any, A, B)], recv *T, m func(*T, A, B)) {
	connectTo(s, bindMethod(recv, m), func(o any, a A, b B) { m(o.(*T), a, b) }, recv)
}

func DisconnectMethod2[T, A, B any](s connector[func(any, A, B)], recv *T, m func(*T, A, B)) {
	disconnectFrom(s, bindMethod(recv, m), recv)
}

// ConnectResultMethod0 connects recv's result-bearing method m to a
// zero-argument result signal.
func ConnectResultMethod0[T, R any](s connector[func(any) R], recv *T, m func(*T) R) {
	connectTo(s, bindMethod(recv, m), func(o any) R { return m(o.(*T)) }, recv)
}

func DisconnectResultMethod0[T, R any](s connector[func(any) R], recv *T, m func(*T) R) {
	disconnectFrom(s, bindMethod(recv, m), recv)
}

// ConnectResultMethod1 is ConnectResultMethod0 for single-argument signals.
func ConnectResultMethod1[T, A, R any](s connector[func(any, A) R], recv *T, m func(*T, A) R) {
	connectTo(s, bindMethod(recv, m), func(o any, a A) R { return m(o.(*T), a) }, recv)
}

func DisconnectResultMethod1[T, A, R any](s connector[func(any, A) R], recv *T, m func(*T, A) R) {
	disconnectFrom(s, bindMethod(recv, m), recv)
}

// ConnectResultMethod2 is ConnectResultMethod0 for two-argument signals.
func ConnectResultMethod2[T, A, B, R any](s connector[func(any, A, B) R], recv *T, m func(*T, A, B) R) {
	connectTo(s, bindMethod(recv, m), func(o any, a A, b B) R { return m(o.(*T), a, b) }, recv)
}

func DisconnectResultMethod2[T, A, B, R any](s connector[func(any, A, B) R], recv *T, m func(*T, A, B) R) {
	disconnectFrom(s, bindMethod(recv, m), recv)
}
