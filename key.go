package sigslot

import "reflect"

// Key is the identity of a connected slot: the receiver object plus the
// identity of the bound function. A nil receiver denotes a free function.
// Keys are pure values; binding the same receiver and function twice yields
// equal keys.
type Key struct {
	recv any
	fn   uintptr
}

// Receiver returns the receiver component, nil for free functions.
func (k Key) Receiver() any { return k.recv }

// funcID returns the code pointer of fn. Named functions and method
// expressions have one stable code pointer per declaration. Closures built
// from the same literal share a code pointer, so two such closures carry the
// same free-function identity; bind closures through a receiver when they
// must stay distinguishable.
func funcID(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func bindFunc(fn any) Key { return Key{fn: funcID(fn)} }

func bindMethod(recv, fn any) Key { return Key{recv: recv, fn: funcID(fn)} }

// copyKey rewrites the receiver component of k to owner, keeping the bound
// function. Free-function keys pass through unchanged. Used when a tracked
// receiver is copied and must expose its callables under the copy's
// identity.
func copyKey(k Key, owner any) Key {
	if k.recv == nil {
		return k
	}
	return Key{recv: owner, fn: k.fn}
}
