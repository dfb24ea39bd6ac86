package sigslot_test

import (
	"testing"

	"github.com/montellese/sigslot"
	"github.com/stretchr/testify/assert"
)

// counter is a tracked receiver: embedding Tracker makes its connections
// lifetime-aware.
type counter struct {
	sigslot.Tracker
	n int
}

func (c *counter) add(v int) { c.n += v }

func (c *counter) bump() { c.n++ }

func TestConnectMethodInvokesReceiver(t *testing.T) {
	s := sigslot.NewSignal1[int]()
	c := &counter{}

	sigslot.ConnectMethod1(s, c, (*counter).add)
	s.Emit(5)
	assert.Equal(t, 5, c.n)
}

func TestConnectMethodZeroArity(t *testing.T) {
	s := sigslot.NewSignal0()
	c := &counter{}

	sigslot.ConnectMethod0(s, c, (*counter).bump)
	s.Emit()
	s.Emit()
	assert.Equal(t, 2, c.n)
}

func TestDisconnectMethodSeversBothSides(t *testing.T) {
	s := sigslot.NewSignal1[int]()
	c := &counter{}

	sigslot.ConnectMethod1(s, c, (*counter).add)
	assert.False(t, s.Empty())
	assert.False(t, c.Empty())

	sigslot.DisconnectMethod1(s, c, (*counter).add)
	assert.True(t, s.Empty())
	assert.True(t, c.Empty())

	s.Emit(1)
	assert.Equal(t, 0, c.n)
}

// clearing the receiver stands in for its destruction: every signal it was
// connected to forgets it
func TestClearReceiverAutoDisconnects(t *testing.T) {
	s1 := sigslot.NewSignal1[int]()
	s2 := sigslot.NewSignal1[int]()
	c := &counter{}

	sigslot.ConnectMethod1(s1, c, (*counter).add)
	sigslot.ConnectMethod1(s2, c, (*counter).add)

	c.Clear()
	s1.Emit(1)
	s2.Emit(1)
	assert.Equal(t, 0, c.n)
	assert.True(t, s1.Empty())
	assert.True(t, s2.Empty())
}

func TestClearSignalRemovesReceiverMirrors(t *testing.T) {
	s := sigslot.NewSignal1[int]()
	c := &counter{}

	sigslot.ConnectMethod1(s, c, (*counter).add)
	s.Clear()
	assert.True(t, s.Empty())
	assert.True(t, c.Empty())
}

func TestClearIsIdempotent(t *testing.T) {
	s := sigslot.NewSignal1[int]()
	c := &counter{}

	sigslot.ConnectMethod1(s, c, (*counter).add)
	c.Clear()
	c.Clear()
	s.Clear()
	assert.True(t, s.Empty())
	assert.True(t, c.Empty())
}

// a receiver without an embedded Tracker still works, its connection is
// simply self-mirrored in the signal and cleaned up only by the signal
type plainReceiver struct {
	n int
}

func (p *plainReceiver) add(v int) { p.n += v }

func TestUntrackedReceiver(t *testing.T) {
	s := sigslot.NewSignal1[int]()
	p := &plainReceiver{}

	sigslot.ConnectMethod1(s, p, (*plainReceiver).add)
	s.Emit(3)
	assert.Equal(t, 3, p.n)

	sigslot.DisconnectMethod1(s, p, (*plainReceiver).add)
	s.Emit(3)
	assert.Equal(t, 3, p.n)
	assert.True(t, s.Empty())
}

func TestSameMethodDifferentReceivers(t *testing.T) {
	s := sigslot.NewSignal1[int]()
	c1 := &counter{}
	c2 := &counter{}

	sigslot.ConnectMethod1(s, c1, (*counter).add)
	sigslot.ConnectMethod1(s, c2, (*counter).add)

	s.Emit(1)
	assert.Equal(t, 1, c1.n)
	assert.Equal(t, 1, c2.n)

	// disconnecting one receiver leaves the other connected
	sigslot.DisconnectMethod1(s, c1, (*counter).add)
	s.Emit(1)
	assert.Equal(t, 1, c1.n)
	assert.Equal(t, 2, c2.n)
}
