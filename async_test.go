package sigslot_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/montellese/sigslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncEmitReturnsBeforeSlotRuns(t *testing.T) {
	s := sigslot.NewAsyncSignal0()

	gate := make(chan struct{})
	var ran atomic.Bool
	s.Connect(func() {
		<-gate
		ran.Store(true)
	})

	task := s.Emit()
	assert.False(t, ran.Load())

	close(gate)
	require.NoError(t, task.Wait())
	assert.True(t, ran.Load())
}

// the worked example: slots adding 1 and 2 to a shared counter give 3 after
// waiting, whatever the registry order
func TestAsyncSharedCounterExample(t *testing.T) {
	s := sigslot.NewAsyncSignal0()

	total := 0
	s.Connect(func() { total += 1 })
	s.Connect(func() { total += 2 })

	require.NoError(t, s.Emit().Wait())
	assert.Equal(t, 3, total)
}

func TestAsyncEmitWithArgument(t *testing.T) {
	s := sigslot.NewAsyncSignal1[int]()

	got := 0
	s.Connect(func(v int) { got = v })
	require.NoError(t, s.Emit(42).Wait())
	assert.Equal(t, 42, got)
}

// a structural mutation issued while an emission is in flight only takes
// effect once the emission has finished, and never affects the slots that
// emission walks
func TestAsyncStructuralMutationWaitsForEmission(t *testing.T) {
	s := sigslot.NewAsyncSignal0()

	release := make(chan struct{})
	var first, second atomic.Int32
	s.Connect(func() {
		<-release
		first.Add(1)
	})

	task := s.Emit()

	var connected atomic.Bool
	go func() {
		s.Connect(func() { second.Add(1) })
		connected.Store(true)
	}()

	// the connect must be parked on the gate while the emission runs
	time.Sleep(20 * time.Millisecond)
	assert.False(t, connected.Load())

	close(release)
	require.NoError(t, task.Wait())
	require.Eventually(t, connected.Load, time.Second, time.Millisecond)

	// the in-flight emission saw only the first slot
	assert.EqualValues(t, 1, first.Load())
	assert.EqualValues(t, 0, second.Load())

	require.NoError(t, s.Emit().Wait())
	assert.EqualValues(t, 2, first.Load())
	assert.EqualValues(t, 1, second.Load())
}

func TestAsyncBackToBackEmissionsSerialize(t *testing.T) {
	s := sigslot.NewAsyncSignal0()

	var running atomic.Int32
	var overlapped atomic.Bool
	s.Connect(func() {
		if running.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
	})

	t1 := s.Emit()
	t2 := s.Emit()
	require.NoError(t, t1.Wait())
	require.NoError(t, t2.Wait())
	assert.False(t, overlapped.Load())
}

func TestAsyncAccumulate(t *testing.T) {
	s := sigslot.NewAsyncResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return 2 * v })

	got, err := sigslot.AsyncAccumulate1(s, 3, 5).Wait()
	require.NoError(t, err)
	assert.Equal(t, 3+5+10, got)
}

func TestAsyncAccumulateOp(t *testing.T) {
	s := sigslot.NewAsyncResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return 2 * v })

	minus := func(acc, v int) int { return acc - v }
	got, err := sigslot.AsyncAccumulateOp1(s, 3, minus, 5).Wait()
	require.NoError(t, err)
	assert.Equal(t, 3-5-10, got)
}

func TestAsyncAggregate(t *testing.T) {
	s := sigslot.NewAsyncResultSignal0[int]()
	s.Connect(func() int { return 1 })
	s.Connect(func() int { return 2 })

	got, err := sigslot.AsyncAggregate0(s).Wait()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, got)

	set, err := sigslot.AsyncAggregateSet0(s).Wait()
	require.NoError(t, err)
	assert.Equal(t, 2, set.Cardinality())
}

func TestAsyncCollect(t *testing.T) {
	s := sigslot.NewAsyncResultSignal1[int, int]()
	s.Connect(func(v int) int { return v + 1 })

	var got []int
	task := s.Collect(func(r int) { got = append(got, r) }, 1)
	require.NoError(t, task.Wait())
	assert.Equal(t, []int{2}, got)
}

// a slot panic surfaces from Wait, not from Emit, and the gate is released
// so the signal stays usable
func TestAsyncSlotPanicSurfacesFromWait(t *testing.T) {
	s := sigslot.NewAsyncSignal0()
	s.Connect(func() { panic("boom") })

	err := s.Emit().Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	s.Clear()
	require.NoError(t, s.Emit().Wait())
}

type asyncCounter struct {
	sigslot.AsyncTracker
	n atomic.Int64
}

func (c *asyncCounter) add(v int) { c.n.Add(int64(v)) }

func TestAsyncTrackedReceiverClear(t *testing.T) {
	s := sigslot.NewAsyncSignal1[int]()
	c := &asyncCounter{}

	sigslot.ConnectMethod1(s, c, (*asyncCounter).add)
	require.NoError(t, s.Emit(2).Wait())
	assert.EqualValues(t, 2, c.n.Load())

	c.Clear()
	require.NoError(t, s.Emit(2).Wait())
	assert.EqualValues(t, 2, c.n.Load())
	assert.True(t, s.Empty())
}

func TestAsyncSignalCopy(t *testing.T) {
	s := sigslot.NewAsyncSignal1[int]()
	c := &asyncCounter{}
	sigslot.ConnectMethod1(s, c, (*asyncCounter).add)

	dup := s.Copy()
	require.NoError(t, s.Emit(1).Wait())
	require.NoError(t, dup.Emit(1).Wait())
	assert.EqualValues(t, 2, c.n.Load())

	c.Clear()
	assert.True(t, s.Empty())
	assert.True(t, dup.Empty())
}

func TestFutureDoneChannel(t *testing.T) {
	s := sigslot.NewAsyncResultSignal0[int]()
	s.Connect(func() int { return 9 })

	f := sigslot.AsyncAccumulate0(s, 0)
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future never completed")
	}
	got, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestAsyncZeroValueSignalUsable(t *testing.T) {
	var s sigslot.AsyncSignal1[int]

	var got atomic.Int64
	s.Connect(func(v int) { got.Store(int64(v)) })
	require.NoError(t, s.Emit(5).Wait())
	assert.EqualValues(t, 5, got.Load())
}
