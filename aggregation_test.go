package sigslot_test

import (
	"testing"

	"github.com/montellese/sigslot"
	"github.com/stretchr/testify/assert"
)

func TestAccumulate(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return 2 * v })

	// 3 + v + 2v
	assert.Equal(t, 3+5+10, sigslot.Accumulate1(s, 3, 5))
}

func TestAccumulateWithNoSlotsReturnsInit(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	assert.Equal(t, 3, sigslot.Accumulate1(s, 3, 5))
}

func TestAccumulateStrings(t *testing.T) {
	s := sigslot.NewResultSignal0[string]()
	s.Connect(func() string { return "a" })
	s.Connect(func() string { return "b" })

	got := sigslot.Accumulate0(s, "")
	// registry iteration order is unspecified
	assert.Contains(t, []string{"ab", "ba"}, got)
}

func TestAccumulateOp(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return 2 * v })

	minus := func(acc, v int) int { return acc - v }
	// minus folds are order-insensitive here: 3 - v - 2v either way
	assert.Equal(t, 3-5-10, sigslot.AccumulateOp1(s, 3, minus, 5))
}

func TestAccumulateOpIndependentFoldType(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return v + 1 })

	count := sigslot.AccumulateOp1(s, 0, func(acc int, _ int) int { return acc + 1 }, 9)
	assert.Equal(t, 2, count)
}

func TestAggregateSlice(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return 2 * v })

	got := sigslot.Aggregate1(s, 4)
	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []int{4, 8}, got)
}

func TestAggregateSetDeduplicates(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return v + 0 })
	s.Connect(func(v int) int { return 2 * v })

	got := sigslot.AggregateSet1(s, 4)
	assert.Equal(t, 2, got.Cardinality())
	assert.True(t, got.Contains(4))
	assert.True(t, got.Contains(8))
}

func TestCollect(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	s.Connect(func(v int) int { return v })
	s.Connect(func(v int) int { return 2 * v })

	var got []int
	s.Collect(func(r int) { got = append(got, r) }, 3)
	assert.ElementsMatch(t, []int{3, 6}, got)
}

type scaler struct {
	sigslot.Tracker
	factor int
}

func (sc *scaler) scale(v int) int { return sc.factor * v }

func TestResultMethodSlots(t *testing.T) {
	s := sigslot.NewResultSignal1[int, int]()
	double := &scaler{factor: 2}
	triple := &scaler{factor: 3}

	sigslot.ConnectResultMethod1(s, double, (*scaler).scale)
	sigslot.ConnectResultMethod1(s, triple, (*scaler).scale)
	assert.Equal(t, 2*4+3*4, sigslot.Accumulate1(s, 0, 4))

	// tracked result slots disconnect on Clear like any other
	double.Clear()
	assert.Equal(t, 3*4, sigslot.Accumulate1(s, 0, 4))

	sigslot.DisconnectResultMethod1(s, triple, (*scaler).scale)
	assert.True(t, s.Empty())
	assert.True(t, triple.Empty())
}

func TestAggregateArityTwo(t *testing.T) {
	s := sigslot.NewResultSignal2[int, int, int]()
	s.Connect(func(a, b int) int { return a + b })
	s.Connect(func(a, b int) int { return a * b })

	assert.ElementsMatch(t, []int{7, 12}, sigslot.Aggregate2(s, 3, 4))
	assert.Equal(t, 19, sigslot.Accumulate2(s, 0, 3, 4))
}
