package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/style"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, clk.Now().Sub(start))
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	assert.True(t, clk.Now().Equal(target))
}

func TestStyleTester_Chain(t *testing.T) {
	tester := NewStyleTesterWithT(t)
	nodes := tester.Chain("panel", "label")

	require.Len(t, nodes, 2)
	assert.Equal(t, "root/panel/label", nodes[1].Path())
}

func TestStyleTester_RecordsEvents(t *testing.T) {
	tester := NewStyleTesterWithT(t)
	n := tester.Chain("box")[0]

	require.NoError(t, tester.Engine().SetLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius, style.Num(4)))

	events := tester.EventsFor(n)
	require.Len(t, events, 1)
	assert.Equal(t, style.PropRadius, events[0].Prop)

	tester.Reset()
	assert.Empty(t, tester.StyleEvents)
}

func TestStyleTester_PumpAndSettle(t *testing.T) {
	tester := NewStyleTesterWithT(t)
	n := tester.Chain("box")[0]
	tester.Engine().FadeIn(n, 100*time.Millisecond, 0)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Empty(t, tester.Engine().ActiveTransitions())
	assert.Len(t, tester.DoneEvents, 1)
	assert.Equal(t, int32(255), cascade.GetProp(n, style.PartMain, style.PropOpa).Num)
}

func TestStyleTester_PumpAndSettleTimeout(t *testing.T) {
	tester := NewStyleTesterWithT(t)
	n := tester.Chain("box")[0]
	tester.Engine().FadeIn(n, time.Hour, 0)

	assert.ErrorIs(t, tester.PumpAndSettle(100*time.Millisecond), ErrSettleTimeout)
}
