package cascade_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/core"
	"github.com/go-drift/cascade/pkg/errors"
	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/style"
	drifttest "github.com/go-drift/cascade/pkg/testing"
)

func TestAddStyle_NoDeduplication(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	n := tester.Chain("box")[0]
	block := style.New().SetRadius(3)

	require.NoError(t, tester.Engine().AddStyle(n, style.AnyPart, style.StateDefault, block))
	require.NoError(t, tester.Engine().AddStyle(n, style.AnyPart, style.StateDefault, block))

	assert.Equal(t, 2, n.StyleList().Len())
}

func TestAddStyle_CapacityExceeded(t *testing.T) {
	tester := drifttest.NewStyleTester(cascade.Options{MaxBindings: 2})
	t.Cleanup(tester.Cleanup)
	eng := tester.Engine()
	n := tester.Chain("box")[0]

	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetRadius(1)))
	require.NoError(t, eng.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropOpa, style.Num(9)))

	err := eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetRadius(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCapacityExceeded)
	assert.True(t, errors.IsKind(err, errors.KindCapacity))
	assert.Equal(t, 2, n.StyleList().Len())
	assert.Equal(t, int32(1), radius(n))

	err = eng.SetLocalProp(n, style.PartKnob, style.StateDefault, style.PropOpa, style.Num(9))
	assert.ErrorIs(t, err, errors.ErrCapacityExceeded)

	// Writing into an existing local block needs no new binding.
	assert.NoError(t, eng.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius, style.Num(7)))
}

func TestAddStyle_CapacityIgnoresTransitions(t *testing.T) {
	tester := drifttest.NewStyleTester(cascade.Options{MaxBindings: 3})
	t.Cleanup(tester.Cleanup)
	eng := tester.Engine()
	n := tester.Chain("box")[0]
	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetOpa(255)))
	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StatePressed, style.New().SetOpa(0)))
	n.SetActiveState(style.StatePressed)
	eng.CreateTransition(n, style.PropOpa, style.PartMain, style.StateDefault, style.StatePressed,
		cascade.TransitionSpec{Duration: time.Second})
	require.Len(t, eng.ActiveTransitions(), 1)
	require.Equal(t, 3, n.StyleList().Len())

	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetRadius(2)))
	assert.Equal(t, 4, n.StyleList().Len())
	assert.Equal(t, int32(2), radius(n))

	err := eng.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius, style.Num(5))
	assert.ErrorIs(t, err, errors.ErrCapacityExceeded, "three settled bindings fill the list")
}

func TestMutations_InvalidateCache(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	n := tester.Chain("box")[0]
	block := style.New().SetBgOpa(graphics.OpaCover)

	mutations := []struct {
		name string
		fn   func()
	}{
		{"add", func() { require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, block)) }},
		{"set local", func() {
			require.NoError(t, eng.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius, style.Num(4)))
		}},
		{"remove local", func() { eng.RemoveLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius) }},
		{"remove missing local", func() { eng.RemoveLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius) }},
		{"remove", func() { eng.RemoveStyle(n, style.AnyPart, style.AnyState, block) }},
	}
	for _, m := range mutations {
		cascade.EnsureCache(n)
		require.True(t, n.StyleList().CacheValid())
		m.fn()
		assert.False(t, n.StyleList().CacheValid(), m.name)
	}
}

func TestRemoveLocalProp(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	n := tester.Chain("box")[0]

	assert.False(t, eng.RemoveLocalProp(n, style.PartMain, style.StateDefault, style.PropOpa))

	require.NoError(t, eng.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropOpa, style.Num(100)))
	require.NoError(t, eng.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius, style.Num(2)))
	assert.Equal(t, 1, n.StyleList().Len(), "one local block per (part, state)")

	assert.True(t, eng.RemoveLocalProp(n, style.PartMain, style.StateDefault, style.PropOpa))
	assert.False(t, eng.RemoveLocalProp(n, style.PartMain, style.StateDefault, style.PropOpa))
	assert.False(t, eng.RemoveLocalProp(n, style.PartMain, style.StatePressed, style.PropRadius))
	assert.Equal(t, int32(graphics.OpaCover), opa(n))

	assert.True(t, eng.RemoveLocalProp(n, style.PartMain, style.StateDefault, style.PropRadius))
	assert.Equal(t, 0, n.StyleList().Len(), "emptied local block is released")
}

func TestRemoveStyle_All(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	nodes := tester.Chain("panel", "label")
	panel, label := nodes[0], nodes[1]

	require.NoError(t, eng.AddStyle(panel, style.AnyPart, style.StateDefault, style.New().SetTextColor(graphics.ColorBlue)))
	require.NoError(t, eng.AddStyle(label, style.AnyPart, style.StateDefault, style.New().SetTextColor(graphics.ColorRed).SetRadius(5)))
	require.NoError(t, eng.AddStyle(label, style.OnPart(style.PartKnob), style.StateChecked, style.New().SetRadius(6)))
	require.NoError(t, eng.SetLocalProp(label, style.PartMain, style.StateDefault, style.PropOpa, style.Num(1)))

	eng.RemoveStyle(label, style.AnyPart, style.AnyState, nil)

	assert.Equal(t, 0, label.StyleList().Len())
	assert.Equal(t, graphics.ColorBlue, cascade.GetProp(label, style.PartMain, style.PropTextColor).Color, "inherited")
	assert.Equal(t, int32(0), radius(label), "default")
	assert.Equal(t, int32(graphics.OpaCover), opa(label), "default")
}

func TestRemoveStyle_Selectors(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	n := tester.Chain("box")[0]
	a := style.New().SetRadius(1)
	b := style.New().SetRadius(2)

	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, a))
	require.NoError(t, eng.AddStyle(n, style.OnPart(style.PartKnob), style.StateDefault, a))
	require.NoError(t, eng.AddStyle(n, style.OnPart(style.PartKnob), style.StatePressed, b))
	require.NoError(t, eng.AddStyle(n, style.OnPart(style.PartMain), style.StatePressed, a))

	eng.RemoveStyle(n, style.OnPart(style.PartKnob), style.AnyState, a)
	assert.Equal(t, 3, n.StyleList().Len(), "only the exact part selector matches")

	eng.RemoveStyle(n, style.AnyPart, style.InState(style.StatePressed), nil)
	require.Equal(t, 1, n.StyleList().Len())
	assert.Same(t, a, n.StyleList().Bindings()[0].Style)

	eng.RemoveStyle(n, style.AnyPart, style.AnyState, b)
	assert.Equal(t, 1, n.StyleList().Len(), "no match is not an error")
}

func TestRefresh_BatchProducesOneEvent(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	n := tester.Chain("box")[0]
	cascade.EnsureCache(n)
	require.False(t, cascade.HasFlag(n, cascade.CacheBgOpaCover))
	tester.Reset()

	eng.EnableStyleRefresh(false)
	for i := range 5 {
		require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetBgOpa(graphics.OpaCover).SetRadius(int32(i))))
		assert.True(t, n.StyleList().CacheValid(), "no invalidation while disabled")
		assert.False(t, cascade.HasFlag(n, cascade.CacheBgOpaCover), "stale read")
	}
	assert.Empty(t, tester.StyleEvents)

	eng.EnableStyleRefresh(true)
	assert.Empty(t, tester.StyleEvents, "enabling does not refresh")
	eng.RefreshStyle(n, style.AnyPart, style.PropAll)

	assert.Len(t, tester.EventsFor(n), 1)
	assert.True(t, cascade.HasFlag(n, cascade.CacheBgOpaCover))
	assert.Equal(t, 5, n.StyleList().Len())
}

func TestBatch_RestoresPrevious(t *testing.T) {
	eng := cascade.NewEngine(cascade.Options{})
	require.True(t, eng.RefreshEnabled())

	restore := eng.Batch()
	assert.False(t, eng.RefreshEnabled())
	inner := eng.Batch()
	inner()
	assert.False(t, eng.RefreshEnabled(), "nested batch restores disabled")
	restore()
	assert.True(t, eng.RefreshEnabled())

	eng.EnableStyleRefresh(false)
	restore()
	assert.False(t, eng.RefreshEnabled(), "restore runs once")
}

func TestRefreshStyle_Propagation(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	nodes := tester.Chain("panel", "row", "label")
	panel, row, label := nodes[0], nodes[1], nodes[2]

	tests := []struct {
		name  string
		part  style.PartSelector
		prop  style.Prop
		reach []*core.Node
	}{
		{"inheritable on main", style.OnPart(style.PartMain), style.PropTextColor, []*core.Node{panel, row, label}},
		{"all on any part", style.AnyPart, style.PropAll, []*core.Node{panel, row, label}},
		{"not inheritable", style.AnyPart, style.PropBgColor, []*core.Node{panel}},
		{"inheritable on other part", style.OnPart(style.PartKnob), style.PropTextColor, []*core.Node{panel}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester.Reset()
			eng.RefreshStyle(panel, tt.part, tt.prop)
			var got []*core.Node
			for _, ev := range tester.StyleEvents {
				got = append(got, ev.Widget.(*core.Node))
			}
			assert.Equal(t, tt.reach, got)
		})
	}
}

func TestReportStyleChange(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	left := tester.Chain("left", "leftChild")
	right := tester.Chain("right")[0]
	shared := style.New().SetRadius(2)

	require.NoError(t, eng.AddStyle(left[0], style.AnyPart, style.StateDefault, shared))
	cascade.EnsureCache(right)
	tester.Reset()

	shared.SetRadius(10)
	eng.ReportStyleChange(shared)

	assert.Len(t, tester.EventsFor(left[0]), 1)
	assert.Len(t, tester.EventsFor(left[1]), 1, "descendants follow")
	assert.Empty(t, tester.EventsFor(right))
	assert.True(t, right.StyleList().CacheValid())
	assert.Equal(t, int32(10), radius(left[0]))

	tester.Reset()
	eng.ReportStyleChange(nil)
	assert.Len(t, tester.StyleEvents, 4, "root and every descendant")
	assert.False(t, right.StyleList().CacheValid())
}

func TestReportStyleChange_UnmountedIgnored(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	other := core.NewNode("other")
	shared := style.New()
	require.NoError(t, eng.AddStyle(other, style.AnyPart, style.StateDefault, shared))
	tester.Reset()

	eng.ReportStyleChange(shared)
	assert.Empty(t, tester.StyleEvents)

	eng.Mount(other)
	eng.Mount(other)
	assert.Len(t, eng.Roots(), 2)
	eng.ReportStyleChange(shared)
	assert.Len(t, tester.EventsFor(other), 1)

	eng.Unmount(other)
	assert.Len(t, eng.Roots(), 1)
}

func TestSetState(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	nodes := tester.Chain("button", "label")
	button, label := nodes[0], nodes[1]

	require.NoError(t, eng.AddStyle(button, style.AnyPart, style.StatePressed, style.New().SetBgColor(graphics.ColorBlue)))
	require.NoError(t, eng.AddStyle(button, style.AnyPart, style.StateFocused, style.New().SetPadAll(4)))
	tester.Reset()

	assert.Equal(t, cascade.StateDiffRedraw, eng.AddState(button, style.StatePressed))
	assert.Equal(t, style.StatePressed, button.State())
	assert.Len(t, tester.EventsFor(label), 0, "redraw stays local")

	assert.Equal(t, cascade.StateDiffLayout, eng.AddState(button, style.StateFocused))
	assert.Len(t, tester.EventsFor(label), 1, "layout refreshes descendants")

	assert.Equal(t, cascade.StateSame, eng.AddState(button, style.StateFocused))
	assert.Equal(t, cascade.StateSame, eng.AddState(button, style.StateChecked))
	assert.Equal(t, style.StatePressed|style.StateFocused|style.StateChecked, button.State())

	assert.Equal(t, cascade.StateDiffRedraw, eng.ClearState(button, style.StatePressed))
	require.Len(t, tester.StateEvents, 3)
	assert.Equal(t, []cascade.StateCmp{cascade.StateDiffRedraw, cascade.StateDiffLayout, cascade.StateDiffRedraw},
		[]cascade.StateCmp{tester.StateEvents[0].Cmp, tester.StateEvents[1].Cmp, tester.StateEvents[2].Cmp})
}

func TestSetState_StartsDescribedTransitions(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	n := tester.Chain("button")[0]

	desc := &style.TransitionDesc{Props: []style.Prop{style.PropOpa, style.PropBgColor}, Duration: 200 * time.Millisecond}
	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetOpa(255).SetTransition(desc)))
	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StatePressed, style.New().SetOpa(55)))

	eng.SetState(n, style.StatePressed)

	active := eng.ActiveTransitions()
	require.Len(t, active, 1, "bg_color does not change")
	assert.Equal(t, style.PropOpa, active[0].Prop)
	assert.Equal(t, int32(255), opa(n))

	tester.Pump(100 * time.Millisecond)
	assert.Equal(t, int32(155), opa(n))
	tester.Pump(100 * time.Millisecond)
	assert.Equal(t, int32(55), opa(n))
	assert.Empty(t, eng.ActiveTransitions())
}

func TestSetState_SkipTransitions(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	n := tester.Chain("button")[0]
	n.StyleList().SetSkipTransitions(true)

	desc := &style.TransitionDesc{Props: []style.Prop{style.PropOpa}, Duration: 200 * time.Millisecond}
	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StateDefault, style.New().SetTransition(desc)))
	require.NoError(t, eng.AddStyle(n, style.AnyPart, style.StatePressed, style.New().SetOpa(55)))

	eng.SetState(n, style.StatePressed)

	assert.Empty(t, eng.ActiveTransitions())
	assert.Equal(t, int32(55), opa(n))
}

func TestDetach(t *testing.T) {
	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	nodes := tester.Chain("panel", "label")
	shared := style.New().SetRadius(3)

	require.NoError(t, eng.AddStyle(nodes[1], style.AnyPart, style.StateDefault, shared))
	eng.FadeIn(nodes[0], time.Second, 0)
	require.Len(t, eng.ActiveTransitions(), 2)

	eng.Detach(nodes[0])
	tester.Root().RemoveChild(nodes[0])

	assert.Empty(t, eng.ActiveTransitions())
	assert.Equal(t, 0, nodes[0].StyleList().Len())
	require.Equal(t, 1, nodes[1].StyleList().Len())
	assert.Same(t, shared, nodes[1].StyleList().Bindings()[0].Style)

	tester.Pump(2 * time.Second)
	assert.Empty(t, tester.DoneEvents, "cancelled transitions do not report")
}
