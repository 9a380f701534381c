// Package testing provides fixtures for style engine tests.
//
// # Quick Start
//
// Create a tester, build a tree, and drive time explicitly:
//
//	func TestPressFade(t *testing.T) {
//	    tester := drifttest.NewStyleTesterWithT(t)
//	    btn := tester.Root().AddChild(core.NewNode("button"))
//	    tester.Engine().CreateTransition(btn, style.PropOpa, style.PartMain,
//	        style.StateDefault, style.StatePressed, cascade.TransitionSpec{Duration: 300 * time.Millisecond})
//
//	    tester.Pump(150 * time.Millisecond)
//	    // assert on cascade.GetProp(btn, ...)
//	}
//
// # Time
//
// The tester owns a [FakeClock] and a scheduler reading it. Nothing advances
// unless Pump or PumpAndSettle is called.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/cascade/pkg/testing"
package testing
