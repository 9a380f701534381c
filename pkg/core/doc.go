// Package core provides Node, a minimal retained widget tree that the style
// engine can operate on.
//
// A Node carries a name, an active state mask, a parent link, ordered
// children and the binding list the engine reads and mutates:
//
//	root := core.NewNode("screen")
//	btn := root.AddChild(core.NewNode("button"))
//	eng.AddStyle(btn, style.AnyPart, style.StateDefault, base)
//	eng.AddState(btn, style.StatePressed)
//
// Nodes are not safe for concurrent use; drive them from the goroutine that
// owns the tree.
package core
