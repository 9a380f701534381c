package core

import (
	"slices"
	"strings"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/style"
)

// Node is a widget of a retained tree.
type Node struct {
	// Name identifies the node in paths and lookups. It need not be unique.
	Name string
	// Class selects theme styles. Empty means the name.
	Class string

	state    style.State
	parent   *Node
	children []*Node
	styles   cascade.StyleList
}

var (
	_ cascade.Widget   = (*Node)(nil)
	_ cascade.Stateful = (*Node)(nil)
)

// NewNode creates a detached node in the default state.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// State returns the active state mask.
func (n *Node) State() style.State {
	return n.state
}

// SetActiveState stores s without notifying anyone. Use the engine's
// SetState to change state with refresh and transitions.
func (n *Node) SetActiveState(s style.State) {
	n.state = s
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() cascade.Widget {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentNode is Parent with the concrete type.
func (n *Node) ParentNode() *Node {
	return n.parent
}

// StyleList returns the node's binding list.
func (n *Node) StyleList() *cascade.StyleList {
	return &n.styles
}

// VisitChildren calls visitor for each child in order until it returns false.
func (n *Node) VisitChildren(visitor func(cascade.Widget) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

// ClassName returns Class, or Name when Class is empty.
func (n *Node) ClassName() string {
	if n.Class != "" {
		return n.Class
	}
	return n.Name
}

// AddChild appends child, detaching it from its previous parent first,
// and returns it.
func (n *Node) AddChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveChild detaches child and reports whether it was a child of n.
// Call the engine's Detach first to release its transitions.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Children returns a copy of the children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Depth returns the number of ancestors.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the names from the root to n joined by "/".
func (n *Node) Path() string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		names = append(names, cur.Name)
	}
	slices.Reverse(names)
	return strings.Join(names, "/")
}

// FindAncestor walks up the tree and returns the first ancestor matching
// predicate, or nil.
func (n *Node) FindAncestor(predicate func(*Node) bool) *Node {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if predicate(cur) {
			return cur
		}
	}
	return nil
}

// Walk visits n and its descendants depth first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node of the subtree, n included, named name.
// A name containing "/" is resolved as a path relative to n.
func (n *Node) Find(name string) *Node {
	if strings.Contains(name, "/") {
		cur := n
		for i, seg := range strings.Split(name, "/") {
			if i == 0 && seg == n.Name {
				continue
			}
			next := cur.child(seg)
			if next == nil {
				return nil
			}
			cur = next
		}
		return cur
	}
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

func (n *Node) child(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
