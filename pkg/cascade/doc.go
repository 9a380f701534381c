// Package cascade resolves style properties for a retained widget tree.
//
// Every widget owns a [StyleList]: an ordered list of bindings that attach a
// shared [style.Style] block to a part and a state mask. Given a widget, a
// part and a property, [GetProp] walks that list and picks the effective
// value:
//
//  1. an active transition on that exact part and property,
//  2. local properties set with [Engine.SetLocalProp],
//  3. added blocks, most specific state first, then most recently added,
//  4. the parent's main part, for inheritable properties,
//  5. the property's default.
//
// Resolution never fails; absence always ends at a default.
//
// # Engine
//
// Mutations go through an [Engine], which owns the process-wide concerns:
// the refresh switch, the binding capacity, the transition scheduler and the
// change hooks the host uses to schedule layout and redraw.
//
//	eng := cascade.NewEngine(cascade.Options{})
//	btn := style.New().SetBgColor(graphics.RGB(33, 150, 243)).SetBgOpa(graphics.OpaCover)
//	pressed := style.New().SetBgOpa(graphics.Opa50)
//	_ = eng.AddStyle(w, style.OnPart(style.PartMain), style.StateDefault, btn)
//	_ = eng.AddStyle(w, style.OnPart(style.PartMain), style.StatePressed, pressed)
//	opa := cascade.GetProp(w, style.PartMain, style.PropBgOpa).Num
//
// # Caching
//
// Renderers read coarse facts ("background fully opaque", "no radius")
// through [EnsureCache]. The flags are computed for one active state and
// recomputed lazily after any refresh.
//
// # Batching
//
// [Engine.Batch] turns refreshing off until the returned function runs.
// Mutations inside the batch change the lists but trigger no invalidation,
// hooks or transitions; refresh explicitly afterwards.
//
// All operations run on the thread that owns the tree. Nothing locks.
package cascade
