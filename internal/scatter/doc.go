// Package scatter implements the dismantle-and-reassemble engine behind
// the tag field: a group of labeled tags that breaks out of its layout
// into a free-floating particle cloud under the pointer, then reassembles
// into exactly the structure it came from.
//
// # Model
//
// Tags live in an arena-backed slot tree (Tree). Parent/child links are
// relations between NodeID handles, so moving an item between containers
// is a relation update, never a pointer swap. A flow layout pass assigns
// every in-flow node a rectangle in container-local cells; those
// rectangles are what a dismantle captures.
//
// Dismantling inserts an invisible same-size placeholder at each item's
// slot, detaches the item, and reattaches it under a lazily created
// overlay node. While any item is in the overlay the session runs a
// per-tick simulation: pointer repulsion impulse, explicit Euler
// integration, reflective walls, then uniform damping. Restoring drives
// each item back to its recorded slot with an eased, duration-bound
// transition, joins on all of them, and swaps every placeholder back for
// its item so the tree ends structurally identical to how it began.
//
// # Driving the session
//
// The package is renderer-agnostic and single-threaded. A host feeds
// events (PointerMoved, PointerLeft, Blur, Focus, SetBounds) and calls
// Step once per animation frame while Step reports the session active.
// Time comes from an injected Clock, so tests substitute a manual clock
// and step the simulation deterministically.
//
// Phases: Settled (normal layout, simulation off), Dismantled (items in
// the overlay, simulation on), Restoring (transition in flight, new
// dismantles ignored). Leaving the active region or losing window focus
// arms a countdown; pointer re-entry disarms it; expiry begins the
// animated restore.
package scatter
