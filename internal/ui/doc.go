// Package ui renders the portfolio as a full-screen Bubble Tea program.
//
// # Architecture Overview
//
// The package is built around a single root Model that owns three view
// models and routes every message to the one that is visible:
//
//   - app.go: the root Model, message routing, frame scheduling, and Run
//   - home.go: wordmark, avatar, identity lines, and the scatter field
//   - projects.go: the repository list with spring-animated scrolling
//   - about.go: the markdown about page in a viewport
//
// Supporting files keep one concern each: theme.go holds the palettes
// and style sets, keys.go the bindings, header.go the top bar and footer,
// help.go the modal, tagfield.go the bridge between the scatter engine
// and the cell canvas, avatar.go the pointer-following face, reveal.go
// the staggered entrance, and markdown.go the cached glamour renderer.
//
// # Animation Frames
//
// Nothing in this package runs on a timer of its own. Animated state
// advances only on frameMsg ticks, and a tick is only scheduled while
// some view reports that it is animating: a scattered tag field, an
// in-flight restore, a scroll spring that has not settled, an entrance
// reveal, or a blink that needs clearing. A framePending flag keeps the
// schedule at one outstanding tick regardless of how many events ask
// for one. When everything is still, the program goes quiet until the
// next input or poll message.
//
// # Pointer Handling
//
// The program runs with full mouse motion reporting. Motion events are
// forwarded to the home view in absolute screen cells; the tag field
// translates them into its own container-local coordinates, where the
// scatter session decides whether the pointer is inside. Terminal focus
// events stand in for the pointer leaving the window entirely.
//
// # Repository Data
//
// Repository state arrives through the state.Store that the background
// poller writes. The UI never blocks on the network: a one-second poll
// message snapshots the store, and a manual refresh runs as a command
// with its own timeout. Fetch failures surface in the header and as a
// banner over cached results, never as a dead screen.
package ui
