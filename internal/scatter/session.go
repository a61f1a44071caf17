package scatter

import (
	"math"
	"math/rand"
	"time"
)

// Phase names the interaction states.
type Phase uint8

const (
	// Settled: items in normal layout, simulation off.
	Settled Phase = iota
	// Dismantled: items in the overlay, simulation running.
	Dismantled
	// Restoring: items animating back; new dismantles are ignored.
	Restoring
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Settled:
		return "settled"
	case Dismantled:
		return "dismantled"
	case Restoring:
		return "restoring"
	default:
		return "unknown"
	}
}

// Group is one ordered category of tag labels.
type Group struct {
	Title  string
	Labels []string
}

// Item is one interactive tag. Position is the item's center in
// container-local cells; velocity is in cells per tick.
type Item struct {
	Node   NodeID
	Label  string
	W, H   float64
	X, Y   float64
	VX, VY float64

	origin *origin // non-nil only while Dismantled or Restoring
}

// origin records the slot an item left behind: the exact parent and
// sibling insertion point, the placeholder holding the slot open, and
// the position to animate back to.
type origin struct {
	parent      NodeID
	next        NodeID
	placeholder NodeID
	targetX     float64
	targetY     float64
}

// Slot is a node currently in normal flow with its laid-out rectangle.
// Placeholder slots are invisible by contract; renderers skip them.
type Slot struct {
	ID    NodeID
	Kind  Kind
	Label string
	Rect  Rect
}

// Sprite is a free-floating item as the renderer should draw it, center
// at (X, Y).
type Sprite struct {
	Label string
	X, Y  float64
	W, H  float64
}

// Session owns one widget instance's interaction state: the slot tree,
// the items, the container bounds, the phase, the overlay handle, and
// the timer deadlines. It is not safe for concurrent use; hosts drive it
// from a single event loop.
type Session struct {
	tree   *Tree
	groups []NodeID
	items  []Item
	rects  map[NodeID]Rect
	flowH  float64

	boundsW, boundsH float64

	phase   Phase
	overlay NodeID

	pointerX, pointerY float64
	pointerOn          bool

	exitArmed bool
	exitAt    time.Time

	restore *restoreState

	params Params
	clock  Clock
	rng    *rand.Rand
}

// NewSession builds a session for the given groups. The item set is
// fixed for the session's lifetime; a nil clock means the wall clock.
func NewSession(groups []Group, params Params, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		tree:    NewTree(),
		rects:   map[NodeID]Rect{},
		overlay: None,
		params:  params,
		clock:   clock,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, g := range groups {
		gn := s.tree.NewNode(KindGroup, g.Title, 0, 0)
		s.tree.Append(s.tree.Root(), gn)
		s.groups = append(s.groups, gn)
		for _, label := range g.Labels {
			w := TagWidth(label)
			n := s.tree.NewNode(KindItem, label, w, 1)
			s.tree.Append(gn, n)
			s.items = append(s.items, Item{Node: n, Label: label, W: w, H: 1})
		}
	}
	return s
}

// Phase returns the current interaction state.
func (s *Session) Phase() Phase { return s.phase }

// Active reports whether the session needs frame ticks.
func (s *Session) Active() bool { return s.phase != Settled }

// Bounds returns the container size last supplied via SetBounds.
func (s *Session) Bounds() (w, h float64) { return s.boundsW, s.boundsH }

// FlowHeight returns the height of the settled layout in cells.
func (s *Session) FlowHeight() float64 { return s.flowH }

// Slots returns the laid-out flow: group headers, settled items, and
// placeholders, in document order.
func (s *Session) Slots() []Slot {
	slots := make([]Slot, 0, len(s.items)+len(s.groups))
	for _, g := range s.groups {
		slots = append(slots, Slot{ID: g, Kind: KindGroup, Label: s.tree.Label(g), Rect: s.rects[g]})
		for _, c := range s.tree.Children(g) {
			slots = append(slots, Slot{ID: c, Kind: s.tree.KindOf(c), Label: s.tree.Label(c), Rect: s.rects[c]})
		}
	}
	return slots
}

// Sprites returns the free-floating items, or nil while Settled.
func (s *Session) Sprites() []Sprite {
	if s.phase == Settled {
		return nil
	}
	out := make([]Sprite, 0, len(s.items))
	for i := range s.items {
		it := &s.items[i]
		out = append(out, Sprite{Label: it.Label, X: it.X, Y: it.Y, W: it.W, H: it.H})
	}
	return out
}

// SetBounds updates the container size. Settled sessions just reflow.
// Active sessions additionally re-anchor restore targets to the
// placeholders' live rectangles and clamp items into the new walls.
// Non-positive sizes are ignored so the session degrades to the last
// known size when the host stops reporting.
func (s *Session) SetBounds(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == s.boundsW && h == s.boundsH {
		return
	}
	s.boundsW, s.boundsH = w, h
	s.relayout()
	if s.phase == Settled {
		return
	}
	for i := range s.items {
		it := &s.items[i]
		if org := it.origin; org != nil {
			if r, ok := s.rects[org.placeholder]; ok {
				org.targetX, org.targetY = r.Center()
			}
		}
		s.clampIntoBounds(it)
	}
}

// PointerMoved records a pointer position in container-local cells.
// Inside the bounds it triggers a dismantle from Settled and cancels any
// pending exit countdown; moving outside arms the countdown once.
func (s *Session) PointerMoved(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.pointerOn = true
	inside := x >= 0 && x <= s.boundsW && y >= 0 && y <= s.boundsH
	switch s.phase {
	case Settled:
		if inside {
			s.Dismantle()
		}
	case Dismantled:
		if inside {
			s.disarmExit()
		} else if !s.exitArmed {
			s.armExit()
		}
	case Restoring:
		// Re-entry cannot interrupt an in-flight restore.
	}
}

// PointerLeft marks the pointer as gone and arms the exit countdown.
func (s *Session) PointerLeft() {
	s.pointerOn = false
	if s.phase == Dismantled {
		s.armExit()
	}
}

// Blur handles the window losing focus: the field stops pushing and the
// exit countdown arms, exactly as if the pointer had left.
func (s *Session) Blur() {
	s.pointerOn = false
	if s.phase == Dismantled {
		s.armExit()
	}
}

// Focus handles the window regaining focus. The countdown stays armed;
// only an observed pointer position back inside the bounds cancels it.
func (s *Session) Focus() {}

// Dismantle captures the current layout and breaks the items loose. It
// is idempotent: anything but Settled is a no-op, which also guards
// re-entrant calls while a restore is in flight. Without known bounds
// there is nothing to move within, so it is skipped.
func (s *Session) Dismantle() {
	if s.phase != Settled {
		return
	}
	if s.boundsW <= 0 || s.boundsH <= 0 {
		return
	}
	s.relayout()
	s.ensureOverlay()
	cx, cy := s.boundsW/2, s.boundsH/2
	for i := range s.items {
		it := &s.items[i]
		r := s.rects[it.Node]
		x, y := r.Center()

		parent := s.tree.Parent(it.Node)
		next := s.tree.NextSibling(it.Node)
		ph := s.tree.NewNode(KindPlaceholder, "", it.W, it.H)
		s.tree.InsertBefore(it.Node, ph)
		s.tree.Append(s.overlay, it.Node)

		it.origin = &origin{parent: parent, next: next, placeholder: ph, targetX: x, targetY: y}
		it.X, it.Y = x, y
		it.VX, it.VY = s.burst(x-cx, y-cy)
	}
	s.phase = Dismantled
	s.relayout()
}

// Restore brings every item home and returns the completion barrier.
// Settled sessions get an already-closed channel; a session already
// Restoring returns the in-flight barrier; animate=false snaps and
// finalizes before returning.
func (s *Session) Restore(animate bool) <-chan struct{} {
	switch s.phase {
	case Restoring:
		return s.restore.done
	case Dismantled:
		done := s.beginRestore(animate)
		return done
	default:
		return closedBarrier
	}
}

// Step advances the session one tick against the injected clock and
// reports whether more ticks are needed. Hosts call it once per frame
// while it returns true and stop scheduling frames when it returns
// false.
func (s *Session) Step() bool {
	now := s.clock.Now()
	switch s.phase {
	case Dismantled:
		if s.exitArmed && !now.Before(s.exitAt) {
			s.beginRestore(true)
			return true
		}
		s.stepPhysics()
		return true
	case Restoring:
		if s.stepRestore(now) {
			s.finalizeRestore()
			return false
		}
		return true
	default:
		return false
	}
}

// beginRestore zeroes velocities, starts each item's transition, and
// returns the barrier. animate=false completes everything synchronously.
func (s *Session) beginRestore(animate bool) <-chan struct{} {
	s.disarmExit()
	now := s.clock.Now()
	rs := &restoreState{
		done:  make(chan struct{}),
		anims: make([]restoreAnim, len(s.items)),
	}
	for i := range s.items {
		it := &s.items[i]
		it.VX, it.VY = 0, 0
		rs.anims[i] = restoreAnim{fromX: it.X, fromY: it.Y, start: now, dur: s.params.RestoreIn}
	}
	s.restore = rs
	s.phase = Restoring

	done := rs.done
	if !animate {
		for i := range s.items {
			it := &s.items[i]
			it.X, it.Y = it.origin.targetX, it.origin.targetY
			rs.anims[i].landed = true
		}
		s.finalizeRestore()
	}
	return done
}

// finalizeRestore performs the structural inverse of Dismantle: every
// placeholder is swapped back for its item, transient state is cleared,
// and the overlay is removed once empty.
func (s *Session) finalizeRestore() {
	for i := range s.items {
		it := &s.items[i]
		org := it.origin
		if org == nil {
			continue
		}
		s.tree.Detach(it.Node)
		s.reanchor(it.Node, org)
		if s.tree.Valid(org.placeholder) {
			s.tree.Remove(org.placeholder)
		}
		it.origin = nil
		it.VX, it.VY = 0, 0
	}
	if s.overlay != None && s.tree.Valid(s.overlay) && len(s.tree.Children(s.overlay)) == 0 {
		s.tree.Remove(s.overlay)
		s.overlay = None
	}
	s.phase = Settled
	s.relayout()
	close(s.restore.done)
	s.restore = nil
}

// reanchor reinserts an item at its recorded slot. Anchor ladder: the
// placeholder's exact position, then before the recorded next sibling,
// then appended to the recorded parent. When every anchor is gone the
// structural restore for this item is dropped and it stays detached.
func (s *Session) reanchor(id NodeID, org *origin) {
	if s.tree.Valid(org.placeholder) && s.tree.Connected(org.placeholder) {
		s.tree.InsertBefore(org.placeholder, id)
		return
	}
	if s.tree.Valid(org.parent) && s.tree.Connected(org.parent) {
		if s.tree.Valid(org.next) && s.tree.Parent(org.next) == org.parent {
			s.tree.InsertBefore(org.next, id)
			return
		}
		s.tree.Append(org.parent, id)
	}
}

// burst returns an initial velocity directed radially outward from the
// container center, at a speed uniform in [BurstMin, BurstMax]. Items
// sitting exactly on the center get a random direction.
func (s *Session) burst(dx, dy float64) (vx, vy float64) {
	dist := math.Hypot(dx, dy)
	if dist < 1e-9 {
		ang := s.rng.Float64() * 2 * math.Pi
		dx, dy, dist = math.Cos(ang), math.Sin(ang), 1
	}
	speed := s.params.BurstMin + s.rng.Float64()*(s.params.BurstMax-s.params.BurstMin)
	return speed * dx / dist, speed * dy / dist
}

func (s *Session) armExit() {
	s.exitArmed = true
	s.exitAt = s.clock.Now().Add(s.params.ExitDelay)
}

func (s *Session) disarmExit() {
	s.exitArmed = false
}

func (s *Session) ensureOverlay() {
	if s.overlay != None && s.tree.Valid(s.overlay) {
		return
	}
	s.overlay = s.tree.NewNode(KindOverlay, "", 0, 0)
	s.tree.Append(s.tree.Root(), s.overlay)
}

func (s *Session) relayout() {
	s.rects, s.flowH = flowLayout(s.tree, s.groups, s.boundsW)
}

// closedBarrier is handed to Restore callers when there is nothing to
// wait for.
var closedBarrier = func() <-chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()
