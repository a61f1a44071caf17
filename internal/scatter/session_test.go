package scatter

import (
	"math"
	"testing"
	"time"
)

func testSession() (*Session, *ManualClock) {
	clock := NewManualClock(time.Unix(0, 0))
	groups := []Group{
		{Title: "Tools", Labels: []string{"vim", "tmux"}},
		{Title: "Langs", Labels: []string{"go"}},
	}
	s := NewSession(groups, DefaultParams(), clock)
	s.SetBounds(60, 20)
	return s, clock
}

// placement is an item's structural address: its parent node and its
// position among that parent's children.
type placement struct {
	parent NodeID
	index  int
}

func placements(s *Session) map[string]placement {
	out := map[string]placement{}
	for i := range s.items {
		it := &s.items[i]
		out[it.Label] = placement{parent: s.tree.Parent(it.Node), index: s.tree.Index(it.Node)}
	}
	return out
}

func countPlaceholders(s *Session) int {
	n := 0
	for _, g := range s.groups {
		for _, c := range s.tree.Children(g) {
			if s.tree.KindOf(c) == KindPlaceholder {
				n++
			}
		}
	}
	return n
}

func TestDismantleMovesEveryItem(t *testing.T) {
	s, _ := testSession()
	s.Dismantle()

	if got := s.Phase(); got != Dismantled {
		t.Fatalf("phase = %v, want %v", got, Dismantled)
	}
	if got := len(s.Sprites()); got != 3 {
		t.Fatalf("sprites = %d, want 3", got)
	}
	if got := countPlaceholders(s); got != 3 {
		t.Fatalf("placeholders = %d, want 3", got)
	}
	if s.overlay == None || !s.tree.Valid(s.overlay) {
		t.Fatal("no overlay after dismantle")
	}
	if got := len(s.tree.Children(s.overlay)); got != 3 {
		t.Fatalf("overlay children = %d, want 3", got)
	}
	for i := range s.items {
		it := &s.items[i]
		if it.origin == nil {
			t.Fatalf("item %q has no origin record", it.Label)
		}
		wantX, wantY := s.rects[it.origin.placeholder].Center()
		if it.origin.targetX != wantX || it.origin.targetY != wantY {
			t.Fatalf("item %q target = (%v, %v), want placeholder center (%v, %v)",
				it.Label, it.origin.targetX, it.origin.targetY, wantX, wantY)
		}
	}
}

func TestDismantleBurstIsRadial(t *testing.T) {
	s, _ := testSession()
	s.Dismantle()

	cx, cy := 30.0, 10.0
	for i := range s.items {
		it := &s.items[i]
		speed := math.Hypot(it.VX, it.VY)
		if speed < 1.0 || speed >= 2.1 {
			t.Fatalf("item %q burst speed = %v, want in [1.0, 2.1)", it.Label, speed)
		}
		if dot := it.VX*(it.X-cx) + it.VY*(it.Y-cy); dot <= 0 {
			t.Fatalf("item %q burst points inward (dot = %v)", it.Label, dot)
		}
	}
}

func TestDismantleWithoutBoundsIsNoOp(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	s := NewSession([]Group{{Title: "g", Labels: []string{"a"}}}, DefaultParams(), clock)
	s.Dismantle()

	if got := s.Phase(); got != Settled {
		t.Fatalf("phase = %v, want %v with no bounds", got, Settled)
	}
	if got := s.Sprites(); got != nil {
		t.Fatalf("sprites = %v, want nil", got)
	}
}

func TestDismantleIsIdempotent(t *testing.T) {
	s, _ := testSession()
	s.Dismantle()
	overlay := s.overlay
	size := s.tree.Len()

	s.Dismantle()

	if s.overlay != overlay {
		t.Fatal("second dismantle replaced the overlay")
	}
	if got := s.tree.Len(); got != size {
		t.Fatalf("tree size after second dismantle = %d, want %d", got, size)
	}
	if got := countPlaceholders(s); got != 3 {
		t.Fatalf("placeholders = %d, want 3", got)
	}
}

func TestRestoreRoundTripsStructure(t *testing.T) {
	s, _ := testSession()
	before := placements(s)
	size := s.tree.Len()

	s.Dismantle()
	s.Restore(false)

	if got := s.Phase(); got != Settled {
		t.Fatalf("phase = %v, want %v", got, Settled)
	}
	after := placements(s)
	for label, want := range before {
		if after[label] != want {
			t.Fatalf("item %q at %+v, want %+v", label, after[label], want)
		}
	}
	if got := countPlaceholders(s); got != 0 {
		t.Fatalf("placeholders left behind = %d, want 0", got)
	}
	if s.overlay != None {
		t.Fatal("overlay survived the restore")
	}
	if got := s.tree.Len(); got != size {
		t.Fatalf("tree size = %d, want %d", got, size)
	}
}

func TestRestoreAnimatesThroughMidpoint(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)
	for i := 0; i < 10; i++ {
		s.Step()
	}

	type span struct{ fromX, fromY, toX, toY float64 }
	spans := map[string]span{}
	for i := range s.items {
		it := &s.items[i]
		spans[it.Label] = span{it.X, it.Y, it.origin.targetX, it.origin.targetY}
	}

	done := s.Restore(true)
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v", got, Restoring)
	}
	select {
	case <-done:
		t.Fatal("barrier closed before the transition finished")
	default:
	}

	clock.Advance(350 * time.Millisecond)
	if !s.Step() {
		t.Fatal("Step() = false mid-transition, want true")
	}
	for i := range s.items {
		it := &s.items[i]
		sp := spans[it.Label]
		midX, midY := (sp.fromX+sp.toX)/2, (sp.fromY+sp.toY)/2
		if math.Abs(it.X-midX) > 1e-9 || math.Abs(it.Y-midY) > 1e-9 {
			t.Fatalf("item %q at (%v, %v) halfway in, want (%v, %v)", it.Label, it.X, it.Y, midX, midY)
		}
	}

	clock.Advance(360 * time.Millisecond)
	if s.Step() {
		t.Fatal("Step() = true after the transition elapsed, want false")
	}
	if got := s.Phase(); got != Settled {
		t.Fatalf("phase = %v, want %v", got, Settled)
	}
	for i := range s.items {
		it := &s.items[i]
		sp := spans[it.Label]
		if it.X != sp.toX || it.Y != sp.toY {
			t.Fatalf("item %q landed at (%v, %v), want (%v, %v)", it.Label, it.X, it.Y, sp.toX, sp.toY)
		}
	}
	select {
	case <-done:
	default:
		t.Fatal("barrier still open after every item landed")
	}
}

func TestRestoreSharesInFlightBarrier(t *testing.T) {
	s, _ := testSession()
	s.Dismantle()

	first := s.Restore(true)
	second := s.Restore(true)
	if first != second {
		t.Fatal("second Restore returned a different barrier")
	}
}

func TestRestoreWhileSettledIsClosed(t *testing.T) {
	s, _ := testSession()
	done := s.Restore(true)
	select {
	case <-done:
	default:
		t.Fatal("barrier open for a settled session")
	}
}

func TestExitTimerRestoresAfterDelay(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)
	s.PointerLeft()

	clock.Advance(4999 * time.Millisecond)
	s.Step()
	if got := s.Phase(); got != Dismantled {
		t.Fatalf("phase = %v before the deadline, want %v", got, Dismantled)
	}

	clock.Advance(2 * time.Millisecond)
	if !s.Step() {
		t.Fatal("Step() = false on the deadline tick, want true")
	}
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v", got, Restoring)
	}
}

func TestPointerReturnCancelsExitTimer(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)
	s.PointerLeft()

	clock.Advance(4900 * time.Millisecond)
	s.PointerMoved(30, 10)

	clock.Advance(10 * time.Second)
	s.Step()
	if got := s.Phase(); got != Dismantled {
		t.Fatalf("phase = %v, want %v after the pointer came back", got, Dismantled)
	}

	// A fresh departure starts a fresh countdown.
	s.PointerLeft()
	clock.Advance(5 * time.Second)
	s.Step()
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v after leaving again", got, Restoring)
	}
}

func TestPointerDriftOutsideArmsOnce(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)

	// Crossing the edge arms the countdown; further outside motion
	// must not push the deadline back.
	s.PointerMoved(-5, -5)
	clock.Advance(3 * time.Second)
	s.PointerMoved(-6, -6)

	clock.Advance(2100 * time.Millisecond)
	s.Step()
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v (outside drift reset the countdown)", got, Restoring)
	}
}

func TestBlurArmsExitTimer(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)
	s.Blur()

	clock.Advance(5 * time.Second)
	s.Step()
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v after blur", got, Restoring)
	}
}

func TestFocusAloneDoesNotCancelExit(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)
	s.Blur()
	s.Focus()

	clock.Advance(5 * time.Second)
	s.Step()
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v (focus alone disarmed the timer)", got, Restoring)
	}
}

func TestPointerIgnoredWhileRestoring(t *testing.T) {
	s, clock := testSession()
	s.PointerMoved(30, 10)
	s.Restore(true)

	s.PointerMoved(30, 10)
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v (pointer interrupted the restore)", got, Restoring)
	}

	clock.Advance(time.Second)
	s.Step()
	if got := s.Phase(); got != Settled {
		t.Fatalf("phase = %v, want %v", got, Settled)
	}

	// Once settled, the pointer dismantles again as usual.
	s.PointerMoved(30, 10)
	if got := s.Phase(); got != Dismantled {
		t.Fatalf("phase = %v, want %v", got, Dismantled)
	}
}

func TestSetBoundsWhileDismantledRetargets(t *testing.T) {
	s, _ := testSession()
	s.Dismantle()
	s.items[0].X, s.items[0].Y = 59, 19

	s.SetBounds(30, 8)

	for i := range s.items {
		it := &s.items[i]
		lox, hix := wallSpan(it.W, 30)
		loy, hiy := wallSpan(it.H, 8)
		if it.X < lox || it.X > hix || it.Y < loy || it.Y > hiy {
			t.Fatalf("item %q at (%v, %v) outside the new bounds", it.Label, it.X, it.Y)
		}
		wantX, wantY := s.rects[it.origin.placeholder].Center()
		if it.origin.targetX != wantX || it.origin.targetY != wantY {
			t.Fatalf("item %q target = (%v, %v), want refreshed center (%v, %v)",
				it.Label, it.origin.targetX, it.origin.targetY, wantX, wantY)
		}
	}
}

func TestSetBoundsIgnoresDegenerateSizes(t *testing.T) {
	s, _ := testSession()
	s.SetBounds(0, 10)
	s.SetBounds(10, -1)
	if w, h := s.Bounds(); w != 60 || h != 20 {
		t.Fatalf("bounds = (%v, %v), want (60, 20)", w, h)
	}
}

func TestReanchorLadder(t *testing.T) {
	s, _ := testSession()
	tools := s.groups[0]
	vim := s.items[0].Node
	tmux := s.items[1].Node

	// Placeholder present: exact position wins.
	s.tree.Detach(vim)
	ph := s.tree.NewNode(KindPlaceholder, "", 5, 1)
	s.tree.InsertBefore(tmux, ph)
	s.reanchor(vim, &origin{parent: tools, next: tmux, placeholder: ph})
	if got := s.tree.Index(vim); got != 0 {
		t.Fatalf("Index(vim) = %d, want 0 via placeholder", got)
	}
	s.tree.Remove(ph)

	// Placeholder gone: fall back to the recorded next sibling.
	s.tree.Detach(vim)
	s.reanchor(vim, &origin{parent: tools, next: tmux, placeholder: None})
	if got := s.tree.Index(vim); got != 0 {
		t.Fatalf("Index(vim) = %d, want 0 via next sibling", got)
	}

	// Next sibling gone too: append to the recorded parent.
	s.tree.Detach(vim)
	s.tree.Detach(tmux)
	s.reanchor(vim, &origin{parent: tools, next: tmux, placeholder: None})
	if p, i := s.tree.Parent(vim), s.tree.Index(vim); p != tools || i != 0 {
		t.Fatalf("vim at parent %d index %d, want appended to %d", p, i, tools)
	}

	// Every anchor gone: the item stays detached.
	s.tree.Detach(vim)
	s.tree.Detach(tools)
	s.reanchor(vim, &origin{parent: tools, next: None, placeholder: None})
	if got := s.tree.Parent(vim); got != None {
		t.Fatalf("Parent(vim) = %d, want None with no anchors left", got)
	}
}

func TestRestoreSurvivesMissingPlaceholder(t *testing.T) {
	s, _ := testSession()
	before := placements(s)
	s.Dismantle()

	// Drop the second item's placeholder out from under the session.
	s.tree.Remove(s.items[1].origin.placeholder)
	s.Restore(false)

	after := placements(s)
	for label, want := range before {
		if after[label] != want {
			t.Fatalf("item %q at %+v, want %+v", label, after[label], want)
		}
	}
}

func TestArenaDoesNotGrowAcrossCycles(t *testing.T) {
	s, _ := testSession()
	s.Dismantle()
	s.Restore(false)
	peak := len(s.tree.nodes)

	for i := 0; i < 5; i++ {
		s.Dismantle()
		s.Restore(false)
	}
	if got := len(s.tree.nodes); got != peak {
		t.Fatalf("arena grew to %d slots, want %d", got, peak)
	}
}

func TestStepIdleWhenSettled(t *testing.T) {
	s, _ := testSession()
	if s.Step() {
		t.Fatal("Step() = true for a settled session, want false")
	}
	if s.Active() {
		t.Fatal("Active() = true for a settled session, want false")
	}
}

func TestFullCycle(t *testing.T) {
	s, clock := testSession()
	before := placements(s)

	s.PointerMoved(30, 10)
	if got := s.Phase(); got != Dismantled {
		t.Fatalf("phase = %v, want %v", got, Dismantled)
	}
	for i := 0; i < 30; i++ {
		if !s.Step() {
			t.Fatal("Step() = false while dismantled, want true")
		}
	}
	for i := range s.items {
		it := &s.items[i]
		lox, hix := wallSpan(it.W, 60)
		loy, hiy := wallSpan(it.H, 20)
		if it.X < lox || it.X > hix || it.Y < loy || it.Y > hiy {
			t.Fatalf("item %q escaped to (%v, %v)", it.Label, it.X, it.Y)
		}
	}

	s.PointerLeft()
	clock.Advance(5 * time.Second)
	s.Step()
	if got := s.Phase(); got != Restoring {
		t.Fatalf("phase = %v, want %v", got, Restoring)
	}

	done := s.Restore(true)
	clock.Advance(700 * time.Millisecond)
	for i := 0; s.Step(); i++ {
		if i > 10 {
			t.Fatal("restore never finished")
		}
	}
	select {
	case <-done:
	default:
		t.Fatal("barrier open after the restore finished")
	}
	if got := s.Phase(); got != Settled {
		t.Fatalf("phase = %v, want %v", got, Settled)
	}
	if got := s.Sprites(); got != nil {
		t.Fatalf("sprites = %v, want nil once settled", got)
	}
	after := placements(s)
	for label, want := range before {
		if after[label] != want {
			t.Fatalf("item %q at %+v, want %+v", label, after[label], want)
		}
	}
}
