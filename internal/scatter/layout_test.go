package scatter

import "testing"

func TestTagWidthCountsRunes(t *testing.T) {
	if got := TagWidth("Go"); got != 4 {
		t.Fatalf("TagWidth(%q) = %v, want 4", "Go", got)
	}
	// Multibyte labels are measured in runes, not bytes.
	if got := TagWidth("日本語"); got != 5 {
		t.Fatalf("TagWidth(%q) = %v, want 5", "日本語", got)
	}
}

func layoutFixture() (*Tree, []NodeID) {
	tr := NewTree()
	g1 := tr.NewNode(KindGroup, "Tools", 0, 0)
	g2 := tr.NewNode(KindGroup, "Langs", 0, 0)
	tr.Append(tr.Root(), g1)
	tr.Append(tr.Root(), g2)
	for _, l := range []string{"vim", "tmux", "docker"} {
		n := tr.NewNode(KindItem, l, TagWidth(l), 1)
		tr.Append(g1, n)
	}
	for _, l := range []string{"go", "rust"} {
		n := tr.NewNode(KindItem, l, TagWidth(l), 1)
		tr.Append(g2, n)
	}
	return tr, []NodeID{g1, g2}
}

func TestFlowLayoutSingleRow(t *testing.T) {
	tr, groups := layoutFixture()
	rects, h := flowLayout(tr, groups, 60)

	// Gutter is the widest title plus padding: "Tools" -> 7.
	first := tr.Children(groups[0])[0]
	if r := rects[first]; r.X != 7 || r.Y != 0 {
		t.Fatalf("first item at (%v, %v), want (7, 0)", r.X, r.Y)
	}
	// Groups stack with one blank row between them.
	second := tr.Children(groups[1])[0]
	if r := rects[second]; r.Y != 2 {
		t.Fatalf("second group's first item at y=%v, want 2", r.Y)
	}
	if h != 3 {
		t.Fatalf("flow height = %v, want 3", h)
	}
}

func TestFlowLayoutWraps(t *testing.T) {
	tr, groups := layoutFixture()
	// Width 17: gutter 7 leaves 10 for tags; "vim"(5)+gap+"tmux"(6)
	// exceeds it, so every later tag wraps to its own row.
	rects, _ := flowLayout(tr, groups, 17)

	kids := tr.Children(groups[0])
	if r := rects[kids[0]]; r.Y != 0 {
		t.Fatalf("vim at y=%v, want 0", r.Y)
	}
	if r := rects[kids[1]]; r.Y != 1 || r.X != 7 {
		t.Fatalf("tmux at (%v, %v), want (7, 1)", rects[kids[1]].X, r.Y)
	}
	if r := rects[kids[2]]; r.Y != 2 || r.X != 7 {
		t.Fatalf("docker at (%v, %v), want (7, 2)", r.X, r.Y)
	}
}

func TestFlowLayoutGroupRectSpansBlock(t *testing.T) {
	tr, groups := layoutFixture()
	rects, _ := flowLayout(tr, groups, 60)

	g := rects[groups[0]]
	if g.X != 0 || g.Y != 0 || g.W != 60 || g.H != 1 {
		t.Fatalf("group rect = %+v, want {0 0 60 1}", g)
	}
}

func TestFlowLayoutPlaceholdersHoldGeometry(t *testing.T) {
	tr, groups := layoutFixture()
	before, _ := flowLayout(tr, groups, 60)

	// Swap one item for a same-sized placeholder, the way a dismantle
	// does, and verify nothing else moves.
	kids := tr.Children(groups[0])
	mid := kids[1]
	w, h := tr.SizeOf(mid)
	ph := tr.NewNode(KindPlaceholder, "", w, h)
	tr.InsertBefore(mid, ph)
	tr.Detach(mid)

	after, _ := flowLayout(tr, groups, 60)
	if after[ph] != before[mid] {
		t.Fatalf("placeholder rect = %+v, want %+v", after[ph], before[mid])
	}
	last := tr.Children(groups[0])[1]
	if after[last] != before[last] {
		t.Fatalf("trailing item moved: %+v, want %+v", after[last], before[last])
	}
}

func TestFlowLayoutDropsGutterWhenNarrow(t *testing.T) {
	tr, groups := layoutFixture()
	rects, _ := flowLayout(tr, groups, 6)

	first := tr.Children(groups[0])[0]
	if r := rects[first]; r.X != 0 {
		t.Fatalf("first item at x=%v, want 0 (gutter disabled)", r.X)
	}
}
