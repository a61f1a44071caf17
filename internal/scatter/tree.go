package scatter

// NodeID is a stable handle into a Tree's node arena.
type NodeID int

// None marks the absence of a node.
const None NodeID = -1

// Kind classifies tree nodes.
type Kind uint8

const (
	KindRoot Kind = iota
	KindGroup
	KindItem
	KindPlaceholder
	KindOverlay
)

type node struct {
	kind     Kind
	label    string
	w, h     float64
	parent   NodeID
	children []NodeID
	alive    bool
}

// Tree is an arena-backed document tree. Handles stay valid across
// detach/reattach, and freed slots are recycled through a free list so
// repeated dismantle cycles do not grow the arena.
type Tree struct {
	nodes []node
	free  []NodeID
	root  NodeID
}

// NewTree creates a tree containing only a root node.
func NewTree() *Tree {
	t := &Tree{}
	t.root = t.alloc(KindRoot, "", 0, 0)
	return t
}

// Root returns the root node handle.
func (t *Tree) Root() NodeID { return t.root }

// NewNode allocates a detached node.
func (t *Tree) NewNode(kind Kind, label string, w, h float64) NodeID {
	return t.alloc(kind, label, w, h)
}

func (t *Tree) alloc(kind Kind, label string, w, h float64) NodeID {
	n := node{kind: kind, label: label, w: w, h: h, parent: None, alive: true}
	if l := len(t.free); l > 0 {
		id := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Valid reports whether id refers to a live node.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].alive
}

// KindOf returns the node's kind.
func (t *Tree) KindOf(id NodeID) Kind { return t.nodes[id].kind }

// Label returns the node's label.
func (t *Tree) Label(id NodeID) string { return t.nodes[id].label }

// SizeOf returns the node's cached size.
func (t *Tree) SizeOf(id NodeID) (w, h float64) {
	return t.nodes[id].w, t.nodes[id].h
}

// Parent returns the node's parent, or None for detached nodes.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return None
	}
	return t.nodes[id].parent
}

// Children returns the node's children in sibling order. The returned
// slice is the tree's own; callers must not mutate it.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// Index returns id's position among its parent's children, or -1 when
// detached.
func (t *Tree) Index(id NodeID) int {
	p := t.Parent(id)
	if p == None {
		return -1
	}
	for i, c := range t.nodes[p].children {
		if c == id {
			return i
		}
	}
	return -1
}

// NextSibling returns the node immediately after id under the same
// parent, or None.
func (t *Tree) NextSibling(id NodeID) NodeID {
	p := t.Parent(id)
	if p == None {
		return None
	}
	kids := t.nodes[p].children
	for i, c := range kids {
		if c == id && i+1 < len(kids) {
			return kids[i+1]
		}
	}
	return None
}

// Connected reports whether id is reachable from the root.
func (t *Tree) Connected(id NodeID) bool {
	for t.Valid(id) {
		if id == t.root {
			return true
		}
		id = t.nodes[id].parent
	}
	return false
}

// Append attaches child as parent's last child. The child is detached
// from any previous parent first.
func (t *Tree) Append(parent, child NodeID) {
	if !t.Valid(parent) || !t.Valid(child) {
		return
	}
	t.Detach(child)
	t.nodes[child].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// InsertBefore attaches child directly before sibling under sibling's
// parent. A detached sibling makes this a no-op.
func (t *Tree) InsertBefore(sibling, child NodeID) {
	p := t.Parent(sibling)
	if p == None || !t.Valid(child) {
		return
	}
	t.Detach(child)
	kids := t.nodes[p].children
	for i, c := range kids {
		if c == sibling {
			kids = append(kids, None)
			copy(kids[i+1:], kids[i:])
			kids[i] = child
			t.nodes[p].children = kids
			t.nodes[child].parent = p
			return
		}
	}
}

// Detach unlinks id from its parent. The node stays alive and can be
// reattached.
func (t *Tree) Detach(id NodeID) {
	p := t.Parent(id)
	if p == None {
		return
	}
	kids := t.nodes[p].children
	for i, c := range kids {
		if c == id {
			t.nodes[p].children = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	t.nodes[id].parent = None
}

// Remove detaches id and returns its slot to the free list. The node
// must have no children.
func (t *Tree) Remove(id NodeID) {
	if !t.Valid(id) || len(t.nodes[id].children) > 0 {
		return
	}
	t.Detach(id)
	t.nodes[id] = node{parent: None}
	t.free = append(t.free, id)
}

// Len returns the number of live nodes, root included.
func (t *Tree) Len() int {
	n := 0
	for i := range t.nodes {
		if t.nodes[i].alive {
			n++
		}
	}
	return n
}
