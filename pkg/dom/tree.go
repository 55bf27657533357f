package dom

import "strconv"

// Tree is an in-memory Document.
// It is not safe for concurrent use; drive it from a single goroutine.
type Tree struct {
	body     *Node
	byHID    map[string]*Node
	counter  uint64
	version  uint64
	observer func()
}

// NewTree creates an empty tree with a body element.
func NewTree() *Tree {
	t := &Tree{byHID: make(map[string]*Node)}
	t.body = t.newNode("body")
	return t
}

// CreateElement implements Document.
func (t *Tree) CreateElement(tag string) Element {
	return t.newNode(tag)
}

// Create is CreateElement returning the concrete node.
func (t *Tree) Create(tag string) *Node {
	return t.newNode(tag)
}

// Body implements Document.
func (t *Tree) Body() Element {
	return t.body
}

// Root returns the body node.
func (t *Tree) Root() *Node {
	return t.body
}

// Version increases on every mutation of the tree.
func (t *Tree) Version() uint64 {
	return t.version
}

// OnMutate registers fn to be called after every mutation.
// Passing nil removes the observer.
func (t *Tree) OnMutate(fn func()) {
	t.observer = fn
}

// ByHID returns the indexed node with the given hydration ID.
func (t *Tree) ByHID(hid string) *Node {
	return t.byHID[hid]
}

// ByID returns the first attached node whose id attribute equals id.
func (t *Tree) ByID(id string) *Node {
	return t.body.Find(func(n *Node) bool { return n.id == id })
}

// ByClass returns all attached nodes carrying class, in document order.
func (t *Tree) ByClass(class string) []*Node {
	return t.body.FindAll(func(n *Node) bool { return n.HasClass(class) })
}

// DispatchHID fires event on the node with the given hydration ID.
// It reports whether a handler ran.
func (t *Tree) DispatchHID(hid, event string) bool {
	n := t.byHID[hid]
	if n == nil {
		return false
	}
	return n.Dispatch(event)
}

func (t *Tree) newNode(tag string) *Node {
	t.counter++
	n := &Node{
		tree:  t,
		tag:   tag,
		hid:   "h" + strconv.FormatUint(t.counter, 10),
		style: make(map[string]string),
		attrs: make(map[string]string),
	}
	t.byHID[n.hid] = n
	return n
}

func (t *Tree) index(n *Node) {
	t.byHID[n.hid] = n
	for _, c := range n.children {
		t.index(c)
	}
}

func (t *Tree) unindex(n *Node) {
	delete(t.byHID, n.hid)
	for _, c := range n.children {
		t.unindex(c)
	}
}

func (t *Tree) mutated() {
	t.version++
	if t.observer != nil {
		t.observer()
	}
}
