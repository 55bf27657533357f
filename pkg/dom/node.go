package dom

import (
	"fmt"
	"sort"
)

// StyleProp is a single inline style property.
type StyleProp struct {
	Name  string
	Value string
}

// Node is an element of a Tree.
type Node struct {
	tree     *Tree
	parent   *Node
	children []*Node

	tag   string
	hid   string
	id    string
	text  string
	value string

	classes    []string
	style      map[string]string
	styleOrder []string
	attrs      map[string]string
	handlers   map[string]func()
}

// Tag returns the element tag name.
func (n *Node) Tag() string { return n.tag }

// HID returns the hydration ID.
func (n *Node) HID() string { return n.hid }

// ID returns the id attribute.
func (n *Node) ID() string { return n.id }

// Text returns the node's own text content.
func (n *Node) Text() string { return n.text }

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in order.
func (n *Node) Children() []*Node { return n.children }

// SetID implements Element.
func (n *Node) SetID(id string) {
	n.id = id
	n.tree.mutated()
}

// SetText implements Element. The text is stored verbatim and never parsed.
func (n *Node) SetText(text string) {
	n.text = text
	n.tree.mutated()
}

// SetStyle implements Element. An empty value removes the property.
func (n *Node) SetStyle(prop, value string) {
	if value == "" {
		if _, ok := n.style[prop]; ok {
			delete(n.style, prop)
			n.styleOrder = removeString(n.styleOrder, prop)
			n.tree.mutated()
		}
		return
	}
	if _, ok := n.style[prop]; !ok {
		n.styleOrder = append(n.styleOrder, prop)
	}
	n.style[prop] = value
	n.tree.mutated()
}

// Style returns the value of an inline style property.
func (n *Node) Style(prop string) string {
	return n.style[prop]
}

// Styles returns the inline style in first-set order.
func (n *Node) Styles() []StyleProp {
	out := make([]StyleProp, 0, len(n.styleOrder))
	for _, k := range n.styleOrder {
		out = append(out, StyleProp{Name: k, Value: n.style[k]})
	}
	return out
}

// AddClass implements Element.
func (n *Node) AddClass(names ...string) {
	for _, name := range names {
		if name != "" && !n.HasClass(name) {
			n.classes = append(n.classes, name)
		}
	}
	n.tree.mutated()
}

// RemoveClass implements Element.
func (n *Node) RemoveClass(names ...string) {
	for _, name := range names {
		n.classes = removeString(n.classes, name)
	}
	n.tree.mutated()
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the class list in insertion order.
func (n *Node) Classes() []string { return n.classes }

// SetAttr sets an attribute. Names that are not valid attribute names are
// ignored; SetAttr reports whether the attribute was set.
func (n *Node) SetAttr(key, value string) bool {
	if !ValidAttrName(key) {
		return false
	}
	n.attrs[key] = value
	n.tree.mutated()
	return true
}

// ValidAttrName reports whether name is safe to write unquoted as an HTML
// attribute name: a letter, '_' or ':' followed by letters, digits, '_',
// ':', '.' or '-'.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
		case i > 0 && (r >= '0' && r <= '9' || r == '.' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) string { return n.attrs[key] }

// AttrKeys returns attribute names in sorted order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AppendChild implements Element. Children must belong to the same Tree.
// A child that already has a parent is moved.
func (n *Node) AppendChild(children ...Element) {
	for _, c := range children {
		child, ok := c.(*Node)
		if !ok || child.tree != n.tree {
			panic(fmt.Sprintf("dom: cannot append %T from another document", c))
		}
		if child.parent != nil {
			child.parent.detach(child)
		}
		child.parent = n
		n.children = append(n.children, child)
		n.tree.index(child)
	}
	n.tree.mutated()
}

// ClearChildren implements Element.
func (n *Node) ClearChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.parent = nil
		n.tree.unindex(c)
	}
	n.children = nil
	n.tree.mutated()
}

// Remove implements Element. Removing a detached node is a no-op.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	n.parent.detach(n)
	n.tree.unindex(n)
	n.tree.mutated()
}

// Attached reports whether the node is connected to the tree's body.
func (n *Node) Attached() bool {
	for p := n; p != nil; p = p.parent {
		if p == n.tree.body {
			return true
		}
	}
	return false
}

// On implements Element. A later handler for the same event replaces the
// earlier one.
func (n *Node) On(event string, handler func()) {
	if n.handlers == nil {
		n.handlers = make(map[string]func())
	}
	if handler == nil {
		delete(n.handlers, event)
		return
	}
	n.handlers[event] = handler
}

// Events returns the names of events with a handler, sorted.
func (n *Node) Events() []string {
	events := make([]string, 0, len(n.handlers))
	for e := range n.handlers {
		events = append(events, e)
	}
	sort.Strings(events)
	return events
}

// Interactive reports whether the node has any event handler.
func (n *Node) Interactive() bool {
	return len(n.handlers) > 0
}

// Dispatch fires the handler for event and reports whether one ran.
func (n *Node) Dispatch(event string) bool {
	h := n.handlers[event]
	if h == nil {
		return false
	}
	h()
	return true
}

// Value implements Element.
func (n *Node) Value() string { return n.value }

// SetValue implements Element.
func (n *Node) SetValue(value string) {
	n.value = value
	n.tree.mutated()
}

// Input sets the value and fires the input event, as a user typing would.
func (n *Node) Input(value string) {
	n.SetValue(value)
	n.Dispatch(EventInput)
}

// Find returns the first node in the subtree (including n) matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the subtree matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(m *Node) {
		if pred(m) {
			out = append(out, m)
		}
	})
	return out
}

// TextContent returns the concatenated text of the subtree.
func (n *Node) TextContent() string {
	s := n.text
	for _, c := range n.children {
		s += c.TextContent()
	}
	return s
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
