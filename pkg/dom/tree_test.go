package dom

import "testing"

func TestCreateAssignsHIDs(t *testing.T) {
	tree := NewTree()
	a := tree.Create("div")
	b := tree.Create("span")

	if a.HID() == b.HID() {
		t.Fatalf("duplicate hid %q", a.HID())
	}
	if tree.ByHID(b.HID()) != b {
		t.Error("ByHID did not find node")
	}
}

func TestAppendAndRemove(t *testing.T) {
	tree := NewTree()
	parent := tree.Create("div")
	child := tree.Create("span")

	tree.Body().AppendChild(parent)
	parent.AppendChild(child)

	if !child.Attached() {
		t.Fatal("child should be attached")
	}

	child.Remove()
	if child.Attached() || child.Parent() != nil {
		t.Error("child should be detached")
	}
	if len(parent.Children()) != 0 {
		t.Errorf("parent has %d children", len(parent.Children()))
	}
	if tree.ByHID(child.HID()) != nil {
		t.Error("removed node still indexed")
	}

	// Removing twice is harmless.
	child.Remove()
}

func TestAppendMovesNode(t *testing.T) {
	tree := NewTree()
	a := tree.Create("div")
	b := tree.Create("div")
	c := tree.Create("p")

	a.AppendChild(c)
	b.AppendChild(c)

	if len(a.Children()) != 0 || len(b.Children()) != 1 || c.Parent() != b {
		t.Error("append should move the node")
	}
}

func TestAppendForeignNodePanics(t *testing.T) {
	a := NewTree()
	b := NewTree()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.Root().AppendChild(b.Create("div"))
}

func TestStyleOrderAndRemoval(t *testing.T) {
	tree := NewTree()
	n := tree.Create("div")

	n.SetStyle("background", "red")
	n.SetStyle("color", "#fff")
	n.SetStyle("background", "blue")

	styles := n.Styles()
	if len(styles) != 2 || styles[0].Name != "background" || styles[0].Value != "blue" {
		t.Errorf("Styles() = %v", styles)
	}

	n.SetStyle("background", "")
	if n.Style("background") != "" || len(n.Styles()) != 1 {
		t.Errorf("background not removed: %v", n.Styles())
	}
}

func TestClasses(t *testing.T) {
	tree := NewTree()
	n := tree.Create("div")

	n.AddClass("a", "b", "a")
	if len(n.Classes()) != 2 {
		t.Errorf("Classes() = %v", n.Classes())
	}
	n.RemoveClass("a")
	if n.HasClass("a") || !n.HasClass("b") {
		t.Errorf("Classes() = %v", n.Classes())
	}
}

func TestEventsReplaceAndDispatch(t *testing.T) {
	tree := NewTree()
	n := tree.Create("button")
	tree.Root().AppendChild(n)

	var calls []string
	n.On(EventClick, func() { calls = append(calls, "first") })
	n.On(EventClick, func() { calls = append(calls, "second") })

	if !tree.DispatchHID(n.HID(), EventClick) {
		t.Fatal("dispatch reported no handler")
	}
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v", calls)
	}
	if n.Dispatch("keydown") {
		t.Error("unexpected handler for keydown")
	}
}

func TestClearChildrenUnindexes(t *testing.T) {
	tree := NewTree()
	row := tree.Create("div")
	btn := tree.Create("button")
	tree.Root().AppendChild(row)
	row.AppendChild(btn)
	btn.On(EventClick, func() {})

	row.ClearChildren()

	if tree.DispatchHID(btn.HID(), EventClick) {
		t.Error("cleared button still receives events")
	}
}

func TestByIDAndClass(t *testing.T) {
	tree := NewTree()
	n := tree.Create("div")
	n.SetID("main")
	n.AddClass("card")

	if tree.ByID("main") != nil {
		t.Error("detached node should not be found")
	}
	tree.Root().AppendChild(n)
	if tree.ByID("main") != n {
		t.Error("ByID failed")
	}
	if got := tree.ByClass("card"); len(got) != 1 {
		t.Errorf("ByClass = %v", got)
	}
}

func TestVersionAndObserver(t *testing.T) {
	tree := NewTree()
	var seen int
	tree.OnMutate(func() { seen++ })

	v := tree.Version()
	tree.Create("div").SetText("hi")

	if tree.Version() == v || seen == 0 {
		t.Error("mutation not observed")
	}
}

func TestInput(t *testing.T) {
	tree := NewTree()
	in := tree.Create("input")
	var got string
	in.On(EventInput, func() { got = in.Value() })

	in.Input("xyz")
	if got != "xyz" || in.Value() != "xyz" {
		t.Errorf("value = %q", got)
	}
}

func TestTextContent(t *testing.T) {
	tree := NewTree()
	a := tree.Create("div")
	b := tree.Create("span")
	a.SetText("x")
	b.SetText("<b>y</b>")
	a.AppendChild(b)

	if a.TextContent() != "x<b>y</b>" {
		t.Errorf("TextContent = %q", a.TextContent())
	}
}

func TestSetAttrRejectsInvalidNames(t *testing.T) {
	tree := NewTree()
	n := tree.Create("input")

	tests := []struct {
		name string
		ok   bool
	}{
		{"type", true},
		{"aria-label", true},
		{"data-x.y", true},
		{"xml:lang", true},
		{"", false},
		{"1st", false},
		{"-x", false},
		{`x" onclick="evil`, false},
		{"a b", false},
		{"a>", false},
	}
	for _, tt := range tests {
		if got := n.SetAttr(tt.name, "v"); got != tt.ok {
			t.Errorf("SetAttr(%q) = %v, want %v", tt.name, got, tt.ok)
		}
	}
	if len(n.AttrKeys()) != 4 {
		t.Errorf("AttrKeys() = %v", n.AttrKeys())
	}
}
