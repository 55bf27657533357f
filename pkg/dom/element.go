package dom

// Element is the capability set the engines need from a visual element.
type Element interface {
	SetID(id string)
	SetText(text string)
	SetStyle(prop, value string)
	AddClass(names ...string)
	RemoveClass(names ...string)
	AppendChild(children ...Element)
	ClearChildren()
	Remove()
	On(event string, handler func())
	Value() string
	SetValue(value string)
}

// Document creates elements and exposes the attachment root.
type Document interface {
	CreateElement(tag string) Element
	Body() Element
}

// Common event names.
const (
	EventClick = "click"
	EventInput = "input"
)
