// Package dom provides the visual element handle driven by the toast and
// dialog engines, plus an in-memory element tree that implements it.
//
// The engines only see the Element and Document interfaces. What they set on
// which element, and in which order, is the observable output of the
// library; a Tree records it so it can be rendered to HTML, mirrored to a
// browser, drawn in a terminal, or inspected by tests.
//
// # Hydration IDs
//
// Every Node gets a hydration ID (h1, h2, ...) when it is created. Renderers
// emit it as data-hid on nodes with event handlers, and remote clients send
// events back by HID through Tree.DispatchHID.
//
// # Text
//
// SetText always stores plain text. Nothing in this package interprets
// markup; escaping happens in the renderers.
package dom
