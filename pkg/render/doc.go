// Package render writes a dom.Tree as HTML.
//
// Text content is always escaped, so messages passed to the engines can
// never inject markup. Inline styles are serialized in the order they were
// first set, converting camelCase property names to CSS (borderRadius
// becomes border-radius).
//
// Nodes with event handlers, and form inputs, carry their hydration ID as
// data-hid so a live client can route events back with dom.Tree.DispatchHID.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(tree.Root())
package render
