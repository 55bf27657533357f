package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bfkr/alerts/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Development only.
	Pretty bool

	// Indent is the string used for each level in pretty mode.
	// Defaults to two spaces.
	Indent string

	// OmitHIDs suppresses data-hid and data-on-* markers, for static
	// snapshots that will never be hydrated.
	OmitHIDs bool
}

// Renderer writes dom nodes as HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders node and its subtree.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}
	return r.renderElement(w, node, 0)
}

// RenderChildren renders only node's children, used to fill an existing
// container such as a live page body.
func (r *Renderer) RenderChildren(w io.Writer, node *dom.Node) error {
	for _, c := range node.Children() {
		if err := r.renderElement(w, c, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	if node.Text() != "" {
		if _, err := io.WriteString(w, escapeHTML(node.Text())); err != nil {
			return err
		}
	}

	children := node.Children()
	block := len(children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && block {
		io.WriteString(w, "\n")
	}
	for _, child := range children {
		if err := r.renderElement(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func (r *Renderer) renderAttributes(w io.Writer, node *dom.Node) error {
	if id := node.ID(); id != "" {
		if _, err := fmt.Fprintf(w, ` id="%s"`, escapeAttr(id)); err != nil {
			return err
		}
	}
	if classes := node.Classes(); len(classes) > 0 {
		if _, err := fmt.Fprintf(w, ` class="%s"`, escapeAttr(strings.Join(classes, " "))); err != nil {
			return err
		}
	}
	if style := StyleString(node); style != "" {
		if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(style)); err != nil {
			return err
		}
	}
	for _, key := range node.AttrKeys() {
		if !dom.ValidAttrName(key) {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(node.Attr(key))); err != nil {
			return err
		}
	}
	if node.Tag() == "input" {
		if _, err := fmt.Fprintf(w, ` value="%s"`, escapeAttr(node.Value())); err != nil {
			return err
		}
	}

	if r.config.OmitHIDs || !needsHID(node) {
		return nil
	}
	if _, err := fmt.Fprintf(w, ` data-hid="%s"`, node.HID()); err != nil {
		return err
	}
	for _, event := range node.Events() {
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, event); err != nil {
			return err
		}
	}
	return nil
}

// needsHID reports whether a live client must be able to address node.
func needsHID(node *dom.Node) bool {
	return node.Interactive() || node.Tag() == "input"
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
