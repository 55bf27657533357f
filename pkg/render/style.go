package render

import (
	"strings"

	"github.com/bfkr/alerts/pkg/dom"
)

// CSSProperty converts a camelCase style name to its CSS form. Names that
// already contain a dash are returned unchanged.
//
//	CSSProperty("backdropFilter")    // "backdrop-filter"
//	CSSProperty("WebkitTransform")   // "-webkit-transform"
func CSSProperty(name string) string {
	if strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 || isVendor(name) {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isVendor(name string) bool {
	for _, p := range []string{"Webkit", "Moz", "Ms", "O"} {
		if strings.HasPrefix(name, p) && len(name) > len(p) && name[len(p)] >= 'A' && name[len(p)] <= 'Z' {
			return true
		}
	}
	return false
}

// StyleString serializes a node's inline style.
func StyleString(n *dom.Node) string {
	styles := n.Styles()
	if len(styles) == 0 {
		return ""
	}
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		parts = append(parts, CSSProperty(s.Name)+": "+s.Value)
	}
	return strings.Join(parts, "; ") + ";"
}
