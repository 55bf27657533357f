package render

import (
	"fmt"
	"io"

	"github.com/bfkr/alerts/pkg/dom"
)

// PageData contains everything needed to render a complete HTML page.
type PageData struct {
	// Body is the tree's body node. Its children are rendered inside <body>.
	Body *dom.Node

	// Title is the page title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// StyleSheets are paths to external stylesheets.
	StyleSheets []string

	// Styles are inline CSS blocks.
	Styles []string

	// Script is an inline script appended to the end of <body>.
	Script string
}

// RenderPage writes a full HTML document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, css := range page.Styles {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", css); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	if page.Body != nil {
		if err := r.RenderChildren(w, page.Body); err != nil {
			return err
		}
	}

	if page.Script != "" {
		if _, err := fmt.Fprintf(w, "\n<script>%s</script>", page.Script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}
