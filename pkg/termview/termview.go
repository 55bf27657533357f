// Package termview draws the toasts and dialog of a dom.Tree in a terminal
// using lipgloss.
//
// Only what is attached to the tree is drawn. Toasts are grouped by
// container; a toast that is playing its closing animation is drawn faint.
// The dialog appears only while its overlay carries the bfkr-show class.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bfkr/alerts/pkg/dom"
)

// Options configures rendering.
type Options struct {
	// Width is the width of each toast box. Defaults to 40.
	Width int
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().Bold(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
)

// Render draws every toast container and the dialog, if visible.
func Render(tree *dom.Tree, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = 40
	}

	var sections []string
	for _, c := range tree.ByClass("bfkr-toast-container") {
		toasts := c.FindAll(func(n *dom.Node) bool { return n.HasClass("bfkr-toast") })
		if len(toasts) == 0 {
			continue
		}
		lines := []string{headerStyle.Render(strings.TrimPrefix(c.ID(), "bfkr-toast-container-"))}
		for _, t := range toasts {
			lines = append(lines, Toast(t, opts.Width))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if overlay := tree.ByID("bfkr-dialog-overlay"); overlay != nil && overlay.HasClass("bfkr-show") {
		sections = append(sections, Dialog(overlay))
	}

	return strings.Join(sections, "\n\n")
}

// Toast draws a single toast node.
func Toast(n *dom.Node, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Background(color(n.Style("background"))).
		Foreground(color(n.Style("color"))).
		BorderForeground(color(n.Style("background")))
	if n.HasClass("bfkr-animate-ease-out") {
		style = style.Faint(true)
	}

	title := text(n, "bfkr-toast-title")
	if icon := text(n, "bfkr-toast-icon"); icon != "" {
		title = icon + " " + title
	}
	body := titleStyle.Render(title) + "\n" + text(n, "bfkr-toast-message")
	if action := text(n, "bfkr-toast-action"); action != "" {
		body += "\n[" + action + "]"
	}
	return style.Render(body)
}

// Dialog draws the dialog overlay.
func Dialog(overlay *dom.Node) string {
	find := func(id string) *dom.Node {
		return overlay.Find(func(n *dom.Node) bool { return n.ID() == id })
	}

	icon := find("bfkr-dialog-icon")
	accent := lipgloss.TerminalColor(lipgloss.NoColor{})
	heading := ""
	if icon != nil {
		accent = color(icon.Style("color"))
		heading = icon.Text() + " "
	}
	if title := find("bfkr-dialog-title"); title != nil {
		heading += title.Text()
	}

	parts := []string{titleStyle.Foreground(accent).Render(heading)}
	if msg := find("bfkr-dialog-message"); msg != nil {
		parts = append(parts, msg.Text())
	}
	if in := find("bfkr-dialog-input"); in != nil && !in.HasClass("bfkr-hidden") {
		parts = append(parts, inputStyle.Render(in.Value()))
	}
	if row := find("bfkr-dialog-buttons"); row != nil {
		var buttons []string
		for _, b := range row.Children() {
			buttons = append(buttons, lipgloss.NewStyle().
				Padding(0, 2).
				MarginRight(1).
				Background(color(b.Style("background"))).
				Foreground(color(b.Style("color"))).
				Render(b.Text()))
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 3)
	if boxEl := find("bfkr-dialog-box"); boxEl != nil {
		if bg := boxEl.Style("background"); bg != "" {
			box = box.Background(color(bg))
		}
		if fg := boxEl.Style("color"); fg != "" {
			box = box.Foreground(color(fg))
		}
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func text(n *dom.Node, class string) string {
	if m := n.Find(func(m *dom.Node) bool { return m.HasClass(class) }); m != nil {
		return m.Text()
	}
	return ""
}

// color converts a CSS hex color to a terminal color. Alpha digits are
// dropped; anything that is not hex renders without color.
func color(css string) lipgloss.TerminalColor {
	css = strings.TrimSpace(css)
	if !strings.HasPrefix(css, "#") {
		return lipgloss.NoColor{}
	}
	hex := css[1:]
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return lipgloss.NoColor{}
		}
	}
	switch len(hex) {
	case 3, 6:
		return lipgloss.Color(css)
	case 4:
		return lipgloss.Color(css[:4])
	case 8:
		return lipgloss.Color(css[:7])
	default:
		return lipgloss.NoColor{}
	}
}
