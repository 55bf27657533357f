package termview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/bfkr/alerts/pkg/clock"
	"github.com/bfkr/alerts/pkg/dialog"
	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/theme"
	"github.com/bfkr/alerts/pkg/toast"
)

func TestRenderToastsAndDialog(t *testing.T) {
	tree := dom.NewTree()
	reg := theme.NewRegistry()
	toasts := toast.New(tree, reg, clock.NewManual())
	dialogs := dialog.New(tree, reg)

	toasts.Show("Saved", theme.TypeSuccess, toast.Options{Icon: "✓"})
	dialogs.Prompt("Name?", dialog.Options{DefaultValue: "abc"})

	out := Render(tree, Options{})
	for _, want := range []string{"top-right", "SUCCESS", "Saved", "Name?", "abc", "Submit", "Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHiddenDialog(t *testing.T) {
	tree := dom.NewTree()
	dialog.New(tree, theme.NewRegistry())

	if out := Render(tree, Options{}); strings.TrimSpace(out) != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.TerminalColor
	}{
		{"#22c55e", lipgloss.Color("#22c55e")},
		{"#22c55e20", lipgloss.Color("#22c55e")},
		{"#fff", lipgloss.Color("#fff")},
		{"rgba(0,0,0,0.5)", lipgloss.NoColor{}},
		{"#zzzzzz", lipgloss.NoColor{}},
		{"", lipgloss.NoColor{}},
	}
	for _, tt := range tests {
		if got := color(tt.in); got != tt.want {
			t.Errorf("color(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
