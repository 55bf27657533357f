package main

import (
	"github.com/spf13/cobra"

	"github.com/bfkr/alerts"
	"github.com/bfkr/alerts/internal/config"
	"github.com/bfkr/alerts/internal/errors"
	"github.com/bfkr/alerts/pkg/clock"
	"github.com/bfkr/alerts/pkg/dialog"
	"github.com/bfkr/alerts/pkg/dom"
)

// scenario describes a single toast or dialog drawn into a fresh tree.
type scenario struct {
	kind      string
	message   string
	typ       string
	title     string
	icon      string
	theme     string
	position  string
	animation string
	action    string
}

func (s *scenario) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.kind, "kind", "k", "toast", "toast, alert, confirm or prompt")
	f.StringVarP(&s.message, "message", "m", "Hello from bfkr", "Message text")
	f.StringVarP(&s.typ, "type", "t", "", "Semantic type (success, error, warning, info, primary, dark, custom)")
	f.StringVar(&s.title, "title", "", "Title override")
	f.StringVar(&s.icon, "icon", "", "Icon override")
	f.StringVar(&s.theme, "theme", "", "Theme preset (default from config)")
	f.StringVar(&s.position, "position", "", "Toast position (default from config)")
	f.StringVar(&s.animation, "animation", "", "Toast animation (slide, fade, zoom, pop)")
	f.StringVar(&s.action, "action", "", "Toast action button label")
}

// build draws the scenario. Timers never fire, so the result is the state
// right after the call.
func (s *scenario) build(cfg *config.Config) (*dom.Tree, error) {
	tree := dom.NewTree()
	a := alerts.New(tree, clock.NewManual(), alerts.WithSettings(settings(cfg)))

	if s.kind == "toast" {
		if s.position != "" {
			a.Toast.SetPosition(s.position)
		}
		opts := alerts.ToastOptions{
			Duration:  cfg.ToastDuration(),
			Animation: s.animation,
			Theme:     s.theme,
			Icon:      s.icon,
			Title:     s.title,
		}
		if s.action != "" {
			opts.Action = &alerts.ToastAction{Label: s.action}
		}
		a.Toast.Show(s.message, s.typ, opts)
		return tree, nil
	}

	if s.theme != "" {
		a.Dialog.SetTheme(s.theme)
	}
	opts := alerts.DialogOptions{Type: s.typ, Title: s.title, Icon: s.icon}
	switch s.kind {
	case dialog.KindAlert:
		a.Dialog.Alert(s.message, opts)
	case dialog.KindConfirm:
		a.Dialog.Confirm(s.message, opts)
	case dialog.KindPrompt:
		a.Dialog.Prompt(s.message, opts)
	default:
		return nil, errors.Newf(errors.CategoryCLI, "unknown kind %q", s.kind).
			WithSuggestion("Use toast, alert, confirm or prompt")
	}
	return tree, nil
}
