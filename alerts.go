// Package alerts provides toast notifications and modal dialogs drawn into an
// element tree.
//
// Usage:
//
//	lp := loop.New(logger, 0)
//	go lp.Run(ctx)
//
//	tree := dom.NewTree()
//	a := alerts.New(tree, clock.Real(lp))
//	lp.Dispatch(func() {
//	    a.Toast.Show("Saved", alerts.Success, alerts.ToastOptions{})
//	})
//	a.Dialog.Confirm("Delete file?", alerts.DialogOptions{
//	    OnConfirm: func(ok bool) { ... },
//	})
//
// The engines are not safe for concurrent use. Drive them from one goroutine,
// the same one the scheduler delivers timer callbacks on: a loop.Loop with
// clock.Real, or a single test goroutine with clock.Manual.
package alerts

import (
	"log/slog"

	"github.com/bfkr/alerts/pkg/clock"
	"github.com/bfkr/alerts/pkg/dialog"
	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/metrics"
	"github.com/bfkr/alerts/pkg/theme"
	"github.com/bfkr/alerts/pkg/toast"
)

// =============================================================================
// Re-exports
// =============================================================================

// ToastOptions configures a single toast.
type ToastOptions = toast.Options

// ToastAction is an optional toast button.
type ToastAction = toast.Action

// DialogOptions configures a single dialog call.
type DialogOptions = dialog.Options

// Semantic types.
const (
	Success = theme.TypeSuccess
	Error   = theme.TypeError
	Warning = theme.TypeWarning
	Info    = theme.TypeInfo
	Primary = theme.TypePrimary
	Dark    = theme.TypeDark
	Custom  = theme.TypeCustom
)

// Toast positions.
const (
	TopRight     = toast.TopRight
	TopLeft      = toast.TopLeft
	TopCenter    = toast.TopCenter
	BottomRight  = toast.BottomRight
	BottomLeft   = toast.BottomLeft
	BottomCenter = toast.BottomCenter
)

// =============================================================================
// Alerts
// =============================================================================

// Alerts bundles the toast engine, the dialog engine and the shared color
// table they read from.
type Alerts struct {
	Toast  *toast.Engine
	Dialog *dialog.Engine
	Config *Config
}

// Config exposes the semantic color table.
type Config struct {
	registry *theme.Registry
}

// SetColors merges overrides into the color table. Later toasts and dialogs
// use the new colors; existing ones are not repainted.
func (c *Config) SetColors(colors map[string]string) {
	c.registry.SetColors(colors)
}

// Colors returns a snapshot of the color table.
func (c *Config) Colors() map[string]string {
	return c.registry.Colors()
}

// Registry returns the underlying registry.
func (c *Config) Registry() *theme.Registry {
	return c.registry
}

// Settings seeds an Alerts instance. Empty fields keep the defaults.
type Settings struct {
	Colors      map[string]string
	Position    string
	ToastTheme  string
	DialogTheme string
}

type options struct {
	logger   *slog.Logger
	recorder metrics.Recorder
	registry *theme.Registry
	settings Settings
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger passed to both engines.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder sets the metrics recorder passed to both engines.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithRegistry shares an existing color registry.
func WithRegistry(r *theme.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithSettings applies s after the engines are created.
func WithSettings(s Settings) Option {
	return func(o *options) { o.settings = s }
}

// New creates both engines on doc. Toast timers run through sched. The dialog
// overlay is attached immediately; toast containers are created on first use.
// New panics if sched is nil.
func New(doc dom.Document, sched clock.Scheduler, opts ...Option) *Alerts {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.recorder == nil {
		o.recorder = metrics.Nop{}
	}
	if o.registry == nil {
		o.registry = theme.NewRegistry()
	}

	a := &Alerts{
		Toast: toast.New(doc, o.registry, sched,
			toast.WithLogger(o.logger),
			toast.WithRecorder(o.recorder),
		),
		Dialog: dialog.New(doc, o.registry,
			dialog.WithLogger(o.logger),
			dialog.WithRecorder(o.recorder),
		),
		Config: &Config{registry: o.registry},
	}
	a.Configure(o.settings)
	return a
}

// Configure applies the non-empty fields of s.
func (a *Alerts) Configure(s Settings) {
	if len(s.Colors) > 0 {
		a.Config.SetColors(s.Colors)
	}
	if s.Position != "" {
		a.Toast.SetPosition(s.Position)
	}
	if s.ToastTheme != "" {
		a.Toast.SetTheme(s.ToastTheme)
	}
	if s.DialogTheme != "" {
		a.Dialog.SetTheme(s.DialogTheme)
	}
}
