package dialog

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/metrics"
	"github.com/bfkr/alerts/pkg/theme"
)

// Kinds of dialog.
const (
	KindAlert   = "alert"
	KindConfirm = "confirm"
	KindPrompt  = "prompt"
)

// DefaultTheme is the preset used until SetTheme picks another.
const DefaultTheme = theme.Modern

const (
	classShow   = "bfkr-show"
	classHidden = "bfkr-hidden"

	cancelBackground = "#e5e7eb"
	cancelColor      = "#1f2937"
)

var icons = map[string]string{
	theme.TypeSuccess: "✔️",
	theme.TypeError:   "❌",
	theme.TypeWarning: "⚠️",
	theme.TypeInfo:    "ℹ️",
	theme.TypePrimary: "⭐",
	theme.TypeDark:    "🌑",
}

// Icon returns the default glyph for a semantic type.
func Icon(typ string) string {
	if g, ok := icons[typ]; ok {
		return g
	}
	return icons[theme.TypeInfo]
}

// Options configures a dialog call. Every field is optional.
type Options struct {
	// Type is the semantic type. Defaults to info for Alert and Prompt and
	// warning for Confirm.
	Type string

	Title string
	Icon  string

	// Width sets the box width, e.g. "420px".
	Width string

	// Style is applied to the box after the theme preset.
	Style map[string]string

	ButtonStyle ButtonStyle

	OKText     string
	CancelText string

	// DefaultValue pre-fills the prompt input.
	DefaultValue string

	// InputStyle is applied to the prompt input.
	InputStyle map[string]string

	// OnClose fires when an alert is dismissed.
	OnClose func()

	// OnConfirm fires with true for OK and false for Cancel.
	OnConfirm func(ok bool)

	// OnSubmit fires with the input value and ok=true for OK, or an empty
	// value and ok=false for Cancel.
	OnSubmit func(value string, ok bool)
}

// ButtonStyle holds per-button style overrides.
type ButtonStyle struct {
	OK     map[string]string
	Cancel map[string]string
}

// Engine drives the dialog overlay.
type Engine struct {
	doc      dom.Document
	registry *theme.Registry
	logger   *slog.Logger
	recorder metrics.Recorder

	theme string

	overlay dom.Element
	box     dom.Element
	icon    dom.Element
	title   dom.Element
	message dom.Element
	input   dom.Element
	buttons dom.Element

	okStyle     map[string]string
	cancelStyle map[string]string

	visible bool
	current *call
}

// call tracks one alert/confirm/prompt invocation so it settles at most once.
type call struct {
	kind    string
	settled bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// New creates an Engine and attaches its hidden overlay to doc's body.
func New(doc dom.Document, registry *theme.Registry, opts ...Option) *Engine {
	e := &Engine{
		doc:      doc,
		registry: registry,
		theme:    DefaultTheme,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.recorder == nil {
		e.recorder = metrics.Nop{}
	}
	e.build()
	return e
}

func (e *Engine) build() {
	e.overlay = e.element("div", "bfkr-dialog-overlay")
	e.box = e.element("div", "bfkr-dialog-box")
	e.icon = e.element("div", "bfkr-dialog-icon")
	e.title = e.element("div", "bfkr-dialog-title")
	e.message = e.element("div", "bfkr-dialog-message")
	e.input = e.element("input", "bfkr-dialog-input")
	e.input.AddClass(classHidden)
	e.buttons = e.element("div", "bfkr-dialog-buttons")

	e.box.AppendChild(e.icon, e.title, e.message, e.input, e.buttons)
	e.overlay.AppendChild(e.box)
	e.doc.Body().AppendChild(e.overlay)
}

func (e *Engine) element(tag, id string) dom.Element {
	el := e.doc.CreateElement(tag)
	el.SetID(id)
	return el
}

// Theme returns the current preset name.
func (e *Engine) Theme() string { return e.theme }

// Visible reports whether the overlay is shown.
func (e *Engine) Visible() bool { return e.visible }

// SetTheme sets the preset, forcing DefaultTheme when name is unknown.
func (e *Engine) SetTheme(name string) {
	if !theme.Known(name) {
		e.logger.Debug("unknown dialog theme, using default", "theme", name)
		name = DefaultTheme
	}
	e.theme = name
}

// Alert shows message with a single OK button.
func (e *Engine) Alert(message string, opts Options) {
	typ := typeOr(opts.Type, theme.TypeInfo)
	accent := e.apply(typ, message, opts)
	c := e.open(KindAlert)

	e.buttons.ClearChildren()
	e.input.AddClass(classHidden)

	ok := e.okButton(textOr(opts.OKText, "OK"), accent)
	ok.On(dom.EventClick, e.settle(c, metrics.ResultClosed, func() {
		if opts.OnClose != nil {
			opts.OnClose()
		}
	}))

	e.buttons.AppendChild(ok)
	e.show()
}

// Confirm shows message with OK and Cancel buttons.
func (e *Engine) Confirm(message string, opts Options) {
	typ := typeOr(opts.Type, theme.TypeWarning)
	accent := e.apply(typ, message, opts)
	c := e.open(KindConfirm)

	e.input.AddClass(classHidden)
	e.buttons.ClearChildren()

	ok := e.okButton(textOr(opts.OKText, "OK"), accent)
	cancel := e.cancelButton(textOr(opts.CancelText, "Cancel"))

	ok.On(dom.EventClick, e.settle(c, metrics.ResultConfirmed, func() {
		if opts.OnConfirm != nil {
			opts.OnConfirm(true)
		}
	}))
	cancel.On(dom.EventClick, e.settle(c, metrics.ResultCancelled, func() {
		if opts.OnConfirm != nil {
			opts.OnConfirm(false)
		}
	}))

	e.buttons.AppendChild(ok, cancel)
	e.show()
}

// Prompt shows message with a text input and Submit and Cancel buttons.
func (e *Engine) Prompt(message string, opts Options) {
	typ := typeOr(opts.Type, theme.TypeInfo)
	accent := e.apply(typ, message, opts)
	c := e.open(KindPrompt)

	e.buttons.ClearChildren()
	e.input.RemoveClass(classHidden)
	e.input.SetValue(opts.DefaultValue)
	applyStyle(e.input, opts.InputStyle)

	ok := e.okButton(textOr(opts.OKText, "Submit"), accent)
	cancel := e.cancelButton(textOr(opts.CancelText, "Cancel"))

	ok.On(dom.EventClick, e.settle(c, metrics.ResultSubmitted, func() {
		if opts.OnSubmit != nil {
			opts.OnSubmit(e.input.Value(), true)
		}
	}))
	cancel.On(dom.EventClick, e.settle(c, metrics.ResultCancelled, func() {
		if opts.OnSubmit != nil {
			opts.OnSubmit("", false)
		}
	}))

	e.buttons.AppendChild(ok, cancel)
	e.show()
}

// apply prepares the shared parts of the box and returns the accent color.
func (e *Engine) apply(typ, message string, opts Options) string {
	accent := e.registry.Color(typ)

	theme.Apply(e.box, theme.Resolve(e.theme), "titleColor", "messageColor")

	if opts.Icon != "" {
		e.icon.SetText(opts.Icon)
	} else {
		e.icon.SetText(Icon(typ))
	}
	e.icon.SetStyle("backgroundColor", accent+"20")
	e.icon.SetStyle("border", "2px solid "+accent+"55")
	e.icon.SetStyle("color", accent)

	if opts.Title != "" {
		e.title.SetText(opts.Title)
	} else {
		e.title.SetText(strings.ToUpper(typ))
	}
	e.message.SetText(message)

	if opts.Width != "" {
		e.box.SetStyle("width", opts.Width)
	}
	applyStyle(e.box, opts.Style)

	e.okStyle = opts.ButtonStyle.OK
	e.cancelStyle = opts.ButtonStyle.Cancel

	return accent
}

// open starts a new call, superseding any unsettled one.
func (e *Engine) open(kind string) *call {
	if e.current != nil && !e.current.settled {
		e.current.settled = true
		e.logger.Debug("dialog replaced while visible", "previous", e.current.kind, "kind", kind)
	}
	e.current = &call{kind: kind}
	e.recorder.DialogOpened(kind)
	return e.current
}

// settle returns a click handler that hides the overlay and runs cb once.
func (e *Engine) settle(c *call, result string, cb func()) func() {
	return func() {
		if c.settled {
			return
		}
		c.settled = true
		e.hide()
		e.recorder.DialogSettled(c.kind, result)
		e.logger.Debug("dialog settled", "kind", c.kind, "result", result)
		cb()
	}
}

func (e *Engine) okButton(text, accent string) dom.Element {
	btn := e.doc.CreateElement("button")
	btn.SetText(text)
	btn.SetStyle("background", accent)
	btn.SetStyle("color", "#fff")
	applyStyle(btn, e.okStyle)
	return btn
}

func (e *Engine) cancelButton(text string) dom.Element {
	btn := e.doc.CreateElement("button")
	btn.SetText(text)
	btn.SetStyle("background", cancelBackground)
	btn.SetStyle("color", cancelColor)
	applyStyle(btn, e.cancelStyle)
	return btn
}

func (e *Engine) show() {
	e.overlay.AddClass(classShow)
	e.visible = true
}

func (e *Engine) hide() {
	e.overlay.RemoveClass(classShow)
	e.visible = false
}

func applyStyle(el dom.Element, style map[string]string) {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.SetStyle(k, style[k])
	}
}

func typeOr(typ, fallback string) string {
	if typ == "" {
		return fallback
	}
	return typ
}

func textOr(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}
