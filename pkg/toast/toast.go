package toast

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bfkr/alerts/pkg/clock"
	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/metrics"
	"github.com/bfkr/alerts/pkg/theme"
)

// Positions understood by the stylesheet.
const (
	TopRight     = "top-right"
	TopLeft      = "top-left"
	TopCenter    = "top-center"
	BottomRight  = "bottom-right"
	BottomLeft   = "bottom-left"
	BottomCenter = "bottom-center"
)

// Animation kinds.
const (
	AnimationSlide = "slide"
	AnimationFade  = "fade"
	AnimationZoom  = "zoom"
	AnimationPop   = "pop"
)

const (
	// DefaultDuration is how long a toast stays before closing.
	DefaultDuration = 3500 * time.Millisecond

	// RemoveDelay is the grace period between the closing animation and
	// removal from the container.
	RemoveDelay = 250 * time.Millisecond

	// DefaultPosition is the initial container position.
	DefaultPosition = TopRight

	// DefaultAnimation is used when Options.Animation is empty.
	DefaultAnimation = AnimationSlide
)

// Options configures a single toast. The zero value uses every default.
type Options struct {
	// Duration before the toast closes. Zero means DefaultDuration.
	Duration time.Duration

	// Animation selects the bfkr-animate-<kind> class.
	Animation string

	// Theme overrides the engine theme for this toast.
	Theme string

	// Icon is the text shown in the icon region.
	Icon string

	// Title replaces the uppercased type name.
	Title string

	// CustomStyle is applied last and overrides every other style. Any
	// property name is accepted.
	CustomStyle map[string]string

	// Action adds a button to the toast.
	Action *Action
}

// Action is an optional toast button. Clicking it calls OnClick once and
// closes the toast.
type Action struct {
	Label   string
	OnClick func()
}

// Engine shows toasts.
type Engine struct {
	doc      dom.Document
	registry *theme.Registry
	clock    clock.Scheduler
	logger   *slog.Logger
	recorder metrics.Recorder

	position   string
	theme      string
	containers map[string]*container
}

type container struct {
	el     dom.Element
	toasts []*instance
}

type instance struct {
	el      dom.Element
	typ     string
	timer   clock.Timer
	closing bool
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

// New creates an Engine drawing on doc with colors from registry. Auto-hide
// and removal run through sched, which must deliver callbacks on the
// goroutine that drives the engine (clock.Real over a loop.Loop, or
// clock.Manual). New panics if sched is nil.
func New(doc dom.Document, registry *theme.Registry, sched clock.Scheduler, opts ...Option) *Engine {
	if sched == nil {
		panic("toast: New requires a clock.Scheduler")
	}
	e := &Engine{
		doc:        doc,
		registry:   registry,
		clock:      sched,
		position:   DefaultPosition,
		theme:      theme.Default,
		containers: make(map[string]*container),
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
	return e
}

// Position returns the current position.
func (e *Engine) Position() string { return e.position }

// Theme returns the engine's default theme.
func (e *Engine) Theme() string { return e.theme }

// SetPosition makes pos the target for new toasts and ensures its container
// exists. Calling it again for the same position reuses the container.
func (e *Engine) SetPosition(pos string) {
	e.position = pos
	e.container(pos)
}

// SetTheme sets the default theme, falling back to theme.Default when name
// is not a known preset.
func (e *Engine) SetTheme(name string) {
	if !theme.Known(name) {
		e.logger.Debug("unknown toast theme, using default", "theme", name)
		name = theme.Default
	}
	e.theme = name
}

// Show displays message in the container for the current position. An empty
// typ means theme.TypeInfo.
func (e *Engine) Show(message, typ string, opts Options) {
	if typ == "" {
		typ = theme.TypeInfo
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	animation := opts.Animation
	if animation == "" {
		animation = DefaultAnimation
	}
	themeName := opts.Theme
	if themeName == "" {
		themeName = e.theme
	}

	el := e.doc.CreateElement("div")
	el.AddClass("bfkr-toast", "bfkr-animate-"+animation)
	el.SetStyle("background", e.registry.Color(typ))
	el.SetStyle("color", "#fff")

	// Semantic color wins over the preset.
	theme.Apply(el, theme.Resolve(themeName), "background", "color")

	icon := e.doc.CreateElement("div")
	icon.AddClass("bfkr-toast-icon")
	icon.SetText(opts.Icon)

	content := e.doc.CreateElement("div")
	content.AddClass("bfkr-toast-content")

	title := e.doc.CreateElement("div")
	title.AddClass("bfkr-toast-title")
	if opts.Title != "" {
		title.SetText(opts.Title)
	} else {
		title.SetText(strings.ToUpper(typ))
	}

	msg := e.doc.CreateElement("div")
	msg.AddClass("bfkr-toast-message")
	msg.SetText(message)

	content.AppendChild(title, msg)

	inst := &instance{el: el, typ: typ}

	closeBtn := e.doc.CreateElement("span")
	closeBtn.AddClass("bfkr-toast-close")
	closeBtn.SetText("×")
	closeBtn.On(dom.EventClick, func() { e.hide(inst, metrics.CauseClose) })

	progress := e.doc.CreateElement("div")
	progress.AddClass("bfkr-progress")
	progress.SetStyle("animationDuration", formatMillis(duration))

	for _, k := range sortedKeys(opts.CustomStyle) {
		el.SetStyle(k, opts.CustomStyle[k])
	}

	el.AppendChild(icon, content, closeBtn)
	if opts.Action != nil {
		el.AppendChild(e.actionButton(inst, opts.Action))
	}
	el.AppendChild(progress)

	c := e.container(e.position)
	c.el.AppendChild(el)
	c.toasts = append(c.toasts, inst)

	inst.timer = e.clock.AfterFunc(duration, func() { e.hide(inst, metrics.CauseTimeout) })

	e.recorder.ToastShown(typ)
	e.logger.Debug("toast shown",
		"type", typ,
		"position", e.position,
		"theme", themeName,
		"duration", duration)
}

// Success shows a success toast with default options.
func (e *Engine) Success(message string) { e.Show(message, theme.TypeSuccess, Options{}) }

// Error shows an error toast with default options.
func (e *Engine) Error(message string) { e.Show(message, theme.TypeError, Options{}) }

// Warning shows a warning toast with default options.
func (e *Engine) Warning(message string) { e.Show(message, theme.TypeWarning, Options{}) }

// Info shows an info toast with default options.
func (e *Engine) Info(message string) { e.Show(message, theme.TypeInfo, Options{}) }

// Active returns the number of toasts still attached to the container for
// pos, including ones playing their closing animation.
func (e *Engine) Active(pos string) int {
	c, ok := e.containers[pos]
	if !ok {
		return 0
	}
	return len(c.toasts)
}

// Containers returns the number of containers created so far.
func (e *Engine) Containers() int {
	return len(e.containers)
}

func (e *Engine) actionButton(inst *instance, action *Action) dom.Element {
	btn := e.doc.CreateElement("button")
	btn.AddClass("bfkr-toast-action")
	btn.SetText(action.Label)

	fired := false
	btn.On(dom.EventClick, func() {
		if fired || inst.closing {
			return
		}
		fired = true
		if action.OnClick != nil {
			action.OnClick()
		}
		e.hide(inst, metrics.CauseAction)
	})
	return btn
}

func (e *Engine) container(pos string) *container {
	if c, ok := e.containers[pos]; ok {
		return c
	}
	el := e.doc.CreateElement("div")
	el.SetID("bfkr-toast-container-" + pos)
	el.AddClass("bfkr-toast-container", "bfkr-"+pos)
	e.doc.Body().AppendChild(el)

	c := &container{el: el}
	e.containers[pos] = c
	e.logger.Debug("toast container created", "position", pos)
	return c
}

// hide starts the closing animation and schedules removal. Later calls for
// the same toast are ignored.
func (e *Engine) hide(inst *instance, cause string) {
	if inst.closing {
		return
	}
	inst.closing = true
	if inst.timer != nil {
		inst.timer.Stop()
	}

	inst.el.AddClass("bfkr-animate-ease-out")
	e.recorder.ToastDismissed(cause)

	e.clock.AfterFunc(RemoveDelay, func() { e.remove(inst) })
}

func (e *Engine) remove(inst *instance) {
	inst.el.Remove()
	for _, c := range e.containers {
		for i, t := range c.toasts {
			if t == inst {
				c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
				e.recorder.ToastRemoved()
				return
			}
		}
	}
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
