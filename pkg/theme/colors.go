package theme

import "sync"

// Semantic types understood by the engines.
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeWarning = "warning"
	TypeInfo    = "info"
	TypePrimary = "primary"
	TypeDark    = "dark"
	TypeCustom  = "custom"
)

// Types lists the built-in semantic types in declaration order.
var Types = []string{TypeSuccess, TypeError, TypeWarning, TypeInfo, TypePrimary, TypeDark, TypeCustom}

// DefaultColors returns a fresh copy of the built-in color table.
func DefaultColors() map[string]string {
	return map[string]string{
		TypeSuccess: "#22c55e",
		TypeError:   "#ef4444",
		TypeWarning: "#f59e0b",
		TypeInfo:    "#3b82f6",
		TypePrimary: "#6366f1",
		TypeDark:    "#1e293b",
		TypeCustom:  "#a855f7",
	}
}

// Registry is the semantic color table.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	colors map[string]string
}

// NewRegistry creates a Registry seeded with DefaultColors.
func NewRegistry() *Registry {
	return &Registry{colors: DefaultColors()}
}

// Color returns the color for typ, or the info color if typ is unknown.
func (r *Registry) Color(typ string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.colors[typ]; ok {
		return c
	}
	return r.colors[TypeInfo]
}

// SetColors merges overrides into the table. Keys missing from overrides are
// left alone; unknown keys are added.
func (r *Registry) SetColors(overrides map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, v := range overrides {
		r.colors[k] = v
	}
}

// Colors returns a snapshot of the table. Mutating the result does not
// affect the Registry.
func (r *Registry) Colors() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.colors))
	for k, v := range r.colors {
		out[k] = v
	}
	return out
}
