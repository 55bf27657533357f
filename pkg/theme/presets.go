package theme

import "sort"

// Preset names.
const (
	Default     = "default"
	Modern      = "modern"
	Glass       = "glass"
	Brutalism   = "brutalism"
	Minimal     = "minimal"
	Neumorphism = "neumorphism"
	ModernDark  = "modernDark"
)

// Preset is a bundle of style property -> value pairs.
type Preset map[string]string

// Styler is anything that accepts inline style properties.
type Styler interface {
	SetStyle(prop, value string)
}

var presets = map[string]Preset{
	Default: {},

	Modern: {
		"borderRadius": "18px",
		"boxShadow":    "0 18px 40px rgba(0,0,0,0.12)",
		"padding":      "26px",
	},

	Glass: {
		"background":     "rgba(255,255,255,0.25)",
		"backdropFilter": "blur(15px)",
		"border":         "1px solid rgba(255,255,255,0.4)",
		"borderRadius":   "22px",
		"boxShadow":      "0 25px 50px rgba(0,0,0,0.3)",
		"color":          "#ffffff",
	},

	Brutalism: {
		"background":   "#ffffff",
		"border":       "4px solid #000",
		"boxShadow":    "8px 8px 0 #000",
		"color":        "#000",
		"borderRadius": "0",
	},

	Minimal: {
		"borderRadius": "12px",
		"boxShadow":    "none",
	},

	Neumorphism: {
		"borderRadius": "20px",
		"boxShadow":    "10px 10px 20px #d1d9e6, -10px -10px 20px #ffffff",
	},

	ModernDark: {
		"background":   "#0f172a",
		"color":        "#e2e8f0",
		"borderRadius": "22px",
		"boxShadow":    "0 25px 50px rgba(0,0,0,0.7)",
	},
}

// Known reports whether name is a built-in preset.
func Known(name string) bool {
	_, ok := presets[name]
	return ok
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a copy of the named preset, or an empty preset if name is
// unknown.
func Resolve(name string) Preset {
	p, ok := presets[name]
	if !ok {
		return Preset{}
	}
	out := make(Preset, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the preset's property names in sorted order.
func (p Preset) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply copies every property of preset onto target, skipping the keys in
// exclude. Properties are applied in sorted key order.
func Apply(target Styler, preset Preset, exclude ...string) {
	for _, k := range preset.Keys() {
		if contains(exclude, k) {
			continue
		}
		target.SetStyle(k, preset[k])
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
