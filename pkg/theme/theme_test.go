package theme

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type styleMap map[string]string

func (s styleMap) SetStyle(prop, value string) { s[prop] = value }

func TestColorKnownTypes(t *testing.T) {
	reg := NewRegistry()
	defaults := DefaultColors()

	for _, typ := range Types {
		if got := reg.Color(typ); got != defaults[typ] {
			t.Errorf("Color(%q) = %q, want %q", typ, got, defaults[typ])
		}
	}
}

func TestColorFallsBackToInfo_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	reg := NewRegistry()
	info := reg.Color(TypeInfo)

	properties.Property("unknown types resolve to the info color", prop.ForAll(
		func(typ string) bool {
			if _, known := DefaultColors()[typ]; known {
				return true
			}
			return reg.Color(typ) == info
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestSetColorsMerges_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("an override changes only its own key", prop.ForAll(
		func(idx int, value string) bool {
			reg := NewRegistry()
			typ := Types[idx]
			reg.SetColors(map[string]string{typ: value})

			colors := reg.Colors()
			for k, v := range DefaultColors() {
				want := v
				if k == typ {
					want = value
				}
				if colors[k] != want {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, len(Types)-1),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestSetColors(t *testing.T) {
	reg := NewRegistry()
	reg.SetColors(map[string]string{"success": "#000", "brand": "hotpink"})

	colors := reg.Colors()
	if colors["success"] != "#000" {
		t.Errorf("success = %q, want #000", colors["success"])
	}
	if colors["error"] != "#ef4444" {
		t.Errorf("error changed to %q", colors["error"])
	}
	if reg.Color("brand") != "hotpink" {
		t.Errorf("brand = %q, want hotpink", reg.Color("brand"))
	}
}

func TestColorsIsSnapshot(t *testing.T) {
	reg := NewRegistry()
	colors := reg.Colors()
	colors["info"] = "mutated"

	if reg.Color("info") != "#3b82f6" {
		t.Errorf("mutating snapshot changed registry: %q", reg.Color("info"))
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	a.SetColors(map[string]string{"info": "#111"})

	if b.Color("info") == "#111" {
		t.Error("override leaked between registries")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("glass")["backdropFilter"]; got != "blur(15px)" {
		t.Errorf("glass backdropFilter = %q", got)
	}
	if p := Resolve("nope"); len(p) != 0 {
		t.Errorf("unknown preset = %v, want empty", p)
	}
	if p := Resolve(Default); len(p) != 0 {
		t.Errorf("default preset = %v, want empty", p)
	}

	// Presets are immutable through the returned copy.
	p := Resolve(Modern)
	p["padding"] = "0"
	if Resolve(Modern)["padding"] != "26px" {
		t.Error("Resolve returned shared preset")
	}
}

func TestKnown(t *testing.T) {
	for _, name := range []string{Default, Modern, Glass, Brutalism, Minimal, Neumorphism, ModernDark} {
		if !Known(name) {
			t.Errorf("Known(%q) = false", name)
		}
	}
	if Known("Modern") {
		t.Error("preset names are case sensitive")
	}
	if len(Names()) != 7 {
		t.Errorf("Names() = %v", Names())
	}
}

func TestApplySkipsExcluded(t *testing.T) {
	target := styleMap{"background": "#22c55e"}
	Apply(target, Resolve(Brutalism), "background", "color")

	if target["background"] != "#22c55e" {
		t.Errorf("background overwritten: %q", target["background"])
	}
	if _, ok := target["color"]; ok {
		t.Error("color should be skipped")
	}
	if target["border"] != "4px solid #000" {
		t.Errorf("border = %q", target["border"])
	}
}
