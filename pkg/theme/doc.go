// Package theme holds the semantic color table and the named style presets
// shared by the toast and dialog engines.
//
// # Colors
//
// A Registry maps semantic types (success, error, warning, info, primary,
// dark, custom) to color strings. Lookups for unknown types fall back to the
// info color. SetColors merges overrides into the table for the lifetime of
// the Registry; values are not validated.
//
//	reg := theme.NewRegistry()
//	reg.SetColors(map[string]string{"success": "#000"})
//	reg.Color("success") // "#000"
//	reg.Color("nope")    // info color
//
// # Presets
//
// Presets are fixed bundles of style properties keyed by camelCase property
// name (borderRadius, boxShadow, ...). The names and values match the
// stylesheet shipped with the library and never change at runtime.
//
//	theme.Apply(box, theme.Resolve("glass"), "titleColor", "messageColor")
package theme
