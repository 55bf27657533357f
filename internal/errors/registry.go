package errors

// Template defines a registered error.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

var registry = map[string]Template{
	// Config errors (E100-E199)

	"E100": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create bfkr.json or pass --config with an existing file",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Suggestion: "Check the file syntax",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "Port must be between 0 and 65535",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Unsupported configuration format",
		Suggestion: "Use a .json or .toml file",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Failed to write configuration file",
	},

	// Preview errors (E200-E299)

	"E200": {
		Category: CategoryPreview,
		Message:  "Preview server failed",
	},
	"E201": {
		Category:   CategoryPreview,
		Message:    "Invalid request body",
		Suggestion: "Send a JSON object",
	},
	"E202": {
		Category: CategoryPreview,
		Message:  "Unknown dialog kind",
		Detail:   "Kind must be alert, confirm or prompt",
	},
	"E203": {
		Category: CategoryPreview,
		Message:  "Preview loop stopped",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
