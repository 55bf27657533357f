// Package errors provides coded, structured errors for the edges of the
// library: configuration loading, the preview server and the CLI.
//
// The engines themselves never fail; unknown types and themes fall back to
// defaults. Errors carry a code, a short message, an optional detail and a
// suggestion, and wrap their cause for errors.Is/As:
//
//	return errors.New("E101").
//	    WithDetail("Failed to parse bfkr.json: " + err.Error()).
//	    WithSuggestion("Check that bfkr.json is valid JSON").
//	    Wrap(err)
//
// Format renders an error for a terminal, with ANSI colors unless disabled.
package errors
