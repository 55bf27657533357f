// Package config loads bfkr.json (or bfkr.toml) configuration.
//
// A configuration file seeds the color table, picks the initial toast
// position and themes, and configures the preview server:
//
//	{
//	  "colors": { "success": "#16a34a" },
//	  "toast": { "position": "bottom-right", "theme": "glass", "duration": "5s" },
//	  "dialog": { "theme": "modernDark" },
//	  "preview": { "host": "localhost", "port": 3400 }
//	}
//
// Missing fields take defaults. Unknown theme names are kept as written; the
// engines fall back on their own.
package config
