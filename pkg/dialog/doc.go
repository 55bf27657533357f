// Package dialog provides a modal alert/confirm/prompt overlay on a
// dom.Document.
//
// An Engine builds a single overlay when it is created and reuses it for
// every call. Opening a dialog while one is visible replaces its content and
// buttons in place; there is no queue. Results are delivered through the
// callbacks in Options, never through return values:
//
//	dialogs := dialog.New(tree, reg)
//
//	dialogs.Confirm("Delete this project?", dialog.Options{
//	    OnConfirm: func(ok bool) {
//	        if ok {
//	            deleteProject()
//	        }
//	    },
//	})
//
//	dialogs.Prompt("Your name?", dialog.Options{
//	    DefaultValue: "anonymous",
//	    OnSubmit: func(value string, ok bool) {
//	        if ok {
//	            greet(value)
//	        }
//	    },
//	})
//
// Messages are always set as plain text. Style and ButtonStyle accept any
// property name; they are an escape hatch, not a schema.
package dialog
