// Package toast shows transient notifications on a dom.Document.
//
// An Engine owns one container per screen position and every toast inside
// them. Each toast closes itself after its duration, or earlier when the
// user clicks its close control, and is removed 250ms after the closing
// animation starts.
//
// # Usage
//
//	reg := theme.NewRegistry()
//	toasts := toast.New(tree, reg, clock.Real(lp))
//
//	toasts.Show("Project deleted", theme.TypeSuccess, toast.Options{})
//	toasts.Error("Failed to delete project")
//
// With title, theme and overrides:
//
//	toasts.Show("Your changes have been saved.", theme.TypeSuccess, toast.Options{
//	    Title:       "Settings",
//	    Theme:       theme.Glass,
//	    Duration:    5 * time.Second,
//	    CustomStyle: map[string]string{"color": "#123456"},
//	})
//
// With an action button:
//
//	toasts.Show("Item deleted", theme.TypeInfo, toast.Options{
//	    Action: &toast.Action{Label: "Undo", OnClick: undo},
//	})
//
// # Styling
//
// The toast background comes from the semantic type and always beats the
// theme preset; CustomStyle is applied last and beats both. Class names
// (bfkr-toast, bfkr-animate-<kind>, bfkr-<position>, ...) are shared with
// the stylesheet and must not change.
//
// An Engine is not safe for concurrent use. Bind its clock to the loop that
// drives it so timer callbacks run on the same goroutine.
package toast
