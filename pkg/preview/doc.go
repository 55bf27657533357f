// Package preview serves a live browser preview of toasts and dialogs.
//
// A single element tree is shared by every connected browser. The HTTP API
// triggers toasts and dialogs, the tree is rendered to HTML after each batch of
// mutations, and the result is pushed to clients over a WebSocket. Clicks and
// input from the browser travel back over the same socket and are dispatched
// to the element's handlers on the server's loop.
//
// Routes:
//
//	GET  /            full page
//	GET  /ws          live channel
//	POST /api/toast   show a toast
//	POST /api/dialog  open an alert, confirm or prompt
//	GET  /api/colors  color table
//	PUT  /api/colors  merge color overrides
//	GET  /metrics     Prometheus metrics (when enabled)
package preview
