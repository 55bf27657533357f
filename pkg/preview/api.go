package preview

import (
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bfkr/alerts"
	"github.com/bfkr/alerts/internal/errors"
	"github.com/bfkr/alerts/pkg/dialog"
	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/metrics"
)

// maxBodyBytes caps API request bodies.
const maxBodyBytes = 64 << 10

// ToastRequest is the body of POST /api/toast.
type ToastRequest struct {
	Message     string            `json:"message"`
	Type        string            `json:"type,omitempty"`
	Position    string            `json:"position,omitempty"`
	Theme       string            `json:"theme,omitempty"`
	Duration    int               `json:"duration,omitempty"` // milliseconds
	Animation   string            `json:"animation,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Title       string            `json:"title,omitempty"`
	CustomStyle map[string]string `json:"customStyle,omitempty"`
	Action      string            `json:"action,omitempty"` // action button label
}

// DialogRequest is the body of POST /api/dialog.
type DialogRequest struct {
	Kind         string            `json:"kind"`
	Message      string            `json:"message"`
	Type         string            `json:"type,omitempty"`
	Theme        string            `json:"theme,omitempty"`
	Title        string            `json:"title,omitempty"`
	Icon         string            `json:"icon,omitempty"`
	Width        string            `json:"width,omitempty"`
	Style        map[string]string `json:"style,omitempty"`
	OKText       string            `json:"okText,omitempty"`
	CancelText   string            `json:"cancelText,omitempty"`
	DefaultValue string            `json:"defaultValue,omitempty"`
	InputStyle   map[string]string `json:"inputStyle,omitempty"`
	ButtonStyle  ButtonStyle       `json:"buttonStyle,omitempty"`
}

// ButtonStyle holds per-button style overrides in a dialog request.
type ButtonStyle struct {
	OK     map[string]string `json:"ok,omitempty"`
	Cancel map[string]string `json:"cancel,omitempty"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	var req ToastRequest
	if !s.decode(w, r, &req) {
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "bfkr.toast",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("bfkr.type", req.Type),
			attribute.String("bfkr.position", req.Position),
		),
	)
	defer span.End()

	duration := time.Duration(req.Duration) * time.Millisecond
	if duration <= 0 {
		duration = s.config.ToastDuration
	}

	opts := alerts.ToastOptions{
		Duration:    duration,
		Animation:   req.Animation,
		Theme:       req.Theme,
		Icon:        req.Icon,
		Title:       req.Title,
		CustomStyle: req.CustomStyle,
	}
	if req.Action != "" {
		label := req.Action
		opts.Action = &alerts.ToastAction{
			Label: label,
			OnClick: func() {
				s.logger.Info("toast action", "label", label)
			},
		}
	}

	err := s.loop.Call(ctx, func() {
		if req.Position != "" {
			s.alerts.Toast.SetPosition(req.Position)
		}
		s.alerts.Toast.Show(req.Message, req.Type, opts)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.writeError(w, loopError(err))
		return
	}
	span.SetStatus(codes.Ok, "")
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "shown"})
}

func (s *Server) handleDialog(w http.ResponseWriter, r *http.Request) {
	var req DialogRequest
	if !s.decode(w, r, &req) {
		return
	}

	switch req.Kind {
	case dialog.KindAlert, dialog.KindConfirm, dialog.KindPrompt:
	default:
		s.writeError(w, errors.New("E202").WithDetail("Got kind " + req.Kind))
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "bfkr.dialog",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("bfkr.kind", req.Kind),
			attribute.String("bfkr.type", req.Type),
		),
	)
	defer span.End()

	opts := alerts.DialogOptions{
		Type:         req.Type,
		Title:        req.Title,
		Icon:         req.Icon,
		Width:        req.Width,
		Style:        req.Style,
		OKText:       req.OKText,
		CancelText:   req.CancelText,
		DefaultValue: req.DefaultValue,
		InputStyle:   req.InputStyle,
		ButtonStyle: dialog.ButtonStyle{
			OK:     req.ButtonStyle.OK,
			Cancel: req.ButtonStyle.Cancel,
		},
		OnClose: func() {
			s.settled(req.Kind, metrics.ResultClosed, "")
		},
		OnConfirm: func(ok bool) {
			result := metrics.ResultCancelled
			if ok {
				result = metrics.ResultConfirmed
			}
			s.settled(req.Kind, result, "")
		},
		OnSubmit: func(value string, ok bool) {
			result := metrics.ResultCancelled
			if ok {
				result = metrics.ResultSubmitted
			}
			s.settled(req.Kind, result, value)
		},
	}

	err := s.loop.Call(ctx, func() {
		if req.Theme != "" {
			s.alerts.Dialog.SetTheme(req.Theme)
		}
		switch req.Kind {
		case dialog.KindAlert:
			s.alerts.Dialog.Alert(req.Message, opts)
		case dialog.KindConfirm:
			s.alerts.Dialog.Confirm(req.Message, opts)
		case dialog.KindPrompt:
			s.alerts.Dialog.Prompt(req.Message, opts)
		}
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.writeError(w, loopError(err))
		return
	}
	span.SetStatus(codes.Ok, "")
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "open"})
}

// settled runs on the loop when a dialog callback fires.
func (s *Server) settled(kind, result, value string) {
	s.logger.Info("dialog settled", "kind", kind, "result", result, "value", value)
	s.hub.broadcast(Message{Type: MessageResult, Kind: kind, Result: result, Value: value})
}

func (s *Server) handleGetColors(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.alerts.Config.Colors())
}

func (s *Server) handlePutColors(w http.ResponseWriter, r *http.Request) {
	var colors map[string]string
	if !s.decode(w, r, &colors) {
		return
	}
	s.alerts.Config.SetColors(colors)
	s.logger.Info("colors updated", "count", len(colors))
	s.writeJSON(w, http.StatusOK, s.alerts.Config.Colors())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	c, err := s.hub.upgrade(w, r)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer s.hub.drop(c)

	// Send the current body so the client starts in sync.
	var html string
	var renderErr error
	if err := s.loop.Call(r.Context(), func() { html, renderErr = s.body() }); err != nil {
		return
	}
	if renderErr == nil {
		data, _ := json.Marshal(Message{Type: MessageHTML, HTML: html})
		if !s.hub.send(c, data) {
			return
		}
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var ev ClientEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			s.logger.Debug("invalid client event", "error", err)
			continue
		}
		s.dispatchEvent(r, ev)
	}
}

func (s *Server) dispatchEvent(r *http.Request, ev ClientEvent) {
	_, span := s.tracer.Start(r.Context(), "bfkr.event",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("bfkr.event_type", ev.Event),
			attribute.String("bfkr.event_target", ev.HID),
		),
	)
	defer span.End()

	s.loop.Dispatch(func() {
		node := s.tree.ByHID(ev.HID)
		if node == nil {
			s.logger.Debug("event for unknown node", "hid", ev.HID, "event", ev.Event)
			return
		}
		if ev.Event == dom.EventInput {
			node.Input(ev.Value)
			return
		}
		node.Dispatch(ev.Event)
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, errors.New("E201").WithDetail(err.Error()).Wrap(err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err *errors.Error) {
	status := http.StatusBadRequest
	switch err.Code {
	case "E203":
		status = http.StatusServiceUnavailable
	case "E200":
		status = http.StatusInternalServerError
	}
	msg := err.Message
	if err.Detail != "" {
		msg += ": " + err.Detail
	}
	s.writeJSON(w, status, errorResponse{Code: err.Code, Error: msg})
}
