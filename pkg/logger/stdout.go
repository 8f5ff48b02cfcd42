package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// NewStdoutHandler returns a handler that writes one JSON object per record
// to stdout with a severity field, so log collectors can filter by level
// without parsing the message.
func NewStdoutHandler(level slog.Level) slog.Handler {
	return &stdoutHandler{level: level}
}

type stdoutHandler struct {
	level slog.Level
}

func (h *stdoutHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *stdoutHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	// Attributes go under event.data to keep the top level stable.
	if r.NumAttrs() > 0 {
		data := make(map[string]any)
		r.Attrs(func(a slog.Attr) bool {
			data[a.Key] = a.Value.Any()
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *stdoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrsHandler{handler: h, attrs: attrs}
}

func (h *stdoutHandler) WithGroup(_ string) slog.Handler {
	// Flat event format, groups are not represented.
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}

// attrsHandler injects static attrs into every record before delegating.
type attrsHandler struct {
	handler *stdoutHandler
	attrs   []slog.Attr
}

func (h *attrsHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h *attrsHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, a := range h.attrs {
		r.AddAttrs(a)
	}
	return h.handler.Handle(ctx, r)
}

func (h *attrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &attrsHandler{handler: h.handler, attrs: all}
}

func (h *attrsHandler) WithGroup(_ string) slog.Handler {
	return h
}
