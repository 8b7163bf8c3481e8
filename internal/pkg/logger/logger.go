// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyUserID    ContextKey = "user_id"
)

// Setup initializes the application logger. Format is "json" or "text";
// unknown levels fall back to info.
func Setup(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(&contextHandler{Handler: handler})
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// contextHandler lifts request-scoped values out of the context into log
// attributes, so *Context log calls carry request_id and user_id without
// every call site attaching them.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		record.AddAttrs(slog.String(string(ContextKeyRequestID), requestID))
	}
	if userID, ok := ctx.Value(ContextKeyUserID).(int64); ok && userID != 0 {
		record.AddAttrs(slog.Int64(string(ContextKeyUserID), userID))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}

// WithRequestID stores a request identifier in the context for logging.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// WithUserID stores the acting user's ID in the context for logging.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}
