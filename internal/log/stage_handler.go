package log

import (
	"context"
	"io"
	"log/slog"
)

// stageKey is the attribute key added to every record.
const stageKey = "stage"

// StageHandler wraps an slog.Handler and stamps every record with the name
// of the pipeline stage that emitted it.
//
// Design decision: We use a handler wrapper rather than logger.With()
// because the wrapper survives WithAttrs/WithGroup chains made by library
// code that receives the logger, keeping the stage attribute on every
// record regardless of how the logger is later derived.
type StageHandler struct {
	// handler is the underlying slog handler that receives records.
	handler slog.Handler

	// stage is the stage name stamped onto each record.
	stage string
}

// NewStageHandler creates a StageHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewStageHandler(handler slog.Handler, stage string) *StageHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &StageHandler{handler: handler, stage: stage}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *StageHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds the stage attribute and passes the record on.
func (h *StageHandler) Handle(ctx context.Context, r slog.Record) error {
	stamped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	stamped.AddAttrs(slog.String(stageKey, h.stage))
	r.Attrs(func(a slog.Attr) bool {
		stamped.AddAttrs(a)
		return true
	})
	return h.handler.Handle(ctx, stamped)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *StageHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StageHandler{handler: h.handler.WithAttrs(attrs), stage: h.stage}
}

// WithGroup returns a new handler with the given group name.
func (h *StageHandler) WithGroup(name string) slog.Handler {
	return &StageHandler{handler: h.handler.WithGroup(name), stage: h.stage}
}

// NewLogger creates a text-format slog.Logger writing to w.
// Verbose enables Debug level; otherwise only warnings and errors pass.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(verbose)))
}

// NewJSONLogger creates a JSON-format slog.Logger writing to w.
// Useful when logs are collected by structured aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, handlerOptions(verbose)))
}

// WithStage returns a logger whose records are stamped with the stage name.
func WithStage(logger *slog.Logger, stage string) *slog.Logger {
	return slog.New(NewStageHandler(logger.Handler(), stage))
}

// handlerOptions returns the shared handler options for a verbosity level.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
