package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler decorates another slog handler with stack-trace extraction.
// When a record carries an error attribute built by cockroachdb/errors, the
// error's captured stack trace is added to the record as a separate
// stacktrace attribute before the record is passed on.
type ErrFmtHandler struct {
	next slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler in an ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{next: handler}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.next.Enabled(ctx, l)
}

// Handle scans the record for the error attribute and, when the error
// carries safe details, attaches the first one as the stack trace.
func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			stacktrace = extractStacktrace(err)
		}
		return false
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return eh.next.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{next: eh.next.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{next: eh.next.WithGroup(g)}
}

// extractStacktrace pulls the redaction-safe details cockroachdb/errors
// records at construction time; the first entry is the formatted stack.
func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
