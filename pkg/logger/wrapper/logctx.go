package wrap

import (
	"context"
)

type (
	// LogCtx holds the fields the logger copies from a context onto each record.
	LogCtx struct {
		Action    string
		RequestID string
		ReportID  string
		Provider  string
	}

	logCtxKeyStruct struct{}
)

// LogCtxKey is the context key under which LogCtx is stored.
var LogCtxKey = &logCtxKeyStruct{}

func fromContext(ctx context.Context) LogCtx {
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		return lc
	}
	return LogCtx{}
}

// WithLogCtx merges newLc into the LogCtx already stored in ctx. Empty fields keep the old value.
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	lc := fromContext(ctx)
	if newLc.Action != "" {
		lc.Action = newLc.Action
	}
	if newLc.RequestID != "" {
		lc.RequestID = newLc.RequestID
	}
	if newLc.ReportID != "" {
		lc.ReportID = newLc.ReportID
	}
	if newLc.Provider != "" {
		lc.Provider = newLc.Provider
	}
	return context.WithValue(ctx, LogCtxKey, lc)
}

func WithAction(ctx context.Context, action string) context.Context {
	lc := fromContext(ctx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc := fromContext(ctx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

func WithReportID(ctx context.Context, reportID string) context.Context {
	lc := fromContext(ctx)
	lc.ReportID = reportID
	return context.WithValue(ctx, LogCtxKey, lc)
}

func WithProvider(ctx context.Context, provider string) context.Context {
	lc := fromContext(ctx)
	lc.Provider = provider
	return context.WithValue(ctx, LogCtxKey, lc)
}

// RequestIDFrom returns the request id stored in ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	return fromContext(ctx).RequestID
}
