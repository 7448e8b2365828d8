package wrap

import (
	"context"
)

// Error attaches the LogCtx from ctx to err. Returns nil for a nil err.
// An error that already carries a LogCtx is wrapped again so the innermost
// context stays reachable through errors.As while the newest one wins in ErrorCtx.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &errorWithLogCtx{
		err:    err,
		logCtx: fromContext(ctx),
	}
}
