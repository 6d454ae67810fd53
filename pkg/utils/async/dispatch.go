package async

import (
	"context"

	"github.com/secmon-lab/argus/pkg/utils/logging"
)

// Dispatch executes a handler asynchronously in a new goroutine. The
// handler runs on a fresh background context that keeps the caller's
// logger; errors and panics are logged, never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", err.Error())
		}
	}()
}
