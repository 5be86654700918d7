package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/burndown/pkg/utils/apperr"
)

// Dispatch executes a handler function asynchronously with panic recovery.
// The handler gets a background context carrying the caller's logger, so it
// outlives the request or websocket read that started it. The returned
// channel is closed once the handler has returned or panicked.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	newCtx := newBackgroundContext(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer recoverPanic(newCtx)

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, err)
		}
	}()

	return done
}

func recoverPanic(ctx context.Context) {
	if r := recover(); r != nil {
		ctxlog.From(ctx).Error("Panic in async handler",
			"recover", r,
			"stack", string(debug.Stack()),
		)
	}
}

func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}

	return newCtx
}
