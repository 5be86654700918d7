package async_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/utils/async"
)

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Async handler did not complete within timeout")
	}
}

// syncBuffer is a log sink safe for the handler goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func loggedContext() (context.Context, *syncBuffer) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger), &buf
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		var executed atomic.Bool

		done := async.Dispatch(context.Background(), func(ctx context.Context) error {
			executed.Store(true)
			return nil
		})

		wait(t, done)
		gt.True(t, executed.Load())
	})

	t.Run("Errors are logged", func(t *testing.T) {
		ctx, logs := loggedContext()

		wait(t, async.Dispatch(ctx, func(ctx context.Context) error {
			return goerr.New("redraw failed")
		}))

		gt.S(t, logs.String()).Contains(`"level":"ERROR"`)
		gt.S(t, logs.String()).Contains("redraw failed")
	})

	t.Run("Missing data is not an error", func(t *testing.T) {
		ctx, logs := loggedContext()

		wait(t, async.Dispatch(ctx, func(ctx context.Context) error {
			return goerr.Wrap(model.ErrNoDataAvailable, "nothing to snapshot")
		}))

		gt.S(t, logs.String()).Contains(`"level":"INFO"`)
		gt.S(t, logs.String()).NotContains(`"level":"ERROR"`)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		ctx, logs := loggedContext()

		wait(t, async.Dispatch(ctx, func(ctx context.Context) error {
			panic("test panic")
		}))

		gt.S(t, logs.String()).Contains("Panic in async handler")
		gt.S(t, logs.String()).Contains("test panic")
	})

	t.Run("Multiple async dispatches", func(t *testing.T) {
		var counter atomic.Int32
		var dones []<-chan struct{}

		for i := 0; i < 10; i++ {
			dones = append(dones, async.Dispatch(context.Background(), func(ctx context.Context) error {
				counter.Add(1)
				return nil
			}))
		}

		for _, done := range dones {
			wait(t, done)
		}
		gt.Equal(t, int32(10), counter.Load())
	})
}

func TestContextPreservation(t *testing.T) {
	t.Run("Logger is preserved in background context", func(t *testing.T) {
		ctx, logs := loggedContext()

		wait(t, async.Dispatch(ctx, func(ctx context.Context) error {
			ctxlog.From(ctx).Info("from handler")
			return nil
		}))

		gt.S(t, logs.String()).Contains("from handler")
	})

	t.Run("Handler outlives a cancelled caller context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var handlerErr error
		done := async.Dispatch(ctx, func(ctx context.Context) error {
			time.Sleep(10 * time.Millisecond)
			handlerErr = ctx.Err()
			return nil
		})
		cancel()

		wait(t, done)
		gt.NoError(t, handlerErr)
	})
}
