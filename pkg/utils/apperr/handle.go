package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/burndown/pkg/domain/model"
)

// Handle logs an error that has no caller left to return it to. Missing
// burndown data is an expected state and is logged below error level.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, model.ErrNoDataAvailable) {
		logger.Info("no burndown data", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
