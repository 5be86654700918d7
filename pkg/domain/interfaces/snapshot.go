package interfaces

//go:generate moq -out mocks/snapshot_mock.go -pkg mocks . SnapshotPublisher

import (
	"context"

	"github.com/secmon-lab/burndown/pkg/domain/model"
)

// SnapshotPublisher shares a rendered chart outside the service
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, snapshot *model.Snapshot) error
}
