package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . SessionRegistry

import (
	"context"
	"io"

	"github.com/secmon-lab/burndown/pkg/domain/types"
)

// SessionRegistry keeps track of live widget sessions so that they can be
// counted and closed on shutdown
type SessionRegistry interface {
	Add(ctx context.Context, id types.SessionID, session io.Closer) error
	Remove(ctx context.Context, id types.SessionID) error
	Count() int
	// CloseAll closes and forgets every session
	CloseAll(ctx context.Context) error
}
