package repository

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/types"
)

// ErrSessionNotFound is returned when removing an unknown session
var ErrSessionNotFound = goerr.New("session not found")

// Memory implements SessionRegistry with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]io.Closer
	closed   bool
}

// NewMemory creates a new memory session registry
func NewMemory() interfaces.SessionRegistry {
	return &Memory{
		sessions: make(map[types.SessionID]io.Closer),
	}
}

// Add registers a live session
func (m *Memory) Add(ctx context.Context, id types.SessionID, session io.Closer) error {
	if id == "" {
		return goerr.New("session ID is empty")
	}
	if session == nil {
		return goerr.New("session is nil", goerr.V("session_id", id))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return goerr.New("session registry is closed", goerr.V("session_id", id))
	}
	if _, exists := m.sessions[id]; exists {
		return goerr.New("session already registered", goerr.V("session_id", id))
	}

	m.sessions[id] = session
	ctxlog.From(ctx).Debug("session registered", "session_id", id, "count", len(m.sessions))
	return nil
}

// Remove forgets a session without closing it
func (m *Memory) Remove(ctx context.Context, id types.SessionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return goerr.Wrap(ErrSessionNotFound, "failed to remove session", goerr.V("session_id", id))
	}

	delete(m.sessions, id)
	ctxlog.From(ctx).Debug("session removed", "session_id", id, "count", len(m.sessions))
	return nil
}

// Count returns the number of live sessions
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll closes every session and refuses new ones
func (m *Memory) CloseAll(ctx context.Context) error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[types.SessionID]io.Closer)
	m.closed = true
	m.mu.Unlock()

	var errs []error
	for id, session := range sessions {
		if err := session.Close(); err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to close session", goerr.V("session_id", id)))
		}
	}

	ctxlog.From(ctx).Info("closed live sessions", "count", len(sessions), "errors", len(errs))
	return errors.Join(errs...)
}
