package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// MilestoneID represents a milestone identifier of the upstream tracker
type MilestoneID string

// String returns the string representation
func (id MilestoneID) String() string {
	return string(id)
}

// Validate checks that the milestone ID is usable in a request
func (id MilestoneID) Validate() error {
	if id == "" {
		return goerr.New("milestone ID cannot be empty")
	}
	return nil
}

// SessionID identifies one live widget session
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate session ID")
	}
	return SessionID(id.String()), nil
}
