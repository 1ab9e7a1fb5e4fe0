// Package draftsession stores open gathering drafts keyed by session ID.
// A repository instance is the session arena of one game; independent games
// use independent repositories.
package draftsession

import (
	"context"

	"github.com/KirkDiggler/guildcraft/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=draftsessionmock github.com/KirkDiggler/guildcraft/internal/repositories/draft_session Repository

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Session *entities.DraftSession
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *entities.DraftSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *entities.DraftSession
}

// DeleteInput contains parameters for removing a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput contains the session as it was when removed
type DeleteOutput struct {
	Session *entities.DraftSession
}

// Repository defines storage for draft sessions. Returned sessions are
// copies; changes must be written back with Update.
type Repository interface {
	// Create stores a new session. The session ID must be unused.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session
	Update(ctx context.Context, session *entities.DraftSession) error

	// Delete removes a session and returns its final state
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errSessionNil       = "session cannot be nil"
	errSessionIDEmpty   = "session ID cannot be empty"
	errSessionNotFound  = "draft session not found"
	errSessionDuplicate = "draft session already exists"
)

// cloneSession deep copies the slices so stored and returned sessions never
// share backing arrays
func cloneSession(s *entities.DraftSession) *entities.DraftSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Card.MaterialPool = append([]string(nil), s.Card.MaterialPool...)
	out.SelectedMaterials = append([]entities.MaterialInstance{}, s.SelectedMaterials...)
	out.CurrentOptions = append([]entities.MaterialOption{}, s.CurrentOptions...)
	return &out
}
