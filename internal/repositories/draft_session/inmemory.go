package draftsession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Sessions never expire; callers evict abandoned sessions with Delete.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entities.DraftSession
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		sessions: make(map[string]*entities.DraftSession),
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[input.Session.SessionID]; exists {
		return nil, errors.AlreadyExists(errSessionDuplicate).
			WithMeta("session_id", input.Session.SessionID)
	}
	r.sessions[input.Session.SessionID] = cloneSession(input.Session)

	return &CreateOutput{Session: cloneSession(input.Session)}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[input.SessionID]
	if !exists {
		return nil, notFound(input.SessionID)
	}

	return &GetOutput{Session: cloneSession(session)}, nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(_ context.Context, session *entities.DraftSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.SessionID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.SessionID]; !exists {
		return notFound(session.SessionID)
	}
	r.sessions[session.SessionID] = cloneSession(session)

	return nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[input.SessionID]
	if !exists {
		return nil, notFound(input.SessionID)
	}
	delete(r.sessions, input.SessionID)

	return &DeleteOutput{Session: session}, nil
}

// Len returns the number of stored sessions
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func notFound(sessionID string) *errors.Error {
	return errors.NotFound(errSessionNotFound).
		WithReason(errors.ReasonSessionNotFound).
		WithMeta("session_id", sessionID)
}
