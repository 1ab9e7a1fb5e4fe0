package draftsession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	redisclient "github.com/KirkDiggler/guildcraft/internal/redis"
)

const (
	// draft_session:{session_id}, one JSON document per in-flight draft
	sessionKeyPrefix = "draft_session:"
	defaultTTL       = 30 * time.Minute
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL bounds how long an abandoned session lingers in Redis
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// NewRedisRepository creates a Redis-backed session arena, used when draft
// sessions must survive a host restart
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Create stores a new session, failing if the ID is already taken
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	payload, err := encodeSession(input.Session)
	if err != nil {
		return nil, err
	}

	ok, err := r.client.SetNX(ctx, r.buildKey(input.Session.SessionID), payload, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExists(errSessionDuplicate).
			WithMeta("session_id", input.Session.SessionID)
	}

	return &CreateOutput{Session: cloneSession(input.Session)}, nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	raw, err := r.client.Get(ctx, r.buildKey(input.SessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(input.SessionID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	session, err := decodeSession(raw, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: session}, nil
}

// Update replaces an existing session and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, session *entities.DraftSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.SessionID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}

	payload, err := encodeSession(session)
	if err != nil {
		return err
	}

	ok, err := r.client.SetXX(ctx, r.buildKey(session.SessionID), payload, r.ttl).Result()
	if err != nil {
		return errors.Wrap(err, "failed to update session in Redis")
	}
	if !ok {
		return notFound(session.SessionID)
	}

	return nil
}

// Delete removes a session and returns its final state
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	raw, err := r.client.GetDel(ctx, r.buildKey(input.SessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(input.SessionID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	session, err := decodeSession(raw, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{Session: session}, nil
}

func (r *redisRepository) buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func encodeSession(session *entities.DraftSession) ([]byte, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}
	return payload, nil
}

// decodeSession reports DATA_LOSS for a payload that no longer decodes.
func decodeSession(raw []byte, sessionID string) (*entities.DraftSession, error) {
	var session entities.DraftSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal session").
			WithMeta("session_id", sessionID)
	}
	return &session, nil
}
