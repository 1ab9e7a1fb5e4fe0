package gamesave

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/guildcraft/internal/redis"
)

const (
	// Key pattern: game_save:{slot_id}
	saveKeyPrefix = "game_save:"
	// Set of occupied slot IDs
	slotIndexKey = "game_save:slots"
)

// Config holds the dependencies for the Redis save repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed save repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  clk,
	}, nil
}

// Save writes the slot and its index entry in one transaction. A zero
// SavedAt is stamped with the current time.
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}
	if input.Data == nil || input.Data.GameState == nil {
		return nil, errors.InvalidArgument("save data with game state is required").
			WithReason(errors.ReasonInvalidSaveData)
	}

	data := *input.Data
	if data.SavedAt.IsZero() {
		data.SavedAt = r.clock.Now().UTC()
	}

	payload, err := json.Marshal(&data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal save data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, saveKeyPrefix+input.SlotID, payload, 0)
	pipe.SAdd(ctx, slotIndexKey, input.SlotID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to write save to Redis")
	}

	slog.Info("Game saved",
		"slot_id", input.SlotID,
		"day", data.GameState.CurrentDay,
		"rank", data.GameState.CurrentRank)

	return &SaveOutput{Data: &data}, nil
}

// Load reads a slot. Payloads that do not decode into save data are
// reported with the INVALID_SAVE_DATA reason.
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	payload, err := r.client.Get(ctx, saveKeyPrefix+input.SlotID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("save slot is empty").WithMeta("slot_id", input.SlotID)
		}
		return nil, errors.Wrap(err, "failed to read save from Redis")
	}

	var data entities.SaveData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode save data").
			WithReason(errors.ReasonInvalidSaveData).
			WithMeta("slot_id", input.SlotID)
	}
	if data.GameState == nil {
		return nil, errors.DataLoss("save data has no game state").
			WithReason(errors.ReasonInvalidSaveData).
			WithMeta("slot_id", input.SlotID)
	}

	return &LoadOutput{Data: &data}, nil
}

// Delete clears a slot
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, saveKeyPrefix+input.SlotID)
	pipe.SRem(ctx, slotIndexKey, input.SlotID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete save from Redis")
	}
	if del.Val() == 0 {
		return nil, errors.NotFound("save slot is empty").WithMeta("slot_id", input.SlotID)
	}

	return &DeleteOutput{}, nil
}

// ListSlots returns the occupied slot IDs
func (r *redisRepository) ListSlots(ctx context.Context) (*ListSlotsOutput, error) {
	slots, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list save slots")
	}
	sort.Strings(slots)

	return &ListSlotsOutput{SlotIDs: slots}, nil
}
