package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/notifications"
	"github.com/KirkDiggler/guildcraft/internal/redis"
	draftsession "github.com/KirkDiggler/guildcraft/internal/repositories/draft_session"
	gamesave "github.com/KirkDiggler/guildcraft/internal/repositories/game_save"
)

func loadCatalog() (*masterdata.Catalog, error) {
	if cfg.MasterDataPath == "" {
		return masterdata.LoadDefault()
	}
	slog.Info("Loading master data", "path", cfg.MasterDataPath)
	return masterdata.LoadFile(cfg.MasterDataPath)
}

func connectRedis(ctx context.Context) (redis.Client, error) {
	return redis.Connect(ctx, &redis.Options{
		Addr:           cfg.Redis.Addr,
		Password:       cfg.Redis.Password,
		DB:             cfg.Redis.DB,
		UseTLS:         cfg.Redis.UseTLS,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	})
}

type stores struct {
	sessions draftsession.Repository
	saves    gamesave.Repository
}

func newStores(client redis.Client) (*stores, error) {
	sessions, err := draftsession.NewRedisRepository(&draftsession.RedisConfig{
		Client: client,
		TTL:    cfg.Gathering.SessionTTL,
	})
	if err != nil {
		return nil, err
	}

	saves, err := gamesave.NewRedisRepository(&gamesave.Config{Client: client})
	if err != nil {
		return nil, err
	}

	return &stores{sessions: sessions, saves: saves}, nil
}

// newEventLog publishes over an rpg-toolkit bus and logs every notification
func newEventLog(gameID string) (*notifications.Bus, error) {
	bus, err := notifications.NewBus(&notifications.Config{
		EventBus: events.NewBus(),
		GameID:   gameID,
	})
	if err != nil {
		return nil, err
	}

	for _, eventType := range notifications.AllEventTypes {
		bus.Subscribe(eventType, func(_ context.Context, n notifications.Notification) error {
			slog.Debug("Notification",
				"game_id", gameID,
				"event_type", n.Type,
				"payload", fmt.Sprintf("%+v", n.Payload))
			return nil
		})
	}
	return bus, nil
}
