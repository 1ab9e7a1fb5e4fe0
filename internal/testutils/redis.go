package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/guildcraft/internal/redis"
)

// CreateTestRedisClient returns a client backed by an in-memory miniredis.
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, _, cleanup := CreateTestRedisServer(t)
	return client, cleanup
}

// CreateTestRedisServer also hands back the miniredis instance for tests
// that fast-forward session TTLs or plant corrupt save payloads.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	server, err := miniredis.Run()
	require.NoError(t, err, "start miniredis")

	client, err := redis.NewClient(&redis.Options{Addr: server.Addr()})
	require.NoError(t, err, "create redis client")

	return client, server, func() {
		_ = client.Close()
		server.Close()
	}
}
