package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClientRequiresAddr() {
	_, err := redis.NewClient(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = redis.NewClient(&redis.Options{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestConnect() {
	client, err := redis.Connect(context.Background(), &redis.Options{Addr: s.server.Addr()})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Require().NoError(client.Set(context.Background(), "guild", "open", 0).Err())
	value, err := s.server.Get("guild")
	s.Require().NoError(err)
	s.Assert().Equal("open", value)
}

func (s *ClientTestSuite) TestConnectSelectsDB() {
	client, err := redis.Connect(context.Background(), &redis.Options{Addr: s.server.Addr(), DB: 3})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Require().NoError(client.Set(context.Background(), "slot", "1", 0).Err())
	s.Assert().True(s.server.DB(3).Exists("slot"))
}

func (s *ClientTestSuite) TestConnectUnreachable() {
	addr := s.server.Addr()
	s.server.Close()

	_, err := redis.Connect(context.Background(), &redis.Options{
		Addr:           addr,
		ConnectTimeout: 200 * time.Millisecond,
	})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Assert().Equal(addr, errors.GetMeta(err)["addr"])
}
