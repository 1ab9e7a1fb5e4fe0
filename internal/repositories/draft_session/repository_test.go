package draftsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	draftsession "github.com/KirkDiggler/guildcraft/internal/repositories/draft_session"
	"github.com/KirkDiggler/guildcraft/internal/testutils"
	"github.com/KirkDiggler/guildcraft/internal/testutils/builders"
)

// RepositoryTestSuite runs the same contract against both implementations
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (draftsession.Repository, func())
	repo    draftsession.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	session := builders.NewDraftSessionBuilder().WithID("draft_1").Build()

	created, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().NoError(err)
	s.Equal(session.SessionID, created.Session.SessionID)

	got, err := s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "draft_1"})
	s.Require().NoError(err)
	s.Equal(session, got.Session)
}

func (s *RepositoryTestSuite) TestCreateRejectsDuplicate() {
	session := builders.NewDraftSessionBuilder().WithID("draft_1").Build()
	_, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	s.Run("nil session", func() {
		_, err := s.repo.Create(s.ctx, draftsession.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty ID", func() {
		session := builders.NewDraftSessionBuilder().WithID("").Build()
		_, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.True(errors.HasReason(err, errors.ReasonSessionNotFound))
}

func (s *RepositoryTestSuite) TestReturnedSessionIsACopy() {
	session := builders.NewDraftSessionBuilder().WithID("draft_1").Build()
	_, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "draft_1"})
	s.Require().NoError(err)
	got.Session.CurrentRound = 99
	got.Session.CurrentOptions[0].MaterialID = "mutated"

	again, err := s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "draft_1"})
	s.Require().NoError(err)
	s.Equal(1, again.Session.CurrentRound)
	s.Equal("herb_common", again.Session.CurrentOptions[0].MaterialID)
}

func (s *RepositoryTestSuite) TestUpdate() {
	session := builders.NewDraftSessionBuilder().WithID("draft_1").Build()
	_, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().NoError(err)

	session.CurrentRound = 2
	session.SelectedMaterials = append(session.SelectedMaterials, entities.MaterialInstance{
		InstanceID: "mat_1", MaterialID: "herb_common", Quality: entities.QualityC,
	})
	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err := s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "draft_1"})
	s.Require().NoError(err)
	s.Equal(2, got.Session.CurrentRound)
	s.Len(got.Session.SelectedMaterials, 1)
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	session := builders.NewDraftSessionBuilder().WithID("ghost").Build()
	err := s.repo.Update(s.ctx, session)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	session := builders.NewDraftSessionBuilder().WithID("draft_1").Complete().Build()
	_, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().NoError(err)

	deleted, err := s.repo.Delete(s.ctx, draftsession.DeleteInput{SessionID: "draft_1"})
	s.Require().NoError(err)
	s.True(deleted.Session.IsComplete)

	_, err = s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "draft_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, draftsession.DeleteInput{SessionID: "draft_1"})
	s.True(errors.IsNotFound(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (draftsession.Repository, func()) {
			return draftsession.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (draftsession.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := draftsession.NewRedisRepository(&draftsession.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("failed to create repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

type RedisTTLTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	repo    draftsession.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisTTLTestSuite) SetupTest() {
	c, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	repo, err := draftsession.NewRedisRepository(&draftsession.RedisConfig{
		Client: c,
		TTL:    time.Minute,
	})
	s.Require().NoError(err)

	s.mr = mr
	s.repo = repo
	s.cleanup = cleanup
	s.ctx = context.Background()
}

func (s *RedisTTLTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisTTLTestSuite) TestSessionExpires() {
	session := builders.NewDraftSessionBuilder().WithID("draft_ttl").Build()
	_, err := s.repo.Create(s.ctx, draftsession.CreateInput{Session: session})
	s.Require().NoError(err)
	s.True(s.mr.Exists("draft_session:draft_ttl"))

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "draft_ttl"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisTTLTestSuite) TestCorruptedPayload() {
	s.Require().NoError(s.mr.Set("draft_session:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, draftsession.GetInput{SessionID: "bad"})
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func TestRedisTTL(t *testing.T) {
	suite.Run(t, new(RedisTTLTestSuite))
}

func TestNewRedisRepositoryValidation(t *testing.T) {
	_, err := draftsession.NewRedisRepository(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	_, err = draftsession.NewRedisRepository(&draftsession.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
