package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"agrifarma/config"
	"agrifarma/internal/domain/entity"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/infra/persistence/sqlite"
	"agrifarma/internal/infra/persistence/store"
	"agrifarma/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type AdminCommandSuite struct {
	suite.Suite

	ctx  context.Context
	name string
	// keeper holds the shared in-memory database open between commands.
	keeper *gorm.DB
}

func TestAdminCommandSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandSuite))
}

func (s *AdminCommandSuite) SetupTest() {
	s.ctx = context.Background()
	s.name = uuid.NewString()
	s.keeper = s.openDB()
	s.Require().NoError(store.Migrate(s.keeper))
}

func (s *AdminCommandSuite) TearDownTest() {
	s.Require().NoError(closeDB(s.keeper))
}

func (s *AdminCommandSuite) openDB() *gorm.DB {
	db, err := sqlite.OpenMemory(s.name, &gorm.Config{Logger: logger.Discard})
	s.Require().NoError(err)

	return store.Configure(db, logger.Discard)
}

func (s *AdminCommandSuite) openEnv(context.Context) (*environment, error) {
	db := s.openDB()

	return &environment{
		cfg: &config.Config{
			SecretKey: config.SecretKeyConfig{Session: "session-secret", PasswordReset: "reset-secret"},
			Auth:      &config.AuthConfig{BcryptCost: 4, SessionTTL: time.Hour, MinPasswordLength: 6},
		},
		logger:  slog.New(slog.DiscardHandler),
		db:      db,
		storage: storage.NewWithBucket(memblob.OpenBucket(nil)),
		close:   func() error { return closeDB(db) },
	}, nil
}

func (s *AdminCommandSuite) run(args ...string) (string, error) {
	cmd := newRootCommand(s.openEnv)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(s.ctx)

	return out.String(), err
}

func (s *AdminCommandSuite) createUser(username string, applied bool) *entity.User {
	user := &entity.User{
		Username:           username,
		Email:              username + "@example.com",
		PasswordHash:       "x",
		IsConsultant:       applied,
		ConsultantCategory: "Crops",
	}
	s.Require().NoError(store.NewUserRepository(s.keeper).Create(s.ctx, user))

	return user
}

func (s *AdminCommandSuite) TestMigrate() {
	out, err := s.run("migrate")

	s.Require().NoError(err)
	s.Contains(out, "Schema is up to date.")
}

func (s *AdminCommandSuite) TestConsultantApprove() {
	applicant := s.createUser("ayesha", true)

	out, err := s.run("consultant", "approve", "--email", applicant.Email)
	s.Require().NoError(err)
	s.Contains(out, "Approved ayesha as a Crops consultant.")

	approved, err := store.NewUserRepository(s.keeper).ListApprovedConsultants(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(approved, 1)
	s.Equal(applicant.ID, approved[0].ID)
}

func (s *AdminCommandSuite) TestConsultantApprove_RequiresApplication() {
	member := s.createUser("bilal", false)

	_, err := s.run("consultant", "approve", "--email", member.Email)

	s.Require().Error(err)
	s.Contains(err.Error(), "has not applied to become a consultant")
}

func (s *AdminCommandSuite) TestConsultantApprove_UnknownEmail() {
	_, err := s.run("consultant", "approve", "--email", "nobody@example.com")

	s.Require().Error(err)
	s.Equal("No account found with that email.", err.Error())
}

func (s *AdminCommandSuite) TestCategoryAdd() {
	out, err := s.run("category", "add", "--name", "Seeds", "--type", "product")
	s.Require().NoError(err)
	s.Contains(out, `Created product category "Seeds"`)

	categories, err := store.NewCategoryRepository(s.keeper).ListByType(s.ctx, entity.CategoryTypeProduct)
	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.Equal("Seeds", categories[0].Name)
}

func (s *AdminCommandSuite) TestCategoryAdd_RejectsUnknownType() {
	_, err := s.run("category", "add", "--name", "Seeds", "--type", "recipe")

	s.Require().Error(err)
	s.Equal("Category type must be post or product.", err.Error())
}

func (s *AdminCommandSuite) TestSessionsPurge() {
	user := s.createUser("chen", false)
	sessions := store.NewSessionRepository(s.keeper)
	s.Require().NoError(sessions.Create(s.ctx, &entity.Session{UserID: user.ID, TokenHash: "old", ExpiresAt: time.Now().Add(-time.Hour)}))
	s.Require().NoError(sessions.Create(s.ctx, &entity.Session{UserID: user.ID, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}))

	out, err := s.run("sessions", "purge")
	s.Require().NoError(err)
	s.Contains(out, "Purged 1 expired sessions.")

	_, err = sessions.FindByHash(s.ctx, "live")
	s.NoError(err)
}

func (s *AdminCommandSuite) TestUserDelete() {
	user := s.createUser("dana", false)

	out, err := s.run("user", "delete", "--email", user.Email)
	s.Require().NoError(err)
	s.Contains(out, "Deleted dana@example.com.")

	_, err = store.NewUserRepository(s.keeper).FindByID(s.ctx, user.ID)
	s.ErrorIs(err, repository.ErrUserNotFound)
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand(nil)

	for _, path := range [][]string{
		{"migrate"},
		{"consultant", "approve"},
		{"category", "add"},
		{"sessions", "purge"},
		{"user", "delete"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
}
