package userrepo_test

import (
	"context"
	"testing"
	"time"

	"tms/internal/adapters/out/postgres/pgtest"
	"tms/internal/adapters/out/postgres/userrepo"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *userrepo.GormUserRepository
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &userrepo.RevokedTokenDTO{}))
	suite.repo = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, revoked_tokens").Error)
}

func (suite *UserRepositoryTestSuite) TestEnsureUser_CreatesOnce() {
	ctx := context.Background()

	first, created, err := suite.repo.EnsureUser(ctx, "Admin", " Admin@Example.com ", "hash-1")
	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal("admin@example.com", first.Email)

	second, created, err := suite.repo.EnsureUser(ctx, "Other", "admin@example.com", "hash-2")
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(first.ID, second.ID)
	suite.Equal("hash-1", second.PasswordHash)
	suite.Equal("Admin", second.Name)
}

func (suite *UserRepositoryTestSuite) TestFindByEmail_IgnoresCase() {
	ctx := context.Background()
	u, _, err := suite.repo.EnsureUser(ctx, "Admin", "admin@example.com", "hash")
	suite.Require().NoError(err)

	got, err := suite.repo.FindByEmail(ctx, "ADMIN@example.com")
	suite.Require().NoError(err)
	suite.Equal(u.ID, got.ID)

	_, err = suite.repo.FindByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryTestSuite) TestFindByID() {
	ctx := context.Background()
	u, _, err := suite.repo.EnsureUser(ctx, "Admin", "admin@example.com", "hash")
	suite.Require().NoError(err)

	got, err := suite.repo.FindByID(ctx, u.ID)
	suite.Require().NoError(err)
	suite.Equal(u.Email, got.Email)

	_, err = suite.repo.FindByID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryTestSuite) TestRevocation() {
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	revoked, err := suite.repo.IsRevoked(ctx, "jti-1")
	suite.Require().NoError(err)
	suite.False(revoked)

	suite.Require().NoError(suite.repo.Revoke(ctx, "jti-1", expires))
	suite.Require().NoError(suite.repo.Revoke(ctx, "jti-1", expires))

	revoked, err = suite.repo.IsRevoked(ctx, "jti-1")
	suite.Require().NoError(err)
	suite.True(revoked)
}

func (suite *UserRepositoryTestSuite) TestPurgeExpired() {
	ctx := context.Background()
	now := time.Now()
	suite.Require().NoError(suite.repo.Revoke(ctx, "expired", now.Add(-time.Minute)))
	suite.Require().NoError(suite.repo.Revoke(ctx, "live", now.Add(time.Hour)))

	n, err := suite.repo.PurgeExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)

	revoked, err := suite.repo.IsRevoked(ctx, "expired")
	suite.Require().NoError(err)
	suite.False(revoked)

	revoked, err = suite.repo.IsRevoked(ctx, "live")
	suite.Require().NoError(err)
	suite.True(revoked)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
