package driverrepo_test

import (
	"context"
	"testing"

	"tms/internal/adapters/out/postgres/driverrepo"
	"tms/internal/adapters/out/postgres/pgtest"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type tracker struct {
	ids []kernel.UUID
}

func (t *tracker) TrackAggregate(id kernel.UUID, _ any) {
	t.ids = append(t.ids, id)
}

type DriverRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *tracker
	repo      *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers CASCADE").Error)
	suite.tracker = &tracker{}
	suite.repo = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryTestSuite) newDriver(cpf, cnh string) *driver.Driver {
	phone := "(11) 91111-1111"
	d, err := driver.NewDriver(kernel.NewUUID(), driver.Draft{
		Name:        "Carlos Silva",
		CPF:         cpf,
		CNHNumber:   cnh,
		CNHCategory: "E",
		Phone:       &phone,
	})
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	d := suite.newDriver("123.456.789-00", "CNH00001")

	suite.Require().NoError(suite.repo.Add(ctx, d))

	got, err := suite.repo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(d.ID(), got.ID())
	suite.Equal("Carlos Silva", got.Name())
	suite.Equal("123.456.789-00", got.CPF())
	suite.Equal("CNH00001", got.CNHNumber())
	suite.Equal(driver.CategoryE, got.CNHCategory())
	suite.Require().NotNil(got.Phone())
	suite.Equal("(11) 91111-1111", *got.Phone())
	suite.True(got.IsActive())
	suite.Equal([]kernel.UUID{d.ID()}, suite.tracker.ids)
}

func (suite *DriverRepositoryTestSuite) TestGet_Unknown() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryTestSuite) TestUpdate_StoresFalseAndNull() {
	ctx := context.Background()
	d := suite.newDriver("123.456.789-00", "CNH00001")
	suite.Require().NoError(suite.repo.Add(ctx, d))

	d.ToggleActive()
	suite.Require().NoError(d.Apply(driver.Patch{Phone: kernel.Null[string]()}))
	suite.Require().NoError(suite.repo.Update(ctx, d))

	got, err := suite.repo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(got.IsActive())
	suite.Nil(got.Phone())
}

func (suite *DriverRepositoryTestSuite) TestUpdate_Unknown() {
	d := suite.newDriver("123.456.789-00", "CNH00001")

	err := suite.repo.Update(context.Background(), d)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryTestSuite) TestAdd_DuplicateCPFBecomesFieldError() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newDriver("123.456.789-00", "CNH00001")))

	err := suite.repo.Add(ctx, suite.newDriver("123.456.789-00", "CNH00002"))

	var verr *errs.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal(map[string][]string{"cpf": {"The cpf has already been taken."}}, verr.Fields())
}

func (suite *DriverRepositoryTestSuite) TestAdd_DuplicateCNHNumberBecomesFieldError() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newDriver("123.456.789-00", "CNH00001")))

	err := suite.repo.Add(ctx, suite.newDriver("234.567.890-11", "CNH00001"))

	var verr *errs.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal(map[string][]string{"cnh_number": {"The cnh number has already been taken."}}, verr.Fields())
}

func (suite *DriverRepositoryTestSuite) TestExists() {
	ctx := context.Background()
	d := suite.newDriver("123.456.789-00", "CNH00001")
	suite.Require().NoError(suite.repo.Add(ctx, d))

	ok, err := suite.repo.Exists(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repo.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *DriverRepositoryTestSuite) TestExistsWith_ExcludesSelf() {
	ctx := context.Background()
	d := suite.newDriver("123.456.789-00", "CNH00001")
	suite.Require().NoError(suite.repo.Add(ctx, d))
	id := d.ID()

	ok, err := suite.repo.ExistsWithCPF(ctx, "123.456.789-00", nil)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repo.ExistsWithCPF(ctx, "123.456.789-00", &id)
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.repo.ExistsWithCNHNumber(ctx, "CNH00001", nil)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repo.ExistsWithCNHNumber(ctx, "CNH00001", &id)
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.repo.ExistsWithCNHNumber(ctx, "CNH99999", nil)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *DriverRepositoryTestSuite) TestExistsWith_CountsInactiveDrivers() {
	ctx := context.Background()
	d := suite.newDriver("123.456.789-00", "CNH00001")
	d.ToggleActive()
	suite.Require().NoError(suite.repo.Add(ctx, d))

	ok, err := suite.repo.ExistsWithCPF(ctx, "123.456.789-00", nil)
	suite.Require().NoError(err)
	suite.True(ok)
}

func TestDriverRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryTestSuite))
}
