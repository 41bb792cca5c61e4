package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"tms/internal/adapters/out/postgres/driverrepo"
	"tms/internal/adapters/out/postgres/orderrepo"
	"tms/internal/adapters/out/postgres/pgtest"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	driver    *driver.Driver
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderNumberSequenceDTO{},
	))
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE transport_orders, drivers, order_number_sequences CASCADE").Error)

	d, err := driver.NewDriver(kernel.NewUUID(), driver.Draft{
		Name: "Ana Souza", CPF: "234.567.890-11", CNHNumber: "CNH00002", CNHCategory: "D",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(driverrepo.NewGormDriverRepository(suite.db, noopTracker{}).Add(ctx, d))
	suite.driver = d

	suite.repo = orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
}

func (suite *OrderRepositoryTestSuite) newOrder(seq int64, driverID kernel.UUID) *order.Order {
	number, err := order.NewNumber(seq)
	suite.Require().NoError(err)

	weight := 800.5
	notes := "Cuidado com objetos frágeis"
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Draft{
		DriverID:           driverID.String(),
		OriginAddress:      "Rua Augusta, 500 - São Paulo/SP",
		DestinationAddress: "Av. Brasil, 900 - Rio de Janeiro/RJ",
		CargoDescription:   "Móveis e utensílios",
		WeightKg:           &weight,
		ScheduledDate:      "2025-02-02",
		Notes:              &notes,
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.newOrder(1, suite.driver.ID())

	suite.Require().NoError(suite.repo.Add(ctx, o))

	got, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.Equal("OC-00001", got.Number().String())
	suite.Equal(suite.driver.ID(), got.DriverID())
	suite.Equal(order.Pending, got.Status())
	suite.Require().NotNil(got.WeightKg())
	suite.InDelta(800.5, *got.WeightKg(), 0.001)
	suite.Equal(time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), got.ScheduledDate())
	suite.Require().NotNil(got.Notes())
	suite.Equal("Cuidado com objetos frágeis", *got.Notes())
}

func (suite *OrderRepositoryTestSuite) TestGet_Unknown() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsStatusAndClearedFields() {
	ctx := context.Background()
	o := suite.newOrder(1, suite.driver.ID())
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(o.Advance())
	suite.Require().NoError(o.Apply(order.Patch{
		WeightKg: kernel.Null[float64](),
		Notes:    kernel.Null[string](),
	}))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	got, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Collecting, got.Status())
	suite.Nil(got.WeightKg())
	suite.Nil(got.Notes())
	suite.Equal("OC-00001", got.Number().String())
}

func (suite *OrderRepositoryTestSuite) TestAdd_UnknownDriverBecomesFieldError() {
	o := suite.newOrder(1, kernel.NewUUID())

	err := suite.repo.Add(context.Background(), o)

	var verr *errs.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal(map[string][]string{"driver_id": {"The selected driver id is invalid."}}, verr.Fields())
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateNumber() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(7, suite.driver.ID())))

	err := suite.repo.Add(ctx, suite.newOrder(7, suite.driver.ID()))

	suite.Require().Error(err)
	suite.Contains(err.Error(), "order number already issued")
}

func (suite *OrderRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.newOrder(1, suite.driver.ID())
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(suite.repo.Delete(ctx, o.ID()))

	_, err := suite.repo.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repo.Delete(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestDriverWithOrdersCannotBeDeleted() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(1, suite.driver.ID())))

	err := suite.db.WithContext(ctx).Exec("DELETE FROM drivers WHERE id = ?", suite.driver.ID().Bytes()).Error

	suite.Require().Error(err)
}

func (suite *OrderRepositoryTestSuite) TestSequence_Next() {
	ctx := context.Background()
	seq := orderrepo.NewGormOrderNumberSequence(suite.db)

	for want := int64(1); want <= 3; want++ {
		got, err := seq.Next(ctx)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}
}

func (suite *OrderRepositoryTestSuite) TestSequence_RollbackReturnsValue() {
	ctx := context.Background()

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		v, err := orderrepo.NewGormOrderNumberSequence(tx).Next(ctx)
		suite.Require().NoError(err)
		suite.Equal(int64(1), v)
		return gorm.ErrInvalidTransaction
	})
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	v, err := orderrepo.NewGormOrderNumberSequence(suite.db).Next(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), v)
}

func (suite *OrderRepositoryTestSuite) TestSequence_ConcurrentCallersGetDistinctValues() {
	ctx := context.Background()
	const callers = 20

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		values = make(map[int64]struct{}, callers)
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = suite.db.Transaction(func(tx *gorm.DB) error {
				v, err := orderrepo.NewGormOrderNumberSequence(tx).Next(ctx)
				if err != nil {
					return err
				}
				mu.Lock()
				values[v] = struct{}{}
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	suite.Len(values, callers)
	for v := int64(1); v <= callers; v++ {
		suite.Contains(values, v)
	}
}

func (suite *OrderRepositoryTestSuite) TestSequence_SeedContinuesAfterStoredNumbers() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(3, suite.driver.ID())))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(12, suite.driver.ID())))
	seq := orderrepo.NewGormOrderNumberSequence(suite.db)

	last, err := seq.Seed(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(12), last)

	next, err := seq.Next(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(13), next)
}

func (suite *OrderRepositoryTestSuite) TestSequence_SeedNeverLowersCounter() {
	ctx := context.Background()
	seq := orderrepo.NewGormOrderNumberSequence(suite.db)
	for range 5 {
		_, err := seq.Next(ctx)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(2, suite.driver.ID())))

	last, err := seq.Seed(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(5), last)
}

func (suite *OrderRepositoryTestSuite) TestSequence_SeedOnEmptyStore() {
	last, err := orderrepo.NewGormOrderNumberSequence(suite.db).Seed(context.Background())

	suite.Require().NoError(err)
	suite.Equal(int64(0), last)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
