package bloodrepo_test

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/adapters/out/postgres/bloodrepo"
	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// BloodRepositoryIntegrationTestSuite verifies blood unit persistence against
// a real PostgreSQL instance, including the optimistic locking behavior the
// allocation path depends on.
type BloodRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bloodrepo.GormBloodRepository
	tracker    *MockAggregateTracker
}

func (suite *BloodRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&bloodrepo.UnitDTO{}))
}

func (suite *BloodRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE blood_units").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bloodrepo.NewGormBloodRepository(suite.db, suite.tracker)
}

func (suite *BloodRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BloodRepositoryIntegrationTestSuite) addUnit(bloodType blood.Type) *blood.Unit {
	unit, err := blood.NewUnit(kernel.NewUUID(), bloodType)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", unit.ID(), unit).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), unit))
	return unit
}

func (suite *BloodRepositoryIntegrationTestSuite) TestAddAndGet_Roundtrip() {
	ctx := context.Background()
	unit := suite.addUnit(blood.ONegative)

	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(unit.ID()))
	suite.Equal(blood.ONegative, retrieved.BloodType())
	suite.True(retrieved.IsAvailable())
	suite.Equal(0, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloodRepositoryIntegrationTestSuite) TestGet_NonExistentUnit_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BloodRepositoryIntegrationTestSuite) TestUpdate_AssignsDeliveryAndBumpsVersion() {
	ctx := context.Background()
	unit := suite.addUnit(blood.APositive)
	deliveryID := kernel.NewUUID()

	suite.Require().NoError(unit.AssignTo(deliveryID))
	suite.tracker.On("TrackAggregate", unit.ID(), unit).Once()
	suite.Require().NoError(suite.repository.Update(ctx, unit))

	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())
	suite.Require().NotNil(retrieved.Delivery())
	suite.True(retrieved.Delivery().IsEqual(deliveryID))
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloodRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()
	unit := suite.addUnit(blood.APositive)

	// load the same unit twice and update through the first copy
	first, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AssignTo(kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.AssignTo(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	// the winner's assignment stands
	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Delivery().IsEqual(*first.Delivery()))
}

func (suite *BloodRepositoryIntegrationTestSuite) TestGetAvailableByType_FiltersAndLimits() {
	ctx := context.Background()

	suite.addUnit(blood.BNegative)
	suite.addUnit(blood.BNegative)
	suite.addUnit(blood.BNegative)
	suite.addUnit(blood.ABPositive)

	assigned := suite.addUnit(blood.BNegative)
	suite.Require().NoError(assigned.AssignTo(kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", assigned.ID(), assigned).Once()
	suite.Require().NoError(suite.repository.Update(ctx, assigned))

	available, err := suite.repository.GetAvailableByType(ctx, blood.BNegative, 10)
	suite.Require().NoError(err)
	suite.Len(available, 3)
	for _, unit := range available {
		suite.Equal(blood.BNegative, unit.BloodType())
		suite.True(unit.IsAvailable())
	}

	limited, err := suite.repository.GetAvailableByType(ctx, blood.BNegative, 2)
	suite.Require().NoError(err)
	suite.Len(limited, 2)
}

func (suite *BloodRepositoryIntegrationTestSuite) TestGetByDelivery_ReturnsAssignedUnits() {
	ctx := context.Background()
	deliveryID := kernel.NewUUID()

	for range 2 {
		unit := suite.addUnit(blood.OPositive)
		suite.Require().NoError(unit.AssignTo(deliveryID))
		suite.tracker.On("TrackAggregate", unit.ID(), unit).Once()
		suite.Require().NoError(suite.repository.Update(ctx, unit))
	}
	suite.addUnit(blood.OPositive)

	units, err := suite.repository.GetByDelivery(ctx, deliveryID)
	suite.Require().NoError(err)
	suite.Len(units, 2)

	empty, err := suite.repository.GetByDelivery(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func TestBloodRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BloodRepositoryIntegrationTestSuite))
}
