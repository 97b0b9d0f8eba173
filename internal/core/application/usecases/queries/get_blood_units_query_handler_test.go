package queries_test

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/adapters/out/postgres/bloodrepo"
	"bloodlink/internal/core/application/usecases/queries"
	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BloodUnitQueriesTestSuite exercises both the singular and the listing
// blood unit query handlers against one seeded pool.
type BloodUnitQueriesTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *bloodrepo.GormBloodRepository
	getHandler  queries.GetBloodUnitQueryHandler
	listHandler queries.GetBloodUnitsQueryHandler
}

func (suite *BloodUnitQueriesTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&bloodrepo.UnitDTO{})
	suite.Require().NoError(err)

	suite.getHandler = queries.NewGetBloodUnitQueryHandler(db)
	suite.listHandler = queries.NewGetBloodUnitsQueryHandler(db)
}

func (suite *BloodUnitQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *BloodUnitQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE blood_units").Error
	suite.Require().NoError(err)

	suite.repository = bloodrepo.NewGormBloodRepository(suite.db, new(MockAggregateTracker))
}

func (suite *BloodUnitQueriesTestSuite) seedUnit(
	bloodType blood.Type,
	deliveryID *kernel.UUID,
) kernel.UUID {
	unit, err := blood.RestoreUnit(kernel.NewUUID(), bloodType, deliveryID, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), unit))
	return unit.ID()
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnit_AvailableUnit_Roundtrip() {
	unitID := suite.seedUnit(blood.ABPositive, nil)

	query, err := queries.NewGetBloodUnitQuery(unitID)
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(unitID, result.ID)
	suite.Equal(blood.ABPositive.String(), result.BloodType)
	suite.Nil(result.DeliveryID)
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnit_ReservedUnit_CarriesDeliveryID() {
	deliveryID := kernel.NewUUID()
	unitID := suite.seedUnit(blood.ONegative, &deliveryID)

	query, err := queries.NewGetBloodUnitQuery(unitID)
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().NotNil(result.DeliveryID)
	suite.Equal(deliveryID, *result.DeliveryID)
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnit_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetBloodUnitQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// same param name as the blood repository reports
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("bloodUnit", notFound.ParamName)
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnits_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetBloodUnitsQuery(nil, nil, false)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnits_FiltersByType() {
	suite.seedUnit(blood.ONegative, nil)
	suite.seedUnit(blood.ONegative, nil)
	suite.seedUnit(blood.ABPositive, nil)

	oNegative := blood.ONegative
	query, err := queries.NewGetBloodUnitsQuery(&oNegative, nil, false)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, unit := range result {
		suite.Equal(blood.ONegative.String(), unit.BloodType)
	}
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnits_FiltersByDelivery() {
	deliveryID := kernel.NewUUID()
	reserved := suite.seedUnit(blood.BPositive, &deliveryID)
	suite.seedUnit(blood.BPositive, nil)

	query, err := queries.NewGetBloodUnitsQuery(nil, &deliveryID, false)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(reserved, result[0].ID)
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnits_OnlyAvailable_ExcludesReserved() {
	deliveryID := kernel.NewUUID()
	suite.seedUnit(blood.APositive, &deliveryID)
	available := suite.seedUnit(blood.APositive, nil)

	aPositive := blood.APositive
	query, err := queries.NewGetBloodUnitsQuery(&aPositive, nil, true)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(available, result[0].ID)
	suite.Nil(result[0].DeliveryID)
}

func (suite *BloodUnitQueriesTestSuite) TestGetBloodUnits_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetBloodUnitsQuery

	_, err := suite.listHandler.Handle(context.Background(), invalidQuery)
	suite.Require().ErrorIs(err, queries.ErrGetBloodUnitsQueryIsNotConstructed)
}

func TestBloodUnitQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(BloodUnitQueriesTestSuite))
}
