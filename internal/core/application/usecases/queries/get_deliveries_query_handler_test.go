package queries_test

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/adapters/out/postgres/deliveryrepo"
	"bloodlink/internal/core/application/usecases/queries"
	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	handler    queries.GetDeliveriesQueryHandler
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDeliveriesQueryHandler(db)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)

	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, new(MockAggregateTracker))
}

func (suite *GetDeliveriesQueryHandlerTestSuite) seedDelivery(
	hospitalID kernel.UUID,
	centerID kernel.UUID,
	droneID *kernel.UUID,
	urgent bool,
	requestedAt time.Time,
) kernel.UUID {
	del, err := delivery.RestoreDelivery(
		kernel.NewUUID(), hospitalID, centerID, urgent, "",
		requestedAt, nil, delivery.Pending, droneID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), del))
	return del.ID()
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_OrdersUrgentFirstThenNewest() {
	hospitalID := kernel.NewUUID()
	centerID := kernel.NewUUID()
	now := time.Now()

	urgentOld := suite.seedDelivery(hospitalID, centerID, nil, true, now.Add(-3*time.Hour))
	calmNew := suite.seedDelivery(hospitalID, centerID, nil, false, now.Add(-time.Hour))
	calmOld := suite.seedDelivery(hospitalID, centerID, nil, false, now.Add(-2*time.Hour))

	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(urgentOld, result[0].ID)
	suite.True(result[0].Urgent)
	suite.Equal(calmNew, result[1].ID)
	suite.Equal(calmOld, result[2].ID)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_FiltersByDrone() {
	hospitalID := kernel.NewUUID()
	centerID := kernel.NewUUID()
	droneID := kernel.NewUUID()

	assigned := suite.seedDelivery(hospitalID, centerID, &droneID, false, time.Now())
	suite.seedDelivery(hospitalID, centerID, nil, false, time.Now())

	query, err := queries.NewGetDeliveriesQuery(&droneID, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(assigned, result[0].ID)
	suite.Require().NotNil(result[0].DroneID)
	suite.Equal(droneID, *result[0].DroneID)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_FiltersByHospitalAndCenter() {
	hospitalA := kernel.NewUUID()
	hospitalB := kernel.NewUUID()
	centerA := kernel.NewUUID()
	centerB := kernel.NewUUID()

	matching := suite.seedDelivery(hospitalA, centerA, nil, false, time.Now())
	suite.seedDelivery(hospitalA, centerB, nil, false, time.Now())
	suite.seedDelivery(hospitalB, centerA, nil, false, time.Now())

	query, err := queries.NewGetDeliveriesQuery(nil, &hospitalA, &centerA)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(matching, result[0].ID)

	byHospital, err := queries.NewGetDeliveriesQuery(nil, &hospitalA, nil)
	suite.Require().NoError(err)

	result, err = suite.handler.Handle(context.Background(), byHospital)
	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	suite.seedDelivery(kernel.NewUUID(), kernel.NewUUID(), nil, false, time.Now())

	unknownHospital := kernel.NewUUID()
	query, err := queries.NewGetDeliveriesQuery(nil, &unknownHospital, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetDeliveriesQuery

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().ErrorIs(err, queries.ErrGetDeliveriesQueryIsNotConstructed)
}

func TestGetDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveriesQueryHandlerTestSuite))
}
