package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/adapters/out/postgres/notificationrepo"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"
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

// NotificationRepositoryIntegrationTestSuite verifies notification
// persistence, including the JSON payload roundtrip and the user scoping of
// lookups.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) addNotification(userID kernel.UUID) *notification.Notification {
	ntf, err := notification.NewNotification(
		kernel.NewUUID(), userID, kernel.NewUUID(),
		"Delivery completed",
		"Delivery 42 (regular) is now delivered",
		time.Now())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", ntf.ID(), ntf).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), ntf))
	return ntf
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAndGetForUser_Roundtrip() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	ntf := suite.addNotification(userID)

	retrieved, err := suite.repository.GetForUser(ctx, ntf.ID(), userID)
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(ntf.ID()))
	suite.True(retrieved.User().IsEqual(userID))
	suite.Equal("Delivery completed", retrieved.Title())
	suite.Equal("Delivery 42 (regular) is now delivered", retrieved.Message())
	suite.False(retrieved.IsRead())
	suite.Nil(retrieved.ReadAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetForUser_WrongUser_ReturnsNotFoundError() {
	ctx := context.Background()
	ntf := suite.addNotification(kernel.NewUUID())

	retrieved, err := suite.repository.GetForUser(ctx, ntf.ID(), kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_PersistsReadState() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	ntf := suite.addNotification(userID)

	readAt := time.Now()
	changed, err := ntf.MarkRead(readAt)
	suite.Require().NoError(err)
	suite.True(changed)

	suite.tracker.On("TrackAggregate", ntf.ID(), ntf).Once()
	suite.Require().NoError(suite.repository.Update(ctx, ntf))

	retrieved, err := suite.repository.GetForUser(ctx, ntf.ID(), userID)
	suite.Require().NoError(err)
	suite.True(retrieved.IsRead())
	suite.Require().NotNil(retrieved.ReadAt())
	suite.WithinDuration(readAt, *retrieved.ReadAt(), time.Second)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkAllRead_CountsAndIsIdempotent() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	suite.addNotification(userID)
	suite.addNotification(userID)
	suite.addNotification(kernel.NewUUID()) // other recipient stays unread

	count, err := suite.repository.MarkAllRead(ctx, userID, time.Now())
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	again, err := suite.repository.MarkAllRead(ctx, userID, time.Now())
	suite.Require().NoError(err)
	suite.Equal(int64(0), again)
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
