package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// NotificationRepositoryIntegrationTestSuite verifies outbox persistence
// against a real PostgreSQL instance.
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
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) createPendingNotification() *notification.Notification {
	departure := kernel.DateFromTime(time.Now().AddDate(0, 0, 10))
	ret := kernel.DateFromTime(time.Now().AddDate(0, 0, 20))
	period, err := kernel.NewTravelPeriod(departure, ret)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Kyoto", period)
	suite.Require().NoError(err)
	_, err = aggregate.Cancel()
	suite.Require().NoError(err)

	n, err := notification.NewNotification(kernel.NewUUID(), aggregate)
	suite.Require().NoError(err)
	return n
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_RoundTripsThroughGetPending() {
	ctx := context.Background()
	pending := suite.createPendingNotification()

	suite.Require().NoError(suite.repository.Add(ctx, pending))

	loaded, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].ID().IsEqual(pending.ID()))
	suite.Equal(order.Canceled, loaded[0].Status())
	suite.Equal("Kyoto", loaded[0].Destination())
	suite.False(loaded[0].Dispatched())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetPending_ExcludesDispatched() {
	ctx := context.Background()

	dispatched := suite.createPendingNotification()
	suite.Require().NoError(suite.repository.Add(ctx, dispatched))
	dispatched.MarkDispatched()
	suite.Require().NoError(suite.repository.Update(ctx, dispatched))

	pending := suite.createPendingNotification()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	loaded, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].ID().IsEqual(pending.ID()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetPending_RespectsLimit() {
	ctx := context.Background()

	for range 3 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createPendingNotification()))
	}

	loaded, err := suite.repository.GetPending(ctx, 2)
	suite.Require().NoError(err)
	suite.Len(loaded, 2)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_MissingRow_Fails() {
	err := suite.repository.Update(context.Background(), suite.createPendingNotification())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
