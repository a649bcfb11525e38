package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfoodie/internal/adapters/out/postgres/deliveryrepo"
	"fastfoodie/internal/adapters/out/postgres/orderrepo"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Deliveries are migrated too: the awaiting-dispatch query checks for
	// the absence of a delivery record.
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, payments, deliveries RESTART IDENTITY CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsGraph() {
	ctx := context.Background()

	testOrder := suite.newTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(testOrder.ID())

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderItemDTO{}, 2)
	suite.assertCount(&orderrepo.PaymentDTO{}, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsFullAggregate() {
	ctx := context.Background()

	original := suite.newTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(int64(5), retrieved.CustomerID())
	suite.Equal(int64(3), retrieved.RestaurantID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.True(retrieved.TotalAmount().Equal(decimal.NewFromFloat(21.50)))
	suite.Equal("12 Main St", retrieved.DeliveryAddress())
	suite.Len(retrieved.Items(), 2)
	suite.Equal(order.DefaultPaymentMethod, retrieved.Payment().Method())
	suite.Equal("pending", retrieved.Payment().Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), 999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	testOrder := suite.newTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Preparing))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	testOrder := suite.newTestOrder()

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingDispatch_ReturnsUndispatchedInOrder() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(4)

	undispatched1 := suite.addOrderWithStatus(ctx, order.OutForDelivery)
	undispatched2 := suite.addOrderWithStatus(ctx, order.OutForDelivery)
	dispatched := suite.addOrderWithStatus(ctx, order.OutForDelivery)
	suite.addOrderWithStatus(ctx, order.Pending)

	// The third order already has a delivery record, so it must be skipped.
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO deliveries (order_id, rider_id, status) VALUES (?, 1, 'picked_up')",
		dispatched.ID()).Error)

	pending, err := suite.repository.GetAllAwaitingDispatch(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 2)
	suite.Equal(undispatched1.ID(), pending[0].ID())
	suite.Equal(undispatched2.ID(), pending[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingDispatch_NoCandidates_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()
	suite.addOrderWithStatus(ctx, order.Pending)

	pending, err := suite.repository.GetAllAwaitingDispatch(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)

	suite.tracker.AssertExpectations(suite.T())
}

// newTestOrder creates a pending order with two items and a default
// cash-on-delivery payment.
func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder() *order.Order {
	item1, err := order.NewItem(1, 2, decimal.NewFromFloat(8.50))
	suite.Require().NoError(err)
	item2, err := order.NewItem(3, 1, decimal.NewFromFloat(4.50))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		5, 3, decimal.NewFromFloat(21.50), "12 Main St", "",
		[]order.Item{item1, item2}, "")
	suite.Require().NoError(err)

	return testOrder
}

// addOrderWithStatus persists an order restored into the given status.
func (suite *OrderRepositoryIntegrationTestSuite) addOrderWithStatus(
	ctx context.Context, status order.Status,
) *order.Order {
	item, err := order.NewItem(1, 1, decimal.NewFromFloat(8.50))
	suite.Require().NoError(err)

	now := time.Now().UTC()
	testOrder, err := order.RestoreOrder(
		0, 5, 3, decimal.NewFromFloat(8.50), "12 Main St", "",
		status, now, now,
		[]order.Item{item},
		order.RestorePayment(0, order.DefaultPaymentMethod, order.PaymentPending, decimal.NewFromFloat(8.50)),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
