package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(appliedOffer *order.AppliedOffer) *order.Order {
	address, err := order.NewAddress("123 Main Street", "Springfield", "62704", "US")
	suite.Require().NoError(err)

	itemA, err := order.NewItem(kernel.NewUUID(), "Widget", kernel.MustNewMoney(49.99), 2, "/images/widget.jpg")
	suite.Require().NoError(err)
	itemB, err := order.NewItem(kernel.NewUUID(), "Gadget", kernel.MustNewMoney(100), 1, "/images/gadget.jpg")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{itemA, itemB}, address,
		"payfast", kernel.MustNewMoney(199.98), appliedOffer,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAllFields() {
	ctx := context.Background()
	applied, err := order.NewAppliedOffer(kernel.NewUUID(), kernel.MustNewMoney(20))
	suite.Require().NoError(err)
	aggregate := suite.newOrder(&applied)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(aggregate))
	suite.True(restored.UserID().IsEqual(aggregate.UserID()))
	suite.True(restored.TotalPrice().IsEqual(aggregate.TotalPrice()))
	suite.Equal("payfast", restored.PaymentMethod())
	suite.Equal("Springfield", restored.ShippingAddress().City())
	suite.False(restored.IsPaid())
	suite.Equal(order.Created, restored.Status())

	suite.Require().Len(restored.Items(), 2)
	suite.Equal("Widget", restored.Items()[0].Name())
	suite.Equal(2, restored.Items()[0].Quantity())
	suite.Equal("Gadget", restored.Items()[1].Name())

	suite.Require().NotNil(restored.AppliedOffer())
	suite.True(restored.AppliedOffer().OfferID().IsEqual(applied.OfferID()))
	suite.True(restored.AppliedOffer().Discount().IsEqual(kernel.MustNewMoney(20)))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsPaymentState() {
	ctx := context.Background()
	aggregate := suite.newOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	result, err := order.NewPaymentResult("PAY-42", order.GatewayStatusComplete, "2024-06-15T12:00:00Z", "buyer@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.MarkPaid(time.Now().UTC().Truncate(time.Microsecond), &result))

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsPaid())
	suite.NotNil(restored.PaidAt())
	suite.Require().NotNil(restored.PaymentResult())
	suite.Equal("PAY-42", restored.PaymentResult().PaymentID())
	suite.Equal("buyer@example.com", restored.PaymentResult().PayerEmail())
	suite.Equal(order.Paid, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsCancellation() {
	ctx := context.Background()
	aggregate := suite.newOrder(nil)
	suite.Require().NoError(aggregate.MarkPaid(time.Now().UTC(), nil))
	suite.Require().NoError(aggregate.MarkDelivered(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Cancellation clears flags back to zero values; the update must still
	// write them.
	aggregate.Cancel()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsPaid())
	suite.Nil(restored.PaidAt())
	suite.False(restored.IsDelivered())
	suite.Nil(restored.DeliveredAt())
	suite.Nil(restored.PaymentResult())
	suite.Equal(order.Created, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	aggregate := suite.newOrder(nil)
	err := suite.repository.Update(context.Background(), aggregate)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
