package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) newOwnedOrder(userID kernel.UUID) *order.Order {
	address, err := order.NewAddress("123 Main Street", "Springfield", "62704", "US")
	suite.Require().NoError(err)

	item1, err := order.NewItem(kernel.NewUUID(), "Widget", kernel.MustNewMoney(50), 2, "https://cdn.example.com/widget.png")
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "Gadget", kernel.MustNewMoney(100), 1, "")
	suite.Require().NoError(err)

	applied, err := order.NewAppliedOffer(kernel.NewUUID(), kernel.MustNewMoney(20))
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), userID, []order.Item{item1, item2}, address,
		"payfast", kernel.MustNewMoney(180), &applied, time.Now().UTC())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullReadModel() {
	ctx := context.Background()
	owner, err := account.NewActor(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)

	aggregate := suite.newOwnedOrder(owner.ID())
	payment, err := order.NewPaymentResult("pf-10042", "COMPLETE", "2026-08-30T12:00:00Z", "buyer@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.MarkPaid(time.Now().UTC(), &payment))
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(owner, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(aggregate.ID()))
	suite.True(result.UserID.IsEqual(owner.ID()))
	suite.Equal("123 Main Street", result.Address)
	suite.Equal("Springfield", result.City)
	suite.Equal("62704", result.PostalCode)
	suite.Equal("US", result.Country)
	suite.Equal("payfast", result.PaymentMethod)
	suite.InDelta(180, result.TotalPrice, 0.001)
	suite.Equal("Paid", result.Status)
	suite.True(result.IsPaid)
	suite.NotNil(result.PaidAt)
	suite.False(result.IsDelivered)
	suite.Nil(result.DeliveredAt)

	suite.Require().Len(result.Items, 2)
	suite.Equal("Widget", result.Items[0].Name)
	suite.InDelta(50, result.Items[0].UnitPrice, 0.001)
	suite.Equal(2, result.Items[0].Quantity)
	suite.Equal("https://cdn.example.com/widget.png", result.Items[0].ImageURL)
	suite.Equal("Gadget", result.Items[1].Name)

	suite.Require().NotNil(result.AppliedOffer)
	suite.True(result.AppliedOffer.OfferID.IsEqual(aggregate.AppliedOffer().OfferID()))
	suite.InDelta(20, result.AppliedOffer.Discount, 0.001)

	suite.Require().NotNil(result.PaymentResult)
	suite.Equal("pf-10042", result.PaymentResult.PaymentID)
	suite.Equal("COMPLETE", result.PaymentResult.Status)
	suite.Equal("buyer@example.com", result.PaymentResult.PayerEmail)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnpaidOrder_HasNoPaymentResult() {
	ctx := context.Background()
	owner, err := account.NewActor(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)

	aggregate := suite.newOwnedOrder(owner.ID())
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(owner, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Created", result.Status)
	suite.Nil(result.PaymentResult)
	suite.Nil(result.PaidAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_AdminMayReadAnyOrder() {
	ctx := context.Background()
	owner, err := account.NewActor(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)
	admin, err := account.NewActor(kernel.NewUUID(), account.RoleAdmin)
	suite.Require().NoError(err)

	aggregate := suite.newOwnedOrder(owner.ID())
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(admin, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(aggregate.ID()))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OtherUser_ReturnsNotAuthorized() {
	ctx := context.Background()
	owner, err := account.NewActor(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)
	stranger, err := account.NewActor(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)

	aggregate := suite.newOwnedOrder(owner.ID())
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(stranger, aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrNotAuthorized)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	actor, err := account.NewActor(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(actor, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for seeding data in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
