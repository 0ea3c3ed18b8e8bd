package commands_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/offer"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) GetByCode(ctx context.Context, code string) (*offer.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) BuildPayment(
	orderID kernel.UUID, total kernel.Money, items []order.Item,
) (ports.PaymentData, error) {
	args := m.Called(orderID, total, items)
	return args.Get(0).(ports.PaymentData), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderInventoryUoW struct{ MockOrderUoW }

func (m *MockOrderInventoryUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockOrderInventoryUoWFactory struct{ mock.Mock }

func (m *MockOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderInventoryUoW)
}

type MockCheckoutUoW struct{ MockOrderUoW }

func (m *MockCheckoutUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockCheckoutUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}
