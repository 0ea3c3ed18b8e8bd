package cmd

import (
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	paymentGateway ports.PaymentGateway
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, paymentGateway ports.PaymentGateway) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		paymentGateway: paymentGateway,
	}
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderInventoryUoWFactory func() commands.OrderInventoryUoW

func (f FuncOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f()
}
