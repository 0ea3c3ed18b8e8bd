package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler      commands.CheckoutCommandHandler
	markPaidHandler      commands.MarkOrderPaidCommandHandler
	markDeliveredHandler commands.MarkOrderDeliveredCommandHandler
	setStatusHandler     commands.SetOrderStatusCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getOrdersHandler     queries.GetOrdersQueryHandler
	getMyOrdersHandler   queries.GetMyOrdersQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	markPaidHandler commands.MarkOrderPaidCommandHandler,
	markDeliveredHandler commands.MarkOrderDeliveredCommandHandler,
	setStatusHandler commands.SetOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:      checkoutHandler,
		markPaidHandler:      markPaidHandler,
		markDeliveredHandler: markDeliveredHandler,
		setStatusHandler:     setStatusHandler,
		getOrderHandler:      getOrderHandler,
		getOrdersHandler:     getOrdersHandler,
		getMyOrdersHandler:   getMyOrdersHandler,
		getOrderStatsHandler: getOrderStatsHandler,
	}
}

// actorFromRequest builds the acting identity from the headers the auth
// middleware sets. X-User-Id carries the account id, X-User-Role the role.
func actorFromRequest(ctx echo.Context) (account.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return account.Actor{}, err
	}
	role, err := account.ParseRole(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return account.Actor{}, err
	}
	return account.NewActor(userID, role)
}

// CreateOrder handles POST /api/v1/orders - checks out the caller's cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shippingAddress, err := order.NewAddress(
		newOrder.ShippingAddress.Address,
		newOrder.ShippingAddress.City,
		newOrder.ShippingAddress.PostalCode,
		newOrder.ShippingAddress.Country,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}

	offerCode := ""
	if newOrder.OfferCode != nil {
		offerCode = *newOrder.OfferCode
	}

	cmd, err := commands.NewCheckoutCommand(actor, kernel.NewUUID(), shippingAddress, newOrder.PaymentMethod, offerCode)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CheckoutResponse{
		Order:   orderFromAggregate(result.Order),
		Payment: paymentDataResponse(result.Payment),
	})
}

// GetOrders handles GET /api/v1/orders - lists all orders for administrators.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	filter := queries.FilterNone
	if params.Status != nil {
		filter, err = queries.ParseStatusFilter(string(*params.Status))
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
	}

	query, err := queries.NewGetOrdersQuery(actor, pageOrDefault(params.Page), filter)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	page, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedOrdersResponse(page))
}

// GetMyOrders handles GET /api/v1/orders/myorders - lists the caller's orders.
func (s *Server) GetMyOrders(ctx echo.Context, params servers.GetMyOrdersParams) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetMyOrdersQuery(actor, pageOrDefault(params.Page))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	page, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedOrdersResponse(page))
}

// GetOrderStats handles GET /api/v1/orders/stats - order statistics for administrators.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetOrderStatsQuery(actor)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	monthly := make([]servers.DailyStat, len(stats.MonthlyStats))
	for i, day := range stats.MonthlyStats {
		monthly[i] = servers.DailyStat{
			Day:     day.Day,
			Orders:  day.Orders,
			Revenue: float32(day.Revenue),
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderStats{
		TotalOrders:     stats.TotalOrders,
		PaidOrders:      stats.PaidOrders,
		DeliveredOrders: stats.DeliveredOrders,
		PendingOrders:   stats.PendingOrders,
		TotalRevenue:    float32(stats.TotalRevenue),
		MonthlyStats:    monthly,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// PayOrder handles PUT /api/v1/orders/{orderId}/pay - records a gateway payment result.
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var notification servers.PaymentNotification
	if err := ctx.Bind(&notification); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(
		actor, orderID,
		notification.Id, notification.Status,
		stringOrEmpty(notification.UpdateTime),
		stringOrEmpty(notification.PayerEmail),
	)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.markPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, actor, orderID)
}

// DeliverOrder handles PUT /api/v1/orders/{orderId}/deliver - marks an order delivered.
func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(actor, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, actor, orderID)
}

// SetOrderStatus handles PUT /api/v1/orders/{orderId}/status - forces a lifecycle transition.
func (s *Server) SetOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var change servers.StatusChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseTargetStatus(string(change.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewSetOrderStatusCommand(actor, orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.setStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, actor, orderID)
}

// respondWithOrder re-reads the order after a state change so the response
// reflects what was persisted.
func (s *Server) respondWithOrder(ctx echo.Context, actor account.Actor, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// mapDomainError translates the error taxonomy to HTTP statuses.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return respondError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrPaymentNotSuccessful),
		errors.Is(err, order.ErrOrderNotPaid),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return respondError(ctx, http.StatusUnauthorized, "Missing or invalid identity headers")
}

func badRequest(ctx echo.Context, message string) error {
	return respondError(ctx, http.StatusBadRequest, message)
}

func pageOrDefault(page *int) int {
	if page == nil {
		return 1
	}
	return *page
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// orderFromAggregate renders a freshly checked-out order.
func orderFromAggregate(aggregate *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			Name:      item.Name(),
			Price:     float32(item.UnitPrice().Amount()),
			Quantity:  item.Quantity(),
			Image:     optionalString(item.ImageURL()),
		}
	}

	resp := servers.Order{
		Id:    aggregate.ID().Bytes(),
		User:  aggregate.UserID().Bytes(),
		Items: items,
		ShippingAddress: servers.Address{
			Address:    aggregate.ShippingAddress().Address(),
			City:       aggregate.ShippingAddress().City(),
			PostalCode: aggregate.ShippingAddress().PostalCode(),
			Country:    aggregate.ShippingAddress().Country(),
		},
		PaymentMethod: aggregate.PaymentMethod(),
		TotalPrice:    float32(aggregate.TotalPrice().Amount()),
		IsPaid:        aggregate.IsPaid(),
		PaidAt:        aggregate.PaidAt(),
		IsDelivered:   aggregate.IsDelivered(),
		DeliveredAt:   aggregate.DeliveredAt(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	if applied := aggregate.AppliedOffer(); applied != nil {
		resp.AppliedOffer = &servers.AppliedOffer{
			OfferId:  applied.OfferID().Bytes(),
			Discount: float32(applied.Discount().Amount()),
		}
	}
	return resp
}

// orderFromReadModel renders a queried order.
func orderFromReadModel(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Price:     float32(item.UnitPrice),
			Quantity:  item.Quantity,
			Image:     optionalString(item.ImageURL),
		}
	}

	out := servers.Order{
		Id:    resp.ID.Bytes(),
		User:  resp.UserID.Bytes(),
		Items: items,
		ShippingAddress: servers.Address{
			Address:    resp.Address,
			City:       resp.City,
			PostalCode: resp.PostalCode,
			Country:    resp.Country,
		},
		PaymentMethod: resp.PaymentMethod,
		TotalPrice:    float32(resp.TotalPrice),
		IsPaid:        resp.IsPaid,
		PaidAt:        resp.PaidAt,
		IsDelivered:   resp.IsDelivered,
		DeliveredAt:   resp.DeliveredAt,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt,
	}

	if resp.AppliedOffer != nil {
		out.AppliedOffer = &servers.AppliedOffer{
			OfferId:  resp.AppliedOffer.OfferID.Bytes(),
			Discount: float32(resp.AppliedOffer.Discount),
		}
	}
	if resp.PaymentResult != nil {
		out.PaymentResult = &servers.PaymentResult{
			Id:         resp.PaymentResult.PaymentID,
			Status:     resp.PaymentResult.Status,
			UpdateTime: optionalString(resp.PaymentResult.UpdateTime),
			PayerEmail: optionalString(resp.PaymentResult.PayerEmail),
		}
	}
	return out
}

func pagedOrdersResponse(page queries.PagedOrdersResponse) servers.PagedOrders {
	data := make([]servers.OrderSummary, len(page.Orders))
	for i, row := range page.Orders {
		data[i] = servers.OrderSummary{
			Id:          row.ID.Bytes(),
			User:        row.UserID.Bytes(),
			TotalPrice:  float32(row.TotalPrice),
			IsPaid:      row.IsPaid,
			PaidAt:      row.PaidAt,
			IsDelivered: row.IsDelivered,
			DeliveredAt: row.DeliveredAt,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
		}
	}

	return servers.PagedOrders{
		Data:  data,
		Page:  page.Page,
		Pages: page.Pages,
		Total: page.Total,
	}
}

func paymentDataResponse(data ports.PaymentData) servers.PaymentData {
	fields := make([]servers.PaymentField, len(data.Fields))
	for i, field := range data.Fields {
		fields[i] = servers.PaymentField{
			Name:  field.Name,
			Value: field.Value,
		}
	}

	return servers.PaymentData{
		ProcessUrl: data.ProcessURL,
		Fields:     fields,
	}
}
