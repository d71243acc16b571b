// Package http adapts the generated HTTP server interface to the application
// use cases. The caller's identity arrives in the X-User-Id and X-User-Role
// headers; authentication itself is terminated upstream.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler              commands.CreateOrderCommandHandler
	updateOrderStatusHandler        commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler              commands.CancelOrderCommandHandler
	verifyDeliveryHandler           commands.VerifyDeliveryCommandHandler
	createProductHandler            commands.CreateProductCommandHandler
	sendNotificationHandler         commands.SendNotificationCommandHandler
	markNotificationReadHandler     commands.MarkNotificationReadCommandHandler
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	listOwnerOrdersHandler   queries.ListOwnerOrdersQueryHandler
	listAllOrdersHandler     queries.ListAllOrdersQueryHandler
	getDeliveryCodeHandler   queries.GetDeliveryCodeQueryHandler
	getAdminStatsHandler     queries.GetAdminStatsQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
	listProductsHandler      queries.ListProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	verifyDeliveryHandler commands.VerifyDeliveryCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	sendNotificationHandler commands.SendNotificationCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOwnerOrdersHandler queries.ListOwnerOrdersQueryHandler,
	listAllOrdersHandler queries.ListAllOrdersQueryHandler,
	getDeliveryCodeHandler queries.GetDeliveryCodeQueryHandler,
	getAdminStatsHandler queries.GetAdminStatsQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		updateOrderStatusHandler:        updateOrderStatusHandler,
		cancelOrderHandler:              cancelOrderHandler,
		verifyDeliveryHandler:           verifyDeliveryHandler,
		createProductHandler:            createProductHandler,
		sendNotificationHandler:         sendNotificationHandler,
		markNotificationReadHandler:     markNotificationReadHandler,
		markAllNotificationsReadHandler: markAllNotificationsReadHandler,
		getOrderHandler:                 getOrderHandler,
		listOwnerOrdersHandler:          listOwnerOrdersHandler,
		listAllOrdersHandler:            listAllOrdersHandler,
		getDeliveryCodeHandler:          getDeliveryCodeHandler,
		getAdminStatsHandler:            getAdminStatsHandler,
		listNotificationsHandler:        listNotificationsHandler,
		listProductsHandler:             listProductsHandler,
	}
}

// principalFrom extracts the caller's identity from the request headers.
func principalFrom(ctx echo.Context) (kernel.Principal, bool) {
	rawID := ctx.Request().Header.Get("X-User-Id")
	rawRole := ctx.Request().Header.Get("X-User-Role")
	if rawID == "" || rawRole == "" {
		return kernel.Principal{}, false
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Principal{}, false
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Principal{}, false
	}

	principal, err := kernel.NewPrincipal(id, role)
	if err != nil {
		return kernel.Principal{}, false
	}
	return principal, true
}

// statusCodeFor maps application errors to HTTP status codes.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyComplete), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrCodeMismatch),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrDependencyFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid identity headers",
	})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: "Administrator role required",
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := kernel.UUIDFromBytes(item.ProductId[:])
		if err != nil {
			return fail(ctx, err)
		}
		items = append(items, commands.OrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	paymentID := ""
	if body.PaymentInfo.Id != nil {
		paymentID = *body.PaymentInfo.Id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		principal.ID(),
		items,
		order.ShippingInfo{
			Name:    body.ShippingInfo.Name,
			Address: body.ShippingInfo.Address,
			City:    body.ShippingInfo.City,
			Phone:   body.ShippingInfo.Phone,
		},
		order.PaymentInfo{
			ID:     paymentID,
			Status: body.PaymentInfo.Status,
			Method: body.PaymentInfo.Method,
		},
		body.TotalAmount,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ListOrders handles GET /api/v1/orders - lists all orders for administrators.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !principal.Role().IsAdmin() {
		return forbidden(ctx)
	}

	var statusFilter *order.Status
	if params.Status != nil {
		parsed, err := order.StatusFromString(*params.Status)
		if err != nil {
			return fail(ctx, err)
		}
		statusFilter = &parsed
	}

	query, err := queries.NewListAllOrdersQuery(statusFilter)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	orders := make([]servers.Order, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, toAPIOrder(o))
	}
	revenue := result.TotalRevenue

	return ctx.JSON(http.StatusOK, servers.OrderList{Orders: orders, TotalRevenue: &revenue})
}

// ListMyOrders handles GET /api/v1/orders/my - lists the caller's orders.
func (s *Server) ListMyOrders(ctx echo.Context, params servers.ListMyOrdersParams) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	scope := queries.ScopeAll
	if params.Scope != nil {
		scope = queries.OrderScope(*params.Scope)
	}

	query, err := queries.NewListOwnerOrdersQuery(principal.ID(), scope)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listOwnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	orders := make([]servers.Order, 0, len(result))
	for _, o := range result {
		orders = append(orders, toAPIOrder(o))
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{Orders: orders})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId uuid.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(result))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - applies an
// administrative status transition.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId uuid.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !principal.Role().IsAdmin() {
		return forbidden(ctx)
	}

	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels the
// caller's own order while it is still Pending or Processing.
func (s *Server) CancelOrder(ctx echo.Context, orderId uuid.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal.ID())
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryCode handles GET /api/v1/orders/{orderId}/delivery-code -
// returns the handoff code of the caller's shipped order.
func (s *Server) GetDeliveryCode(ctx echo.Context, orderId uuid.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryCodeQuery(orderID, principal.ID())
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getDeliveryCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryCode{
		OrderId:      result.OrderID.Bytes(),
		DeliveryCode: result.DeliveryCode,
	})
}

// VerifyDelivery handles POST /api/v1/orders/{orderId}/verify-delivery -
// confirms the physical handoff with the presented code.
func (s *Server) VerifyDelivery(ctx echo.Context, orderId uuid.UUID) error {
	var body servers.VerifyDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewVerifyDeliveryCommand(orderID, body.Code)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.verifyDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	query := queries.NewListProductsQuery()

	result, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Product, 0, len(result))
	for _, p := range result {
		response = append(response, servers.Product{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageRef:    p.ImageRef,
			Stock:       p.Stock,
			IsLowStock:  p.IsLowStock,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - creates a catalog entry.
func (s *Server) CreateProduct(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !principal.Role().IsAdmin() {
		return forbidden(ctx)
	}

	var body servers.NewProduct
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}
	imageRef := ""
	if body.ImageRef != nil {
		imageRef = *body.ImageRef
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, body.Name, description, body.Price, imageRef, body.Stock)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// ListNotifications handles GET /api/v1/notifications - lists the
// notifications visible to the caller.
func (s *Server) ListNotifications(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListNotificationsQuery(principal)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Notification, 0, len(result))
	for _, n := range result {
		response = append(response, servers.Notification{
			Id:        n.ID.Bytes(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Target:    n.Target,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendNotification handles POST /api/v1/notifications - sends an
// administrative notification.
func (s *Server) SendNotification(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !principal.Role().IsAdmin() {
		return forbidden(ctx)
	}

	var body servers.NewNotification
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	notificationType := notification.TypeUnknown
	if body.Type != nil {
		parsed, err := notification.TypeFromString(*body.Type)
		if err != nil {
			return fail(ctx, err)
		}
		notificationType = parsed
	}

	target := notification.TargetUnknown
	if body.Target != nil {
		parsed, err := notification.TargetFromString(*body.Target)
		if err != nil {
			return fail(ctx, err)
		}
		target = parsed
	}

	var recipientID *kernel.UUID
	if body.RecipientId != nil {
		id, err := kernel.UUIDFromBytes(body.RecipientId[:])
		if err != nil {
			return fail(ctx, err)
		}
		recipientID = &id
	}

	cmd, err := commands.NewSendNotificationCommand(body.Title, body.Message, notificationType, target, recipientID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.sendNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationId uuid.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	notificationID, err := kernel.UUIDFromBytes(notificationId[:])
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, principal)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(principal)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.markAllNotificationsReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAdminStats handles GET /api/v1/admin/stats - returns dashboard aggregates.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if !principal.Role().IsAdmin() {
		return forbidden(ctx)
	}

	query := queries.NewGetAdminStatsQuery()
	result, err := s.getAdminStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AdminStats{
		TotalOrders:   result.TotalOrders,
		TotalSales:    result.TotalSales,
		StatusCounts:  result.StatusCounts,
		LowStockCount: result.LowStockCount,
	})
}

// toAPIOrder converts a read-side order projection into its wire shape.
func toAPIOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, servers.LineItem{
			ProductId: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Name:      item.Name,
			ImageRef:  item.ImageRef,
			Reserved:  item.Reserved,
		})
	}

	history := make([]servers.HistoryEntry, 0, len(o.History))
	for _, entry := range o.History {
		history = append(history, servers.HistoryEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
		})
	}

	var paymentID *string
	if o.PaymentInfo.ID != "" {
		id := o.PaymentInfo.ID
		paymentID = &id
	}

	return servers.Order{
		Id:      o.ID.Bytes(),
		OwnerId: o.OwnerID.Bytes(),
		Items:   items,
		ShippingInfo: servers.ShippingInfo{
			Name:    o.ShippingInfo.Name,
			Address: o.ShippingInfo.Address,
			City:    o.ShippingInfo.City,
			Phone:   o.ShippingInfo.Phone,
		},
		PaymentInfo: servers.PaymentInfo{
			Id:     paymentID,
			Status: o.PaymentInfo.Status,
			Method: o.PaymentInfo.Method,
		},
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		DeliveryCode: o.DeliveryCode,
		History:      history,
		CreatedAt:    o.CreatedAt,
	}
}
