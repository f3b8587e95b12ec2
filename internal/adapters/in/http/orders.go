package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Wire types for the order endpoints.
type (
	OrderItemRequest struct {
		Name     string `json:"name"`
		Price    int64  `json:"price"`
		Quantity int    `json:"quantity"`
	}

	CustomerRequest struct {
		FullName string `json:"fullName"`
		Mobile   string `json:"mobile"`
		Email    string `json:"email,omitempty"`
		Address  string `json:"address"`
		Pincode  string `json:"pincode"`
	}

	PlaceOrderRequest struct {
		Items    []OrderItemRequest `json:"items"`
		Total    int64              `json:"total"`
		Customer CustomerRequest    `json:"customer"`
	}

	PlaceOrderResponse struct {
		OrderID string `json:"orderId"`
	}

	PaymentScreenshotRequest struct {
		Mobile   string `json:"mobile"`
		ImageRef string `json:"imageRef"`
	}

	VerifyPaymentRequest struct {
		Verified   bool   `json:"verified"`
		VerifiedBy string `json:"verifiedBy"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status"`
	}

	BookOrderRequest struct {
		Carrier  string `json:"transportName"`
		LRNumber string `json:"lrNumber"`
	}

	OrderItem struct {
		Name     string `json:"name"`
		Price    int64  `json:"price"`
		Quantity int    `json:"quantity"`
		Subtotal int64  `json:"subtotal"`
	}

	Order struct {
		ID              string      `json:"id"`
		Status          string      `json:"status"`
		Total           int64       `json:"total"`
		CustomerName    string      `json:"customerName"`
		Mobile          string      `json:"mobile"`
		Email           string      `json:"email,omitempty"`
		Address         string      `json:"address"`
		Pincode         string      `json:"pincode"`
		PaymentImageRef *string     `json:"paymentImageRef,omitempty"`
		PaymentVerified bool        `json:"paymentVerified"`
		TransportName   *string     `json:"transportName,omitempty"`
		LRNumber        *string     `json:"lrNumber,omitempty"`
		CreatedAt       time.Time   `json:"createdAt"`
		Items           []OrderItem `json:"items"`
	}
)

func toOrder(response queries.OrderResponse) Order {
	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}
	return Order{
		ID:              response.ID,
		Status:          response.Status,
		Total:           response.Total,
		CustomerName:    response.CustomerName,
		Mobile:          response.Mobile,
		Email:           response.Email,
		Address:         response.Address,
		Pincode:         response.Pincode,
		PaymentImageRef: response.PaymentImageRef,
		PaymentVerified: response.PaymentVerified,
		TransportName:   response.TransportName,
		LRNumber:        response.LRNumber,
		CreatedAt:       response.CreatedAt,
		Items:           items,
	}
}

func toOrders(responses []queries.OrderResponse) []Order {
	orders := make([]Order, len(responses))
	for i, response := range responses {
		orders[i] = toOrder(response)
	}
	return orders
}

func bindOrderID(ctx echo.Context) (kernel.OrderID, error) {
	return kernel.ParseOrderID(ctx.Param("orderId"))
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.OrderItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(items, request.Total, commands.CustomerInput{
		FullName: request.Customer.FullName,
		Mobile:   request.Customer.Mobile,
		Email:    request.Customer.Email,
		Address:  request.Customer.Address,
		Pincode:  request.Customer.Pincode,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves every order for the
// admin dashboard.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// TrackOrders handles GET /api/v1/orders/track - retrieves the orders
// placed with a mobile number.
func (s *Server) TrackOrders(ctx echo.Context) error {
	var mobile string
	if err := runtime.BindQueryParameter("form", true, true, "mobile",
		ctx.QueryParams(), &mobile); err != nil {
		return badRequest(ctx, "Query parameter mobile is required")
	}

	query, err := queries.NewTrackOrdersQuery(mobile)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.trackOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(response))
}

// CancelOrder handles DELETE /api/v1/orders/:orderId - cancels and removes
// an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RecordPaymentScreenshot handles POST /api/v1/orders/:orderId/payment-screenshot -
// attaches the customer's payment proof to an order.
func (s *Server) RecordPaymentScreenshot(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request PaymentScreenshotRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordPaymentScreenshotCommand(orderID, request.Mobile, request.ImageRef)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordPaymentScreenshotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// VerifyPayment handles POST /api/v1/orders/:orderId/verify-payment -
// records the admin's verdict on a payment proof.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request VerifyPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyPaymentCommand(orderID, request.Verified, request.VerifiedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status - moves an
// order along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// BookOrder handles POST /api/v1/orders/:orderId/book - assigns a transport
// carrier and books the order.
func (s *Server) BookOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request BookOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBookOrderCommand(orderID, request.Carrier, request.LRNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
