package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sparestock/internal/delivery/http/middleware"
	"sparestock/internal/delivery/http/response"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// placeOrderRequest is the wire shape of an order request. Quantity is
// deliberately untyped: clients send it as a number, a numeric string or not
// at all, and each of those must be accepted.
type placeOrderRequest struct {
	ProductID string `json:"productId"`
	Address   string `json:"address"`
	Quantity  any    `json:"quantity"`
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// coerceQuantity turns whatever the client sent into a usable quantity.
// Absent, malformed and non-positive values all fall back to a single unit.
func coerceQuantity(raw any) int {
	switch v := raw.(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	case int:
		if v >= 1 {
			return v
		}
	}

	return 1
}

// PlaceOrder handles the purchase request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		ProductID: productID,
		Address:   req.Address,
		Quantity:  coerceQuantity(req.Quantity),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// CancelOrder handles the cancellation request.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Order cancelled",
		"order":   order,
	}, "Order cancelled successfully")
}

// MyOrders returns the caller's own order history.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	orders, err := h.uc.MyOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// AllOrders returns the full order ledger.
func (h *OrderHandler) AllOrders(c echo.Context) error {
	orders, err := h.uc.AllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Stats returns aggregate figures over the whole ledger.
func (h *OrderHandler) Stats(c echo.Context) error {
	stats, err := h.uc.ComputeStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats computed successfully")
}
