package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sparestock/internal/delivery/http/middleware"
	"sparestock/internal/domain/entity"
	mockUC "sparestock/internal/mocks/usecase"
	"sparestock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCoerceQuantity(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want int
	}{
		{"json number", float64(3), 3},
		{"numeric string", "7", 7},
		{"absent", nil, 1},
		{"garbage string", "lots", 1},
		{"zero", float64(0), 1},
		{"negative", float64(-2), 1},
		{"negative string", "-2", 1},
		{"bool", true, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coerceQuantity(tc.raw))
		})
	}
}

func newOrderTestContext(t *testing.T, method, target, body string) (*mockUC.MockOrderUsecase, *OrderHandler, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	uc := mockUC.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return uc, handler, c, rec
}

func TestOrderHandler_PlaceOrder_CoercesStringQuantity(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	body := `{"productId":"` + productID.String() + `","address":"12 Dockside Rd","quantity":"3"}`
	uc, handler, c, rec := newOrderTestContext(t, http.MethodPost, "/orders", body)
	c.Set(middleware.ContextKeyUserID, userID)

	uc.EXPECT().
		PlaceOrder(mock.Anything, userID, &usecase.PlaceOrderInput{
			ProductID: productID,
			Address:   "12 Dockside Rd",
			Quantity:  3,
		}).
		Return(&entity.Order{ID: uuid.New(), UserID: userID}, nil)

	require.NoError(t, handler.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_PlaceOrder_DefaultsMissingQuantity(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	body := `{"productId":"` + productID.String() + `","address":"12 Dockside Rd"}`
	uc, handler, c, rec := newOrderTestContext(t, http.MethodPost, "/orders", body)
	c.Set(middleware.ContextKeyUserID, userID)

	uc.EXPECT().
		PlaceOrder(mock.Anything, userID, &usecase.PlaceOrderInput{
			ProductID: productID,
			Address:   "12 Dockside Rd",
			Quantity:  1,
		}).
		Return(&entity.Order{ID: uuid.New(), UserID: userID}, nil)

	require.NoError(t, handler.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_PlaceOrder_RejectsBadProductID(t *testing.T) {
	_, handler, c, rec := newOrderTestContext(t, http.MethodPost, "/orders",
		`{"productId":"not-a-uuid","address":"12 Dockside Rd"}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, handler.PlaceOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_CancelOrder_ReturnsOrderInBody(t *testing.T) {
	orderID := uuid.New()

	uc, handler, c, rec := newOrderTestContext(t, http.MethodPut, "/orders/cancel/"+orderID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	uc.EXPECT().
		CancelOrder(mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCancelled}, nil)

	require.NoError(t, handler.CancelOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order cancelled")
	assert.Contains(t, rec.Body.String(), orderID.String())
	assert.Contains(t, rec.Body.String(), entity.OrderStatusCancelled.String())
}

func TestOrderHandler_CancelOrder_RejectsBadOrderID(t *testing.T) {
	_, handler, c, rec := newOrderTestContext(t, http.MethodPut, "/orders/cancel/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, handler.CancelOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Stats(t *testing.T) {
	uc, handler, c, rec := newOrderTestContext(t, http.MethodGet, "/orders/stats", "")

	uc.EXPECT().
		ComputeStats(mock.Anything).
		Return(&usecase.Stats{OrderCount: 3, CancelledCount: 1}, nil)

	require.NoError(t, handler.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderCount":3`)
	assert.Contains(t, rec.Body.String(), `"cancelledCount":1`)
}
