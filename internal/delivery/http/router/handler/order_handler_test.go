package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dentalstore/internal/delivery/http/validator"
	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCheckout records the input it receives and returns canned results.
type stubCheckout struct {
	lastInput usecase.CreateOrderInput
	order     *entity.Order
	err       error
}

func (s *stubCheckout) CreateOrder(_ context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}

	return s.order, nil
}

func (s *stubCheckout) GetOrder(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
	return s.order, s.err
}

func (s *stubCheckout) ListOrders(_ context.Context) ([]*entity.Order, error) {
	if s.err != nil {
		return nil, s.err
	}

	return []*entity.Order{s.order}, nil
}

func newOrderTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_Create(t *testing.T) {
	productID := uuid.New()
	stub := &stubCheckout{
		order: &entity.Order{
			ID:           uuid.New(),
			CustomerName: "Jane Doe",
			TotalAmount:  decimal.RequireFromString("200.00"),
			Status:       entity.OrderStatusPending,
			Items: []*entity.OrderItem{
				{
					ID:       uuid.New(),
					Quantity: 2,
					Price:    decimal.RequireFromString("100.00"),
				},
			},
		},
	}
	handler := NewOrderHandler(stub)

	body := `{
		"customer_name": "Jane Doe",
		"customer_email": "jane@example.com",
		"customer_phone": "0901234567",
		"customer_address": "42 Elm Street",
		"cart_items": [{"product_id": "` + productID.String() + `", "quantity": 2}]
	}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/cart/order", body)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Jane Doe", stub.lastInput.CustomerName)
	require.Len(t, stub.lastInput.Items, 1)
	assert.Equal(t, productID, stub.lastInput.Items[0].ProductID)
	assert.Equal(t, 2, stub.lastInput.Items[0].Quantity)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"total_amount":"200"`)
	assert.Contains(t, responseBody, `"status":"pending"`)
	assert.Contains(t, responseBody, `"total_price":"200"`)
}

func TestOrderHandler_CreateMalformedBody(t *testing.T) {
	handler := NewOrderHandler(&stubCheckout{})

	c, rec := newOrderTestContext(t, http.MethodPost, "/cart/order", `{"cart_items": "nope"`)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
}

func TestOrderHandler_GetInvalidID(t *testing.T) {
	handler := NewOrderHandler(&stubCheckout{})

	c, _ := newOrderTestContext(t, http.MethodGet, "/cart/orders/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)

	require.Error(t, err)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "invalid id", appErr.Details())
}
