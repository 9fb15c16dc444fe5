package handler

import (
	"context"
	"encoding/json"
	"hosting-order-service/internal/dto"
	"hosting-order-service/internal/model"
	"hosting-order-service/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	placeResult *dto.PlaceOrderResponse
	placeErr    error
	gotCommands []*dto.PlaceOrderCommand
}

func (f *fakeOrderService) PlaceOrder(_ context.Context, cmd *dto.PlaceOrderCommand) (*dto.PlaceOrderResponse, error) {
	f.gotCommands = append(f.gotCommands, cmd)
	return f.placeResult, f.placeErr
}

func (f *fakeOrderService) ListHostingPackages(context.Context) ([]*model.Package, error) {
	return nil, nil
}

func (f *fakeOrderService) GetConfirmation(context.Context, uint) (*dto.OrderConfirmation, error) {
	return nil, nil
}

func postOrder(t *testing.T, h *OrderHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, h.PlaceOrder(c)
}

const validOrderBody = `{
	"package_id": 2,
	"name": "Jamie Doe",
	"email": "jamie@example.com",
	"domain": "example.com",
	"payment_method": "paypal",
	"currency": "EUR"
}`

func TestPlaceOrderHandlerSuccess(t *testing.T) {
	svc := &fakeOrderService{placeResult: &dto.PlaceOrderResponse{
		InvoiceID: 11,
		Message:   "Your order has been placed successfully!",
	}}
	h := NewOrderHandler(svc)

	rec, err := postOrder(t, h, validOrderBody)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PlaceOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(11), resp.InvoiceID)

	require.Len(t, svc.gotCommands, 1)
	assert.Equal(t, "paypal", svc.gotCommands[0].PaymentMethod)
}

func TestPlaceOrderHandlerCardTokenRequired(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewOrderHandler(svc)

	body := strings.Replace(validOrderBody, `"paypal"`, `"credit_card"`, 1)
	_, err := postOrder(t, h, body)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, svc.gotCommands, "invalid requests must not reach the order service")
}

func TestPlaceOrderHandlerBadMethod(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewOrderHandler(svc)

	body := strings.Replace(validOrderBody, `"paypal"`, `"wire_transfer"`, 1)
	_, err := postOrder(t, h, body)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, svc.gotCommands)
}

func TestPlaceOrderHandlerPaymentFailed(t *testing.T) {
	svc := &fakeOrderService{placeErr: service.ErrPaymentFailed}
	h := NewOrderHandler(svc)

	_, err := postOrder(t, h, validOrderBody)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusPaymentRequired, httpErr.Code)
	assert.Equal(t, "Payment processing failed. Please try again.", httpErr.Message)
}

func TestPlaceOrderHandlerUnsupportedMethodFromService(t *testing.T) {
	svc := &fakeOrderService{placeErr: service.ErrUnsupportedPaymentMethod}
	h := NewOrderHandler(svc)

	_, err := postOrder(t, h, validOrderBody)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestPlaceOrderHandlerPackageNotFound(t *testing.T) {
	svc := &fakeOrderService{placeErr: service.ErrPackageNotFound}
	h := NewOrderHandler(svc)

	_, err := postOrder(t, h, validOrderBody)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
