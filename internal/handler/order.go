package handler

import (
	"errors"
	"hosting-order-service/internal/billing"
	"hosting-order-service/internal/dto"
	"hosting-order-service/internal/service"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) ListPackages(c echo.Context) error {
	ctx := c.Request().Context()

	packages, err := h.orderService.ListHostingPackages(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, packages)
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	cmd, err := req.Validate()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.orderService.PlaceOrder(ctx, cmd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPackageNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "package not found")
		case errors.Is(err, billing.ErrUnknownCurrency):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUnsupportedPaymentMethod):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPaymentFailed):
			// The specific gateway reason is logged server-side only.
			return echo.NewHTTPError(http.StatusPaymentRequired, "Payment processing failed. Please try again.")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) Confirmation(c echo.Context) error {
	ctx := c.Request().Context()

	invoiceID, err := strconv.ParseUint(c.Param("invoiceID"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}

	confirmation, err := h.orderService.GetConfirmation(ctx, uint(invoiceID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "invoice not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, confirmation)
}
