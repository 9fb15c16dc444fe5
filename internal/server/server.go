package server

import (
	"context"
	"hosting-order-service/internal/handler"
	"hosting-order-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo         *echo.Echo
	orderHandler *handler.OrderHandler
}

func NewServer(orderService service.OrderService) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	orderHandler := handler.NewOrderHandler(orderService)

	s := &Server{
		echo:         e,
		orderHandler: orderHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/packages", s.orderHandler.ListPackages)

	// -------- orders --------
	orders := api.Group("/orders")
	orders.POST("", s.orderHandler.PlaceOrder)
	orders.GET("/:invoiceID/confirmation", s.orderHandler.Confirmation)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
