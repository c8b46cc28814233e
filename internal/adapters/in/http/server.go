package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/order"
)

// Server handles HTTP requests for the place-order workflow.
type Server struct {
	placeOrderHandler commands.PlaceOrderCommandHandler
}

// NewServer creates a new HTTP server with the required command handler.
func NewServer(placeOrderHandler commands.PlaceOrderCommandHandler) *Server {
	return &Server{placeOrderHandler: placeOrderHandler}
}

// Register attaches the server's routes to the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/health", s.Health)
}

// PlaceOrder handles POST /api/v1/orders - runs one order submission
// through the workflow and returns the emitted events.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var form OrderFormDTO
	if err := ctx.Bind(&form); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(toUnvalidatedOrder(form))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.placeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toEventDTOs(events))
}

// placeOrderError maps workflow failures onto HTTP statuses: the caller's
// fault is 400, a broken dependency is 502, anything else is 500.
func (s *Server) placeOrderError(ctx echo.Context, err error) error {
	var validationErr *order.ValidationError
	var pricingErr *order.PricingError
	var remoteErr *order.RemoteServiceError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &pricingErr):
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.As(err, &remoteErr):
		return ctx.JSON(http.StatusBadGateway, ErrorDTO{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
