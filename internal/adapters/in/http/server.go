// Package http exposes the dispatch API over Echo. Requests are decoded into
// hand-rolled DTOs, translated to application commands and queries, and domain
// errors are mapped onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	respondToOfferHandler commands.RespondToOfferCommandHandler
	progressOrderHandler  commands.ProgressOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getOrderStatusHandler       queries.GetOrderStatusQueryHandler
	getActiveOrdersHandler      queries.GetActiveOrdersQueryHandler
	getVerificationCodesHandler queries.GetVerificationCodesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	respondToOfferHandler commands.RespondToOfferCommandHandler,
	progressOrderHandler commands.ProgressOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getVerificationCodesHandler queries.GetVerificationCodesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		respondToOfferHandler:       respondToOfferHandler,
		progressOrderHandler:        progressOrderHandler,
		completeOrderHandler:        completeOrderHandler,
		getOrderStatusHandler:       getOrderStatusHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getVerificationCodesHandler: getVerificationCodesHandler,
	}
}

// RegisterRoutes attaches all dispatch endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrderStatus)
	api.GET("/orders/:orderId/codes", s.GetVerificationCodes)
	api.POST("/orders/:orderId/respond", s.RespondToOffer)
	api.POST("/orders/:orderId/progress", s.ProgressOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.GET("/riders/:riderId/orders", s.GetActiveOrders)
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPointDTO is a coordinate pair in request and response bodies.
type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID         string      `json:"user_id"`
	Pickup         GeoPointDTO `json:"pickup"`
	Drop           GeoPointDTO `json:"drop"`
	PackageDetails string      `json:"package_details"`
}

// CreateOrderResponse carries the ID assigned to the new order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// RespondToOfferRequest is the body for POST /api/v1/orders/:orderId/respond.
type RespondToOfferRequest struct {
	RiderID  string `json:"rider_id"`
	Decision string `json:"decision"`
}

// CompleteOrderRequest is the body for POST /api/v1/orders/:orderId/complete.
type CompleteOrderRequest struct {
	RiderID string `json:"rider_id"`
}

// OrderStatusResponse is the dispatch snapshot for GET /api/v1/orders/:orderId.
type OrderStatusResponse struct {
	OrderID          string     `json:"order_id"`
	Status           string     `json:"status"`
	DriverID         *string    `json:"driver_id,omitempty"`
	OfferExpiresAt   *time.Time `json:"offer_expires_at,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

// VerificationCodesResponse carries an accepted order's code pair.
type VerificationCodesResponse struct {
	OrderID      string `json:"order_id"`
	PickupCode   string `json:"pickup_code"`
	DeliveryCode string `json:"delivery_code"`
}

// ActiveOrderResponse is one element of GET /api/v1/riders/:riderId/orders.
type ActiveOrderResponse struct {
	OrderID        string      `json:"order_id"`
	Pickup         GeoPointDTO `json:"pickup"`
	Drop           GeoPointDTO `json:"drop"`
	PackageDetails string      `json:"package_details"`
	DistanceKm     float64     `json:"distance_km"`
	RiderEarnings  int         `json:"rider_earnings"`
	CreatedAt      time.Time   `json:"created_at"`
}

// CreateOrder handles POST /api/v1/orders - places a new delivery order and
// kicks off offer sequencing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requesterID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	pickup, err := kernel.NewGeoPoint(request.Pickup.Lat, request.Pickup.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid pickup: "+err.Error())
	}

	drop, err := kernel.NewGeoPoint(request.Drop.Lat, request.Drop.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid drop: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, requesterID, pickup, drop, request.PackageDetails)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// RespondToOffer handles POST /api/v1/orders/:orderId/respond - records a
// rider's accept or decline decision for the outstanding offer.
func (s *Server) RespondToOffer(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request RespondToOfferRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider_id: "+err.Error())
	}

	cmd, err := commands.NewRespondToOfferCommand(
		orderID, riderID, commands.Decision(request.Decision))
	if err != nil {
		return badRequest(ctx, "Invalid decision: "+err.Error())
	}

	if err := s.respondToOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProgressOrder handles POST /api/v1/orders/:orderId/progress - client-driven
// trigger for the expire-if-due check, typically fired by the requester's
// polling loop.
func (s *Server) ProgressOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewProgressOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err := s.progressOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - the assigned
// rider marks the order delivered.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request CompleteOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider_id: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, riderID)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStatus handles GET /api/v1/orders/:orderId - returns the current
// dispatch snapshot, including the remaining offer window.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	snapshot, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := OrderStatusResponse{
		OrderID:          snapshot.ID.String(),
		Status:           snapshot.Status,
		OfferExpiresAt:   snapshot.OfferExpiresAt,
		RemainingSeconds: snapshot.RemainingSeconds,
	}
	if snapshot.DriverID != nil {
		driverID := snapshot.DriverID.String()
		response.DriverID = &driverID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/riders/:riderId/orders - lists the
// rider's accepted, undelivered orders, newest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id: "+err.Error())
	}

	query, err := queries.NewGetActiveOrdersQuery(riderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id: "+err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, activeOrder := range orders {
		response[i] = ActiveOrderResponse{
			OrderID:        activeOrder.ID.String(),
			Pickup:         GeoPointDTO{Lat: activeOrder.Pickup.Lat(), Lng: activeOrder.Pickup.Lng()},
			Drop:           GeoPointDTO{Lat: activeOrder.Drop.Lat(), Lng: activeOrder.Drop.Lng()},
			PackageDetails: activeOrder.PackageDetails,
			DistanceKm:     activeOrder.DistanceKm,
			RiderEarnings:  activeOrder.RiderEarnings,
			CreatedAt:      activeOrder.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVerificationCodes handles GET /api/v1/orders/:orderId/codes - returns
// the code pair generated when the order was accepted.
func (s *Server) GetVerificationCodes(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetVerificationCodesQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	codes, err := s.getVerificationCodesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerificationCodesResponse{
		OrderID:      codes.OrderID.String(),
		PickupCode:   codes.PickupCode,
		DeliveryCode: codes.DeliveryCode,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the application error taxonomy onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
