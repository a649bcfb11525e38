// Package http exposes the order lifecycle over a JSON REST API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live below, the package only binds, validates, dispatches
// and maps errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fastfoodie/internal/core/application/usecases/commands"
	"fastfoodie/internal/core/application/usecases/queries"
	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/core/domain/model/rider"
	"fastfoodie/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Server holds the command and query handlers behind the REST surface.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	changeDeliveryStatusHandler commands.ChangeDeliveryStatusCommandHandler
	createRiderHandler          commands.CreateRiderCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler

	getRidersHandler         queries.GetRidersQueryHandler
	getOrderDeliveryHandler  queries.GetOrderDeliveryQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	changeDeliveryStatusHandler commands.ChangeDeliveryStatusCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	getRidersHandler queries.GetRidersQueryHandler,
	getOrderDeliveryHandler queries.GetOrderDeliveryQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		changeDeliveryStatusHandler: changeDeliveryStatusHandler,
		createRiderHandler:          createRiderHandler,
		setRiderAvailabilityHandler: setRiderAvailabilityHandler,
		getRidersHandler:            getRidersHandler,
		getOrderDeliveryHandler:     getOrderDeliveryHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/delivery", s.GetOrderDelivery)

	api.POST("/deliveries", s.AssignDelivery)
	api.PATCH("/deliveries/:id/status", s.ChangeDeliveryStatus)

	api.POST("/riders", s.CreateRider)
	api.GET("/riders", s.GetRiders)
	api.GET("/riders/available", s.GetAvailableRiders)
	api.PATCH("/riders/:id/availability", s.SetRiderAvailability)

	api.GET("/customers/:id/orders", s.GetCustomerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - ingests a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	items := make([]commands.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.LineItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerID,
		req.RestaurantID,
		req.TotalAmount,
		req.DeliveryAddress,
		req.SpecialInstructions,
		req.PaymentMethod,
		items,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetOrderDelivery handles GET /api/orders/:id/delivery - the tracking view.
func (s *Server) GetOrderDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDeliveryQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDeliveryToResponse(view))
}

// AssignDelivery handles POST /api/deliveries - explicit rider assignment.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var req AssignDeliveryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignDeliveryCommand(req.OrderID, req.RiderID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryToResponse(created))
}

// ChangeDeliveryStatus handles PATCH /api/deliveries/:id/status.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryToResponse(updated))
}

// CreateRider handles POST /api/riders - registers a rider.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req CreateRiderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRiderCommand(req.Name, req.Phone, req.VehicleType)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, riderToResponse(created))
}

// GetRiders handles GET /api/riders - the full pool.
func (s *Server) GetRiders(ctx echo.Context) error {
	return s.listRiders(ctx, ctx.QueryParam("available") == "true")
}

// GetAvailableRiders handles GET /api/riders/available.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	return s.listRiders(ctx, true)
}

func (s *Server) listRiders(ctx echo.Context, availableOnly bool) error {
	query := queries.NewGetRidersQuery(availableOnly)

	riders, err := s.getRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ridersToResponse(riders))
}

// SetRiderAvailability handles PATCH /api/riders/:id/availability.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req SetRiderAvailabilityRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(id, *req.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.setRiderAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderToResponse(updated))
}

// GetCustomerOrders handles GET /api/customers/:id/orders - order history.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerOrdersToResponse(orders))
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return ctx.JSON(httpErr.Code, ErrorResponse{Error: httpErr.Error()})
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return nil
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	return id, nil
}

// respondError maps domain and application errors to HTTP status codes.
// Unknown errors become 500 with a generic body so internals never leak.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, commands.ErrDeliveryAlreadyExists),
		errors.Is(err, rider.ErrRiderNotAvailable),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
