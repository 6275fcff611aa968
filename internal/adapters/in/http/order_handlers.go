package http

import (
	"errors"
	"net/http"
	"strconv"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles POST /api/orders - submits a new travel order owned by
// the authenticated user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, ok := actorID(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	departure, err := kernel.DateFromString(request.DepartureDate)
	if err != nil {
		return writeError(ctx, err)
	}
	returnDate, err := kernel.DateFromString(request.ReturnDate)
	if err != nil {
		return writeError(ctx, err)
	}
	period, err := kernel.NewTravelPeriod(departure, returnDate)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, request.Destination, period)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, userID)
}

// ListOrders handles GET /api/orders - returns one page of the orders the
// authenticated user may see, narrowed by the optional status, date range,
// and destination filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	userID, ok := actorID(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	filter, page, err := parseOrderListingParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(userID, filter, page)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListResource(response))
}

// GetOrder handles GET /api/orders/:id - returns a single order resource.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, ok := actorID(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResource(response))
}

// UpdateOrderStatus handles PATCH /api/orders/:id - moves an order to the
// requested status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	userID, ok := actorID(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request updateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, userID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, userID)
}

// CancelOrder handles POST /api/orders/:id/cancel - cancels an order the
// authenticated user is allowed to cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	userID, ok := actorID(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrBusinessRuleViolated) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "this order cannot be canceled",
			})
		}
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, userID)
}

// respondWithOrder reads a just-written order back through the query side so
// mutation responses carry the same representation as GET /api/orders/:id.
// The after-write query skips the view policy: a reviewer may hold
// update-order or delete-order without view-orders, and the mutation's own
// gate has already passed.
func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID, actor kernel.UUID) error {
	query, err := queries.NewGetOrderAfterWriteQuery(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(code, toOrderResource(response))
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func parseOrderListingParams(ctx echo.Context) (queries.ListOrdersFilter, int, error) {
	var filter queries.ListOrdersFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return filter, 0, err
		}
		filter.Status = status
	}

	if raw := ctx.QueryParam("start_date"); raw != "" {
		date, err := kernel.DateFromString(raw)
		if err != nil {
			return filter, 0, err
		}
		filter.StartDate = date
	}

	if raw := ctx.QueryParam("end_date"); raw != "" {
		date, err := kernel.DateFromString(raw)
		if err != nil {
			return filter, 0, err
		}
		filter.EndDate = date
	}

	filter.Destination = ctx.QueryParam("destination")

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return filter, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		page = parsed
	}

	return filter, page, nil
}
