package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model from the
// database. The view policy is evaluated in SQL alongside the row fetch,
// so a denied request costs one round trip.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the order does not exist and an
// AccessDeniedError when the actor is neither the owner nor a view-orders
// holder. Not-found wins over denied: a stranger probing a missing id
// learns nothing either way. After-write queries skip the denial entirely.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.owner_id,
			u.name,
			u.email,
			o.destination,
			o.departure_date,
			o.return_date,
			o.status,
			o.created_at,
			o.updated_at,
			EXISTS (
				SELECT 1 FROM user_permissions p
				WHERE p.user_id = ? AND p.permission = ?
			) AS actor_can_view_all
		FROM orders o
		JOIN users u ON u.id = o.owner_id
		WHERE o.id = ?
	`, query.ActorID().String(), string(user.PermissionViewOrders), query.OrderID().String()).Row()

	response, actorCanViewAll, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderResponse{}, err
	}

	if !query.AfterWrite() && !actorCanViewAll && !response.Owner.ID.IsEqual(query.ActorID()) {
		return OrderResponse{}, errs.NewAccessDeniedError("view order")
	}

	return response, nil
}

func scanOrderRow(row *sql.Row) (OrderResponse, bool, error) {
	var (
		id, ownerID          uuid.UUID
		name, email          string
		destination, status  string
		departure, ret       time.Time
		createdAt, updatedAt time.Time
		actorCanViewAll      bool
	)

	if err := row.Scan(&id, &ownerID, &name, &email, &destination,
		&departure, &ret, &status, &createdAt, &updatedAt, &actorCanViewAll); err != nil {
		return OrderResponse{}, false, err
	}

	response, err := buildOrderResponse(id, ownerID, name, email, destination,
		departure, ret, status, createdAt, updatedAt)
	if err != nil {
		return OrderResponse{}, false, err
	}

	return response, actorCanViewAll, nil
}

func buildOrderResponse(
	id uuid.UUID,
	ownerID uuid.UUID,
	name string,
	email string,
	destination string,
	departure time.Time,
	ret time.Time,
	status string,
	createdAt time.Time,
	updatedAt time.Time,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID: orderID,
		Owner: OrderOwnerResponse{
			ID:    owner,
			Name:  name,
			Email: email,
		},
		Destination:   destination,
		DepartureDate: kernel.DateFromTime(departure),
		ReturnDate:    kernel.DateFromTime(ret),
		Status:        parsedStatus,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
