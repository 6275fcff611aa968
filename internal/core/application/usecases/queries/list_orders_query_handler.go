package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/user"
)

// ListOrdersQueryHandler retrieves pages of the order listing from the
// database. Visibility narrowing and all filters are pushed into SQL; the
// count and the page share one WHERE clause.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are ordered by id for stable pagination. The date range matches
// orders whose departure OR return date falls within the inclusive bounds.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildOrderListingWhere(query)

	var total int64
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM orders o %s`, where)
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
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
			o.updated_at
		FROM orders o
		JOIN users u ON u.id = o.owner_id
		%s
		ORDER BY o.id
		LIMIT %d OFFSET %d
	`, where, PageSize, (query.Page()-1)*PageSize)

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, PageSize)
	for rows.Next() {
		var (
			id, ownerID          uuid.UUID
			name, email          string
			destination, status  string
			departure, ret       time.Time
			createdAt, updatedAt time.Time
		)

		if err = rows.Scan(&id, &ownerID, &name, &email, &destination,
			&departure, &ret, &status, &createdAt, &updatedAt); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		response, buildErr := buildOrderResponse(id, ownerID, name, email, destination,
			departure, ret, status, createdAt, updatedAt)
		if buildErr != nil {
			return ListOrdersQueryResponse{}, buildErr
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:  orders,
		Page:    query.Page(),
		PerPage: PageSize,
		Total:   total,
	}, nil
}

func buildOrderListingWhere(query ListOrdersQuery) (string, []any) {
	conditions := []string{`
		(o.owner_id = ? OR EXISTS (
			SELECT 1 FROM user_permissions p
			WHERE p.user_id = ? AND p.permission = ?
		))`}
	args := []any{query.ActorID().String(), query.ActorID().String(), string(user.PermissionViewOrders)}

	filter := query.Filter()

	if filter.Status != order.Unknown {
		conditions = append(conditions, "o.status = ?")
		args = append(args, filter.Status.String())
	}

	if filter.StartDate.Validate() == nil {
		conditions = append(conditions,
			"(o.departure_date BETWEEN ? AND ? OR o.return_date BETWEEN ? AND ?)")
		start, end := filter.StartDate.QueryString(), filter.EndDate.QueryString()
		args = append(args, start, end, start, end)
	}

	if filter.Destination != "" {
		conditions = append(conditions, "o.destination ILIKE ?")
		args = append(args, "%"+filter.Destination+"%")
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
