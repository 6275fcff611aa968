package http

import (
	"travelorders/internal/core/application/usecases/queries"
)

// wireTimestampLayout is the format for created_at and updated_at fields.
const wireTimestampLayout = "02/01/2006 15:04:05"

// Error is the envelope returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// UserRef identifies the owner inside an order resource.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResource is the representation returned by register and /auth/me.
type UserResource struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

// TokenResource carries an issued bearer token.
type TokenResource struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	User  UserResource  `json:"user"`
	Token TokenResource `json:"token"`
}

// OrderResource is the representation of a single travel order.
type OrderResource struct {
	ID            string  `json:"id"`
	User          UserRef `json:"user"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// OrderListResource is a single page of order resources.
type OrderListResource struct {
	Orders  []OrderResource `json:"orders"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Total   int64           `json:"total"`
}

func toUserResource(response queries.UserResponse) UserResource {
	permissions := make([]string, len(response.Permissions))
	for i, permission := range response.Permissions {
		permissions[i] = permission.String()
	}

	return UserResource{
		ID:          response.ID.String(),
		Name:        response.Name,
		Email:       response.Email,
		Permissions: permissions,
	}
}

func toOrderResource(response queries.OrderResponse) OrderResource {
	return OrderResource{
		ID: response.ID.String(),
		User: UserRef{
			ID:    response.Owner.ID.String(),
			Name:  response.Owner.Name,
			Email: response.Owner.Email,
		},
		Destination:   response.Destination,
		DepartureDate: response.DepartureDate.String(),
		ReturnDate:    response.ReturnDate.String(),
		Status:        response.Status.String(),
		CreatedAt:     response.CreatedAt.Format(wireTimestampLayout),
		UpdatedAt:     response.UpdatedAt.Format(wireTimestampLayout),
	}
}

func toOrderListResource(response queries.ListOrdersQueryResponse) OrderListResource {
	orders := make([]OrderResource, len(response.Orders))
	for i, item := range response.Orders {
		orders[i] = toOrderResource(item)
	}

	return OrderListResource{
		Orders:  orders,
		Page:    response.Page,
		PerPage: response.PerPage,
		Total:   response.Total,
	}
}
