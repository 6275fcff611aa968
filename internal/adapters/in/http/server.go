// Package http exposes the application's use cases over a JSON REST API.
// Handlers translate between wire representations and commands/queries;
// all authorization decisions stay behind the application layer.
package http

import (
	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
	getUserHandler        queries.GetUserQueryHandler
	getUserByEmailHandler queries.GetUserByEmailQueryHandler

	// Auth collaborators
	tokens     auth.TokenStrategy
	passwords  auth.PasswordHasher
	tokenStore ports.TokenStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers and authentication collaborators.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	getUserByEmailHandler queries.GetUserByEmailQueryHandler,
	tokens auth.TokenStrategy,
	passwords auth.PasswordHasher,
	tokenStore ports.TokenStore,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getUserHandler:           getUserHandler,
		getUserByEmailHandler:    getUserByEmailHandler,
		tokens:                   tokens,
		passwords:                passwords,
		tokenStore:               tokenStore,
	}
}

// RegisterRoutes mounts the API routes on the echo instance. Routes that
// require a bearer token sit behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	requireAuth := BearerAuth(s.tokens, s.tokenStore)

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.GET("/me", s.Me, requireAuth)
	authGroup.POST("/logout", s.Logout, requireAuth)
	authGroup.POST("/refresh", s.Refresh, requireAuth)

	orders := e.Group("/api/orders", requireAuth)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id", s.UpdateOrderStatus)
	orders.POST("/:id/cancel", s.CancelOrder)
}
