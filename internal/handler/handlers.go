// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the..
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core..
// business logic.
package handler

import (
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/deppfellow/usersvc/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	User    *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		User:    NewUserHandler(s, services.User),
	}
}
