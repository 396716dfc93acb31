package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/usersvc/internal/model/user"
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/labstack/echo/v4"
)

// UserService is the business layer behind the user endpoints.
type UserService interface {
	Create(ctx context.Context, req *user.CreateUserRequest) (*user.User, error)
	Get(ctx context.Context, req *user.GetUserRequest) (*user.User, error)
}

type UserHandler struct {
	Handler
	users UserService
}

func NewUserHandler(s *server.Server, users UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUser handles POST /api/v1/users.
//
// Validation failures are 400s. Database failures, such as a duplicate
// email, reach the global error handler untranslated.
func (h *UserHandler) CreateUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
		created, err := h.users.Create(c.Request().Context(), req)
		if err != nil {
			return nil, err
		}
		return created.ToResponse(), nil
	}, http.StatusCreated, func() *user.CreateUserRequest { return &user.CreateUserRequest{} })
}

// GetUser handles GET /api/v1/users/:id.
func (h *UserHandler) GetUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *user.GetUserRequest) (*user.UserResponse, error) {
		found, err := h.users.Get(c.Request().Context(), req)
		if err != nil {
			return nil, err
		}
		return found.ToResponse(), nil
	}, http.StatusOK, func() *user.GetUserRequest { return &user.GetUserRequest{} })
}
