// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/usersvc/internal/repository"
	"github.com/deppfellow/usersvc/internal/server"
)

type Services struct {
	User *UserService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		User: NewUserService(s.Logger, repos.User, s.Job),
	}
}
