package user

import "github.com/deppfellow/usersvc/internal/validation"

// CreateUserRequest is the body of POST /api/v1/users.
//
// PasswordConfirm must equal Password byte for byte; the `match` rule reports
// a mismatch on passwordConfirm.
type CreateUserRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required,min=4,max=20,password"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,min=4,max=20,match=Password"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// GetUserRequest carries the path parameter of GET /api/v1/users/:id.
type GetUserRequest struct {
	ID string `param:"id" json:"id" validate:"required,uuid"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}
