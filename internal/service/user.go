package service

import (
	"context"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// CreateUserInput carries the fields accepted when creating a user.
// Role and Status are optional; nil selects the default, an explicit empty
// string does not.
type CreateUserInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// UserService defines the use cases for users.
type UserService interface {
	// Create applies role/status defaults, requires every field to be
	// non-empty and persists the user. The stored user is returned as is.
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	user := &model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     valueOr(in.Role, model.DefaultUserRole),
		Status:   valueOr(in.Status, model.DefaultUserStatus),
	}
	if anyEmpty(user.Name, user.Email, user.Password, user.Role, user.Status) {
		return nil, ErrInvalidParameters
	}
	return s.repo.Create(ctx, user)
}
