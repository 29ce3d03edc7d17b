package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/repository"
)

// UserService orchestrates account registration and role management.
type UserService struct {
	users UserStore
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates an account for a new email. Registering an email that
// already exists is a no-op acknowledged with a notice.
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) (model.RegisterUserResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" {
		return model.RegisterUserResponse{}, fmt.Errorf("email is required")
	}
	if !isValidEmail(req.Email) {
		return model.RegisterUserResponse{}, fmt.Errorf("email is not a valid address")
	}

	_, created, err := s.users.Register(ctx, req)
	if err != nil {
		return model.RegisterUserResponse{}, fmt.Errorf("register user: %w", err)
	}
	if !created {
		return model.RegisterUserResponse{Message: "user already exists", Existing: true}, nil
	}
	return model.RegisterUserResponse{Message: "user created"}, nil
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// ListInstructors returns the public projection of every instructor.
func (s *UserService) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return s.users.ListInstructors(ctx)
}

// HasRole reports whether the user with the given email holds the role.
// A missing user is simply "no", never an error: role lookups answer
// questions, the middleware guard is what denies access.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up role: %w", err)
	}
	return user.Role == role, nil
}

// GetByEmail returns the stored user record for an email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, normalizeEmail(email))
}

// Promote sets the role of the user with the given id. Only the two
// promotion targets are accepted.
func (s *UserService) Promote(ctx context.Context, id, role string) error {
	if id == "" {
		return fmt.Errorf("user id is required")
	}
	if role != model.RoleAdmin && role != model.RoleInstructor {
		return fmt.Errorf("%w: unknown role %q", repository.ErrInvalidRequest, role)
	}
	return s.users.SetRole(ctx, id, role)
}
