// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"strings"

	"github.com/dancextreme/backend/internal/model"
)

// UserStore is the persistence surface the user service depends on.
type UserStore interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListInstructors(ctx context.Context) ([]model.Instructor, error)
	SetRole(ctx context.Context, id, role string) error
}

// ClassStore is the persistence surface the class service depends on.
type ClassStore interface {
	Create(ctx context.Context, instructorEmail string, req model.CreateClassRequest) (*model.Class, error)
	GetByID(ctx context.Context, id string) (*model.Class, error)
	ListApproved(ctx context.Context, sortKey string, descending bool) ([]model.Class, error)
	ListPopular(ctx context.Context, limit int) ([]model.Class, error)
	ListAll(ctx context.Context) ([]model.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]model.Class, error)
	SetStatus(ctx context.Context, id, status, feedback string) error
}

// CartStore is the persistence surface the cart service depends on.
type CartStore interface {
	Add(ctx context.Context, userEmail string, class *model.Class) (*model.CartSelection, error)
	ListForUser(ctx context.Context, email string) ([]model.CartSelection, error)
	Remove(ctx context.Context, id string) error
}

// SettlementStore is the persistence surface the payment service depends on.
type SettlementStore interface {
	Settle(ctx context.Context, payment model.PaymentRequest) (*model.SettlementResult, error)
	ListEnrolledForUser(ctx context.Context, email string) ([]model.EnrolledClass, error)
}

// normalizeEmail lowercases and trims an email address.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// isValidEmail does a basic structural check (no external deps).
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
