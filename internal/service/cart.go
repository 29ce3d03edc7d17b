package service

import (
	"context"
	"fmt"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/repository"
)

// CartService orchestrates unpaid class selections.
type CartService struct {
	cart    CartStore
	classes ClassStore
}

// NewCartService constructs a CartService.
func NewCartService(cart CartStore, classes ClassStore) *CartService {
	return &CartService{cart: cart, classes: classes}
}

// Add records the user's intent to enroll in a class. The class snapshot
// (name, price, image) is taken from the catalog, not from the client, and
// only approved classes can be selected.
func (s *CartService) Add(ctx context.Context, userEmail string, req model.AddSelectionRequest) (*model.CartSelection, error) {
	if req.ClassID == "" {
		return nil, fmt.Errorf("class_id is required")
	}

	class, err := s.classes.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if class.Status != model.StatusApproved {
		return nil, fmt.Errorf("%w: class is not open for enrollment", repository.ErrInvalidRequest)
	}

	return s.cart.Add(ctx, normalizeEmail(userEmail), class)
}

// ListForUser returns the user's selections.
func (s *CartService) ListForUser(ctx context.Context, email string) ([]model.CartSelection, error) {
	return s.cart.ListForUser(ctx, normalizeEmail(email))
}

// Remove deletes a selection by id; removing an already-deleted id is a
// no-op.
func (s *CartService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("selection id is required")
	}
	return s.cart.Remove(ctx, id)
}
