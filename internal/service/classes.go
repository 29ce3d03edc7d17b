package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/repository"
)

// popularLimit caps the landing-page popular listing.
const popularLimit = 6

// ClassService orchestrates catalog operations.
type ClassService struct {
	classes ClassStore
}

// NewClassService constructs a ClassService.
func NewClassService(classes ClassStore) *ClassService {
	return &ClassService{classes: classes}
}

// Propose validates an instructor's class proposal and inserts it pending
// admin review.
func (s *ClassService) Propose(ctx context.Context, instructorEmail string, req model.CreateClassRequest) (*model.Class, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("class name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if req.AvailableSeats <= 0 {
		return nil, fmt.Errorf("available seats must be a positive integer")
	}
	if req.AvailableSeats > 10_000 {
		return nil, fmt.Errorf("available seats cannot exceed 10,000")
	}
	return s.classes.Create(ctx, normalizeEmail(instructorEmail), req)
}

// ListApproved returns the public catalog, sorted by the caller's key.
// Direction is "asc" or "desc"; anything else means ascending.
func (s *ClassService) ListApproved(ctx context.Context, sortKey, direction string) ([]model.PublicClass, error) {
	classes, err := s.classes.ListApproved(ctx, sortKey, strings.EqualFold(direction, "desc"))
	if err != nil {
		return nil, err
	}
	return publicProjection(classes), nil
}

// ListPopular returns the most-enrolled approved classes.
func (s *ClassService) ListPopular(ctx context.Context) ([]model.PublicClass, error) {
	classes, err := s.classes.ListPopular(ctx, popularLimit)
	if err != nil {
		return nil, err
	}
	return publicProjection(classes), nil
}

// ListAll returns every class, including pending and denied ones.
func (s *ClassService) ListAll(ctx context.Context) ([]model.Class, error) {
	return s.classes.ListAll(ctx)
}

// ListByInstructor returns the classes proposed by one instructor.
func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return s.classes.ListByInstructor(ctx, normalizeEmail(email))
}

// SetStatus applies an admin decision. Approval clears feedback; denial
// requires a non-empty reason. Any other combination is rejected rather
// than silently ignored.
func (s *ClassService) SetStatus(ctx context.Context, classID, newStatus, feedback string) error {
	if classID == "" {
		return fmt.Errorf("%w: classId is required", repository.ErrInvalidRequest)
	}

	feedback = strings.TrimSpace(feedback)
	switch newStatus {
	case model.StatusApproved:
		feedback = ""
	case model.StatusDenied:
		if feedback == "" {
			return fmt.Errorf("%w: denying a class requires feedback", repository.ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", repository.ErrInvalidRequest, newStatus)
	}

	return s.classes.SetStatus(ctx, classID, newStatus, feedback)
}

func publicProjection(classes []model.Class) []model.PublicClass {
	public := make([]model.PublicClass, 0, len(classes))
	for i := range classes {
		public = append(public, classes[i].Public())
	}
	return public
}
