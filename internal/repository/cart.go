package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dancextreme/backend/internal/model"
)

// CartRepository handles persistence for unpaid class selections.
type CartRepository struct {
	db DB
}

// NewCartRepository constructs a CartRepository.
func NewCartRepository(db DB) *CartRepository {
	return &CartRepository{db: db}
}

// Add inserts a selection for the given user and class snapshot.
func (r *CartRepository) Add(ctx context.Context, userEmail string, class *model.Class) (*model.CartSelection, error) {
	sel := &model.CartSelection{
		ID:        uuid.New().String(),
		UserEmail: userEmail,
		ClassID:   class.ID,
		ClassName: class.Name,
		Price:     class.Price,
		ImageURL:  class.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO cart_selections (id, user_email, class_id, class_name, price, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sel.ID, sel.UserEmail, sel.ClassID, sel.ClassName, sel.Price, sel.ImageURL, sel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}
	return sel, nil
}

// ListForUser returns the user's selections, newest first.
func (r *CartRepository) ListForUser(ctx context.Context, email string) ([]model.CartSelection, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_email, class_id, class_name, price, image_url, created_at
		 FROM cart_selections
		 WHERE user_email = $1
		 ORDER BY created_at DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	var selections []model.CartSelection
	for rows.Next() {
		var s model.CartSelection
		if err := rows.Scan(&s.ID, &s.UserEmail, &s.ClassID, &s.ClassName, &s.Price, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		selections = append(selections, s)
	}
	return selections, rows.Err()
}

// Remove deletes a selection by id. Removing an id that is already gone is
// a no-op, not an error.
func (r *CartRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_selections WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	return nil
}
