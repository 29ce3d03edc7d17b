package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dancextreme/backend/internal/model"
)

// UserRepository handles persistence for user accounts.
type UserRepository struct {
	db DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register inserts a new user unless the email is already taken. The insert
// is idempotent: registering an existing email affects no rows and returns
// created = false, never a duplicate record.
func (r *UserRepository) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, bool, error) {
	user := &model.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        model.RoleUser,
		CreatedAt:   time.Now().UTC(),
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, display_name, photo_url, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING`,
		user.ID, user.Email, user.DisplayName, user.PhotoURL, user.Role, user.CreatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, false, nil
	}
	return user, true, nil
}

// GetByEmail returns a single user or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, display_name, photo_url, role, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List returns all users ordered by registration time.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, display_name, photo_url, role, created_at
		 FROM users
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListInstructors returns the public projection of every instructor.
func (r *UserRepository) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, display_name, photo_url
		 FROM users
		 WHERE role = $1
		 ORDER BY display_name ASC`,
		model.RoleInstructor,
	)
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer rows.Close()

	var instructors []model.Instructor
	for rows.Next() {
		var i model.Instructor
		if err := rows.Scan(&i.ID, &i.Email, &i.DisplayName, &i.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

// SetRole promotes the user with the given id to the given role.
func (r *UserRepository) SetRole(ctx context.Context, id, role string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET role = $2 WHERE id = $1`,
		id, role,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
