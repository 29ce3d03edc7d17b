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

const classColumns = `id, name, instructor_name, instructor_email, price, image_url,
	 available_seats, total_enrolled_student, status, feedback, created_at`

// Sort keys accepted by ListApproved. Anything else falls back to created_at
// so user input never reaches the ORDER BY clause directly.
var approvedSortColumns = map[string]string{
	"price":      "price",
	"name":       "name",
	"created_at": "created_at",
}

// ClassRepository handles persistence for the class catalog.
type ClassRepository struct {
	db DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a proposed class with pending status and zeroed enrollment.
func (r *ClassRepository) Create(ctx context.Context, instructorEmail string, req model.CreateClassRequest) (*model.Class, error) {
	class := &model.Class{
		ID:              uuid.New().String(),
		Name:            req.Name,
		InstructorName:  req.InstructorName,
		InstructorEmail: instructorEmail,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		AvailableSeats:  req.AvailableSeats,
		Status:          model.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO classes (id, name, instructor_name, instructor_email, price, image_url,
		                      available_seats, total_enrolled_student, status, feedback, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		class.ID, class.Name, class.InstructorName, class.InstructorEmail, class.Price,
		class.ImageURL, class.AvailableSeats, class.TotalEnrolledStudent, class.Status,
		class.Feedback, class.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return class, nil
}

// GetByID returns a single class or ErrNotFound.
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var c model.Class
	err := r.db.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.InstructorName, &c.InstructorEmail, &c.Price, &c.ImageURL,
		&c.AvailableSeats, &c.TotalEnrolledStudent, &c.Status, &c.Feedback, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get class: %w", err)
	}
	return &c, nil
}

// ListApproved returns approved classes sorted by a whitelisted key.
func (r *ClassRepository) ListApproved(ctx context.Context, sortKey string, descending bool) ([]model.Class, error) {
	column, ok := approvedSortColumns[sortKey]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM classes WHERE status = $1 ORDER BY %s %s`,
		classColumns, column, direction,
	)
	return r.queryClasses(ctx, query, model.StatusApproved)
}

// ListPopular returns approved classes ordered by enrollment, capped at limit.
func (r *ClassRepository) ListPopular(ctx context.Context, limit int) ([]model.Class, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM classes WHERE status = $1
		 ORDER BY total_enrolled_student DESC
		 LIMIT $2`,
		classColumns,
	)
	return r.queryClasses(ctx, query, model.StatusApproved, limit)
}

// ListAll returns every class regardless of status, newest first.
func (r *ClassRepository) ListAll(ctx context.Context) ([]model.Class, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM classes ORDER BY created_at DESC`,
		classColumns,
	)
	return r.queryClasses(ctx, query)
}

// ListByInstructor returns all classes proposed by the given instructor.
func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM classes WHERE instructor_email = $1 ORDER BY created_at DESC`,
		classColumns,
	)
	return r.queryClasses(ctx, query, email)
}

// SetStatus applies an admin approval decision. The newStatus/feedback
// combination is validated in the service layer; here an unknown class id
// yields ErrNotFound.
func (r *ClassRepository) SetStatus(ctx context.Context, id, status, feedback string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE classes SET status = $2, feedback = $3 WHERE id = $1`,
		id, status, feedback,
	)
	if err != nil {
		return fmt.Errorf("update class status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClassRepository) queryClasses(ctx context.Context, query string, args ...any) ([]model.Class, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.InstructorName, &c.InstructorEmail, &c.Price,
			&c.ImageURL, &c.AvailableSeats, &c.TotalEnrolledStudent, &c.Status, &c.Feedback,
			&c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
