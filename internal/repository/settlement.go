package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dancextreme/backend/internal/model"
)

// SettlementRepository turns a confirmed payment into a durable enrollment
// record, cart cleanup, and seat counter updates. It is the only writer
// allowed to mutate class counters and delete cart rows as a unit.
type SettlementRepository struct {
	db DB
}

// NewSettlementRepository constructs a SettlementRepository.
func NewSettlementRepository(db DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

// Settle executes the whole settlement inside one database transaction:
//
//  1. insert one enrolled_classes row per purchased class, all sharing the
//     payment transaction id;
//  2. delete the referenced cart rows (absence is not an error);
//  3. take one seat per class via a conditional update.
//
// Nothing is visible to other transactions until the commit, so the caller
// observes either all three effects or none.
//
// The seat decrement is guarded by `available_seats > 0` in the UPDATE
// itself. Two settlements racing for the last seat both reach the UPDATE,
// but the row lock serialises them: the second re-evaluates the predicate
// against the first one's committed write, affects zero rows, and the whole
// settlement rolls back with ErrSeatUnavailable. A read-then-write check
// would let both pass and oversell the class.
//
// Failures other than a missing class or an exhausted one are wrapped in
// ErrSettlementFailed so the caller can distinguish "retry the settlement"
// from "reconcile the payment".
func (r *SettlementRepository) Settle(ctx context.Context, payment model.PaymentRequest) (*model.SettlementResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrSettlementFailed, err)
	}
	// Ensure the transaction is always resolved.
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	paymentDate := time.Now().UTC()

	// ── Step 1: record the enrollments. ───────────────────────────────────
	for _, classID := range payment.ClassIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO enrolled_classes (id, user_email, class_id, class_name, price,
			                               payment_transaction_id, payment_date)
			 SELECT $1, $2, id, name, price, $4, $5 FROM classes WHERE id = $3`,
			uuid.New().String(), payment.Email, classID, payment.TransactionID, paymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: insert enrollment: %v", ErrSettlementFailed, err)
		}
	}

	// ── Step 2: clear the purchased cart rows (idempotent deletes). ───────
	removed := 0
	for _, itemID := range payment.CartItemIDs {
		tag, execErr := tx.Exec(ctx,
			`DELETE FROM cart_selections WHERE id = $1`,
			itemID,
		)
		if execErr != nil {
			err = fmt.Errorf("%w: delete cart item: %v", ErrSettlementFailed, execErr)
			return nil, err
		}
		removed += int(tag.RowsAffected())
	}

	// ── Step 3: take one seat per class, guarded against overselling. ─────
	for _, classID := range payment.ClassIDs {
		tag, execErr := tx.Exec(ctx,
			`UPDATE classes
			 SET available_seats = available_seats - 1,
			     total_enrolled_student = total_enrolled_student + 1
			 WHERE id = $1 AND available_seats > 0`,
			classID,
		)
		if execErr != nil {
			err = fmt.Errorf("%w: take seat: %v", ErrSettlementFailed, execErr)
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			// Distinguish an unknown class from an exhausted one.
			var exists bool
			if scanErr := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1)`,
				classID,
			).Scan(&exists); scanErr != nil {
				err = fmt.Errorf("%w: check class: %v", ErrSettlementFailed, scanErr)
				return nil, err
			}
			if !exists {
				err = ErrNotFound
				return nil, err
			}
			err = ErrSeatUnavailable
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrSettlementFailed, err)
	}

	return &model.SettlementResult{
		TransactionID:   payment.TransactionID,
		EnrolledCount:   len(payment.ClassIDs),
		RemovedFromCart: removed,
	}, nil
}

// ListEnrolledForUser returns the user's purchase history, newest first.
func (r *SettlementRepository) ListEnrolledForUser(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_email, class_id, class_name, price, payment_transaction_id, payment_date
		 FROM enrolled_classes
		 WHERE user_email = $1
		 ORDER BY payment_date DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrolled classes: %w", err)
	}
	defer rows.Close()

	var enrolled []model.EnrolledClass
	for rows.Next() {
		var e model.EnrolledClass
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.ClassID, &e.ClassName, &e.Price,
			&e.PaymentTransactionID, &e.PaymentDate); err != nil {
			return nil, fmt.Errorf("scan enrolled class: %w", err)
		}
		enrolled = append(enrolled, e)
	}
	return enrolled, rows.Err()
}
