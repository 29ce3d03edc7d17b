// Package repository implements all database queries for the enrollment
// and payment backend. It uses pgx directly (no ORM) for transparency
// and performance.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrSeatUnavailable is returned when a settlement would take a seat from a
// class with no remaining capacity.
var ErrSeatUnavailable = errors.New("no seats available")

// ErrSettlementFailed is returned when any step of the settlement
// transaction fails; no partial writes are visible in that case.
var ErrSettlementFailed = errors.New("settlement failed")

// ErrInvalidRequest is returned for requests that are well-formed HTTP but
// semantically invalid, such as denying a class without feedback.
var ErrInvalidRequest = errors.New("invalid request")

// DB is the subset of pgxpool.Pool the repositories depend on. Keeping it
// narrow lets tests substitute a mock connection.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}
