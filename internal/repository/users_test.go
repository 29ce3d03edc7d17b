package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/dancextreme/backend/internal/model"
)

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestRegister_NewUser(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "new@example.com", "New Dancer", "", model.RoleUser, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	user, created, err := repo.Register(context.Background(), model.RegisterUserRequest{
		Email:       "new@example.com",
		DisplayName: "New Dancer",
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, model.RoleUser, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_ExistingEmailIsNoOp(t *testing.T) {
	repo, mock := newUserRepo(t)

	// ON CONFLICT DO NOTHING: zero rows affected, no duplicate, no error.
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "taken@example.com", "", "", model.RoleUser, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	user, created, err := repo.Register(context.Background(), model.RegisterUserRequest{
		Email: "taken@example.com",
	})
	require.NoError(t, err)
	require.False(t, created)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT id, email, display_name, photo_url, role, created_at`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetRole_UnknownID(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`UPDATE users SET role`).
		WithArgs("no-such-id", model.RoleAdmin).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SetRole(context.Background(), "no-such-id", model.RoleAdmin)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
