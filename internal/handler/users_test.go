package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/service"
)

func newUserRouter(store *fakeUserStore) (*chi.Mux, *AuthMiddleware) {
	users := service.NewUserService(store)
	mw := NewAuthMiddleware(testSecret, users)
	h := NewUserHandler(users, testSecret, 3*time.Hour)

	r := chi.NewRouter()
	r.Post("/jwt", h.IssueToken)
	r.Post("/users", h.Register)
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)
		r.Get("/users/admin/{email}", h.CheckAdmin)
		r.Get("/users/instructor/{email}", h.CheckInstructor)
	})
	return r, mw
}

func TestIssueToken_ReturnsUsableToken(t *testing.T) {
	r, _ := newUserRouter(&fakeUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
}

func TestIssueToken_RequiresEmail(t *testing.T) {
	r, _ := newUserRouter(&fakeUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":""}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_ExistingUserNotice(t *testing.T) {
	r, _ := newUserRouter(&fakeUserStore{registerCreated: false})

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"taken@example.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.RegisterUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Existing)
}

func TestRegister_NewUserCreated(t *testing.T) {
	r, _ := newUserRouter(&fakeUserStore{
		registerUser:    &model.User{Email: "new@example.com"},
		registerCreated: true,
	})

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"new@example.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckAdmin_OtherUsersEmailIsAlwaysFalse(t *testing.T) {
	// The stored record says admin, but the token belongs to someone else.
	r, _ := newUserRouter(&fakeUserStore{usersByEmail: map[string]*model.User{
		"boss@example.com": {Email: "boss@example.com", Role: model.RoleAdmin},
	}})

	req := httptest.NewRequest(http.MethodGet, "/users/admin/boss@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "snoop@example.com"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp["admin"])
}

func TestCheckAdmin_SelfLookup(t *testing.T) {
	r, _ := newUserRouter(&fakeUserStore{usersByEmail: map[string]*model.User{
		"boss@example.com": {Email: "boss@example.com", Role: model.RoleAdmin},
	}})

	req := httptest.NewRequest(http.MethodGet, "/users/admin/boss@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "boss@example.com"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp["admin"])
}

func TestCheckInstructor_MissingUserIsFalseNotCrash(t *testing.T) {
	r, _ := newUserRouter(&fakeUserStore{usersByEmail: map[string]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/users/instructor/ghost@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "ghost@example.com"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp["instructor"])
}
