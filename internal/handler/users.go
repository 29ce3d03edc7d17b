package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dancextreme/backend/internal/auth"
	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/service"
)

// UserHandler holds the HTTP handlers for identity and role management.
type UserHandler struct {
	svc       *service.UserService
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc *service.UserService, jwtSecret []byte, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// IssueToken handles POST /jwt
// Issues a signed bearer token for the supplied email.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := auth.IssueToken(req.Email, h.jwtSecret, h.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// Register handles POST /users
// Creates an account; registering an existing email returns a notice.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	status := http.StatusCreated
	if resp.Existing {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

// List handles GET /users (admin only)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// ListInstructors handles GET /all-instructors (public)
func (h *UserHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.svc.ListInstructors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list instructors")
		return
	}
	if instructors == nil {
		instructors = []model.Instructor{}
	}
	writeJSON(w, http.StatusOK, instructors)
}

// CheckAdmin handles GET /users/admin/{email}
// Answers {admin:false} without a lookup when the token belongs to a
// different email, regardless of the caller's actual role.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, model.RoleAdmin, "admin")
}

// CheckInstructor handles GET /users/instructor/{email}
func (h *UserHandler) CheckInstructor(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, model.RoleInstructor, "instructor")
}

func (h *UserHandler) checkRole(w http.ResponseWriter, r *http.Request, role, field string) {
	pathEmail := strings.ToLower(chi.URLParam(r, "email"))
	callerEmail, _ := EmailFromContext(r.Context())

	if pathEmail != callerEmail {
		writeJSON(w, http.StatusOK, map[string]bool{field: false})
		return
	}

	hasRole, err := h.svc.HasRole(r.Context(), pathEmail, role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "role check failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{field: hasRole})
}

// MakeAdmin handles PATCH /users/make-admin/{id} (admin only)
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, model.RoleAdmin)
}

// MakeInstructor handles PATCH /users/make-instructor/{id} (admin only)
func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, model.RoleInstructor)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role string) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Promote(r.Context(), id, role); err != nil {
		respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "role updated"})
}
