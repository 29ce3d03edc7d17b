package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/service"
)

// ClassHandler holds the HTTP handlers for the class catalog.
type ClassHandler struct {
	svc *service.ClassService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// ListApproved handles GET /all-classes?sort=&order= (public)
func (h *ClassHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")
	order := r.URL.Query().Get("order")

	classes, err := h.svc.ListApproved(r.Context(), sortKey, order)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list classes")
		return
	}
	if classes == nil {
		classes = []model.PublicClass{}
	}
	writeJSON(w, http.StatusOK, classes)
}

// ListPopular handles GET /get-popular-classes (public)
func (h *ClassHandler) ListPopular(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.ListPopular(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list popular classes")
		return
	}
	if classes == nil {
		classes = []model.PublicClass{}
	}
	writeJSON(w, http.StatusOK, classes)
}

// Create handles POST /classes (instructor only)
// The instructor identity is the verified token email.
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req model.CreateClassRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	class, err := h.svc.Propose(r.Context(), email, req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, class)
}

// ListAll handles GET /classes (admin only)
func (h *ClassHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list classes")
		return
	}
	if classes == nil {
		classes = []model.Class{}
	}
	writeJSON(w, http.StatusOK, classes)
}

// ListByInstructor handles GET /classes/{email} (instructor, own classes)
// Instructors can only read their own catalog.
func (h *ClassHandler) ListByInstructor(w http.ResponseWriter, r *http.Request) {
	pathEmail := strings.ToLower(chi.URLParam(r, "email"))
	callerEmail, _ := EmailFromContext(r.Context())

	if pathEmail != callerEmail {
		writeError(w, http.StatusForbidden, "cannot read another instructor's classes")
		return
	}

	classes, err := h.svc.ListByInstructor(r.Context(), pathEmail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list classes")
		return
	}
	if classes == nil {
		classes = []model.Class{}
	}
	writeJSON(w, http.StatusOK, classes)
}

// SetStatus handles PATCH /classes?classId=&newStatus= (admin only)
// Denial requires feedback in the body; invalid combinations are rejected.
func (h *ClassHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	classID := r.URL.Query().Get("classId")
	newStatus := r.URL.Query().Get("newStatus")

	var req model.StatusUpdateRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	if err := h.svc.SetStatus(r.Context(), classID, newStatus, req.Feedback); err != nil {
		respondDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}
