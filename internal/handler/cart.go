package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/service"
)

// CartHandler holds the HTTP handlers for unpaid class selections.
type CartHandler struct {
	svc *service.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(svc *service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// Add handles POST /selected-classes
// The selection is always recorded against the verified token email.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req model.AddSelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	selection, err := h.svc.Add(r.Context(), email, req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, selection)
}

// List handles GET /selected-classes?email=
// Callers can only read their own cart.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	queryEmail := strings.ToLower(r.URL.Query().Get("email"))
	callerEmail, _ := EmailFromContext(r.Context())

	if queryEmail != callerEmail {
		writeError(w, http.StatusForbidden, "cannot read another user's cart")
		return
	}

	selections, err := h.svc.ListForUser(r.Context(), callerEmail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list selections")
		return
	}
	if selections == nil {
		selections = []model.CartSelection{}
	}
	writeJSON(w, http.StatusOK, selections)
}

// Remove handles DELETE /selected-classes/{id}
// Deleting an id that is already gone is acknowledged, not an error.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Remove(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "selection removed"})
}
