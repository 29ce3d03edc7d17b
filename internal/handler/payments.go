package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/service"
)

// PaymentHandler holds the HTTP handlers for payment intents and the
// settlement flow.
type PaymentHandler struct {
	svc *service.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	secret, err := h.svc.CreateIntent(r.Context(), req.TotalPrice)
	if err != nil {
		if errors.Is(err, service.ErrGateway) {
			writeError(w, http.StatusBadGateway, "payment provider unavailable")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.CreateIntentResponse{ClientSecret: secret})
}

// Settle handles POST /payment
// Runs the atomic settlement for a confirmed payment. The payment must
// belong to the verified token email.
func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := EmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req model.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.ToLower(strings.TrimSpace(req.Email)) != callerEmail {
		writeError(w, http.StatusForbidden, "payment email does not match caller")
		return
	}

	result, err := h.svc.Settle(r.Context(), req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListEnrolled handles GET /enrolled-classes?email=
// Callers can only read their own purchase history.
func (h *PaymentHandler) ListEnrolled(w http.ResponseWriter, r *http.Request) {
	queryEmail := strings.ToLower(r.URL.Query().Get("email"))
	callerEmail, _ := EmailFromContext(r.Context())

	if queryEmail != callerEmail {
		writeError(w, http.StatusForbidden, "cannot read another user's enrollments")
		return
	}

	enrolled, err := h.svc.ListEnrolled(r.Context(), callerEmail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list enrollments")
		return
	}
	if enrolled == nil {
		enrolled = []model.EnrolledClass{}
	}
	writeJSON(w, http.StatusOK, enrolled)
}
