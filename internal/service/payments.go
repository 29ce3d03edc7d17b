package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/payment"
	"github.com/dancextreme/backend/internal/repository"
)

// ErrGateway marks failures talking to the card-payment provider.
var ErrGateway = errors.New("payment gateway error")

// settlementCurrency is the only currency the studio charges in.
const settlementCurrency = "usd"

// PaymentService orchestrates payment-intent creation and the settlement
// flow that follows a confirmed payment.
type PaymentService struct {
	gateway     payment.Gateway
	settlements SettlementStore
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(gateway payment.Gateway, settlements SettlementStore) *PaymentService {
	return &PaymentService{gateway: gateway, settlements: settlements}
}

// CreateIntent converts the total to minor units and asks the gateway for a
// client secret the browser can confirm against.
func (s *PaymentService) CreateIntent(ctx context.Context, totalPrice float64) (string, error) {
	if totalPrice <= 0 {
		return "", fmt.Errorf("totalPrice must be positive")
	}

	amount := int64(math.Round(totalPrice * 100))
	secret, err := s.gateway.CreateIntent(ctx, amount, settlementCurrency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return secret, nil
}

// Settle validates the confirmed-payment record and runs the atomic
// settlement. Domain errors from the store pass through unchanged so
// handlers can map them to distinct statuses.
func (s *PaymentService) Settle(ctx context.Context, req model.PaymentRequest) (*model.SettlementResult, error) {
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", repository.ErrInvalidRequest)
	}
	if req.TransactionID == "" {
		return nil, fmt.Errorf("%w: transactionId is required", repository.ErrInvalidRequest)
	}
	if len(req.ClassIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one class is required", repository.ErrInvalidRequest)
	}

	return s.settlements.Settle(ctx, req)
}

// ListEnrolled returns the user's purchase history.
func (s *PaymentService) ListEnrolled(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	return s.settlements.ListEnrolledForUser(ctx, normalizeEmail(email))
}
