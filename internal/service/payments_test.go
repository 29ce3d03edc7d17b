package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/repository"
)

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{secret: "cs_test"}
	svc := NewPaymentService(gw, &fakeSettlementStore{})

	secret, err := svc.CreateIntent(context.Background(), 49.99)
	require.NoError(t, err)
	require.Equal(t, "cs_test", secret)
	require.Equal(t, int64(4999), gw.gotAmount)
	require.Equal(t, "usd", gw.gotCurr)
}

func TestCreateIntent_RejectsNonPositiveTotal(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, &fakeSettlementStore{})

	_, err := svc.CreateIntent(context.Background(), 0)
	require.Error(t, err)

	_, err = svc.CreateIntent(context.Background(), -10)
	require.Error(t, err)
}

func TestCreateIntent_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("stripe down")}
	svc := NewPaymentService(gw, &fakeSettlementStore{})

	_, err := svc.CreateIntent(context.Background(), 20)
	require.ErrorIs(t, err, ErrGateway)
}

func TestSettle_ValidationShortCircuitsStore(t *testing.T) {
	store := &fakeSettlementStore{}
	svc := NewPaymentService(&fakeGateway{}, store)
	ctx := context.Background()

	cases := []struct {
		name string
		req  model.PaymentRequest
	}{
		{"missing email", model.PaymentRequest{TransactionID: "pi_1", ClassIDs: []string{"c-1"}}},
		{"missing transaction", model.PaymentRequest{Email: "a@b.com", ClassIDs: []string{"c-1"}}},
		{"no classes", model.PaymentRequest{Email: "a@b.com", TransactionID: "pi_1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Settle(ctx, tc.req)
			require.ErrorIs(t, err, repository.ErrInvalidRequest)
			require.False(t, store.settled)
		})
	}
}

func TestSettle_PassesThroughDomainErrors(t *testing.T) {
	store := &fakeSettlementStore{settleErr: repository.ErrSeatUnavailable}
	svc := NewPaymentService(&fakeGateway{}, store)

	_, err := svc.Settle(context.Background(), model.PaymentRequest{
		Email: "a@b.com", TransactionID: "pi_1", ClassIDs: []string{"c-1"},
	})
	require.ErrorIs(t, err, repository.ErrSeatUnavailable)
}

func TestSettle_NormalizesEmail(t *testing.T) {
	store := &fakeSettlementStore{result: &model.SettlementResult{TransactionID: "pi_1"}}
	svc := NewPaymentService(&fakeGateway{}, store)

	result, err := svc.Settle(context.Background(), model.PaymentRequest{
		Email: " Student@Example.COM ", TransactionID: "pi_1", ClassIDs: []string{"c-1"},
	})
	require.NoError(t, err)
	require.Equal(t, "pi_1", result.TransactionID)
	require.Equal(t, "student@example.com", store.gotPayment.Email)
}
