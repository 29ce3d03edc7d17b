// Package payment adapts the external card-payment provider. The rest of
// the system only sees the Gateway interface; Stripe specifics stay here.
package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Gateway creates payment intents with the card provider. Amounts are in
// minor currency units (cents for two-decimal currencies).
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}

// StripeGateway implements Gateway against the Stripe PaymentIntents API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway with its own API client, so the secret
// key is not installed as package-global state.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent registers a card payment intent and returns the client
// secret the browser needs to confirm it.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
