package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// GatewayError carries the message the payment provider reported.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string { return e.Message }

func (e *GatewayError) Unwrap() error { return e.Err }

// StripeGateway creates card-only payment intents in a fixed currency.
type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	return NewStripeGatewayWithBackends(secretKey, currency, nil)
}

// NewStripeGatewayWithBackends lets tests point the client at a fake server.
func NewStripeGatewayWithBackends(secretKey, currency string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{
		api:      client.New(secretKey, backends),
		currency: currency,
	}
}

// CreatePaymentIntent returns the client secret the browser needs to confirm
// the charge.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		msg := err.Error()
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			msg = stripeErr.Msg
		}
		return "", &GatewayError{Message: msg, Err: fmt.Errorf("create payment intent: %w", err)}
	}

	return intent.ClientSecret, nil
}
