package payments

import (
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Gateway creates card payment intents against Stripe.
type Gateway struct{}

func New(apiKey string) *Gateway {
	stripe.Key = apiKey
	return &Gateway{}
}

func (g *Gateway) CreateIntent(amount int64, currency string) (string, error) {
	pi, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
