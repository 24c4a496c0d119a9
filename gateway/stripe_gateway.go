package gateway

import (
	"context"
	"log"

	"github.com/sony/gobreaker"
	"github.com/stripe/stripe-go/v83"

	"eventsphere_backend/domain"
)

// StripeGateway creates gateway customers and hosted checkout sessions. All
// outbound calls go through a circuit breaker.
type StripeGateway struct {
	client     *stripe.Client
	breaker    *gobreaker.CircuitBreaker
	successURL string
	cancelURL  string
}

func NewStripeGateway(apiKey, clientURL string) domain.PaymentGateway {
	return &StripeGateway{
		client:     stripe.NewClient(apiKey),
		breaker:    gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "stripe"}),
		successURL: clientURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  clientURL + "/payment/cancel",
	}
}

func (gw *StripeGateway) CreateCustomer(ctx context.Context, name string) (string, error) {
	result, err := gw.breaker.Execute(func() (interface{}, error) {
		params := &stripe.CustomerCreateParams{
			Name: stripe.String(name),
			Address: &stripe.AddressParams{
				Line1:      stripe.String("India"),
				PostalCode: stripe.String("585101"),
				City:       stripe.String("Kalaburagi"),
				State:      stripe.String("KA"),
				Country:    stripe.String("US"),
			},
		}
		return gw.client.V1Customers.Create(ctx, params)
	})
	if err != nil {
		log.Println("stripe customer create failed:", err)
		return "", err
	}
	return result.(*stripe.Customer).ID, nil
}

func (gw *StripeGateway) CreateCheckoutSession(ctx context.Context, customerID string, item domain.CheckoutItem) (*domain.CheckoutSession, error) {
	result, err := gw.breaker.Execute(func() (interface{}, error) {
		params := &stripe.CheckoutSessionCreateParams{
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
				{
					PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
						Currency: stripe.String("inr"),
						ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
							Name:        stripe.String(item.Name),
							Description: stripe.String(item.Description),
						},
						UnitAmount: stripe.Int64(item.UnitAmount),
					},
					Quantity: stripe.Int64(item.Quantity),
				},
			},
			Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
			Metadata:   item.Metadata,
			SuccessURL: stripe.String(gw.successURL),
			CancelURL:  stripe.String(gw.cancelURL),
			Customer:   stripe.String(customerID),
		}
		return gw.client.V1CheckoutSessions.Create(ctx, params)
	})
	if err != nil {
		log.Println("stripe checkout session create failed:", err)
		return nil, err
	}

	session := result.(*stripe.CheckoutSession)
	return &domain.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
