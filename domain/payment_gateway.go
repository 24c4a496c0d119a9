package domain

import "context"

// CheckoutItem describes the single line item of a hosted checkout session.
// UnitAmount is in the smallest currency unit.
type CheckoutItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
	Metadata    map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PaymentGateway interface {
	CreateCustomer(ctx context.Context, name string) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID string, item CheckoutItem) (*CheckoutSession, error)
}
