package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStore keeps venue and event payments in two separate collections.
// Session lookups probe the venue collection first, then the event one.
type PaymentStore interface {
	InsertVenuePayment(ctx context.Context, payment *VenuePayment) error
	InsertEventPayment(ctx context.Context, payment *EventPayment) error

	GetVenuePaymentBySession(ctx context.Context, sessionID string) (*VenuePayment, error)
	GetEventPaymentBySession(ctx context.Context, sessionID string) (*EventPayment, error)
	UpdateVenuePayment(ctx context.Context, payment *VenuePayment) error
	UpdateEventPayment(ctx context.Context, payment *EventPayment) error

	GetVenuePaymentsByRenter(ctx context.Context, renterID primitive.ObjectID) ([]*VenuePayment, error)
	GetEventPaymentsByHost(ctx context.Context, hostID primitive.ObjectID) ([]*EventPayment, error)
	GetVenuePaymentForUser(ctx context.Context, id, userID primitive.ObjectID) (*VenuePayment, error)
	GetEventPaymentForUser(ctx context.Context, id, userID primitive.ObjectID) (*EventPayment, error)
	GetVenuePaymentsByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*VenuePayment, error)

	GetSuccessfulVenuePayments(ctx context.Context) ([]*VenuePayment, error)
	GetSuccessfulEventPayments(ctx context.Context) ([]*EventPayment, error)
}
