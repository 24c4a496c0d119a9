package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenueStore interface {
	Insert(ctx context.Context, venue *Venue) (*Venue, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	GetAll(ctx context.Context) ([]*Venue, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*Venue, error)
	GetByStatus(ctx context.Context, status VerificationStatus) ([]*Venue, error)
	GetByNameAndAddress(ctx context.Context, name, address string) (*Venue, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	Count(ctx context.Context) (int64, error)
	GetRecent(ctx context.Context, limit int64) ([]*Venue, error)
}
