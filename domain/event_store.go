package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStore interface {
	Insert(ctx context.Context, event *Event) (*Event, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Event, error)
	GetAll(ctx context.Context) ([]*Event, error)
	GetByOrganizer(ctx context.Context, organizerID primitive.ObjectID) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Count(ctx context.Context) (int64, error)
	GetRecent(ctx context.Context, limit int64) ([]*Event, error)

	// Registry access is a plain read-modify-write with no version check.
	// GetEventTypes returns nil when no registry document exists yet.
	GetEventTypes(ctx context.Context) (*EventTypeRegistry, error)
	CreateDefaultEventTypes(ctx context.Context) (*EventTypeRegistry, error)
	SaveEventTypes(ctx context.Context, registry *EventTypeRegistry) error
}
