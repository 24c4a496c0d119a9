package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventsphere_backend/domain"
)

const (
	EVENTS_COLLECTION      = "events"
	EVENT_TYPES_COLLECTION = "eventTypes"
)

type EventMongoDBStore struct {
	events     *mongo.Collection
	eventTypes *mongo.Collection
}

func NewEventMongoDBStore(client *mongo.Client) domain.EventStore {
	database := client.Database(DATABASE)
	return &EventMongoDBStore{
		events:     database.Collection(EVENTS_COLLECTION),
		eventTypes: database.Collection(EVENT_TYPES_COLLECTION),
	}
}

func (store *EventMongoDBStore) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	result, err := store.events.InsertOne(context.TODO(), event)
	if err != nil {
		return nil, err
	}
	event.ID = result.InsertedID.(primitive.ObjectID)
	return event, nil
}

func (store *EventMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	filter := bson.M{"_id": id}
	return store.filterOne(filter)
}

func (store *EventMongoDBStore) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return store.filter(bson.M{})
}

func (store *EventMongoDBStore) GetByOrganizer(ctx context.Context, organizerID primitive.ObjectID) ([]*domain.Event, error) {
	return store.filter(bson.M{"organizer": organizerID})
}

func (store *EventMongoDBStore) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedAt = time.Now()
	filter := bson.M{"_id": event.ID}
	_, err := store.events.ReplaceOne(context.TODO(), filter, event)
	return err
}

func (store *EventMongoDBStore) Count(ctx context.Context) (int64, error) {
	return store.events.CountDocuments(context.TODO(), bson.M{})
}

func (store *EventMongoDBStore) GetRecent(ctx context.Context, limit int64) ([]*domain.Event, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)

	cursor, err := store.events.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())
	return decodeEvents(cursor)
}

// GetEventTypes returns the singleton registry document, nil when it has not
// been created yet.
func (store *EventMongoDBStore) GetEventTypes(ctx context.Context) (*domain.EventTypeRegistry, error) {
	result := store.eventTypes.FindOne(context.TODO(), bson.M{})

	var registry domain.EventTypeRegistry
	err := result.Decode(&registry)
	if err == nil {
		return &registry, nil
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error decoding event type registry:", err)
		return nil, err
	}
	return nil, nil
}

func (store *EventMongoDBStore) CreateDefaultEventTypes(ctx context.Context) (*domain.EventTypeRegistry, error) {
	registry := domain.EventTypeRegistry{
		ID:           primitive.NewObjectID(),
		OnlineTypes:  domain.DefaultOnlineTypes,
		OfflineTypes: domain.DefaultOfflineTypes,
	}
	_, err := store.eventTypes.InsertOne(context.TODO(), &registry)
	if err != nil {
		return nil, err
	}
	return &registry, nil
}

func (store *EventMongoDBStore) SaveEventTypes(ctx context.Context, registry *domain.EventTypeRegistry) error {
	filter := bson.M{"_id": registry.ID}
	_, err := store.eventTypes.ReplaceOne(context.TODO(), filter, registry)
	return err
}

func (store *EventMongoDBStore) filter(filter interface{}) ([]*domain.Event, error) {
	cursor, err := store.events.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())
	return decodeEvents(cursor)
}

func (store *EventMongoDBStore) filterOne(filter interface{}) (*domain.Event, error) {
	result := store.events.FindOne(context.TODO(), filter)

	var event domain.Event
	if err := result.Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding event:", err)
		return nil, err
	}

	return &event, nil
}

func decodeEvents(cursor *mongo.Cursor) (events []*domain.Event, err error) {
	for cursor.Next(context.TODO()) {
		var event domain.Event
		err = cursor.Decode(&event)
		if err != nil {
			return
		}
		events = append(events, &event)
	}
	err = cursor.Err()
	return
}
