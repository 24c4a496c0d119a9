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

const VENUES_COLLECTION = "venues"

type VenueMongoDBStore struct {
	venues *mongo.Collection
}

func NewVenueMongoDBStore(client *mongo.Client) domain.VenueStore {
	venues := client.Database(DATABASE).Collection(VENUES_COLLECTION)
	return &VenueMongoDBStore{
		venues: venues,
	}
}

func (store *VenueMongoDBStore) Insert(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	venue.ID = primitive.NewObjectID()
	venue.CreatedAt = time.Now()
	venue.UpdatedAt = venue.CreatedAt

	result, err := store.venues.InsertOne(context.TODO(), venue)
	if err != nil {
		return nil, err
	}
	venue.ID = result.InsertedID.(primitive.ObjectID)
	return venue, nil
}

func (store *VenueMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	filter := bson.M{"_id": id}
	return store.filterOne(filter)
}

func (store *VenueMongoDBStore) GetAll(ctx context.Context) ([]*domain.Venue, error) {
	return store.filter(bson.M{})
}

func (store *VenueMongoDBStore) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Venue, error) {
	return store.filter(bson.M{"ownerId": ownerID})
}

func (store *VenueMongoDBStore) GetByStatus(ctx context.Context, status domain.VerificationStatus) ([]*domain.Venue, error) {
	return store.filter(bson.M{"verificationStatus": status})
}

func (store *VenueMongoDBStore) GetByNameAndAddress(ctx context.Context, name, address string) (*domain.Venue, error) {
	filter := bson.M{"venueName": name, "address": address}
	return store.filterOne(filter)
}

func (store *VenueMongoDBStore) Update(ctx context.Context, venue *domain.Venue) error {
	venue.UpdatedAt = time.Now()
	filter := bson.M{"_id": venue.ID}
	_, err := store.venues.ReplaceOne(context.TODO(), filter, venue)
	return err
}

func (store *VenueMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	venue, err := store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, nil
	}
	_, err = store.venues.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

func (store *VenueMongoDBStore) Count(ctx context.Context) (int64, error) {
	return store.venues.CountDocuments(context.TODO(), bson.M{})
}

func (store *VenueMongoDBStore) GetRecent(ctx context.Context, limit int64) ([]*domain.Venue, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)

	cursor, err := store.venues.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())
	return decodeVenues(cursor)
}

func (store *VenueMongoDBStore) filter(filter interface{}) ([]*domain.Venue, error) {
	cursor, err := store.venues.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())
	return decodeVenues(cursor)
}

func (store *VenueMongoDBStore) filterOne(filter interface{}) (*domain.Venue, error) {
	result := store.venues.FindOne(context.TODO(), filter)

	var venue domain.Venue
	if err := result.Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding venue:", err)
		return nil, err
	}

	return &venue, nil
}

func decodeVenues(cursor *mongo.Cursor) (venues []*domain.Venue, err error) {
	for cursor.Next(context.TODO()) {
		var venue domain.Venue
		err = cursor.Decode(&venue)
		if err != nil {
			return
		}
		venues = append(venues, &venue)
	}
	err = cursor.Err()
	return
}
