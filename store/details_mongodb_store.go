package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"eventsphere_backend/domain"
)

const DETAILS_COLLECTION = "additionalDetails"

type DetailsMongoDBStore struct {
	details *mongo.Collection
}

func NewDetailsMongoDBStore(client *mongo.Client) domain.DetailsStore {
	details := client.Database(DATABASE).Collection(DETAILS_COLLECTION)
	return &DetailsMongoDBStore{
		details: details,
	}
}

func (store *DetailsMongoDBStore) Insert(ctx context.Context, details *domain.AdditionalDetails) (*domain.AdditionalDetails, error) {
	details.ID = primitive.NewObjectID()

	result, err := store.details.InsertOne(context.TODO(), details)
	if err != nil {
		return nil, err
	}
	details.ID = result.InsertedID.(primitive.ObjectID)
	return details, nil
}

func (store *DetailsMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.AdditionalDetails, error) {
	return store.filterOne(bson.M{"_id": id})
}

func (store *DetailsMongoDBStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.AdditionalDetails, error) {
	return store.filterOne(bson.M{"userId": userID})
}

func (store *DetailsMongoDBStore) GetByPanCardNumber(ctx context.Context, panCardNumber string) (*domain.AdditionalDetails, error) {
	return store.filterOne(bson.M{"panCardNumber": panCardNumber})
}

func (store *DetailsMongoDBStore) filterOne(filter interface{}) (*domain.AdditionalDetails, error) {
	result := store.details.FindOne(context.TODO(), filter)

	var details domain.AdditionalDetails
	if err := result.Decode(&details); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding additional details:", err)
		return nil, err
	}
	return &details, nil
}
