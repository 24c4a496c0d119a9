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
	DATABASE         = "eventsphere"
	USERS_COLLECTION = "users"
)

type UserMongoDBStore struct {
	users *mongo.Collection
}

func NewUserMongoDBStore(client *mongo.Client) domain.UserStore {
	users := client.Database(DATABASE).Collection(USERS_COLLECTION)
	return &UserMongoDBStore{
		users: users,
	}
}

func (store *UserMongoDBStore) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	result, err := store.users.InsertOne(context.TODO(), user)
	if err != nil {
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (store *UserMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	filter := bson.M{"_id": id}
	return store.filterOne(filter)
}

func (store *UserMongoDBStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	filter := bson.M{"email": email}
	return store.filterOne(filter)
}

func (store *UserMongoDBStore) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	filter := bson.M{"email": email, "role": role}
	return store.filterOne(filter)
}

func (store *UserMongoDBStore) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	filter := bson.M{"_id": user.ID}
	_, err := store.users.ReplaceOne(context.TODO(), filter, user)
	return err
}

func (store *UserMongoDBStore) CountExcludingRole(ctx context.Context, role domain.Role) (int64, error) {
	filter := bson.M{"role": bson.M{"$ne": role}}
	return store.users.CountDocuments(context.TODO(), filter)
}

func (store *UserMongoDBStore) GetRecentExcludingRole(ctx context.Context, role domain.Role, limit int64) ([]*domain.User, error) {
	filter := bson.M{"role": bson.M{"$ne": role}}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)

	cursor, err := store.users.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())
	return decodeUsers(cursor)
}

func (store *UserMongoDBStore) filterOne(filter interface{}) (*domain.User, error) {
	result := store.users.FindOne(context.TODO(), filter)

	var user domain.User
	if err := result.Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding user:", err)
		return nil, err
	}

	return &user, nil
}

func decodeUsers(cursor *mongo.Cursor) (users []*domain.User, err error) {
	for cursor.Next(context.TODO()) {
		var user domain.User
		err = cursor.Decode(&user)
		if err != nil {
			return
		}
		users = append(users, &user)
	}
	err = cursor.Err()
	return
}
