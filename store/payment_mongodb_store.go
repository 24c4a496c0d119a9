package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eventsphere_backend/domain"
)

const (
	VENUE_PAYMENTS_COLLECTION = "venuePayments"
	EVENT_PAYMENTS_COLLECTION = "eventPayments"
)

type PaymentMongoDBStore struct {
	venuePayments *mongo.Collection
	eventPayments *mongo.Collection
	tracer        trace.Tracer
}

func NewPaymentMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.PaymentStore {
	database := client.Database(DATABASE)
	return &PaymentMongoDBStore{
		venuePayments: database.Collection(VENUE_PAYMENTS_COLLECTION),
		eventPayments: database.Collection(EVENT_PAYMENTS_COLLECTION),
		tracer:        tracer,
	}
}

func (store *PaymentMongoDBStore) InsertVenuePayment(ctx context.Context, payment *domain.VenuePayment) error {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.InsertVenuePayment")
	defer span.End()

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	_, err := store.venuePayments.InsertOne(context.TODO(), payment)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (store *PaymentMongoDBStore) InsertEventPayment(ctx context.Context, payment *domain.EventPayment) error {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.InsertEventPayment")
	defer span.End()

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	_, err := store.eventPayments.InsertOne(context.TODO(), payment)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (store *PaymentMongoDBStore) GetVenuePaymentBySession(ctx context.Context, sessionID string) (*domain.VenuePayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetVenuePaymentBySession")
	defer span.End()

	return store.filterOneVenue(bson.M{"stripeSessionId": sessionID})
}

func (store *PaymentMongoDBStore) GetEventPaymentBySession(ctx context.Context, sessionID string) (*domain.EventPayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetEventPaymentBySession")
	defer span.End()

	return store.filterOneEvent(bson.M{"stripeSessionId": sessionID})
}

func (store *PaymentMongoDBStore) UpdateVenuePayment(ctx context.Context, payment *domain.VenuePayment) error {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.UpdateVenuePayment")
	defer span.End()

	payment.UpdatedAt = time.Now()
	_, err := store.venuePayments.ReplaceOne(context.TODO(), bson.M{"_id": payment.ID}, payment)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (store *PaymentMongoDBStore) UpdateEventPayment(ctx context.Context, payment *domain.EventPayment) error {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.UpdateEventPayment")
	defer span.End()

	payment.UpdatedAt = time.Now()
	_, err := store.eventPayments.ReplaceOne(context.TODO(), bson.M{"_id": payment.ID}, payment)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (store *PaymentMongoDBStore) GetVenuePaymentsByRenter(ctx context.Context, renterID primitive.ObjectID) ([]*domain.VenuePayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetVenuePaymentsByRenter")
	defer span.End()

	return store.filterVenue(bson.M{"renterId": renterID, "status": domain.PaymentSuccess})
}

func (store *PaymentMongoDBStore) GetEventPaymentsByHost(ctx context.Context, hostID primitive.ObjectID) ([]*domain.EventPayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetEventPaymentsByHost")
	defer span.End()

	return store.filterEvent(bson.M{"hostId": hostID, "status": domain.PaymentSuccess})
}

func (store *PaymentMongoDBStore) GetVenuePaymentForUser(ctx context.Context, id, userID primitive.ObjectID) (*domain.VenuePayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetVenuePaymentForUser")
	defer span.End()

	filter := bson.M{
		"_id": id,
		"$or": []bson.M{{"user": userID}, {"renterId": userID}},
	}
	return store.filterOneVenue(filter)
}

func (store *PaymentMongoDBStore) GetEventPaymentForUser(ctx context.Context, id, userID primitive.ObjectID) (*domain.EventPayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetEventPaymentForUser")
	defer span.End()

	filter := bson.M{
		"_id": id,
		"$or": []bson.M{{"user": userID}, {"hostId": userID}},
	}
	return store.filterOneEvent(filter)
}

func (store *PaymentMongoDBStore) GetVenuePaymentsByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*domain.VenuePayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetVenuePaymentsByVenue")
	defer span.End()

	return store.filterVenue(bson.M{"venue": venueID, "status": domain.PaymentSuccess})
}

func (store *PaymentMongoDBStore) GetSuccessfulVenuePayments(ctx context.Context) ([]*domain.VenuePayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetSuccessfulVenuePayments")
	defer span.End()

	return store.filterVenue(bson.M{"status": domain.PaymentSuccess})
}

func (store *PaymentMongoDBStore) GetSuccessfulEventPayments(ctx context.Context) ([]*domain.EventPayment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentMongoDBStore.GetSuccessfulEventPayments")
	defer span.End()

	return store.filterEvent(bson.M{"status": domain.PaymentSuccess})
}

func (store *PaymentMongoDBStore) filterVenue(filter interface{}) ([]*domain.VenuePayment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := store.venuePayments.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	var payments []*domain.VenuePayment
	for cursor.Next(context.TODO()) {
		var payment domain.VenuePayment
		if err := cursor.Decode(&payment); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}
	return payments, cursor.Err()
}

func (store *PaymentMongoDBStore) filterEvent(filter interface{}) ([]*domain.EventPayment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := store.eventPayments.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	var payments []*domain.EventPayment
	for cursor.Next(context.TODO()) {
		var payment domain.EventPayment
		if err := cursor.Decode(&payment); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}
	return payments, cursor.Err()
}

func (store *PaymentMongoDBStore) filterOneVenue(filter interface{}) (*domain.VenuePayment, error) {
	result := store.venuePayments.FindOne(context.TODO(), filter)

	var payment domain.VenuePayment
	if err := result.Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding venue payment:", err)
		return nil, err
	}
	return &payment, nil
}

func (store *PaymentMongoDBStore) filterOneEvent(filter interface{}) (*domain.EventPayment, error) {
	result := store.eventPayments.FindOne(context.TODO(), filter)

	var payment domain.EventPayment
	if err := result.Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding event payment:", err)
		return nil, err
	}
	return &payment, nil
}
