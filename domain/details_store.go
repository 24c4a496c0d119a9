package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DetailsStore interface {
	Insert(ctx context.Context, details *AdditionalDetails) (*AdditionalDetails, error)
	Get(ctx context.Context, id primitive.ObjectID) (*AdditionalDetails, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*AdditionalDetails, error)
	GetByPanCardNumber(ctx context.Context, panCardNumber string) (*AdditionalDetails, error)
}
