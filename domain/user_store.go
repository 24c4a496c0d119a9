package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Register(ctx context.Context, user *User) (*User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailAndRole(ctx context.Context, email string, role Role) (*User, error)
	Update(ctx context.Context, user *User) error
	CountExcludingRole(ctx context.Context, role Role) (int64, error)
	GetRecentExcludingRole(ctx context.Context, role Role, limit int64) ([]*User, error)
}
