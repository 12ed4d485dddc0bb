package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseRepository is the generic store contract shared by every collection.
// T must carry an `_id` ObjectID field.
type BaseRepository[T any] interface {
	// Basic CRUD
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*T, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*T, error)

	// Batch
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)

	// Queries
	GetAll(ctx context.Context) ([]*T, error)
	GetByFilter(ctx context.Context, filter interface{}) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// Native update for nested array targeting
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
}

// Normalizer is implemented by entities that fill in defaults, such as empty
// arrays, after being decoded and before being inserted.
type Normalizer interface {
	Normalize()
}

// Transactor groups several store calls into one unit of work.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
