package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseMongoRepository is the generic MongoDB implementation of
// domain.BaseRepository. Lookups that find nothing return (nil, nil).
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository creates a repository bound to one collection.
func NewBaseMongoRepository[T any](db mongo.Database, collection string) *BaseMongoRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

var _ domain.BaseRepository[struct{}] = (*BaseMongoRepository[struct{}])(nil)

// Collection exposes the underlying collection to embedding repositories.
func (r *BaseMongoRepository[T]) Collection() mongo.Collection {
	return r.db.Collection(r.collection)
}

// Create inserts a new entity and writes the generated id back into it.
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	r.setTimestamps(entity, true)
	normalize(entity)

	coll := r.db.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}

	return nil
}

// GetByID fetches one entity by id.
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}
	return r.GetOneByFilter(ctx, bson.M{"_id": id})
}

// FindByIDAndUpdate applies update and returns the document as it is after
// the update.
func (r *BaseMongoRepository[T]) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	touchUpdatedAt(update)

	coll := r.db.Collection(r.collection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entity T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}

	normalize(&entity)
	return &entity, nil
}

// FindByIDAndDelete removes one entity and returns what was removed.
func (r *BaseMongoRepository[T]) FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete entity: %w", err)
	}

	normalize(&entity)
	return &entity, nil
}

// DeleteMany removes every entity matching filter.
func (r *BaseMongoRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	deletedCount, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entities: %w", err)
	}

	return deletedCount, nil
}

// GetAll returns every entity of the collection.
func (r *BaseMongoRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.GetByFilter(ctx, bson.M{})
}

// GetByFilter returns every entity matching filter.
func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]*T, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]*T, 0)
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		normalize(&entity)
		entities = append(entities, &entity)
	}

	return entities, nil
}

// GetOneByFilter returns the first entity matching filter, or nil.
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}

	normalize(&entity)
	return &entity, nil
}

// Count counts entities matching filter.
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return count, nil
}

// UpdateOne runs a raw update, typically to target an element of a nested
// array through the positional operator.
func (r *BaseMongoRepository[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*driver.UpdateResult, error) {
	if m, ok := update.(bson.M); ok {
		touchUpdatedAt(m)
	}

	coll := r.db.Collection(r.collection)
	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}
	return result, nil
}

func normalize[T any](entity *T) {
	if n, ok := any(entity).(domain.Normalizer); ok {
		n.Normalize()
	}
}

func touchUpdatedAt(update bson.M) {
	now := primitive.NewDateTimeFromTime(time.Now())
	if set, ok := update["$set"].(bson.M); ok {
		set["updated_at"] = now
		return
	}
	update["$set"] = bson.M{"updated_at": now}
}

// setTimestamps fills created_at/updated_at fields of type primitive.DateTime.
func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()

	now := primitive.NewDateTimeFromTime(time.Now())

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		if isCreate && (fieldName == "created_at" || fieldName == "CreatedAt") && field.Type() == reflect.TypeOf(now) {
			field.Set(reflect.ValueOf(now))
		}

		if (fieldName == "updated_at" || fieldName == "UpdatedAt") && field.Type() == reflect.TypeOf(now) {
			field.Set(reflect.ValueOf(now))
		}
	}
}

// setEntityID writes id into the entity's `_id` field.
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		if matchesIDField(fieldName) && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
			field.Set(reflect.ValueOf(id))
			return
		}
	}
}

func matchesIDField(name string) bool {
	return name == "_id" || name == "ID"
}
