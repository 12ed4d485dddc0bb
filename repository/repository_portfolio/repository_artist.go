package repository_portfolio

import (
	"context"
	"fmt"

	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type artistRepository struct {
	*repository.BaseMongoRepository[portfolio_models.Artist]
}

func NewArtistRepository(db mongo.Database, collection string) portfolio_interface.ArtistRepository {
	return &artistRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[portfolio_models.Artist](db, collection),
	}
}

func (r *artistRepository) GetByName(ctx context.Context, name string) (*portfolio_models.Artist, error) {
	return r.GetOneByFilter(ctx, bson.M{"name": name})
}

// AppendCVItem pushes item to the end of the subsection array. It reports
// false when no artist has artistID.
func (r *artistRepository) AppendCVItem(
	ctx context.Context,
	artistID primitive.ObjectID,
	field string,
	item portfolio_models.CVItem,
) (bool, error) {
	result, err := r.UpdateOne(ctx,
		bson.M{"_id": artistID},
		bson.M{"$push": bson.M{field: item}},
	)
	if err != nil {
		return false, fmt.Errorf("append %s item: %w", field, err)
	}
	return result.MatchedCount > 0, nil
}

// ReplaceCVItem overwrites the element whose _id is itemID in place through
// the positional operator, so its position in the array is kept. updated_at
// is only touched after a real change, so an identical replacement reports a
// zero ModifiedCount.
func (r *artistRepository) ReplaceCVItem(
	ctx context.Context,
	artistID primitive.ObjectID,
	field string,
	itemID primitive.ObjectID,
	item portfolio_models.CVItem,
) (*driver.UpdateResult, error) {
	filter := bson.M{
		"_id":          artistID,
		field + "._id": itemID,
	}
	update := bson.M{
		"$set": bson.M{field + ".$": item},
	}

	result, err := r.Collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("replace %s item: %w", field, err)
	}
	if result.ModifiedCount > 0 {
		if _, err := r.UpdateOne(ctx, bson.M{"_id": artistID}, bson.M{}); err != nil {
			return nil, fmt.Errorf("touch artist after %s replace: %w", field, err)
		}
	}
	return result, nil
}

// RemoveCVItem pulls the element whose _id is itemID. It reports false when
// nothing was removed.
func (r *artistRepository) RemoveCVItem(
	ctx context.Context,
	artistID primitive.ObjectID,
	field string,
	itemID primitive.ObjectID,
) (bool, error) {
	filter := bson.M{
		"_id":          artistID,
		field + "._id": itemID,
	}
	update := bson.M{
		"$pull": bson.M{field: bson.M{"_id": itemID}},
	}

	result, err := r.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("remove %s item: %w", field, err)
	}
	return result.ModifiedCount > 0, nil
}
