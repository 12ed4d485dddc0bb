package repository_portfolio

import (
	"context"
	"fmt"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type artworkRepository struct {
	*repository.BaseMongoRepository[portfolio_models.Artwork]
	artistCollection string
}

func NewArtworkRepository(db mongo.Database, collection string) portfolio_interface.ArtworkRepository {
	return &artworkRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[portfolio_models.Artwork](db, collection),
		artistCollection:    domain.CollectionArtist,
	}
}

func (r *artworkRepository) GetViews(
	ctx context.Context,
	artworkType portfolio_models.ArtworkType,
	sort []domain.SortOrder,
) ([]*portfolio_models.ArtworkView, error) {
	match := bson.D{}
	if artworkType != "" {
		match = append(match, bson.E{Key: "artwork_type", Value: artworkType})
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: match}},
	}
	pipeline = append(pipeline, r.makerLookupStages()...)
	pipeline = append(pipeline, buildSortStage(sort))

	return r.aggregateViews(ctx, pipeline)
}

func (r *artworkRepository) GetViewByID(ctx context.Context, id primitive.ObjectID) (*portfolio_models.ArtworkView, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, r.makerLookupStages()...)

	views, err := r.aggregateViews(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

// PushImage appends imageID to the artwork's imgs. It reports false when the
// artwork does not exist.
func (r *artworkRepository) PushImage(ctx context.Context, artworkID primitive.ObjectID, imageID primitive.ObjectID) (bool, error) {
	result, err := r.UpdateOne(ctx,
		bson.M{"_id": artworkID},
		bson.M{"$push": bson.M{"imgs": imageID}},
	)
	if err != nil {
		return false, fmt.Errorf("push image: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *artworkRepository) PullImages(ctx context.Context, artworkID primitive.ObjectID, imageIDs []primitive.ObjectID) error {
	if len(imageIDs) == 0 {
		return nil
	}
	_, err := r.UpdateOne(ctx,
		bson.M{"_id": artworkID},
		bson.M{"$pull": bson.M{"imgs": bson.M{"$in": imageIDs}}},
	)
	if err != nil {
		return fmt.Errorf("pull images: %w", err)
	}
	return nil
}

// makerLookupStages joins the maker's id and name into maker_ref.
func (r *artworkRepository) makerLookupStages() []bson.D {
	return []bson.D{
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: r.artistCollection},
				{Key: "let", Value: bson.D{{Key: "makerId", Value: "$maker"}}},
				{Key: "pipeline", Value: []bson.D{
					{{Key: "$match", Value: bson.D{
						{Key: "$expr", Value: bson.D{
							{Key: "$eq", Value: bson.A{"$_id", "$$makerId"}},
						}},
					}}},
					{{Key: "$project", Value: bson.D{{Key: "name", Value: 1}}}},
				}},
				{Key: "as", Value: "maker_ref"},
			}},
		},
		{
			{Key: "$unwind", Value: bson.D{
				{Key: "path", Value: "$maker_ref"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			}},
		},
	}
}

func (r *artworkRepository) aggregateViews(ctx context.Context, pipeline []bson.D) ([]*portfolio_models.ArtworkView, error) {
	cursor, err := r.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("error closing cursor")
		}
	}(cursor, ctx)

	results := make([]*portfolio_models.ArtworkView, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	for _, view := range results {
		view.Normalize()
	}
	return results, nil
}

// buildSortStage always ends with _id so that ties keep insertion order.
func buildSortStage(sort []domain.SortOrder) bson.D {
	keys := bson.D{}
	for _, s := range sort {
		if s.Sort == "" || s.Sort == "_id" {
			continue
		}
		keys = append(keys, bson.E{Key: s.Sort, Value: s.Direction()})
	}
	keys = append(keys, bson.E{Key: "_id", Value: 1})
	return bson.D{{Key: "$sort", Value: keys}}
}
