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

type installationRepository struct {
	*repository.BaseMongoRepository[portfolio_models.Installation]
	mediaCollection string
}

func NewInstallationRepository(db mongo.Database, collection string) portfolio_interface.InstallationRepository {
	return &installationRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[portfolio_models.Installation](db, collection),
		mediaCollection:     domain.CollectionInstallationMedia,
	}
}

func (r *installationRepository) GetViews(ctx context.Context) ([]*portfolio_models.InstallationView, error) {
	pipeline := []bson.D{
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: -1}, {Key: "_id", Value: 1}}}},
		r.mediaLookupStage(),
	}
	return r.aggregateViews(ctx, pipeline)
}

func (r *installationRepository) GetViewByID(ctx context.Context, id primitive.ObjectID) (*portfolio_models.InstallationView, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
		r.mediaLookupStage(),
	}

	views, err := r.aggregateViews(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

func (r *installationRepository) PushMedia(ctx context.Context, installationID primitive.ObjectID, mediaID primitive.ObjectID) (bool, error) {
	result, err := r.UpdateOne(ctx,
		bson.M{"_id": installationID},
		bson.M{"$push": bson.M{"install_medias": mediaID}},
	)
	if err != nil {
		return false, fmt.Errorf("push media: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *installationRepository) PullMedia(ctx context.Context, installationID primitive.ObjectID, mediaID primitive.ObjectID) error {
	_, err := r.UpdateOne(ctx,
		bson.M{"_id": installationID},
		bson.M{"$pull": bson.M{"install_medias": mediaID}},
	)
	if err != nil {
		return fmt.Errorf("pull media: %w", err)
	}
	return nil
}

func (r *installationRepository) mediaLookupStage() bson.D {
	return bson.D{
		{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.mediaCollection},
			{Key: "localField", Value: "install_medias"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "media"},
		}},
	}
}

// aggregateViews decodes the joined installations. $lookup does not keep the
// order of install_medias, so media are re-ordered here.
func (r *installationRepository) aggregateViews(ctx context.Context, pipeline []bson.D) ([]*portfolio_models.InstallationView, error) {
	cursor, err := r.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("error closing cursor")
		}
	}(cursor, ctx)

	results := make([]*portfolio_models.InstallationView, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	for _, view := range results {
		view.Normalize()
		view.Media = portfolio_models.OrderByIDs(view.InstallMedias, view.Media, func(m *portfolio_models.InstallationMedia) primitive.ObjectID {
			return m.ID
		})
	}
	return results, nil
}
