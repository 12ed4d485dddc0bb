package repository_portfolio

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type artworkImageRepository struct {
	*repository.BaseMongoRepository[portfolio_models.ArtworkImage]
}

func NewArtworkImageRepository(db mongo.Database, collection string) portfolio_interface.ArtworkImageRepository {
	return &artworkImageRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[portfolio_models.ArtworkImage](db, collection),
	}
}

// GetByIDs returns the images with the given ids, ordered as ids.
func (r *artworkImageRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*portfolio_models.ArtworkImage, error) {
	if len(ids) == 0 {
		return []*portfolio_models.ArtworkImage{}, nil
	}
	images, err := r.GetByFilter(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return portfolio_models.OrderByIDs(ids, images, func(img *portfolio_models.ArtworkImage) primitive.ObjectID {
		return img.ID
	}), nil
}

func (r *artworkImageRepository) GetByArtwork(ctx context.Context, artworkID primitive.ObjectID) ([]*portfolio_models.ArtworkImage, error) {
	return r.GetByFilter(ctx, bson.M{"image_of": artworkID})
}

func (r *artworkImageRepository) DeleteByArtwork(ctx context.Context, artworkID primitive.ObjectID) (int64, error) {
	return r.DeleteMany(ctx, bson.M{"image_of": artworkID})
}
