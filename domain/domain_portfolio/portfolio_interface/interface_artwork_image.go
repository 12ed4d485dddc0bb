package portfolio_interface

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ArtworkImageRepository interface {
	Create(ctx context.Context, image *portfolio_models.ArtworkImage) error
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*portfolio_models.ArtworkImage, error)
	GetByArtwork(ctx context.Context, artworkID primitive.ObjectID) ([]*portfolio_models.ArtworkImage, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*portfolio_models.ArtworkImage, error)
	DeleteByArtwork(ctx context.Context, artworkID primitive.ObjectID) (int64, error)
}

// ImageAttachmentUsecase links image records to artworks.
type ImageAttachmentUsecase interface {
	AttachImages(ctx context.Context, artworkID string, images []portfolio_models.ImageInput) (*portfolio_models.ArtworkWithImages, error)
	DetachAllImages(ctx context.Context, artworkID string) (int64, error)
	DetachImage(ctx context.Context, imageID string) (*portfolio_models.ArtworkImage, error)
}
