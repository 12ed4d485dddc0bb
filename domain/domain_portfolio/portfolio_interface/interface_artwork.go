package portfolio_interface

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ArtworkRepository interface {
	Create(ctx context.Context, artwork *portfolio_models.Artwork) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*portfolio_models.Artwork, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*portfolio_models.Artwork, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*portfolio_models.Artwork, error)

	// Joined reads; an empty artworkType matches every type
	GetViews(ctx context.Context, artworkType portfolio_models.ArtworkType, sort []domain.SortOrder) ([]*portfolio_models.ArtworkView, error)
	GetViewByID(ctx context.Context, id primitive.ObjectID) (*portfolio_models.ArtworkView, error)

	// imgs maintenance
	PushImage(ctx context.Context, artworkID primitive.ObjectID, imageID primitive.ObjectID) (bool, error)
	PullImages(ctx context.Context, artworkID primitive.ObjectID, imageIDs []primitive.ObjectID) error
}

// MakerResolver turns a maker name into the maker's artist id.
type MakerResolver interface {
	ResolveDraft(ctx context.Context, draft portfolio_models.ArtworkDraft) (portfolio_models.ResolvedArtwork, error)
	ResolvePatch(ctx context.Context, patch portfolio_models.ArtworkPatchDraft) (portfolio_models.ResolvedArtworkPatch, error)
}

type ArtworkUsecase interface {
	GetArtworks(ctx context.Context, sort []domain.SortOrder) ([]*portfolio_models.ArtworkView, error)
	GetArtworksByType(ctx context.Context, artworkType string) ([]*portfolio_models.ArtworkView, error)
	GetArtwork(ctx context.Context, artworkID string) (*portfolio_models.ArtworkView, error)
	CreateArtwork(ctx context.Context, draft portfolio_models.ArtworkDraft) (*portfolio_models.Artwork, error)
	UpdateArtwork(ctx context.Context, artworkID string, patch portfolio_models.ArtworkPatchDraft) (*portfolio_models.Artwork, error)
	DeleteArtwork(ctx context.Context, artworkID string) (*portfolio_models.Artwork, error)
}
