package portfolio_interface

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArtistRepository is the store contract for artists and their embedded CV.
type ArtistRepository interface {
	Create(ctx context.Context, artist *portfolio_models.Artist) error
	GetAll(ctx context.Context) ([]*portfolio_models.Artist, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*portfolio_models.Artist, error)
	GetByName(ctx context.Context, name string) (*portfolio_models.Artist, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*portfolio_models.Artist, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*portfolio_models.Artist, error)

	// CV subsection mutations, addressed by the subsection's bson field
	AppendCVItem(ctx context.Context, artistID primitive.ObjectID, field string, item portfolio_models.CVItem) (bool, error)
	ReplaceCVItem(ctx context.Context, artistID primitive.ObjectID, field string, itemID primitive.ObjectID, item portfolio_models.CVItem) (*mongo.UpdateResult, error)
	RemoveCVItem(ctx context.Context, artistID primitive.ObjectID, field string, itemID primitive.ObjectID) (bool, error)
}

type ArtistUsecase interface {
	GetArtists(ctx context.Context) ([]*portfolio_models.Artist, error)
	GetArtist(ctx context.Context, artistID string) (*portfolio_models.Artist, error)
	CreateArtist(ctx context.Context, input portfolio_models.ArtistInput) (*portfolio_models.Artist, error)
	UpdateBio(ctx context.Context, artistID string, bio string) (*portfolio_models.Artist, error)
	DeleteArtist(ctx context.Context, artistID string) (*portfolio_models.Artist, error)
}

// CVUsecase manages the exhibitions, residencies and talks of an artist.
type CVUsecase interface {
	AppendItem(ctx context.Context, artistID string, subsection string, item portfolio_models.CVItem) (*portfolio_models.Artist, error)
	ReplaceItem(ctx context.Context, artistID string, subsection string, itemID string, item portfolio_models.CVItem) (*portfolio_models.Artist, error)
	RemoveItem(ctx context.Context, artistID string, subsection string, itemID string) (*portfolio_models.Artist, error)
}
