package portfolio_interface

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InstallationRepository interface {
	Create(ctx context.Context, installation *portfolio_models.Installation) error
	GetViews(ctx context.Context) ([]*portfolio_models.InstallationView, error)
	GetViewByID(ctx context.Context, id primitive.ObjectID) (*portfolio_models.InstallationView, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*portfolio_models.Installation, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*portfolio_models.Installation, error)
	PushMedia(ctx context.Context, installationID primitive.ObjectID, mediaID primitive.ObjectID) (bool, error)
	PullMedia(ctx context.Context, installationID primitive.ObjectID, mediaID primitive.ObjectID) error
}

type InstallationMediaRepository interface {
	Create(ctx context.Context, media *portfolio_models.InstallationMedia) error
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*portfolio_models.InstallationMedia, error)
}

type InstallationUsecase interface {
	GetInstallations(ctx context.Context) ([]*portfolio_models.InstallationView, error)
	GetInstallation(ctx context.Context, installationID string) (*portfolio_models.InstallationView, error)
	CreateInstallation(ctx context.Context, input portfolio_models.InstallationInput) (*portfolio_models.Installation, error)
	UpdateInstallation(ctx context.Context, installationID string, patch portfolio_models.InstallationPatch) (*portfolio_models.Installation, error)
	DeleteInstallation(ctx context.Context, installationID string) (*portfolio_models.Installation, error)
	AttachMedia(ctx context.Context, installationID string, media []portfolio_models.MediaInput) (*portfolio_models.InstallationView, error)
	DetachMedia(ctx context.Context, mediaID string) (*portfolio_models.InstallationMedia, error)
}
