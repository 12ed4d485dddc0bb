package repository_portfolio

import (
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository"
)

// NewInstallationMediaRepository needs nothing beyond the generic operations.
func NewInstallationMediaRepository(db mongo.Database, collection string) portfolio_interface.InstallationMediaRepository {
	return repository.NewBaseMongoRepository[portfolio_models.InstallationMedia](db, collection)
}
