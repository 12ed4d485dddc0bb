package repository_auth

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type administratorRepository struct {
	*repository.BaseMongoRepository[auth_models.Administrator]
}

func NewAdministratorRepository(db mongo.Database, collection string) auth_interface.AdministratorRepository {
	return &administratorRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[auth_models.Administrator](db, collection),
	}
}

func (r *administratorRepository) GetByUsername(ctx context.Context, username string) (*auth_models.Administrator, error) {
	return r.GetOneByFilter(ctx, bson.M{"username": username})
}

// GetByLogin matches login against either the username or the email.
func (r *administratorRepository) GetByLogin(ctx context.Context, login string) (*auth_models.Administrator, error) {
	return r.GetOneByFilter(ctx, bson.M{"$or": bson.A{
		bson.M{"username": login},
		bson.M{"email": login},
	}})
}
