package bootstrap

import (
	"context"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository/repository_auth"
	"github.com/ddc-studio/portfolio-api/usecase/usecase_auth"
	"github.com/rs/zerolog/log"
)

// SeedAdministrator creates the ADMIN_* account on first start. It is a no-op
// when no admin username is configured.
func SeedAdministrator(env *Env, db mongo.Database, timeout time.Duration) error {
	if env.AdminUsername == "" {
		log.Warn().Msg("ADMIN_USERNAME not set, skipping administrator seed")
		return nil
	}

	repo := repository_auth.NewAdministratorRepository(db, domain.CollectionAdministrator)
	uc := usecase_auth.NewAdministratorUsecase(repo, env.AccessTokenSecret, env.AccessTokenExpiryHour, timeout)

	created, err := uc.EnsureAdministrator(context.Background(), auth_models.AdministratorInput{
		Username: env.AdminUsername,
		Email:    env.AdminEmail,
		Password: env.AdminPassword,
	})
	if err != nil {
		return err
	}

	if created {
		log.Info().Str("username", env.AdminUsername).Msg("administrator created")
	}
	return nil
}
