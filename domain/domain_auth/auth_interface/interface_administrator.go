package auth_interface

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
)

type AdministratorRepository interface {
	Create(ctx context.Context, admin *auth_models.Administrator) error
	GetByUsername(ctx context.Context, username string) (*auth_models.Administrator, error)
	// GetByLogin matches either the username or the email address.
	GetByLogin(ctx context.Context, login string) (*auth_models.Administrator, error)
}

type AdministratorUsecase interface {
	Login(ctx context.Context, req auth_models.LoginRequest) (*auth_models.LoginResponse, error)
	CreateAdministrator(ctx context.Context, input auth_models.AdministratorInput) (*auth_models.Administrator, error)
	// EnsureAdministrator creates the administrator unless one with the same
	// username already exists.
	EnsureAdministrator(ctx context.Context, input auth_models.AdministratorInput) (bool, error)
}
