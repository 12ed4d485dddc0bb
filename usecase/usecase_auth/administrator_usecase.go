package usecase_auth

import (
	"context"
	"errors"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
	"github.com/ddc-studio/portfolio-api/usecase"
	"github.com/ddc-studio/portfolio-api/util/password"
	"github.com/ddc-studio/portfolio-api/util/tokenutil"
	"github.com/ddc-studio/portfolio-api/util/validation"
	"github.com/rs/zerolog/log"
)

const invalidCredentialsMessage = "Invalid login or password."

type AdministratorUsecase struct {
	repo        auth_interface.AdministratorRepository
	secret      string
	expiryHours int
	timeout     time.Duration
}

var _ auth_interface.AdministratorUsecase = (*AdministratorUsecase)(nil)

func NewAdministratorUsecase(
	repo auth_interface.AdministratorRepository,
	secret string,
	expiryHours int,
	timeout time.Duration,
) *AdministratorUsecase {
	return &AdministratorUsecase{
		repo:        repo,
		secret:      secret,
		expiryHours: expiryHours,
		timeout:     timeout,
	}
}

func (uc *AdministratorUsecase) Login(ctx context.Context, req auth_models.LoginRequest) (*auth_models.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := validation.Struct(&req); err != nil {
		return nil, err
	}

	admin, err := uc.repo.GetByLogin(ctx, req.Login)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to log in. Please try again later.")
	}
	if admin == nil {
		return nil, domain.ValidationWrap(invalidCredentialsMessage, auth_models.ErrInvalidCredentials)
	}

	if err := password.Verify(req.Password, admin.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return nil, domain.ValidationWrap(invalidCredentialsMessage, auth_models.ErrInvalidCredentials)
		}
		return nil, domain.Unexpected("Unable to log in. Please try again later.", err)
	}

	token, err := tokenutil.CreateAccessToken(admin, uc.secret, uc.expiryHours)
	if err != nil {
		return nil, domain.Unexpected("Unable to log in. Please try again later.", err)
	}

	log.Info().Str("administrator", admin.Username).Msg("administrator logged in")
	return &auth_models.LoginResponse{
		AccessToken:   token,
		Administrator: admin,
	}, nil
}

func (uc *AdministratorUsecase) CreateAdministrator(ctx context.Context, input auth_models.AdministratorInput) (*auth_models.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.create(ctx, input)
}

// EnsureAdministrator creates the administrator unless the username is
// already taken. It reports whether a record was created.
func (uc *AdministratorUsecase) EnsureAdministrator(ctx context.Context, input auth_models.AdministratorInput) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	existing, err := uc.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return false, usecase.StoreError(err, "Unable to look up administrator.")
	}
	if existing != nil {
		return false, nil
	}

	if _, err := uc.create(ctx, input); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *AdministratorUsecase) create(ctx context.Context, input auth_models.AdministratorInput) (*auth_models.Administrator, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, domain.Unexpected("Unable to create administrator. Please try again later.", err)
	}

	admin := &auth_models.Administrator{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
	}
	if err := uc.repo.Create(ctx, admin); err != nil {
		return nil, usecase.StoreError(err, "Unable to create administrator. Please try again later.")
	}

	log.Info().Str("administrator", admin.Username).Msg("administrator created")
	return admin, nil
}
