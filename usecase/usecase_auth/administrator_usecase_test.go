package usecase_auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
	"github.com/ddc-studio/portfolio-api/util/tokenutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

type fakeAdministratorRepo struct {
	admins []*auth_models.Administrator
	err    error
}

func (r *fakeAdministratorRepo) Create(_ context.Context, admin *auth_models.Administrator) error {
	if r.err != nil {
		return r.err
	}
	admin.ID = primitive.NewObjectID()
	r.admins = append(r.admins, admin)
	return nil
}

func (r *fakeAdministratorRepo) GetByUsername(_ context.Context, username string) (*auth_models.Administrator, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdministratorRepo) GetByLogin(_ context.Context, login string) (*auth_models.Administrator, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.admins {
		if a.Username == login || a.Email == login {
			return a, nil
		}
	}
	return nil, nil
}

var curator = auth_models.AdministratorInput{
	Username: "curator",
	Email:    "curator@example.com",
	Password: "Str0ng!pass",
}

func newAdministratorUsecase(repo *fakeAdministratorRepo) *AdministratorUsecase {
	return NewAdministratorUsecase(repo, testSecret, 1, 5*time.Second)
}

func TestAdministratorUsecase_CreateAdministrator(t *testing.T) {
	repo := &fakeAdministratorRepo{}
	uc := newAdministratorUsecase(repo)

	admin, err := uc.CreateAdministrator(context.Background(), curator)
	require.NoError(t, err)
	assert.NotEqual(t, curator.Password, admin.Password)

	weak := curator
	weak.Password = "password"
	_, err = uc.CreateAdministrator(context.Background(), weak)
	assert.True(t, domain.IsValidation(err))
	assert.Len(t, repo.admins, 1)
}

func TestAdministratorUsecase_Login(t *testing.T) {
	repo := &fakeAdministratorRepo{}
	uc := newAdministratorUsecase(repo)
	ctx := context.Background()

	_, err := uc.CreateAdministrator(ctx, curator)
	require.NoError(t, err)

	for _, login := range []string{"curator", "curator@example.com"} {
		t.Run(login, func(t *testing.T) {
			resp, err := uc.Login(ctx, auth_models.LoginRequest{Login: login, Password: curator.Password})
			require.NoError(t, err)

			claims, err := tokenutil.ParseAccessToken(resp.AccessToken, testSecret)
			require.NoError(t, err)
			assert.Equal(t, "curator", claims.Username)
		})
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, auth_models.LoginRequest{Login: "curator", Password: "nope"})
		assert.ErrorIs(t, err, auth_models.ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := uc.Login(ctx, auth_models.LoginRequest{Login: "ghost", Password: curator.Password})
		assert.ErrorIs(t, err, auth_models.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := uc.Login(ctx, auth_models.LoginRequest{})
		assert.True(t, domain.IsValidation(err))
		assert.NotErrorIs(t, err, auth_models.ErrInvalidCredentials)
	})
}

func TestAdministratorUsecase_EnsureAdministrator(t *testing.T) {
	repo := &fakeAdministratorRepo{}
	uc := newAdministratorUsecase(repo)
	ctx := context.Background()

	created, err := uc.EnsureAdministrator(ctx, curator)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdministrator(ctx, curator)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.admins, 1)

	repo.err = errors.New("connection refused")
	_, err = uc.EnsureAdministrator(ctx, curator)
	assert.Equal(t, domain.ErrorKindUnexpected, domain.KindOf(err))
}
