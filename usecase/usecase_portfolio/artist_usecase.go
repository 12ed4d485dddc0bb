package usecase_portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/usecase"
	"github.com/ddc-studio/portfolio-api/util/validation"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type ArtistUsecase struct {
	repo    portfolio_interface.ArtistRepository
	timeout time.Duration
}

var _ portfolio_interface.ArtistUsecase = (*ArtistUsecase)(nil)

func NewArtistUsecase(repo portfolio_interface.ArtistRepository, timeout time.Duration) *ArtistUsecase {
	return &ArtistUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

// GetArtists fails with NotFound when there are no artists at all.
func (uc *ArtistUsecase) GetArtists(ctx context.Context) ([]*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	artists, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to retrieve info on artists. Please try again later.")
	}
	if len(artists) == 0 {
		return nil, domain.NotFound("No artists were found. Please review path.")
	}
	return artists, nil
}

func (uc *ArtistUsecase) GetArtist(ctx context.Context, artistID string) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artistID, "artist")
	if err != nil {
		return nil, err
	}

	artist, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to retrieve artist. Please try again later.")
	}
	if artist == nil {
		return nil, domain.NotFound("Artist not found.")
	}
	return artist, nil
}

func (uc *ArtistUsecase) CreateArtist(ctx context.Context, input portfolio_models.ArtistInput) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	artist := input.ToArtist()
	if err := uc.repo.Create(ctx, artist); err != nil {
		return nil, usecase.StoreError(err, "Unable to create artist. Please try again later.")
	}

	log.Info().Str("artist", artist.Name).Str("id", artist.ID.Hex()).Msg("artist created")
	return artist, nil
}

func (uc *ArtistUsecase) UpdateBio(ctx context.Context, artistID string, bio string) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artistID, "artist")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(bio) == "" {
		return nil, domain.Validation("No new bio was submitted. Please review submitted fields.")
	}

	artist, err := uc.repo.FindByIDAndUpdate(ctx, id, bson.M{"$set": bson.M{"bio": bio}})
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to update requested artist's bio. Please try again later.")
	}
	if artist == nil {
		return nil, domain.NotFound("Unable to locate an artist in order to update their bio. Please review submitted information.")
	}

	log.Info().Str("artist", artist.Name).Msg("artist bio updated")
	return artist, nil
}

// DeleteArtist removes the artist only. Artworks naming the artist as maker
// keep the stale reference.
func (uc *ArtistUsecase) DeleteArtist(ctx context.Context, artistID string) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artistID, "artist")
	if err != nil {
		return nil, err
	}

	artist, err := uc.repo.FindByIDAndDelete(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to delete artist. Please try again later.")
	}
	if artist == nil {
		return nil, domain.NotFound("Artist not found.")
	}

	log.Info().Str("artist", artist.Name).Msg("artist deleted")
	return artist, nil
}
