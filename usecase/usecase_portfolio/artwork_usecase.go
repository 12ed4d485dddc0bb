package usecase_portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/usecase"
	"github.com/ddc-studio/portfolio-api/util/validation"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// artworkSortFields maps the sort keys accepted from clients to bson fields.
var artworkSortFields = map[string]string{
	"title":       "title",
	"year":        "year",
	"series":      "series",
	"medium":      "medium",
	"artworkType": "artwork_type",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

type ArtworkUsecase struct {
	repo     portfolio_interface.ArtworkRepository
	resolver portfolio_interface.MakerResolver
	timeout  time.Duration
}

var _ portfolio_interface.ArtworkUsecase = (*ArtworkUsecase)(nil)

func NewArtworkUsecase(
	repo portfolio_interface.ArtworkRepository,
	resolver portfolio_interface.MakerResolver,
	timeout time.Duration,
) *ArtworkUsecase {
	return &ArtworkUsecase{
		repo:     repo,
		resolver: resolver,
		timeout:  timeout,
	}
}

func (uc *ArtworkUsecase) GetArtworks(ctx context.Context, sort []domain.SortOrder) ([]*portfolio_models.ArtworkView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	storeSort, err := validateArtworkSort(sort)
	if err != nil {
		return nil, err
	}

	artworks, err := uc.repo.GetViews(ctx, "", storeSort)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to retrieve artworks. Please try again later.")
	}
	if len(artworks) == 0 {
		return nil, domain.NotFound("No artworks were found.")
	}
	return artworks, nil
}

// GetArtworksByType returns only artworks of the requested type, each with
// its maker's name joined in.
func (uc *ArtworkUsecase) GetArtworksByType(ctx context.Context, artworkType string) ([]*portfolio_models.ArtworkView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	parsed, ok := portfolio_models.ParseArtworkType(artworkType)
	if !ok {
		return nil, domain.Validation(invalidArtworkTypeMessage)
	}

	artworks, err := uc.repo.GetViews(ctx, parsed, nil)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to retrieve artworks. Please try again later.")
	}
	if len(artworks) == 0 {
		return nil, domain.NotFound(fmt.Sprintf("No %s artworks found.", parsed))
	}
	return artworks, nil
}

func (uc *ArtworkUsecase) GetArtwork(ctx context.Context, artworkID string) (*portfolio_models.ArtworkView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artworkID, "artwork")
	if err != nil {
		return nil, err
	}

	artwork, err := uc.repo.GetViewByID(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to retrieve requested artwork. Please try again later.")
	}
	if artwork == nil {
		return nil, domain.NotFound("Unable to locate requested artwork.")
	}
	return artwork, nil
}

// CreateArtwork validates the draft, resolves its maker and stores it. No
// write happens when the maker is unknown.
func (uc *ArtworkUsecase) CreateArtwork(ctx context.Context, draft portfolio_models.ArtworkDraft) (*portfolio_models.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := validation.Struct(&draft); err != nil {
		return nil, err
	}

	resolved, err := uc.resolver.ResolveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	artwork := resolved.ToArtwork()
	if err := uc.repo.Create(ctx, artwork); err != nil {
		return nil, usecase.StoreError(err, "Failed to add artwork. Please try again later.")
	}

	log.Info().Str("artwork", artwork.Title).Str("id", artwork.ID.Hex()).Msg("artwork created")
	return artwork, nil
}

// UpdateArtwork applies a partial update. The maker is resolved only when
// the patch names one.
func (uc *ArtworkUsecase) UpdateArtwork(
	ctx context.Context,
	artworkID string,
	patch portfolio_models.ArtworkPatchDraft,
) (*portfolio_models.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artworkID, "artwork")
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.Validation("No information was provided.")
	}
	if err := validation.Struct(&patch); err != nil {
		return nil, err
	}

	resolved, err := uc.resolver.ResolvePatch(ctx, patch)
	if err != nil {
		return nil, err
	}

	artwork, err := uc.repo.FindByIDAndUpdate(ctx, id, bson.M{"$set": resolved.SetFields()})
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to update artwork. Please try again later.")
	}
	if artwork == nil {
		return nil, domain.NotFound("Unable to locate an artwork to update.")
	}

	log.Info().Str("artwork", artwork.Title).Msg("artwork details updated")
	return artwork, nil
}

// DeleteArtwork removes the artwork. Its images are left in place.
func (uc *ArtworkUsecase) DeleteArtwork(ctx context.Context, artworkID string) (*portfolio_models.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artworkID, "artwork")
	if err != nil {
		return nil, err
	}

	artwork, err := uc.repo.FindByIDAndDelete(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to remove requested artwork from the site.")
	}
	if artwork == nil {
		return nil, domain.NotFound("Failed to locate an artwork to remove.")
	}

	log.Info().Str("artwork", artwork.Title).Msg("artwork removed")
	return artwork, nil
}

func validateArtworkSort(sort []domain.SortOrder) ([]domain.SortOrder, error) {
	out := make([]domain.SortOrder, 0, len(sort))
	for _, s := range sort {
		field, ok := artworkSortFields[s.Sort]
		if !ok {
			return nil, domain.Validation(fmt.Sprintf("Please review submitted information. Artworks cannot be sorted by %q.", s.Sort))
		}
		if s.Order != "" && s.Order != "asc" && s.Order != "desc" {
			return nil, domain.Validation(fmt.Sprintf("Please review submitted information. Sort order %q must be asc or desc.", s.Order))
		}
		out = append(out, domain.SortOrder{Sort: field, Order: s.Order})
	}
	return out, nil
}
