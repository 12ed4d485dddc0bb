package usecase_portfolio

import (
	"context"
	"fmt"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const invalidArtworkTypeMessage = "Please review submitted information. artworkType must be one of Sculpture, Ceramic or Flat Works."

type makerResolver struct {
	artists portfolio_interface.ArtistRepository
}

// NewMakerResolver returns a resolver that looks makers up by exact name.
// It never modifies the payload it is given nor any stored record.
func NewMakerResolver(artists portfolio_interface.ArtistRepository) portfolio_interface.MakerResolver {
	return &makerResolver{artists: artists}
}

func (r *makerResolver) ResolveDraft(ctx context.Context, draft portfolio_models.ArtworkDraft) (portfolio_models.ResolvedArtwork, error) {
	artworkType, ok := portfolio_models.ParseArtworkType(draft.ArtworkType)
	if !ok {
		return portfolio_models.ResolvedArtwork{}, domain.Validation(invalidArtworkTypeMessage)
	}

	makerID, err := r.lookup(ctx, draft.Maker)
	if err != nil {
		return portfolio_models.ResolvedArtwork{}, err
	}

	return portfolio_models.ResolvedArtwork{
		Draft:   draft,
		Type:    artworkType,
		MakerID: makerID,
	}, nil
}

func (r *makerResolver) ResolvePatch(ctx context.Context, patch portfolio_models.ArtworkPatchDraft) (portfolio_models.ResolvedArtworkPatch, error) {
	resolved := portfolio_models.ResolvedArtworkPatch{Patch: patch}

	if patch.ArtworkType != nil {
		artworkType, ok := portfolio_models.ParseArtworkType(*patch.ArtworkType)
		if !ok {
			return portfolio_models.ResolvedArtworkPatch{}, domain.Validation(invalidArtworkTypeMessage)
		}
		resolved.Type = &artworkType
	}

	if patch.Maker != nil {
		makerID, err := r.lookup(ctx, *patch.Maker)
		if err != nil {
			return portfolio_models.ResolvedArtworkPatch{}, err
		}
		resolved.MakerID = &makerID
	}

	return resolved, nil
}

func (r *makerResolver) lookup(ctx context.Context, name string) (primitive.ObjectID, error) {
	artist, err := r.artists.GetByName(ctx, name)
	if err != nil {
		return primitive.NilObjectID, usecase.StoreError(err, "Unable to look up the artwork's maker. Please try again later.")
	}
	if artist == nil {
		return primitive.NilObjectID, domain.NotFound(fmt.Sprintf("Unable to upload artwork, as %s is not an existing creator.", name))
	}
	return artist.ID, nil
}
