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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CVUsecase edits the exhibitions, residencies and talks embedded in an
// artist. Every mutation checks the subsection name before touching the store.
type CVUsecase struct {
	repo    portfolio_interface.ArtistRepository
	timeout time.Duration
}

var _ portfolio_interface.CVUsecase = (*CVUsecase)(nil)

func NewCVUsecase(repo portfolio_interface.ArtistRepository, timeout time.Duration) *CVUsecase {
	return &CVUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

// AppendItem adds item with a fresh id to the end of the subsection. The
// write is a single $push so it either fully happens or not at all.
func (uc *CVUsecase) AppendItem(
	ctx context.Context,
	artistID string,
	subsection string,
	item portfolio_models.CVItem,
) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	sub, id, err := parseCVTarget(artistID, subsection)
	if err != nil {
		return nil, err
	}
	if err := validateCVItem(sub, item); err != nil {
		return nil, err
	}

	artist, err := uc.getArtist(ctx, id, fmt.Sprintf("Artist not found or %s not updated.", sub))
	if err != nil {
		return nil, err
	}
	if err := checkTitleClash(sub, artist, item, primitive.NilObjectID); err != nil {
		return nil, err
	}

	item.SetItemID(primitive.NewObjectID())

	ok, err := uc.repo.AppendCVItem(ctx, id, sub.Field(), item)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to add CV item. Please try again later.")
	}
	if !ok {
		return nil, domain.NotFound(fmt.Sprintf("Artist not found or %s not updated.", sub))
	}

	log.Info().
		Str("artist", artist.Name).
		Str("subsection", string(sub)).
		Str("item", item.ItemID().Hex()).
		Msg("cv item added")

	return uc.getArtist(ctx, id, fmt.Sprintf("Artist not found or %s not updated.", sub))
}

// ReplaceItem overwrites the item's fields in place. Its id and position are
// kept. An update that matches or modifies nothing is reported as NotFound.
func (uc *CVUsecase) ReplaceItem(
	ctx context.Context,
	artistID string,
	subsection string,
	itemID string,
	item portfolio_models.CVItem,
) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	sub, id, err := parseCVTarget(artistID, subsection)
	if err != nil {
		return nil, err
	}
	cvItemID, err := usecase.ParseID(itemID, string(sub)+" item")
	if err != nil {
		return nil, err
	}
	if err := validateCVItem(sub, item); err != nil {
		return nil, err
	}

	notFound := fmt.Sprintf("%s not found or no changes made.", sub)

	artist, err := uc.getArtist(ctx, id, notFound)
	if err != nil {
		return nil, err
	}
	if existing, _ := sub.FindItem(artist, cvItemID); existing == nil {
		return nil, domain.NotFound(notFound)
	}
	if err := checkTitleClash(sub, artist, item, cvItemID); err != nil {
		return nil, err
	}

	item.SetItemID(cvItemID)

	result, err := uc.repo.ReplaceCVItem(ctx, id, sub.Field(), cvItemID, item)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to update CV item. Please try again later.")
	}
	if result == nil || result.MatchedCount == 0 || result.ModifiedCount == 0 {
		return nil, domain.NotFound(notFound)
	}

	log.Info().
		Str("artist", artist.Name).
		Str("subsection", string(sub)).
		Str("item", cvItemID.Hex()).
		Msg("cv item updated")

	return uc.getArtist(ctx, id, notFound)
}

// RemoveItem pulls the item out of the subsection. The remaining items keep
// their relative order.
func (uc *CVUsecase) RemoveItem(
	ctx context.Context,
	artistID string,
	subsection string,
	itemID string,
) (*portfolio_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	sub, id, err := parseCVTarget(artistID, subsection)
	if err != nil {
		return nil, err
	}
	cvItemID, err := usecase.ParseID(itemID, string(sub)+" item")
	if err != nil {
		return nil, err
	}

	notFound := fmt.Sprintf("Artist or %s item not found.", sub)

	ok, err := uc.repo.RemoveCVItem(ctx, id, sub.Field(), cvItemID)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to delete CV item. Please try again later.")
	}
	if !ok {
		return nil, domain.NotFound(notFound)
	}

	log.Info().
		Str("artist", id.Hex()).
		Str("subsection", string(sub)).
		Str("item", cvItemID.Hex()).
		Msg("cv item removed")

	return uc.getArtist(ctx, id, notFound)
}

func (uc *CVUsecase) getArtist(ctx context.Context, id primitive.ObjectID, notFound string) (*portfolio_models.Artist, error) {
	artist, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to load artist. Please try again later.")
	}
	if artist == nil {
		return nil, domain.NotFound(notFound)
	}
	return artist, nil
}

func parseCVTarget(artistID string, subsection string) (portfolio_models.CVSubsection, primitive.ObjectID, error) {
	sub, err := portfolio_models.ParseSubsection(subsection)
	if err != nil {
		return "", primitive.NilObjectID, err
	}
	id, err := usecase.ParseID(artistID, "artist")
	if err != nil {
		return "", primitive.NilObjectID, err
	}
	return sub, id, nil
}

func validateCVItem(sub portfolio_models.CVSubsection, item portfolio_models.CVItem) error {
	if item == nil || !sub.Accepts(item) {
		return domain.Validation(fmt.Sprintf("Please review submitted information. The item is not a valid %s entry.", sub))
	}
	return validation.Struct(item)
}

// checkTitleClash rejects a title already used by another item of the same
// artist in a subsection whose titles are unique. self is skipped.
func checkTitleClash(
	sub portfolio_models.CVSubsection,
	artist *portfolio_models.Artist,
	item portfolio_models.CVItem,
	self primitive.ObjectID,
) error {
	if !sub.UniqueTitles() {
		return nil
	}
	for _, existing := range sub.Items(artist) {
		if existing.ItemID() != self && existing.ItemTitle() == item.ItemTitle() {
			return domain.Validation(fmt.Sprintf("Please review submitted information. %s already lists %q.", sub, item.ItemTitle()))
		}
	}
	return nil
}
