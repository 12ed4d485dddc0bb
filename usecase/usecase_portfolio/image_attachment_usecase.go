package usecase_portfolio

import (
	"context"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/usecase"
	"github.com/ddc-studio/portfolio-api/util/validation"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageAttachmentUsecase links image records to artworks.
//
// A batch attach creates each image and pushes its id before moving to the
// next one. Unless the Transactor runs a real transaction, a batch that stops
// on a missing artwork leaves the images created so far in the store,
// pointing at the artwork but listed by no artwork.
type ImageAttachmentUsecase struct {
	images   portfolio_interface.ArtworkImageRepository
	artworks portfolio_interface.ArtworkRepository
	tx       domain.Transactor
	timeout  time.Duration
}

var _ portfolio_interface.ImageAttachmentUsecase = (*ImageAttachmentUsecase)(nil)

func NewImageAttachmentUsecase(
	images portfolio_interface.ArtworkImageRepository,
	artworks portfolio_interface.ArtworkRepository,
	tx domain.Transactor,
	timeout time.Duration,
) *ImageAttachmentUsecase {
	return &ImageAttachmentUsecase{
		images:   images,
		artworks: artworks,
		tx:       tx,
		timeout:  timeout,
	}
}

func (uc *ImageAttachmentUsecase) AttachImages(
	ctx context.Context,
	artworkID string,
	inputs []portfolio_models.ImageInput,
) (*portfolio_models.ArtworkWithImages, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artworkID, "artwork")
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, domain.Validation("No images were sent to the server to upload.")
	}
	for i := range inputs {
		if err := validation.Struct(&inputs[i]); err != nil {
			return nil, err
		}
	}

	err = uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for i, input := range inputs {
			altText := input.AltText
			if altText == "" {
				altText = input.URL
			}

			image := &portfolio_models.ArtworkImage{
				URL:     input.URL,
				AltText: altText,
				ImageOf: id,
			}
			if err := uc.images.Create(ctx, image); err != nil {
				return usecase.StoreError(err, "Failed to add submitted images to requested artwork.")
			}

			ok, err := uc.artworks.PushImage(ctx, id, image.ID)
			if err != nil {
				return usecase.StoreError(err, "Failed to add submitted images to requested artwork.")
			}
			if !ok {
				return domain.NotFound("Artwork not found.")
			}

			log.Info().
				Int("iteration", i+1).
				Int("total", len(inputs)).
				Str("url", image.URL).
				Str("artwork", id.Hex()).
				Msg("image added to artwork")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.withImages(ctx, id)
}

// DetachAllImages deletes every image of the artwork and clears their ids
// from its imgs.
func (uc *ImageAttachmentUsecase) DetachAllImages(ctx context.Context, artworkID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(artworkID, "artwork")
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		images, err := uc.images.GetByArtwork(ctx, id)
		if err != nil {
			return usecase.StoreError(err, "Failed to remove images. Please try again later.")
		}

		ids := make([]primitive.ObjectID, 0, len(images))
		for _, image := range images {
			ids = append(ids, image.ID)
		}

		deleted, err = uc.images.DeleteByArtwork(ctx, id)
		if err != nil {
			return usecase.StoreError(err, "Failed to remove images. Please try again later.")
		}

		if err := uc.artworks.PullImages(ctx, id, ids); err != nil {
			return usecase.StoreError(err, "Failed to remove images. Please try again later.")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int64("count", deleted).Str("artwork", id.Hex()).Msg("images removed from artwork")
	return deleted, nil
}

// DetachImage deletes one image and pulls its id from the owning artwork.
func (uc *ImageAttachmentUsecase) DetachImage(ctx context.Context, imageID string) (*portfolio_models.ArtworkImage, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(imageID, "image")
	if err != nil {
		return nil, err
	}

	var image *portfolio_models.ArtworkImage
	err = uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		image, err = uc.images.FindByIDAndDelete(ctx, id)
		if err != nil {
			return usecase.StoreError(err, "Failed to remove image. Please try again later.")
		}
		if image == nil {
			return domain.NotFound("Image not found.")
		}

		if err := uc.artworks.PullImages(ctx, image.ImageOf, []primitive.ObjectID{image.ID}); err != nil {
			return usecase.StoreError(err, "Failed to remove image. Please try again later.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("image", image.URL).Str("artwork", image.ImageOf.Hex()).Msg("image removed")
	return image, nil
}

func (uc *ImageAttachmentUsecase) withImages(ctx context.Context, id primitive.ObjectID) (*portfolio_models.ArtworkWithImages, error) {
	artwork, err := uc.artworks.GetByID(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to load artwork. Please try again later.")
	}
	if artwork == nil {
		return nil, domain.NotFound("Artwork not found.")
	}

	images, err := uc.images.GetByIDs(ctx, artwork.Imgs)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to load artwork images. Please try again later.")
	}

	return &portfolio_models.ArtworkWithImages{
		Artwork: *artwork,
		Images:  images,
	}, nil
}
