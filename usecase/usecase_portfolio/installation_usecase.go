package usecase_portfolio

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/ddc-studio/portfolio-api/usecase"
	"github.com/ddc-studio/portfolio-api/util/validation"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type InstallationUsecase struct {
	installations portfolio_interface.InstallationRepository
	media         portfolio_interface.InstallationMediaRepository
	tx            domain.Transactor
	timeout       time.Duration
}

var _ portfolio_interface.InstallationUsecase = (*InstallationUsecase)(nil)

func NewInstallationUsecase(
	installations portfolio_interface.InstallationRepository,
	media portfolio_interface.InstallationMediaRepository,
	tx domain.Transactor,
	timeout time.Duration,
) *InstallationUsecase {
	return &InstallationUsecase{
		installations: installations,
		media:         media,
		tx:            tx,
		timeout:       timeout,
	}
}

func (uc *InstallationUsecase) GetInstallations(ctx context.Context) ([]*portfolio_models.InstallationView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	installations, err := uc.installations.GetViews(ctx)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to retrieve installations. Please try again later.")
	}
	if len(installations) == 0 {
		return nil, domain.NotFound("No installations have been added to the website.")
	}
	return installations, nil
}

func (uc *InstallationUsecase) GetInstallation(ctx context.Context, installationID string) (*portfolio_models.InstallationView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(installationID, "installation")
	if err != nil {
		return nil, err
	}

	installation, err := uc.installations.GetViewByID(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to retrieve installation. Please try again later.")
	}
	if installation == nil {
		return nil, domain.NotFound("Unable to locate requested installation. Please review path.")
	}
	return installation, nil
}

func (uc *InstallationUsecase) CreateInstallation(ctx context.Context, input portfolio_models.InstallationInput) (*portfolio_models.Installation, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	installation := input.ToInstallation()
	if err := uc.installations.Create(ctx, installation); err != nil {
		return nil, usecase.StoreError(err, "Failed to add new installation. Please try again later.")
	}

	log.Info().
		Str("installation", installation.InstallDesc).
		Str("location", installation.Location).
		Msg("installation created")
	return installation, nil
}

func (uc *InstallationUsecase) UpdateInstallation(
	ctx context.Context,
	installationID string,
	patch portfolio_models.InstallationPatch,
) (*portfolio_models.Installation, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(installationID, "installation")
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(&patch); err != nil {
		return nil, err
	}
	set := patch.SetFields()
	if len(set) == 0 {
		return nil, domain.Validation("No new installation details were submitted. Please review submitted fields.")
	}

	installation, err := uc.installations.FindByIDAndUpdate(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to update installation. Please try again later.")
	}
	if installation == nil {
		return nil, domain.NotFound("Unable to locate an installation to update.")
	}

	log.Info().Str("installation", installation.InstallDesc).Msg("installation details updated")
	return installation, nil
}

// DeleteInstallation removes the installation. Its media are left in place.
func (uc *InstallationUsecase) DeleteInstallation(ctx context.Context, installationID string) (*portfolio_models.Installation, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(installationID, "installation")
	if err != nil {
		return nil, err
	}

	installation, err := uc.installations.FindByIDAndDelete(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Failed to remove installation. Please try again later.")
	}
	if installation == nil {
		return nil, domain.NotFound("Unable to locate an installation to remove.")
	}

	log.Info().Str("installation", installation.InstallDesc).Msg("installation removed")
	return installation, nil
}

// AttachMedia follows the same create-then-push sequence as image batches.
// A media type left empty is inferred from the URL's extension.
func (uc *InstallationUsecase) AttachMedia(
	ctx context.Context,
	installationID string,
	inputs []portfolio_models.MediaInput,
) (*portfolio_models.InstallationView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(installationID, "installation")
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, domain.Validation("No media were sent to the server to upload.")
	}

	mediaTypes := make([]portfolio_models.MediaType, len(inputs))
	for i := range inputs {
		if err := validation.Struct(&inputs[i]); err != nil {
			return nil, err
		}
		mediaType, err := resolveMediaType(inputs[i])
		if err != nil {
			return nil, err
		}
		mediaTypes[i] = mediaType
	}

	err = uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for i, input := range inputs {
			media := &portfolio_models.InstallationMedia{
				MediaType: mediaTypes[i],
				URL:       input.URL,
				MediaOf:   id,
			}
			if err := uc.media.Create(ctx, media); err != nil {
				return usecase.StoreError(err, "Failed to add submitted media to requested installation.")
			}

			ok, err := uc.installations.PushMedia(ctx, id, media.ID)
			if err != nil {
				return usecase.StoreError(err, "Failed to add submitted media to requested installation.")
			}
			if !ok {
				return domain.NotFound("Installation not found.")
			}

			log.Info().
				Int("iteration", i+1).
				Int("total", len(inputs)).
				Str("url", media.URL).
				Str("installation", id.Hex()).
				Msg("media added to installation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	installation, err := uc.installations.GetViewByID(ctx, id)
	if err != nil {
		return nil, usecase.StoreError(err, "Unable to retrieve installation. Please try again later.")
	}
	if installation == nil {
		return nil, domain.NotFound("Installation not found.")
	}
	return installation, nil
}

// DetachMedia deletes one media record and pulls it from its installation.
func (uc *InstallationUsecase) DetachMedia(ctx context.Context, mediaID string) (*portfolio_models.InstallationMedia, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := usecase.ParseID(mediaID, "media")
	if err != nil {
		return nil, err
	}

	var media *portfolio_models.InstallationMedia
	err = uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		media, err = uc.media.FindByIDAndDelete(ctx, id)
		if err != nil {
			return usecase.StoreError(err, "Failed to remove media. Please try again later.")
		}
		if media == nil {
			return domain.NotFound("Media not found.")
		}
		if err := uc.installations.PullMedia(ctx, media.MediaOf, media.ID); err != nil {
			return usecase.StoreError(err, "Failed to remove media. Please try again later.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("media", media.URL).Str("installation", media.MediaOf.Hex()).Msg("media removed")
	return media, nil
}

func resolveMediaType(input portfolio_models.MediaInput) (portfolio_models.MediaType, error) {
	if input.MediaType != "" {
		return portfolio_models.MediaType(input.MediaType), nil
	}
	if mediaType, ok := InferMediaType(input.URL); ok {
		return mediaType, nil
	}
	return "", domain.Validation(fmt.Sprintf("Please review submitted information. The media type of %s could not be determined; send mediaType as image or video.", input.URL))
}

// InferMediaType maps the extension of rawURL's path to image or video.
func InferMediaType(rawURL string) (portfolio_models.MediaType, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(u.Path)), ".")
	switch ext {
	case "":
		return "", false
	case "jpeg":
		ext = "jpg"
	case "tiff":
		ext = "tif"
	}

	kind := filetype.GetType(ext)
	if kind == filetype.Unknown {
		return "", false
	}
	switch kind.MIME.Type {
	case "image":
		return portfolio_models.MediaTypeImage, true
	case "video":
		return portfolio_models.MediaTypeVideo, true
	}
	return "", false
}
