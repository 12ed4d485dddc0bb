package controller_portfolio

import (
	"context"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/stretchr/testify/mock"
)

type mockArtistUsecase struct{ mock.Mock }

func (m *mockArtistUsecase) GetArtists(ctx context.Context) ([]*portfolio_models.Artist, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]*portfolio_models.Artist)
	return artists, args.Error(1)
}

func (m *mockArtistUsecase) GetArtist(ctx context.Context, artistID string) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, artistID)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistUsecase) CreateArtist(ctx context.Context, input portfolio_models.ArtistInput) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, input)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistUsecase) UpdateBio(ctx context.Context, artistID string, bio string) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, artistID, bio)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistUsecase) DeleteArtist(ctx context.Context, artistID string) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, artistID)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

type mockCVUsecase struct{ mock.Mock }

func (m *mockCVUsecase) AppendItem(ctx context.Context, artistID string, subsection string, item portfolio_models.CVItem) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, artistID, subsection, item)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

func (m *mockCVUsecase) ReplaceItem(ctx context.Context, artistID string, subsection string, itemID string, item portfolio_models.CVItem) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, artistID, subsection, itemID, item)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

func (m *mockCVUsecase) RemoveItem(ctx context.Context, artistID string, subsection string, itemID string) (*portfolio_models.Artist, error) {
	args := m.Called(ctx, artistID, subsection, itemID)
	artist, _ := args.Get(0).(*portfolio_models.Artist)
	return artist, args.Error(1)
}

type mockArtworkUsecase struct{ mock.Mock }

func (m *mockArtworkUsecase) GetArtworks(ctx context.Context, sort []domain.SortOrder) ([]*portfolio_models.ArtworkView, error) {
	args := m.Called(ctx, sort)
	views, _ := args.Get(0).([]*portfolio_models.ArtworkView)
	return views, args.Error(1)
}

func (m *mockArtworkUsecase) GetArtworksByType(ctx context.Context, artworkType string) ([]*portfolio_models.ArtworkView, error) {
	args := m.Called(ctx, artworkType)
	views, _ := args.Get(0).([]*portfolio_models.ArtworkView)
	return views, args.Error(1)
}

func (m *mockArtworkUsecase) GetArtwork(ctx context.Context, artworkID string) (*portfolio_models.ArtworkView, error) {
	args := m.Called(ctx, artworkID)
	view, _ := args.Get(0).(*portfolio_models.ArtworkView)
	return view, args.Error(1)
}

func (m *mockArtworkUsecase) CreateArtwork(ctx context.Context, draft portfolio_models.ArtworkDraft) (*portfolio_models.Artwork, error) {
	args := m.Called(ctx, draft)
	artwork, _ := args.Get(0).(*portfolio_models.Artwork)
	return artwork, args.Error(1)
}

func (m *mockArtworkUsecase) UpdateArtwork(ctx context.Context, artworkID string, patch portfolio_models.ArtworkPatchDraft) (*portfolio_models.Artwork, error) {
	args := m.Called(ctx, artworkID, patch)
	artwork, _ := args.Get(0).(*portfolio_models.Artwork)
	return artwork, args.Error(1)
}

func (m *mockArtworkUsecase) DeleteArtwork(ctx context.Context, artworkID string) (*portfolio_models.Artwork, error) {
	args := m.Called(ctx, artworkID)
	artwork, _ := args.Get(0).(*portfolio_models.Artwork)
	return artwork, args.Error(1)
}

type mockImageUsecase struct{ mock.Mock }

func (m *mockImageUsecase) AttachImages(ctx context.Context, artworkID string, images []portfolio_models.ImageInput) (*portfolio_models.ArtworkWithImages, error) {
	args := m.Called(ctx, artworkID, images)
	artwork, _ := args.Get(0).(*portfolio_models.ArtworkWithImages)
	return artwork, args.Error(1)
}

func (m *mockImageUsecase) DetachAllImages(ctx context.Context, artworkID string) (int64, error) {
	args := m.Called(ctx, artworkID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockImageUsecase) DetachImage(ctx context.Context, imageID string) (*portfolio_models.ArtworkImage, error) {
	args := m.Called(ctx, imageID)
	image, _ := args.Get(0).(*portfolio_models.ArtworkImage)
	return image, args.Error(1)
}
