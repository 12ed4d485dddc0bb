package controller_portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, controller.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp controller.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestArtistController_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", domain.Validation("Invalid artist id."), http.StatusBadRequest},
		{"not found", domain.NotFound("Artist not found."), http.StatusNotFound},
		{"unexpected", domain.Unexpected("Failed.", errors.New("socket closed")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockArtistUsecase{}
			uc.On("GetArtist", mock.Anything, "abc").Return(nil, tt.err)

			r := gin.New()
			r.GET("/artists/:artistId", NewArtistController(uc).GetArtist)

			w, resp := perform(r, http.MethodGet, "/artists/abc", "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, domain.MessageOf(tt.err, ""), resp.Message)
			assert.Empty(t, resp.Error)
		})
	}
}

func TestArtistController_GetArtistsCount(t *testing.T) {
	uc := &mockArtistUsecase{}
	uc.On("GetArtists", mock.Anything).Return([]*portfolio_models.Artist{{Name: "A"}, {Name: "B"}}, nil)

	r := gin.New()
	r.GET("/artists", NewArtistController(uc).GetArtists)

	w, resp := perform(r, http.MethodGet, "/artists", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}

func TestArtistController_CreateArtist(t *testing.T) {
	uc := &mockArtistUsecase{}
	input := portfolio_models.ArtistInput{Name: "Ada", Bio: "Clay."}
	uc.On("CreateArtist", mock.Anything, input).Return(&portfolio_models.Artist{Name: "Ada", Bio: "Clay."}, nil)

	r := gin.New()
	r.POST("/artists", NewArtistController(uc).CreateArtist)

	w, resp := perform(r, http.MethodPost, "/artists", `{"name":"Ada","bio":"Clay."}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada successfully added.", resp.Message)

	w, _ = perform(r, http.MethodPost, "/artists", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNumberOfCalls(t, "CreateArtist", 1)
}

func TestCVController_AddItemDecodesBySubsection(t *testing.T) {
	uc := &mockCVUsecase{}
	artistID := primitive.NewObjectID().Hex()

	uc.On("AppendItem", mock.Anything, artistID, "talks", mock.MatchedBy(func(item portfolio_models.CVItem) bool {
		talk, ok := item.(*portfolio_models.Talk)
		return ok && talk.Title == "T1" && talk.Venue == "V" && talk.Year == 2020
	})).Return(&portfolio_models.Artist{Name: "A"}, nil)

	r := gin.New()
	r.POST("/artists/:artistId/cv/:cvSubsection", NewCVController(uc).AddItem)

	w, resp := perform(r, http.MethodPost, "/artists/"+artistID+"/cv/talks", `{"title":"T1","venue":"V","year":2020}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "talks updated successfully.", resp.Message)
	uc.AssertExpectations(t)
}

func TestCVController_RejectsUnknownSubsection(t *testing.T) {
	uc := &mockCVUsecase{}

	r := gin.New()
	r.POST("/artists/:artistId/cv/:cvSubsection", NewCVController(uc).AddItem)

	w, resp := perform(r, http.MethodPost, "/artists/x/cv/Talks", `{"title":"T1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "Only an exhibition, residency, or talk")
	uc.AssertNotCalled(t, "AppendItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestArtworkController_GetArtworksParsesSort(t *testing.T) {
	uc := &mockArtworkUsecase{}
	uc.On("GetArtworks", mock.Anything, []domain.SortOrder{
		{Sort: "year", Order: "desc"},
		{Sort: "title", Order: "asc"},
	}).Return([]*portfolio_models.ArtworkView{{}}, nil)

	r := gin.New()
	r.GET("/artworks", NewArtworkController(uc).GetArtworks)

	w, resp := perform(r, http.MethodGet, "/artworks?sort=year:desc&sort=title", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)
	uc.AssertExpectations(t)
}

func TestArtworkController_GetArtworksByType(t *testing.T) {
	uc := &mockArtworkUsecase{}
	uc.On("GetArtworksByType", mock.Anything, "Flat Works").Return(nil, domain.NotFound("No Flat Works artworks found."))

	r := gin.New()
	r.GET("/artworks/type/:artworkType", NewArtworkController(uc).GetArtworksByType)

	w, resp := perform(r, http.MethodGet, "/artworks/type/Flat%20Works", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No Flat Works artworks found.", resp.Message)
}

func TestImageController_AttachImagesMergesBodies(t *testing.T) {
	uc := &mockImageUsecase{}
	artworkID := primitive.NewObjectID().Hex()
	want := []portfolio_models.ImageInput{
		{URL: "https://cdn.example.com/u1.jpg"},
		{URL: "https://cdn.example.com/u2.jpg"},
		{URL: "https://cdn.example.com/u3.jpg", AltText: "detail"},
	}
	uc.On("AttachImages", mock.Anything, artworkID, want).
		Return(&portfolio_models.ArtworkWithImages{Artwork: portfolio_models.Artwork{Title: "Vessel"}}, nil)

	r := gin.New()
	r.POST("/artworks/:artworkId/images", NewImageController(uc).AttachImages)

	body := `{"imageUrls":["https://cdn.example.com/u1.jpg","https://cdn.example.com/u2.jpg"],
		"images":[{"url":"https://cdn.example.com/u3.jpg","altText":"detail"}]}`
	w, resp := perform(r, http.MethodPost, "/artworks/"+artworkID+"/images", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3 images uploaded to Vessel", resp.Message)
	uc.AssertExpectations(t)
}

func TestImageController_DetachAllImages(t *testing.T) {
	uc := &mockImageUsecase{}
	uc.On("DetachAllImages", mock.Anything, "a1").Return(int64(0), nil)

	r := gin.New()
	r.DELETE("/artworks/:artworkId/images", NewImageController(uc).DetachAllImages)

	w, resp := perform(r, http.MethodDelete, "/artworks/a1/images", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Zero(t, *resp.Count)
}

func TestErrorResponse_ExposesDetailWhenEnabled(t *testing.T) {
	controller.SetExposeErrors(true)
	defer controller.SetExposeErrors(false)

	uc := &mockArtistUsecase{}
	uc.On("GetArtists", mock.Anything).Return(nil, domain.Unexpected("Failed.", errors.New("socket closed")))

	r := gin.New()
	r.GET("/artists", NewArtistController(uc).GetArtists)

	w, resp := perform(r, http.MethodGet, "/artists", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed.", resp.Message)
	assert.Equal(t, "Failed.: socket closed", resp.Error)
}
