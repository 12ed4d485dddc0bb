package usecase_portfolio

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const testTimeout = 2 * time.Second

var errStoreDown = errors.New("connection refused")

type passthroughTx struct{ calls int }

func (tx *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

// ---- artists ----

type fakeArtistRepo struct {
	artists []*portfolio_models.Artist
	err     error
}

func (r *fakeArtistRepo) find(id primitive.ObjectID) (int, *portfolio_models.Artist) {
	for i, a := range r.artists {
		if a.ID == id {
			return i, a
		}
	}
	return -1, nil
}

func cloneArtist(a *portfolio_models.Artist) *portfolio_models.Artist {
	c := *a
	c.Exhibitions = append([]portfolio_models.Exhibition(nil), a.Exhibitions...)
	c.Residencies = append([]portfolio_models.Residency(nil), a.Residencies...)
	c.Talks = append([]portfolio_models.Talk(nil), a.Talks...)
	return &c
}

func (r *fakeArtistRepo) Create(_ context.Context, artist *portfolio_models.Artist) error {
	if r.err != nil {
		return r.err
	}
	if artist.ID.IsZero() {
		artist.ID = primitive.NewObjectID()
	}
	r.artists = append(r.artists, cloneArtist(artist))
	return nil
}

func (r *fakeArtistRepo) GetAll(context.Context) ([]*portfolio_models.Artist, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*portfolio_models.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		out = append(out, cloneArtist(a))
	}
	return out, nil
}

func (r *fakeArtistRepo) GetByID(_ context.Context, id primitive.ObjectID) (*portfolio_models.Artist, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, a := r.find(id); a != nil {
		return cloneArtist(a), nil
	}
	return nil, nil
}

func (r *fakeArtistRepo) GetByName(_ context.Context, name string) (*portfolio_models.Artist, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.artists {
		if a.Name == name {
			return cloneArtist(a), nil
		}
	}
	return nil, nil
}

func (r *fakeArtistRepo) FindByIDAndUpdate(_ context.Context, id primitive.ObjectID, update bson.M) (*portfolio_models.Artist, error) {
	if r.err != nil {
		return nil, r.err
	}
	_, a := r.find(id)
	if a == nil {
		return nil, nil
	}
	if set, ok := update["$set"].(bson.M); ok {
		if bio, ok := set["bio"].(string); ok {
			a.Bio = bio
		}
	}
	return cloneArtist(a), nil
}

func (r *fakeArtistRepo) FindByIDAndDelete(_ context.Context, id primitive.ObjectID) (*portfolio_models.Artist, error) {
	if r.err != nil {
		return nil, r.err
	}
	i, a := r.find(id)
	if a == nil {
		return nil, nil
	}
	r.artists = append(r.artists[:i], r.artists[i+1:]...)
	return a, nil
}

func (r *fakeArtistRepo) AppendCVItem(_ context.Context, artistID primitive.ObjectID, field string, item portfolio_models.CVItem) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, a := r.find(artistID)
	if a == nil {
		return false, nil
	}
	switch field {
	case "exhibitions":
		a.Exhibitions = append(a.Exhibitions, *item.(*portfolio_models.Exhibition))
	case "residencies":
		a.Residencies = append(a.Residencies, *item.(*portfolio_models.Residency))
	case "talks":
		a.Talks = append(a.Talks, *item.(*portfolio_models.Talk))
	}
	return true, nil
}

func (r *fakeArtistRepo) ReplaceCVItem(
	_ context.Context,
	artistID primitive.ObjectID,
	field string,
	itemID primitive.ObjectID,
	item portfolio_models.CVItem,
) (*mongo.UpdateResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	_, a := r.find(artistID)
	if a == nil {
		return &mongo.UpdateResult{}, nil
	}
	sub := portfolio_models.CVSubsection(field)
	existing, idx := sub.FindItem(a, itemID)
	if idx < 0 {
		return &mongo.UpdateResult{}, nil
	}
	if reflect.DeepEqual(existing, item) {
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}
	switch field {
	case "exhibitions":
		a.Exhibitions[idx] = *item.(*portfolio_models.Exhibition)
	case "residencies":
		a.Residencies[idx] = *item.(*portfolio_models.Residency)
	case "talks":
		a.Talks[idx] = *item.(*portfolio_models.Talk)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeArtistRepo) RemoveCVItem(_ context.Context, artistID primitive.ObjectID, field string, itemID primitive.ObjectID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, a := r.find(artistID)
	if a == nil {
		return false, nil
	}
	sub := portfolio_models.CVSubsection(field)
	_, idx := sub.FindItem(a, itemID)
	if idx < 0 {
		return false, nil
	}
	switch field {
	case "exhibitions":
		a.Exhibitions = append(a.Exhibitions[:idx], a.Exhibitions[idx+1:]...)
	case "residencies":
		a.Residencies = append(a.Residencies[:idx], a.Residencies[idx+1:]...)
	case "talks":
		a.Talks = append(a.Talks[:idx], a.Talks[idx+1:]...)
	}
	return true, nil
}

// ---- artworks ----

type fakeArtworkRepo struct {
	artworks []*portfolio_models.Artwork
	artists  *fakeArtistRepo
	err      error
	lastSort []domain.SortOrder
}

func (r *fakeArtworkRepo) find(id primitive.ObjectID) (int, *portfolio_models.Artwork) {
	for i, a := range r.artworks {
		if a.ID == id {
			return i, a
		}
	}
	return -1, nil
}

func cloneArtwork(a *portfolio_models.Artwork) *portfolio_models.Artwork {
	c := *a
	c.Imgs = append([]primitive.ObjectID(nil), a.Imgs...)
	return &c
}

func (r *fakeArtworkRepo) view(a *portfolio_models.Artwork) *portfolio_models.ArtworkView {
	v := &portfolio_models.ArtworkView{Artwork: *cloneArtwork(a)}
	if r.artists != nil {
		if _, maker := r.artists.find(a.Maker); maker != nil {
			v.MakerRef = &portfolio_models.MakerSummary{ID: maker.ID, Name: maker.Name}
		}
	}
	return v
}

func (r *fakeArtworkRepo) Create(_ context.Context, artwork *portfolio_models.Artwork) error {
	if r.err != nil {
		return r.err
	}
	if artwork.ID.IsZero() {
		artwork.ID = primitive.NewObjectID()
	}
	r.artworks = append(r.artworks, cloneArtwork(artwork))
	return nil
}

func (r *fakeArtworkRepo) GetByID(_ context.Context, id primitive.ObjectID) (*portfolio_models.Artwork, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, a := r.find(id); a != nil {
		return cloneArtwork(a), nil
	}
	return nil, nil
}

func (r *fakeArtworkRepo) FindByIDAndUpdate(_ context.Context, id primitive.ObjectID, update bson.M) (*portfolio_models.Artwork, error) {
	if r.err != nil {
		return nil, r.err
	}
	_, a := r.find(id)
	if a == nil {
		return nil, nil
	}
	set, _ := update["$set"].(bson.M)
	if v, ok := set["title"].(string); ok {
		a.Title = v
	}
	if v, ok := set["artwork_type"].(portfolio_models.ArtworkType); ok {
		a.ArtworkType = v
	}
	if v, ok := set["maker"].(primitive.ObjectID); ok {
		a.Maker = v
	}
	if v, ok := set["year"].(int); ok {
		a.Year = v
	}
	return cloneArtwork(a), nil
}

func (r *fakeArtworkRepo) FindByIDAndDelete(_ context.Context, id primitive.ObjectID) (*portfolio_models.Artwork, error) {
	if r.err != nil {
		return nil, r.err
	}
	i, a := r.find(id)
	if a == nil {
		return nil, nil
	}
	r.artworks = append(r.artworks[:i], r.artworks[i+1:]...)
	return a, nil
}

func (r *fakeArtworkRepo) GetViews(_ context.Context, artworkType portfolio_models.ArtworkType, sort []domain.SortOrder) ([]*portfolio_models.ArtworkView, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastSort = sort
	out := make([]*portfolio_models.ArtworkView, 0)
	for _, a := range r.artworks {
		if artworkType == "" || a.ArtworkType == artworkType {
			out = append(out, r.view(a))
		}
	}
	return out, nil
}

func (r *fakeArtworkRepo) GetViewByID(_ context.Context, id primitive.ObjectID) (*portfolio_models.ArtworkView, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, a := r.find(id); a != nil {
		return r.view(a), nil
	}
	return nil, nil
}

func (r *fakeArtworkRepo) PushImage(_ context.Context, artworkID primitive.ObjectID, imageID primitive.ObjectID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, a := r.find(artworkID)
	if a == nil {
		return false, nil
	}
	a.Imgs = append(a.Imgs, imageID)
	return true, nil
}

func (r *fakeArtworkRepo) PullImages(_ context.Context, artworkID primitive.ObjectID, imageIDs []primitive.ObjectID) error {
	if r.err != nil {
		return r.err
	}
	_, a := r.find(artworkID)
	if a == nil {
		return nil
	}
	drop := make(map[primitive.ObjectID]bool, len(imageIDs))
	for _, id := range imageIDs {
		drop[id] = true
	}
	kept := a.Imgs[:0]
	for _, id := range a.Imgs {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	a.Imgs = kept
	return nil
}

// ---- artwork images ----

type fakeImageRepo struct {
	images []*portfolio_models.ArtworkImage
	// failURL makes Create fail for that URL
	failURL string
}

func (r *fakeImageRepo) Create(_ context.Context, image *portfolio_models.ArtworkImage) error {
	if r.failURL != "" && image.URL == r.failURL {
		return errStoreDown
	}
	image.ID = primitive.NewObjectID()
	c := *image
	r.images = append(r.images, &c)
	return nil
}

func (r *fakeImageRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*portfolio_models.ArtworkImage, error) {
	return portfolio_models.OrderByIDs(ids, r.images, func(i *portfolio_models.ArtworkImage) primitive.ObjectID { return i.ID }), nil
}

func (r *fakeImageRepo) GetByArtwork(_ context.Context, artworkID primitive.ObjectID) ([]*portfolio_models.ArtworkImage, error) {
	out := make([]*portfolio_models.ArtworkImage, 0)
	for _, i := range r.images {
		if i.ImageOf == artworkID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) FindByIDAndDelete(_ context.Context, id primitive.ObjectID) (*portfolio_models.ArtworkImage, error) {
	for i, img := range r.images {
		if img.ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return img, nil
		}
	}
	return nil, nil
}

func (r *fakeImageRepo) DeleteByArtwork(_ context.Context, artworkID primitive.ObjectID) (int64, error) {
	kept := make([]*portfolio_models.ArtworkImage, 0, len(r.images))
	var deleted int64
	for _, i := range r.images {
		if i.ImageOf == artworkID {
			deleted++
			continue
		}
		kept = append(kept, i)
	}
	r.images = kept
	return deleted, nil
}

// ---- installations ----

type fakeInstallationRepo struct {
	installations []*portfolio_models.Installation
	media         *fakeMediaRepo
}

func (r *fakeInstallationRepo) find(id primitive.ObjectID) (int, *portfolio_models.Installation) {
	for i, in := range r.installations {
		if in.ID == id {
			return i, in
		}
	}
	return -1, nil
}

func (r *fakeInstallationRepo) view(in *portfolio_models.Installation) *portfolio_models.InstallationView {
	c := *in
	c.InstallMedias = append([]primitive.ObjectID(nil), in.InstallMedias...)
	v := &portfolio_models.InstallationView{Installation: c}
	if r.media != nil {
		v.Media = portfolio_models.OrderByIDs(c.InstallMedias, r.media.media,
			func(m *portfolio_models.InstallationMedia) primitive.ObjectID { return m.ID })
	}
	return v
}

func (r *fakeInstallationRepo) Create(_ context.Context, in *portfolio_models.Installation) error {
	in.ID = primitive.NewObjectID()
	c := *in
	r.installations = append(r.installations, &c)
	return nil
}

func (r *fakeInstallationRepo) GetViews(context.Context) ([]*portfolio_models.InstallationView, error) {
	out := make([]*portfolio_models.InstallationView, 0, len(r.installations))
	for _, in := range r.installations {
		out = append(out, r.view(in))
	}
	return out, nil
}

func (r *fakeInstallationRepo) GetViewByID(_ context.Context, id primitive.ObjectID) (*portfolio_models.InstallationView, error) {
	if _, in := r.find(id); in != nil {
		return r.view(in), nil
	}
	return nil, nil
}

func (r *fakeInstallationRepo) FindByIDAndUpdate(_ context.Context, id primitive.ObjectID, update bson.M) (*portfolio_models.Installation, error) {
	_, in := r.find(id)
	if in == nil {
		return nil, nil
	}
	set, _ := update["$set"].(bson.M)
	if v, ok := set["install_desc"].(string); ok {
		in.InstallDesc = v
	}
	if v, ok := set["location"].(string); ok {
		in.Location = v
	}
	if v, ok := set["year"].(int); ok {
		in.Year = v
	}
	c := *in
	return &c, nil
}

func (r *fakeInstallationRepo) FindByIDAndDelete(_ context.Context, id primitive.ObjectID) (*portfolio_models.Installation, error) {
	i, in := r.find(id)
	if in == nil {
		return nil, nil
	}
	r.installations = append(r.installations[:i], r.installations[i+1:]...)
	return in, nil
}

func (r *fakeInstallationRepo) PushMedia(_ context.Context, installationID primitive.ObjectID, mediaID primitive.ObjectID) (bool, error) {
	_, in := r.find(installationID)
	if in == nil {
		return false, nil
	}
	in.InstallMedias = append(in.InstallMedias, mediaID)
	return true, nil
}

func (r *fakeInstallationRepo) PullMedia(_ context.Context, installationID primitive.ObjectID, mediaID primitive.ObjectID) error {
	_, in := r.find(installationID)
	if in == nil {
		return nil
	}
	kept := in.InstallMedias[:0]
	for _, id := range in.InstallMedias {
		if id != mediaID {
			kept = append(kept, id)
		}
	}
	in.InstallMedias = kept
	return nil
}

type fakeMediaRepo struct {
	media []*portfolio_models.InstallationMedia
}

func (r *fakeMediaRepo) Create(_ context.Context, m *portfolio_models.InstallationMedia) error {
	m.ID = primitive.NewObjectID()
	c := *m
	r.media = append(r.media, &c)
	return nil
}

func (r *fakeMediaRepo) FindByIDAndDelete(_ context.Context, id primitive.ObjectID) (*portfolio_models.InstallationMedia, error) {
	for i, m := range r.media {
		if m.ID == id {
			r.media = append(r.media[:i], r.media[i+1:]...)
			return m, nil
		}
	}
	return nil, nil
}
