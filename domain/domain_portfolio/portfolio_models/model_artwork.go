package portfolio_models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ArtworkType string

const (
	ArtworkTypeSculpture ArtworkType = "Sculpture"
	ArtworkTypeCeramic   ArtworkType = "Ceramic"
	ArtworkTypeFlatWorks ArtworkType = "Flat Works"
)

// ParseArtworkType accepts the stored names plus "FlatWorks" as an alias.
func ParseArtworkType(s string) (ArtworkType, bool) {
	switch s {
	case string(ArtworkTypeSculpture):
		return ArtworkTypeSculpture, true
	case string(ArtworkTypeCeramic):
		return ArtworkTypeCeramic, true
	case string(ArtworkTypeFlatWorks), "FlatWorks":
		return ArtworkTypeFlatWorks, true
	}
	return "", false
}

type Artwork struct {
	// System fields
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`

	Title       string      `bson:"title" json:"title"`
	Series      string      `bson:"series,omitempty" json:"series,omitempty"`
	Year        int         `bson:"year" json:"year"`
	ArtworkType ArtworkType `bson:"artwork_type" json:"artworkType"`
	Medium      string      `bson:"medium" json:"medium"`
	Width       float64     `bson:"width" json:"width"`
	Height      float64     `bson:"height" json:"height"`
	Depth       *float64    `bson:"depth,omitempty" json:"depth,omitempty"`

	// References
	Maker primitive.ObjectID   `bson:"maker" json:"maker"`
	Imgs  []primitive.ObjectID `bson:"imgs" json:"imgs"`
}

func (a *Artwork) Normalize() {
	if a.Imgs == nil {
		a.Imgs = []primitive.ObjectID{}
	}
}

// MakerSummary is the expanded maker reference returned with artworks.
type MakerSummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name,omitempty"`
}

// ArtworkView is an artwork with its maker joined in. The JSON "maker" key
// carries the summary instead of the bare id.
type ArtworkView struct {
	Artwork  `bson:",inline"`
	MakerRef *MakerSummary `bson:"maker_ref,omitempty" json:"maker"`
}

// Normalize keeps the stored maker id visible when the maker artist no
// longer exists.
func (v *ArtworkView) Normalize() {
	v.Artwork.Normalize()
	if v.MakerRef == nil && !v.Maker.IsZero() {
		v.MakerRef = &MakerSummary{ID: v.Maker}
	}
}

// ArtworkWithImages is an artwork with its imgs references expanded, in
// imgs order.
type ArtworkWithImages struct {
	Artwork `bson:",inline"`
	Images  []*ArtworkImage `bson:"-" json:"imgs"`
}

// ArtworkDraft is the inbound artwork payload before the maker name has been
// resolved.
type ArtworkDraft struct {
	Title       string   `json:"title" validate:"required"`
	Series      string   `json:"series"`
	Year        int      `json:"year" validate:"required"`
	ArtworkType string   `json:"artworkType" validate:"required"`
	Medium      string   `json:"medium" validate:"required"`
	Width       float64  `json:"width" validate:"required,gt=0"`
	Height      float64  `json:"height" validate:"required,gt=0"`
	Depth       *float64 `json:"depth" validate:"omitempty,gt=0"`
	Maker       string   `json:"maker" validate:"required"`
}

// ResolvedArtwork is an ArtworkDraft whose maker name has been replaced by
// the maker's id.
type ResolvedArtwork struct {
	Draft   ArtworkDraft
	Type    ArtworkType
	MakerID primitive.ObjectID
}

func (r ResolvedArtwork) ToArtwork() *Artwork {
	return &Artwork{
		Title:       r.Draft.Title,
		Series:      r.Draft.Series,
		Year:        r.Draft.Year,
		ArtworkType: r.Type,
		Medium:      r.Draft.Medium,
		Width:       r.Draft.Width,
		Height:      r.Draft.Height,
		Depth:       r.Draft.Depth,
		Maker:       r.MakerID,
		Imgs:        []primitive.ObjectID{},
	}
}

// ArtworkPatchDraft carries a partial artwork update. Nil fields are left
// untouched.
type ArtworkPatchDraft struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Series      *string  `json:"series"`
	Year        *int     `json:"year" validate:"omitempty,gt=0"`
	ArtworkType *string  `json:"artworkType"`
	Medium      *string  `json:"medium" validate:"omitempty,min=1"`
	Width       *float64 `json:"width" validate:"omitempty,gt=0"`
	Height      *float64 `json:"height" validate:"omitempty,gt=0"`
	Depth       *float64 `json:"depth" validate:"omitempty,gt=0"`
	Maker       *string  `json:"maker" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ArtworkPatchDraft) IsEmpty() bool {
	return p.Title == nil && p.Series == nil && p.Year == nil && p.ArtworkType == nil &&
		p.Medium == nil && p.Width == nil && p.Height == nil && p.Depth == nil && p.Maker == nil
}

// ResolvedArtworkPatch is an ArtworkPatchDraft with the maker (if any)
// resolved to an id.
type ResolvedArtworkPatch struct {
	Patch   ArtworkPatchDraft
	Type    *ArtworkType
	MakerID *primitive.ObjectID
}

// SetFields builds the $set document for the patch.
func (r ResolvedArtworkPatch) SetFields() bson.M {
	set := bson.M{}
	p := r.Patch
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Series != nil {
		set["series"] = *p.Series
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}
	if r.Type != nil {
		set["artwork_type"] = *r.Type
	}
	if p.Medium != nil {
		set["medium"] = *p.Medium
	}
	if p.Width != nil {
		set["width"] = *p.Width
	}
	if p.Height != nil {
		set["height"] = *p.Height
	}
	if p.Depth != nil {
		set["depth"] = *p.Depth
	}
	if r.MakerID != nil {
		set["maker"] = *r.MakerID
	}
	return set
}
