package portfolio_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Artist struct {
	// System fields
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`

	Name string `bson:"name" json:"name"`
	Bio  string `bson:"bio" json:"bio"`
	DOB  int    `bson:"dob,omitempty" json:"dob,omitempty"` // year of birth

	// CV subsections; stored as arrays even when empty
	Exhibitions []Exhibition `bson:"exhibitions" json:"exhibitions"`
	Residencies []Residency  `bson:"residencies" json:"residencies"`
	Talks       []Talk       `bson:"talks" json:"talks"`
}

// Normalize replaces nil CV subsections with empty ones, for documents
// written before the subsections existed.
func (a *Artist) Normalize() {
	if a.Exhibitions == nil {
		a.Exhibitions = []Exhibition{}
	}
	if a.Residencies == nil {
		a.Residencies = []Residency{}
	}
	if a.Talks == nil {
		a.Talks = []Talk{}
	}
}

type Exhibition struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title" validate:"required"`
	Year     int                `bson:"year" json:"year" validate:"required"`
	Location string             `bson:"location" json:"location" validate:"required"`
	SoloShow *bool              `bson:"solo_show" json:"soloShow" validate:"required"`
	Link     string             `bson:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
}

type Residency struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title" validate:"required"`
	Location string             `bson:"location" json:"location" validate:"required"`
	Year     int                `bson:"year" json:"year" validate:"required"`
	Link     string             `bson:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
}

type Talk struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Title string             `bson:"title" json:"title" validate:"required"`
	Year  int                `bson:"year" json:"year" validate:"required"`
	Venue string             `bson:"venue" json:"venue" validate:"required"`
	With  string             `bson:"with,omitempty" json:"with,omitempty"`
	Link  string             `bson:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
}

func (e *Exhibition) ItemID() primitive.ObjectID      { return e.ID }
func (e *Exhibition) SetItemID(id primitive.ObjectID) { e.ID = id }
func (e *Exhibition) ItemTitle() string               { return e.Title }

func (r *Residency) ItemID() primitive.ObjectID      { return r.ID }
func (r *Residency) SetItemID(id primitive.ObjectID) { r.ID = id }
func (r *Residency) ItemTitle() string               { return r.Title }

func (t *Talk) ItemID() primitive.ObjectID      { return t.ID }
func (t *Talk) SetItemID(id primitive.ObjectID) { t.ID = id }
func (t *Talk) ItemTitle() string               { return t.Title }

// ArtistInput is the payload for creating an artist.
type ArtistInput struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio" validate:"required"`
	DOB  int    `json:"dob" validate:"omitempty,gte=1000,lte=9999"`
}

func (in ArtistInput) ToArtist() *Artist {
	return &Artist{
		Name:        in.Name,
		Bio:         in.Bio,
		DOB:         in.DOB,
		Exhibitions: []Exhibition{},
		Residencies: []Residency{},
		Talks:       []Talk{},
	}
}
