package portfolio_models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Installation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`

	InstallDesc   string               `bson:"install_desc" json:"installDesc"`
	Year          int                  `bson:"year" json:"year"`
	Location      string               `bson:"location" json:"location"`
	InstallMedias []primitive.ObjectID `bson:"install_medias" json:"installMedias"`
}

func (i *Installation) Normalize() {
	if i.InstallMedias == nil {
		i.InstallMedias = []primitive.ObjectID{}
	}
}

type InstallationMedia struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`

	MediaType MediaType          `bson:"media_type" json:"mediaType"`
	URL       string             `bson:"url" json:"url"`
	MediaOf   primitive.ObjectID `bson:"media_of" json:"mediaOf"`
}

// InstallationView is an installation with its media expanded in
// install_medias order.
type InstallationView struct {
	Installation `bson:",inline"`
	Media        []*InstallationMedia `bson:"media,omitempty" json:"installMedias"`
}

type InstallationInput struct {
	InstallDesc string `json:"installDesc" validate:"required"`
	Year        int    `json:"year" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

func (in InstallationInput) ToInstallation() *Installation {
	return &Installation{
		InstallDesc:   in.InstallDesc,
		Year:          in.Year,
		Location:      in.Location,
		InstallMedias: []primitive.ObjectID{},
	}
}

type InstallationPatch struct {
	InstallDesc *string `json:"installDesc" validate:"omitempty,min=1"`
	Year        *int    `json:"year" validate:"omitempty,gt=0"`
	Location    *string `json:"location" validate:"omitempty,min=1"`
}

func (p InstallationPatch) SetFields() bson.M {
	set := bson.M{}
	if p.InstallDesc != nil {
		set["install_desc"] = *p.InstallDesc
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	return set
}

// MediaInput is one media item of an attach batch. MediaType is inferred
// from the URL extension when empty.
type MediaInput struct {
	URL       string `json:"url" validate:"required,url"`
	MediaType string `json:"mediaType" validate:"omitempty,oneof=image video"`
}
