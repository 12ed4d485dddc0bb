package portfolio_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ArtworkImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`

	URL     string             `bson:"url" json:"url"`
	AltText string             `bson:"alt_text" json:"altText"`
	ImageOf primitive.ObjectID `bson:"image_of" json:"imageOf"`
}

// ImageInput is one image of an attach batch. AltText falls back to the URL
// when empty.
type ImageInput struct {
	URL     string `json:"url" validate:"required,url"`
	AltText string `json:"altText"`
}
