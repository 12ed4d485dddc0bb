package auth_models

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidCredentials marks a login whose user or password did not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Administrator struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`

	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // bcrypt hash
}

type AdministratorInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"` // username or email
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken   string         `json:"accessToken"`
	Administrator *Administrator `json:"administrator"`
}

type JwtCustomClaims struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	jwt.RegisteredClaims
}
