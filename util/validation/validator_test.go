package validation_test

import (
	"testing"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/util/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Year     int    `json:"year" validate:"omitempty,gte=1000"`
	Link     string `json:"link" validate:"omitempty,url"`
	Kind     string `json:"kind" validate:"omitempty,oneof=image video"`
	Password string `json:"password" validate:"omitempty,strongpassword"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        any
		wantMessage string
	}{
		{
			name: "valid",
			data: &sample{Name: "Ada", Year: 1984, Link: "https://example.com", Kind: "image", Password: "Str0ng!pass"},
		},
		{
			name:        "missing required uses json name",
			data:        &sample{},
			wantMessage: "Please review submitted information. name is required.",
		},
		{
			name:        "range",
			data:        &sample{Name: "Ada", Year: 84},
			wantMessage: "Please review submitted information. year must be greater than or equal to 1000.",
		},
		{
			name:        "url",
			data:        &sample{Name: "Ada", Link: "not a link"},
			wantMessage: "Please review submitted information. link must be a valid URL.",
		},
		{
			name:        "oneof",
			data:        &sample{Name: "Ada", Kind: "audio"},
			wantMessage: "Please review submitted information. kind must be one of image video.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.data)
			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, tt.wantMessage, domain.MessageOf(err, ""))
		})
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	err := validation.Struct(42)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindUnexpected, domain.KindOf(err))
}

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!pass", true},
		{"An0ther#One", true},
		{"short1!A", true},
		{"Sh0rt!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols123", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := validation.Var(tt.password, "strongpassword")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, domain.IsValidation(err))
			}
		})
	}
}
