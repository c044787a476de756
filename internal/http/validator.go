package http

import (
	"github.com/go-playground/validator/v10"

	"bookclub/internal/validation"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !validation.IsBlank(fl.Field().String())
	})
	_ = validate.RegisterValidation("isbn13", func(fl validator.FieldLevel) bool {
		return validation.IsISBN13(fl.Field().String())
	})
	_ = validate.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return validation.IsGenre(fl.Field().String())
	})
}

type createBookRequest struct {
	Title *string `json:"title" validate:"required,notblank"`
	ISBN  *string `json:"ISBN" validate:"required,notblank,isbn13"`
	Genre *string `json:"genre" validate:"required,genre"`
}

type updateBookRequest struct {
	ID            *string   `json:"id" validate:"required,notblank"`
	Title         *string   `json:"title" validate:"required,notblank"`
	ISBN          *string   `json:"ISBN" validate:"required,notblank,isbn13"`
	Genre         *string   `json:"genre" validate:"required,notblank,genre"`
	Authors       *string   `json:"authors" validate:"required,notblank"`
	Publisher     *string   `json:"publisher" validate:"required,notblank"`
	PublishedDate *string   `json:"publishedDate" validate:"required,notblank"`
	Language      *[]string `json:"language" validate:"required,min=1"`
	Summary       *string   `json:"summary" validate:"required,notblank"`
}

// payloadError maps validator failures onto the fixed response messages.
// Checks are reported in contract order: missing fields first, then blank
// fields, then ISBN shape, then genre.
func payloadError(v any) (string, bool) {
	err := validate.Struct(v)
	if err == nil {
		return "", false
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return msgBadJSON, true
	}

	tags := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		tags[fe.Tag()] = true
	}
	switch {
	case tags["required"]:
		return msgMissingFields, true
	case tags["notblank"] || tags["min"]:
		return msgEmptyFields, true
	case tags["isbn13"]:
		return msgBadISBN, true
	default:
		return msgBadGenre, true
	}
}
