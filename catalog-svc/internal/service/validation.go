package service

import (
	"errors"
	"reflect"
	"strings"

	"food-tracker/catalog-svc/internal/storage"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("invalid input")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("cuisines", func(fl validator.FieldLevel) bool {
		return len(SplitCuisines(fl.Field().String())) > 0
	})
}

type restaurantInput struct {
	Title         string `json:"title" validate:"required"`
	Area          string `json:"area" validate:"required"`
	GoogleMapLink string `json:"google_map_link" validate:"required"`
	Cuisines      string `json:"cuisines" validate:"cuisines"`
}

type reviewInput struct {
	ReviewerName string `json:"reviewer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
}

type ratingInput struct {
	Rating int `json:"rating" validate:"min=1,max=5"`
}

type userInput struct {
	Name string `json:"name" validate:"required"`
}

// check validates in and returns the first failing field as a
// ConstraintError, so callers see the same error class a database rejection
// would produce.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &storage.ConstraintError{Field: verrs[0].Field(), Err: ErrValidation}
	}
	return err
}

// SplitCuisines splits a stored cuisine string into trimmed, non-empty tags.
func SplitCuisines(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinCuisines produces the stored form of a tag list.
func JoinCuisines(tags []string) string {
	return strings.Join(tags, ", ")
}

// cuisineOptions are the tags offered when adding a restaurant.
var cuisineOptions = []string{
	"Indian", "Arabic", "Italian", "Chinese", "Japanese", "Mexican",
	"Continental", "South Indian", "Thai", "Korean", "Other",
}
