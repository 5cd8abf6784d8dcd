package validator

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/cinelog/media-catalog/internal/usecase/contract"
)

// earliestReleaseYear predates the first commercially screened film.
const earliestReleaseYear = 1888

// AppValidator implements the usecase contract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the
// contract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateURL checks that the value is a well-formed URL.
func (av *AppValidator) ValidateURL(raw string) error {
	return av.validate.Var(raw, "required,url")
}

// ValidateReleaseYear checks the release year is within a plausible range.
// Titles announced a few years ahead of release are allowed.
func (av *AppValidator) ValidateReleaseYear(year int) error {
	if year < earliestReleaseYear || year > time.Now().Year()+5 {
		return fmt.Errorf("release year must be between %d and %d", earliestReleaseYear, time.Now().Year()+5)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin
// binding validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("releaseyear", releaseYearFL)
		v.RegisterValidation("lifecyclestatus", lifecycleStatusFL)
	}
}

func releaseYearFL(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	return year >= earliestReleaseYear && year <= time.Now().Year()+5
}

func lifecycleStatusFL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || s == "Active" || s == "Inactive"
}
