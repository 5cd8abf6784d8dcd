package contract

// IValidator defines field-level validation used by the usecases on create.
type IValidator interface {
	ValidateURL(raw string) error
	ValidateReleaseYear(year int) error
}
