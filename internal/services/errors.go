package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is absent or hidden by its
	// active/published flag.
	ErrNotFound = errors.New("not found")
	// ErrValidation wraps input that fails the entity's required-field contract.
	ErrValidation = errors.New("validation failed")
)

// validate shares gin's `binding` tags so CLI callers get the same rules as HTTP ones.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// validID reports whether id can be a primary key; anything else cannot exist.
// Only the 36-character hyphenated form is accepted: uuid.Parse also takes the
// urn:uuid: prefix, which postgres refuses to cast.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// optional maps blank strings to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
