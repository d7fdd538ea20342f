package user

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Fields is the mutable part of a User. It is the request body for both
// create and update, and doubles as the client's draft.
type Fields struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
	Phone string `json:"phone" validate:"notblank"`
}

// Fields returns the mutable part of u.
func (u User) Fields() Fields {
	return Fields{Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f Fields) Trimmed() Fields {
	return Fields{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
		Phone: strings.TrimSpace(f.Phone),
	}
}

// Validate reports an error when any field is empty or whitespace-only.
func (f Fields) Validate() error {
	return Validator().Struct(f)
}

// Complete is Validate as a predicate.
func (f Fields) Complete() bool {
	return f.Validate() == nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the notblank rule registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}
