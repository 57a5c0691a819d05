// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers "pubkey", which accepts a base58-encoded
// 32-byte ledger public key.
package validator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when validation fails.
var ErrValidation = errors.New("validation error")

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Recipient': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init initializes the singleton validator. It is safe to call Init multiple
// times; only the first call takes effect. Validate calls it on demand.
func Init() {
	initValidatorOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := v.RegisterValidation("pubkey", isPublicKey); err != nil {
			panic(err)
		}
		validator = v
	})
}

// isPublicKey reports whether the field holds a valid base58 public key.
// Empty strings pass so that the tag composes with "omitempty" and "required".
func isPublicKey(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}

	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}

// formatError transforms a raw validator error into a multi-error chain rooted at
// ErrValidation, with one formatted message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidation and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type Input struct {
//	    Recipient string `validate:"required,pubkey"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
