package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate performs structural validation on the loaded configuration
// and returns an error describing the first failed rule, or nil if the
// configuration is usable.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fe := validationErrors[0]
			return fmt.Errorf("field %s failed validation rule %q", fe.Namespace(), fe.Tag())
		}
		return err
	}
	return nil
}
