// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `Resolve` calls `validateSettings` once every field has its base value.
// Two custom rules are registered: `loglevel` and `riskprofile`, both
// backed by the enum members declared in the schema so the legal sets live
// in one place.  Each failure is translated into a *ValidationError keyed
// by the koanf name, never the Go field name.
//
// Notes
// -----
//   • Normalisation (upper/lower casing) already happened during coercion;
//     the rules here only check membership.
//   • Oxford commas, two spaces after periods.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

// enumRules maps a validation tag to the schema key whose members it checks.
var enumRules = map[string]string{
	"loglevel":    "log_level",
	"riskprofile": "default_risk_profile",
}

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report koanf names so errors match the env keys operators typed.
	val.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, key := range enumRules {
		f, _ := lookupField(key)
		allowed := f.Allowed
		if err := val.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(allowed, fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("config: register %s rule: %v", tag, err))
		}
	}
	return val
}

//
// public API
//

// validateSettings returns one *ValidationError per failing field, joined,
// or nil on success.
func validateSettings(s *Settings) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		ve := &ValidationError{
			Field: fe.Field(),
			Value: fmt.Sprint(fe.Value()),
		}
		switch fe.Tag() {
		case "required":
			ve.Reason = "must not be empty"
		default:
			if key, ok := enumRules[fe.Tag()]; ok {
				f, _ := lookupField(key)
				ve.Allowed = f.Allowed
			} else {
				ve.Reason = fmt.Sprintf("failed %q rule", fe.Tag())
			}
		}
		out = append(out, ve)
	}
	return errors.Join(out...)
}
