package config

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required key with no input and no default.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: required field %s is not set", e.Field)
}

// CoercionError reports raw input that cannot be converted to the field's
// declared kind.
type CoercionError struct {
	Field string
	Value string
	Kind  Kind
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("config: field %s: cannot parse %q as %s", e.Field, e.Value, e.Kind)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ValidationError reports a value that was parsed but is not acceptable.
// Allowed is set for enumerated fields and listed in the message.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("config: field %s: %q must be one of [%s]",
			e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("config: field %s: %s", e.Field, e.Reason)
}

// DirectoryError reports a logs directory that could not be ensured.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("config: ensure directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// EnvFileError reports an env file that exists but cannot be read or parsed.
type EnvFileError struct {
	Path string
	Err  error
}

func (e *EnvFileError) Error() string {
	return fmt.Sprintf("config: env file %s: %v", e.Path, e.Err)
}

func (e *EnvFileError) Unwrap() error { return e.Err }

// errorKind names an error for metrics labels.
func errorKind(err error) string {
	switch err.(type) {
	case *MissingFieldError:
		return "missing_field"
	case *CoercionError:
		return "coercion"
	case *ValidationError:
		return "validation"
	case *DirectoryError:
		return "directory"
	case *EnvFileError:
		return "env_file"
	}
	return "other"
}
