package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations. Typed errors below match them via errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation error")
	ErrParse          = errors.New("parse error")
	ErrNotImplemented = errors.New("not implemented")
)

// NotFoundError reports a lookup miss. Custom marks a miss in the custom overlay, which
// has no category. A built-in miss with an empty Name means the category itself is unknown.
type NotFoundError struct {
	Category string
	Name     string
	Custom   bool
}

func (e NotFoundError) Error() string {
	switch {
	case e.Custom:
		return fmt.Sprintf("custom constant %q not found", e.Name)
	case e.Name == "":
		return fmt.Sprintf("category %q not found", e.Category)
	default:
		return fmt.Sprintf("constant %q not found in category %q", e.Name, e.Category)
	}
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError names the custom constant field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e ValidationError) Is(target error) bool { return target == ErrValidation }

// ParseError describes why an imported custom constants payload was rejected.
type ParseError struct {
	Reason string
	Err    error
}

func (e ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid custom constants: %s: %v", e.Reason, e.Err)
	}
	return "invalid custom constants: " + e.Reason
}

func (e ParseError) Is(target error) bool { return target == ErrParse }

func (e ParseError) Unwrap() error { return e.Err }
