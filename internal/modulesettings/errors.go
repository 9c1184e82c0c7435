package modulesettings

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrDefinitionInvalid is returned when a definition lacks a slug or defaults.
	ErrDefinitionInvalid = errors.New("module settings definition needs a slug and defaults")
	// ErrNotStruct is returned when the settings type is not a struct.
	ErrNotStruct = errors.New("module settings type must be a struct")
)

// ValidationError carries field level messages keyed by input path, e.g.
// "store_id" or "settings.homepage.products_per_row". Nothing is persisted
// when Save returns it.
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}

	return nil, false
}
