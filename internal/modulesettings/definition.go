package modulesettings

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// DefaultEnabled is the enabled flag of a store without an override record.
const DefaultEnabled = true

// Definition describes the settings of one module.
type Definition[T any] struct {
	// Slug identifies the module in installed_modules.
	Slug string
	// Manifest is echoed to administrators alongside the settings.
	Manifest any
	// Defaults returns a fresh copy of the compiled-in settings.
	Defaults func() T
	// Validator checks the merged settings before they are saved. When nil,
	// validator.New() is used.
	Validator *validator.Validate
}

func (d Definition[T]) validate() error {
	if d.Slug == "" || d.Defaults == nil {
		return ErrDefinitionInvalid
	}

	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	return nil
}

func (d Definition[T]) settingsType() reflect.Type {
	return reflect.TypeFor[T]()
}
