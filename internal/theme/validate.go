package theme

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fontSizeRegex = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|pt|%)$`)

// NewValidator returns a validator that knows the theme's custom tags and
// reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("fontsize", func(fl validator.FieldLevel) bool {
		return fontSizeRegex.MatchString(fl.Field().String())
	})

	return v
}
