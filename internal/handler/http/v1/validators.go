package v1

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// telPhoneRegexp accepts telephone or mobile numbers: optional +, 3-3-4..6
// digit groups with optional separators.
var telPhoneRegexp = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

// newValidator builds the request validator with the domain rules registered
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("telphone", func(fl validator.FieldLevel) bool {
		return telPhoneRegexp.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}
