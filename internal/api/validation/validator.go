package validation

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("httpurl", validateHTTPURL)
	_ = v.RegisterValidation("lang", validateLang)
	_ = v.RegisterValidation("variant", validateVariant)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
}

// validateHTTPURL accepts absolute http and https URLs with a host
func validateHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validateLang accepts the languages the platform speaks
func validateLang(fl validator.FieldLevel) bool {
	s := strings.ToLower(fl.Field().String())
	return s == string(i18n.ZH) || s == string(i18n.EN)
}

// validateVariant accepts known contract variants
func validateVariant(fl validator.FieldLevel) bool {
	_, err := expiry.Lookup(fl.Field().String())
	return err == nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var out []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			out = append(out, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return out
}

// Summary joins validation errors into one line, e.g.
// "base_url failed httpurl; lang failed lang".
func Summary(err error) string {
	details := FormatValidationError(err)
	if len(details) == 0 {
		return err.Error()
	}
	parts := make([]string, len(details))
	for i, d := range details {
		parts[i] = d.Field + " failed " + d.Tag
	}
	return strings.Join(parts, "; ")
}
