// Package validator adapts go-playground/validator to echo and reports failures as field errors.
package validator

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	domainerrors "zembil/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var phonePattern = regexp.MustCompile(`^\+[0-9]{6,14}[0-9]$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields by their json tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation("phone", validatePhone)
	_ = validate.RegisterValidation("imageurl", validateImageURL)

	return &Validator{validate: validate}
}

// Validate checks the struct and returns a *domainerrors.FieldError keyed by json field name.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := fieldErr.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = message(fieldErr)
	}

	return domainerrors.NewFieldError(fields)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// validateImageURL accepts absolute http(s) URLs and rooted paths.
func validateImageURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.HasPrefix(raw, "/") {
		return !strings.Contains(raw, "..")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func message(fieldErr validator.FieldError) string {
	isString := fieldErr.Kind() == reflect.String

	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "phone":
		return "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
	case "imageurl":
		return "Enter a valid image URL."
	case "oneof":
		return fmt.Sprintf("Value must be one of: %s.", fieldErr.Param())
	case "min":
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fieldErr.Param())
		}

		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "max":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldErr.Param())
		}

		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "lt":
		return fmt.Sprintf("Ensure this value is less than %s.", fieldErr.Param())
	default:
		return "Invalid value."
	}
}
