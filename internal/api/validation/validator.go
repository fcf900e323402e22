// Package validation wraps go-playground/validator with the custom rules and
// the structured error list used across the API.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/medoffice/office-api/internal/core/domain"
)

// uuidPattern accepts RFC 4122 ids, versions 1 to 5.
var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// postalCodePattern is deliberately loose; it covers US ZIP and ZIP+4 as well
// as most alphanumeric foreign formats.
var postalCodePattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z\- ]{1,9}$`)

// Messenger is implemented by request types that want their own messages.
// Keys are "<json field>.<tag>" or "<json field>", tried in that order.
type Messenger interface {
	ValidationMessages() map[string]string
}

// Validator satisfies echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom tags registered:
//
//	uuid_rfc   RFC 4122 id, versions 1 to 5
//	isodate    ISO-8601 calendar date or RFC 3339 timestamp
//	postcode   postal code
//	notblank   non-empty after trimming
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(FieldName)
	mustRegister(v, "uuid_rfc", func(fl validator.FieldLevel) bool { return IsUUID(fl.Field().String()) })
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool { return IsISODate(fl.Field().String()) })
	mustRegister(v, "postcode", func(fl validator.FieldLevel) bool { return postalCodePattern.MatchString(fl.Field().String()) })
	mustRegister(v, "notblank", validators.NotBlank)
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Validate checks i and returns a *domain.Error of kind InvalidInput listing
// every violated rule in field declaration order.
func (v *Validator) Validate(i any) error {
	err := v.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.Internal("Validation could not run", err)
	}

	var custom map[string]string
	if m, ok := i.(Messenger); ok {
		custom = m.ValidationMessages()
	}

	out := make([]domain.ValidationError, 0, len(ve))
	for _, fe := range ve {
		field := fieldPath(fe)
		out = append(out, domain.ValidationError{
			Field:   field,
			Message: message(fe, field, custom),
			Value:   rejectedValue(fe.Value()),
		})
	}
	return domain.InvalidInput("Validation failed", out)
}

// IsUUID reports whether s is an RFC 4122 id of version 1 to 5.
func IsUUID(s string) bool { return uuidPattern.MatchString(s) }

// IsISODate accepts YYYY-MM-DD and RFC 3339 timestamps.
func IsISODate(s string) bool {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// FieldName is the name a struct field is reported under: its json, query or
// param tag, else the Go name. It is empty for fields tagged "-".
func FieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError, field string, custom map[string]string) string {
	if m, ok := custom[field+"."+fe.Tag()]; ok {
		return m
	}
	if m, ok := custom[field]; ok {
		return m
	}

	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "Must be a valid email"
	case "uuid_rfc":
		return "Must be a valid UUID"
	case "isodate":
		return "Must be a valid ISO-8601 date"
	case "postcode":
		return "Must be a valid postal code"
	case "datetime":
		return fmt.Sprintf("Must be a time in %s format", timeLayoutName(fe.Param()))
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gtefield", "gtfield":
		return fmt.Sprintf("Must not be before %s", fe.Param())
	default:
		return fmt.Sprintf("Failed the %s rule", fe.Tag())
	}
}

func timeLayoutName(layout string) string {
	switch layout {
	case "15:04":
		return "HH:MM"
	case "15:04:05":
		return "HH:MM:SS"
	}
	return layout
}

// rejectedValue echoes the value as given, zero values included. Only nil
// pointers, maps and slices come back as nil, which leaves them out of the
// response.
func rejectedValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if (rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
		return nil
	}
	return rv.Interface()
}
