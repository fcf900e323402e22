package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/api/metrics"
	"github.com/medoffice/office-api/internal/api/validation"
	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/pkg/logger"
)

const (
	bodyKey    = "validated_body"
	queryKey   = "validated_query"
	rawBodyKey = "raw_body"
)

// UUIDParams checks that every named path parameter is an RFC 4122 id.
func UUIDParams(names ...string) Stage {
	return func(c echo.Context) error {
		var errs []domain.ValidationError
		for _, name := range names {
			if v := c.Param(name); !validation.IsUUID(v) {
				errs = append(errs, domain.ValidationError{Field: name, Message: "Must be a valid UUID", Value: v})
			}
		}
		return reject(c, "Invalid parameters", errs)
	}
}

// RequireBodyFields checks presence only: each field must exist in the JSON
// body and not be null or an empty string.
func RequireBodyFields(fields ...string) Stage {
	return func(c echo.Context) error {
		raw, err := rawBody(c)
		if err != nil {
			return err
		}
		var body map[string]any
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				return domain.InvalidInput("Malformed JSON body", nil)
			}
		}

		var errs []domain.ValidationError
		for _, f := range fields {
			if v, ok := body[f]; !ok || v == nil || v == "" {
				errs = append(errs, domain.ValidationError{Field: f, Message: "This field is required"})
			}
		}
		return reject(c, "Missing required fields", errs)
	}
}

// RequireQueryParams checks that each query parameter is present and
// non-empty.
func RequireQueryParams(params ...string) Stage {
	return func(c echo.Context) error {
		var errs []domain.ValidationError
		for _, p := range params {
			if c.QueryParam(p) == "" {
				errs = append(errs, domain.ValidationError{Field: p, Message: "This query parameter is required"})
			}
		}
		return reject(c, "Missing required query parameters", errs)
	}
}

// Body decodes the JSON body into a new T, applies its validate rules and
// stores it for the handler (see BodyFrom). Fields are decoded one at a time
// so a value of the wrong JSON type is reported next to the rule failures of
// the other fields, in struct field order.
func Body[T any]() Stage {
	return func(c echo.Context) error {
		raw, err := rawBody(c)
		if err != nil {
			return err
		}
		fields := map[string]json.RawMessage{}
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &fields); err != nil {
				return reject(c, "Malformed JSON body", []domain.ValidationError{{Field: "body", Message: jsonMessage(err)}})
			}
		}

		v := new(T)
		typeErrs := decodeFields(v, fields)
		ruleErrs, err := ruleErrors(c.Validate(v))
		if err != nil {
			return err
		}

		errs := mergeFieldErrors(reflect.TypeFor[T](), typeErrs, ruleErrs, func(name string) bool {
			_, ok := fields[name]
			return ok
		})
		if len(errs) > 0 {
			return rejectErr(c, domain.InvalidInput("Validation failed", errs))
		}
		c.Set(bodyKey, v)
		return nil
	}
}

// Query binds query parameters into a new T using `query` tags, applies
// its validate rules and stores it for the handler (see QueryFrom).
func Query[T any]() Stage {
	return func(c echo.Context) error {
		v := new(T)
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, v); err != nil {
			return reject(c, "Invalid parameters", []domain.ValidationError{{Field: "query", Message: bindMessage(err)}})
		}
		ruleErrs, err := ruleErrors(c.Validate(v))
		if err != nil {
			return err
		}

		errs := mergeFieldErrors(reflect.TypeFor[T](), nil, ruleErrs, c.QueryParams().Has)
		if len(errs) > 0 {
			return rejectErr(c, domain.InvalidInput("Validation failed", errs))
		}
		c.Set(queryKey, v)
		return nil
	}
}

// BodyFrom returns the body validated by Body[T].
func BodyFrom[T any](c echo.Context) *T {
	v, _ := c.Get(bodyKey).(*T)
	return v
}

// QueryFrom returns the query validated by Query[T].
func QueryFrom[T any](c echo.Context) *T {
	v, _ := c.Get(queryKey).(*T)
	return v
}

// rawBody reads the request body once and keeps it so several stages can
// inspect it.
func rawBody(c echo.Context) ([]byte, error) {
	if b, ok := c.Get(rawBodyKey).([]byte); ok {
		return b, nil
	}
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		c.Set(rawBodyKey, []byte{})
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, domain.InvalidInput("Request body could not be read", nil).WithDetails(err.Error())
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	c.Set(rawBodyKey, b)
	return b, nil
}

func reject(c echo.Context, msg string, errs []domain.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return rejectErr(c, domain.InvalidInput(msg, errs))
}

func rejectErr(c echo.Context, err error) error {
	metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
	ev := logger.Ctx(c.Request().Context()).Warn().
		Str("method", c.Request().Method).
		Str("path", c.Path())
	var de *domain.Error
	if errors.As(err, &de) {
		ev = ev.Interface("errors", de.Errors)
	}
	ev.Msg("validation failed")
	return err
}

func jsonMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return "Request body must be a JSON object"
	}
	return "Request body must be valid JSON"
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			return s
		}
	}
	return "Query parameters could not be parsed"
}
