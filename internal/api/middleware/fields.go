package middleware

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/medoffice/office-api/internal/api/validation"
	"github.com/medoffice/office-api/internal/core/domain"
)

// decodeFields unmarshals each member of fields into v on its own and
// returns one error per member whose JSON type does not fit the target.
func decodeFields(v any, fields map[string]json.RawMessage) []domain.ValidationError {
	var custom map[string]string
	if m, ok := v.(validation.Messenger); ok {
		custom = m.ValidationMessages()
	}

	var errs []domain.ValidationError
	for name, raw := range fields {
		one, err := json.Marshal(map[string]json.RawMessage{name: raw})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(one, v); err != nil {
			errs = append(errs, typeError(name, raw, err, custom))
		}
	}
	return errs
}

func typeError(name string, raw json.RawMessage, err error, custom map[string]string) domain.ValidationError {
	field, msg := name, "Has an invalid value"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			field = typeErr.Field
		}
		msg = "Must be of type " + jsonType(typeErr.Type)
	}
	if m, ok := custom[field+".type"]; ok {
		msg = m
	}

	var value any
	_ = json.Unmarshal(raw, &value)
	return domain.ValidationError{Field: field, Message: msg, Value: value}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// ruleErrors unpacks the field errors of a failed validation. Any other
// failure is returned as is.
func ruleErrors(err error) ([]domain.ValidationError, error) {
	if err == nil {
		return nil, nil
	}
	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindInvalidInput {
		return de.Errors, nil
	}
	return nil, err
}

// mergeFieldErrors combines type and rule errors in the declaration order of
// t's fields. A field with a type error reports only that error, and
// values of fields the client did not send are left out.
func mergeFieldErrors(t reflect.Type, typeErrs, ruleErrs []domain.ValidationError, present func(string) bool) []domain.ValidationError {
	if len(typeErrs) == 0 && len(ruleErrs) == 0 {
		return nil
	}

	mistyped := make(map[string]bool, len(typeErrs))
	for _, e := range typeErrs {
		mistyped[topLevel(e.Field)] = true
	}

	out := append([]domain.ValidationError(nil), typeErrs...)
	for _, e := range ruleErrs {
		top := topLevel(e.Field)
		if mistyped[top] {
			continue
		}
		if !present(top) {
			e.Value = nil
		}
		out = append(out, e)
	}

	order := fieldOrder(t)
	rank := func(field string) int {
		if i, ok := order[topLevel(field)]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i].Field) < rank(out[j].Field) })
	return out
}

func topLevel(field string) string {
	name, _, _ := strings.Cut(field, ".")
	return name
}

// fieldOrder maps the reported name of each field of t to its position.
// Untagged embedded structs contribute their own fields in place.
func fieldOrder(t reflect.Type) map[string]int {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	order := map[string]int{}
	if t.Kind() != reflect.Struct {
		return order
	}

	var walk func(reflect.Type)
	walk = func(st reflect.Type) {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
				walk(f.Type)
				continue
			}
			if !f.IsExported() {
				continue
			}
			if name := validation.FieldName(f); name != "" {
				if _, seen := order[name]; !seen {
					order[name] = len(order)
				}
			}
		}
	}
	walk(t)
	return order
}
