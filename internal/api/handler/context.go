package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/api/middleware"
	"github.com/medoffice/office-api/internal/core/domain"
)

// caller returns the principal stored by the Authenticate stage. Its
// absence means the route was mounted without a guard.
func caller(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, domain.Unauthenticated("Not authenticated")
	}
	return p, nil
}

// pathID parses a path parameter as a uuid.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.InvalidInput("Invalid parameters", []domain.ValidationError{{
			Field:   name,
			Message: "Must be a valid UUID",
			Value:   raw,
		}})
	}
	return id, nil
}

// body returns the request body validated by the Body[T] stage, running
// the stage itself when the route did not.
func body[T any](c echo.Context) (*T, error) {
	if v := middleware.BodyFrom[T](c); v != nil {
		return v, nil
	}
	if err := middleware.Body[T]()(c); err != nil {
		return nil, err
	}
	return middleware.BodyFrom[T](c), nil
}

// query is the Query[T] counterpart of body.
func query[T any](c echo.Context) (*T, error) {
	if v := middleware.QueryFrom[T](c); v != nil {
		return v, nil
	}
	if err := middleware.Query[T]()(c); err != nil {
		return nil, err
	}
	return middleware.QueryFrom[T](c), nil
}

// optionalID parses an already validated optional uuid field.
func optionalID(field string, s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, domain.InvalidInput("Validation failed", []domain.ValidationError{{
			Field:   field,
			Message: "Must be a valid UUID",
			Value:   *s,
		}})
	}
	return &id, nil
}

type messageResponse struct {
	Message string `json:"message"`
}
