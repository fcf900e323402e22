package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
)

type httpStatuser interface{ HTTPStatus() int }

type statusCoder interface{ StatusCode() int }

type coder interface{ Code() string }

// ResolveStatus picks the response status for err: a taxonomy kind first,
// then an explicit HTTP status, then a status reported by an upstream API,
// then a router error, then a numeric error code. Anything else is 500.
func ResolveStatus(err error) int {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.HTTPStatus()
	}
	var hs httpStatuser
	if errors.As(err, &hs) {
		if s := hs.HTTPStatus(); validStatus(s) {
			return s
		}
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		if s := sc.StatusCode(); validStatus(s) {
			return s
		}
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && validStatus(he.Code) {
		return he.Code
	}
	var c coder
	if errors.As(err, &c) {
		if s, convErr := strconv.Atoi(c.Code()); convErr == nil && validStatus(s) {
			return s
		}
	}
	return http.StatusInternalServerError
}

func validStatus(s int) bool { return s >= 400 && s <= 599 }
