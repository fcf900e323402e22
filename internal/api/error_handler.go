package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/internal/api/metrics"
	"github.com/medoffice/office-api/internal/api/middleware"
	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/pkg/logger"
)

const msgInternal = "Internal Server Error"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
	Stack   string                   `json:"stack,omitempty"`
	Details any                      `json:"details,omitempty"`
}

// publicMessager is implemented by upstream API errors whose message is
// meant for the caller.
type publicMessager interface {
	PublicMessage() string
}

// NewHTTPErrorHandler returns the single place that turns failures into
// responses. dev adds the stack and details to the envelope. It never
// panics and never writes twice.
func NewHTTPErrorHandler(log zerolog.Logger, dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}
		if errors.Is(err, echo.ErrNotFound) {
			err = NotFoundHandler(c)
		}

		status := middleware.ResolveStatus(err)
		body := errorBody{Message: resolveMessage(err, status)}

		var de *domain.Error
		if errors.As(err, &de) {
			body.Errors = de.Errors
			metrics.ErrorsTotal.WithLabelValues(de.Kind.String()).Inc()
		} else {
			metrics.ErrorsTotal.WithLabelValues("http").Inc()
		}

		if status >= http.StatusInternalServerError {
			reqLog := logger.Ctx(c.Request().Context())
			if reqLog.GetLevel() == zerolog.Disabled {
				reqLog = &log
			}
			reqLog.Error().
				Err(err).
				Int("status", status).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
			if !dev {
				body.Message = msgInternal
			}
		}

		if dev {
			body.Stack = stackOf(err)
			if de != nil {
				body.Details = de.Details
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Error: body})
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("writing error response failed")
		}
	}
}

func resolveMessage(err error, status int) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	var pm publicMessager
	if errors.As(err, &pm) && pm.PublicMessage() != "" {
		return pm.PublicMessage()
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok && s != "" {
			return s
		}
		if text := http.StatusText(status); text != "" {
			return text
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgInternal
}

func stackOf(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && len(de.StackTrace()) > 0 {
		return fmt.Sprintf("%s%+v", de.Error(), de.StackTrace())
	}
	return err.Error()
}

// NotFoundHandler answers every unmatched route.
func NotFoundHandler(c echo.Context) error {
	return domain.NotFound(fmt.Sprintf("Cannot %s %s", c.Request().Method, c.Request().URL.RequestURI()))
}
