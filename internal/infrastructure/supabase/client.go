// Package supabase adapts the Supabase Auth (GoTrue) API to the identity
// provider port.
package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"

	auth "github.com/supabase-community/auth-go"
)

// Config holds the project settings. JWTSecret is optional; when set,
// access tokens are verified locally instead of by calling the API.
type Config struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
	JWTSecret      string
}

// Client is safe for concurrent use. Request timeouts are those of the
// underlying auth-go HTTP client.
type Client struct {
	auth     auth.Client
	verifier *jwtVerifier

	// admin is created on first use so that processes which never call an
	// admin endpoint do not need the service role key.
	admin func() (auth.Client, error)
}

// New builds a client for the project at cfg.URL.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, errors.New("supabase: url and anon key are required")
	}
	authURL := strings.TrimRight(cfg.URL, "/") + "/auth/v1"

	c := &Client{
		auth: auth.New("", cfg.AnonKey).WithCustomAuthURL(authURL),
	}
	if cfg.JWTSecret != "" {
		c.verifier = newJWTVerifier([]byte(cfg.JWTSecret))
	}
	serviceKey := cfg.ServiceRoleKey
	c.admin = sync.OnceValues(func() (auth.Client, error) {
		if serviceKey == "" {
			return nil, errors.New("supabase: service role key is not configured")
		}
		return auth.New("", serviceKey).WithCustomAuthURL(authURL).WithToken(serviceKey), nil
	})
	return c, nil
}

// APIError is a non-2xx answer from the auth API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase auth: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase auth: %d: %s", e.Status, e.Message)
}

// StatusCode is the HTTP status reported by the API.
func (e *APIError) StatusCode() int { return e.Status }

// PublicMessage is the provider's own description of the failure.
func (e *APIError) PublicMessage() string { return e.Message }

// errorBody covers the three error shapes GoTrue has used across versions.
type errorBody struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Code = eb.ErrorCode
		if apiErr.Code == "" {
			apiErr.Code = eb.Error
		}
		for _, m := range []string{eb.Msg, eb.Message, eb.ErrorDescription, eb.Error} {
			if m != "" {
				apiErr.Message = m
				break
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// auth-go reports non-2xx answers as "response status code <n>: <body>".
var statusError = regexp.MustCompile(`(?s)^response status code (\d{3})(?:: (.*))?$`)

// wrapError turns an auth-go failure into an *APIError when the API
// answered, and annotates transport failures otherwise.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	m := statusError.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("supabase: %s: %w", op, err)
	}
	status, _ := strconv.Atoi(m[1])
	return decodeAPIError(status, []byte(m[2]))
}
