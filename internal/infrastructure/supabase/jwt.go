package supabase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

// audience carried by tokens issued to signed-in users.
const audience = "authenticated"

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func newJWTVerifier(secret []byte) *jwtVerifier {
	return &jwtVerifier{
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}
}

func (v *jwtVerifier) verify(token string) (*domain.Identity, error) {
	var c claims
	if _, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("supabase: %w", err)
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("supabase: token subject %q: %w", c.Subject, err)
	}
	return &domain.Identity{ID: id, Email: c.Email}, nil
}
