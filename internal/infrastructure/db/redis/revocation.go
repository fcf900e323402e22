package redis

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

const keyPrefix = "revoked:"

// RevocationStore keeps signed-out access tokens until they would have
// expired anyway. Tokens are never stored in clear; the key is a keyed
// BLAKE2b digest of the token.
// Key format: revoked:<hex digest>
type RevocationStore struct {
	client redis.Cmdable
	secret []byte
	closer interface{ Close() error }
}

// NewRevocationStore wraps client. secret keys the digest so the stored
// keys cannot be matched against leaked tokens offline; it may be empty.
func NewRevocationStore(client redis.Cmdable, secret []byte) *RevocationStore {
	if len(secret) > blake2b.Size {
		sum := blake2b.Sum256(secret)
		secret = sum[:]
	}
	return &RevocationStore{client: client, secret: secret}
}

// Revoke marks token as signed out for ttl.
func (s *RevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	key, err := s.key(token)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether token was signed out.
func (s *RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	key, err := s.key(token)
	if err != nil {
		return false, err
	}
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(token string) (string, error) {
	h, err := blake2b.New256(s.secret)
	if err != nil {
		return "", fmt.Errorf("token digest: %w", err)
	}
	_, _ = h.Write([]byte(token))
	return keyPrefix + hex.EncodeToString(h.Sum(nil)), nil
}
