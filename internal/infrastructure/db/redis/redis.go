// Package redis holds signed-out access tokens in a Redis instance shared by
// every API replica, so a logout on one node is honoured by all of them.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds the startup ping and every command sent afterwards. A
// revocation lookup sits on the authentication path of each request.
const opTimeout = 2 * time.Second

// Config locates the revocation instance. Secret keys the token digests and
// may be empty.
type Config struct {
	Addr     string
	Password string
	DB       int
	Secret   []byte
}

// Open connects to the instance in cfg and returns a RevocationStore that
// owns the connection. It fails when the instance does not answer a PING.
func Open(ctx context.Context, cfg Config) (*RevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("revocation store %s: %w", cfg.Addr, err)
	}

	s := NewRevocationStore(client, cfg.Secret)
	s.closer = client
	return s, nil
}

// Ping reports whether the instance answers. Used as a health check.
func (s *RevocationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the connection opened by Open. Stores built with
// NewRevocationStore leave their client to the caller.
func (s *RevocationStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
