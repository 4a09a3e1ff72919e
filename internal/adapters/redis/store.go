// Package redis implements ports.FailedSpecsSource on top of Redis, for runners
// that publish their failed-specs record to a shared Redis instead of the local disk.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/detox-cli/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is where the failed-specs record is stored unless WithKey is used.
const DefaultKey = "detox:last-failed"

// Store reads and writes the failed-specs record as a newline-delimited string value.
type Store struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

type Option func(*Store)

// WithKey sets the key holding the record.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithTTL sets the expiration applied when publishing a record.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// ReadFailedSpecs retrieves the record.
func (s *Store) ReadFailedSpecs(ctx context.Context) ([]string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrNoFailedSpecs
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return domain.ParseFailedSpecs(val), nil
}

// PublishFailedSpecs stores specs as the current record.
func (s *Store) PublishFailedSpecs(ctx context.Context, specs []string) error {
	if err := s.client.Set(ctx, s.key, domain.FormatFailedSpecs(specs), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Clear removes the record.
func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
