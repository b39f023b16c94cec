package port

import (
	"context"
	"time"
)

// CachePort stores values of T under string keys with a time to live. Get returns
// (nil, nil) for a missing or expired key. SetNX reports whether the key was free
// and is what idempotency reservations rely on.
//
//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type CachePort[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value *T, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}
