package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/smartretail/internal/adapters/http/middleware"
)

// Fixed window counter shared by every instance behind the same Redis. The window
// opens on the first hit and is set in milliseconds so sub-second windows work.
var fixedWindow = goredis.NewScript(`
local hits = redis.call('INCR', KEYS[1])
if hits == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return hits
`)

type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) middleware.RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return false, nil
	}
	if window < time.Millisecond {
		window = time.Millisecond
	}

	hits, err := fixedWindow.Run(ctx, r.client.rdb, []string{namespaced("ratelimit", key)}, window.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return hits <= limit, nil
}
