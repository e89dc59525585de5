package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrWindowScript counts the hit and arms the window TTL in one atomic
// step. It also re-arms a key left without a TTL, so a lost EXPIRE
// cannot freeze a window open forever.
var incrWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 or redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// RedisCounter is a fixed-window counter shared across instances. The
// window starts on the first hit of a key and expires with it.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter constructs a Redis-backed counter.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr counts a hit for the key. The window TTL is set in the same
// script invocation as the increment.
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return incrWindowScript.Run(ctx, c.client, []string{key}, window.Milliseconds()).Int64()
}

var _ Counter = (*RedisCounter)(nil)
