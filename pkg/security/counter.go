package security

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Atomic increment that sets the TTL on first write.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns {count, ttl_remaining}.
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type counterEntry struct {
	count   int
	resetAt time.Time
}

// Counter is a fixed-window counter kept in Redis, or in process memory when
// no Redis client is configured.
type Counter struct {
	rdb *goredis.Client
	now func() time.Time

	mu  sync.Mutex
	mem map[string]*counterEntry
}

// NewCounter returns a Counter. A nil client selects the in-memory store.
func NewCounter(rdb *goredis.Client) *Counter {
	return &Counter{
		rdb: rdb,
		now: time.Now,
		mem: make(map[string]*counterEntry),
	}
}

// Distributed reports whether counts are shared through Redis.
func (c *Counter) Distributed() bool {
	return c.rdb != nil
}

// Incr bumps key and returns the count within the current window and the
// time the window resets.
func (c *Counter) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	if c.rdb == nil {
		count, resetAt := c.incrMemory(key, window)
		return count, resetAt, nil
	}

	seconds := int(window.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	result, err := c.rdb.Eval(ctx, incrWithTTLScript, []string{key}, seconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("counter incr %s: %w", key, err)
	}
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("counter incr %s: unexpected result %v", key, result)
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), c.now().Add(time.Duration(ttl) * time.Second), nil
}

// Get returns the count in the current window without changing it.
func (c *Counter) Get(ctx context.Context, key string) (int, error) {
	if c.rdb == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		e, ok := c.mem[key]
		if !ok || c.now().After(e.resetAt) {
			return 0, nil
		}
		return e.count, nil
	}

	n, err := c.rdb.Get(ctx, key).Int()
	if err == goredis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("counter get %s: %w", key, err)
	}
	return n, nil
}

// Reset drops key.
func (c *Counter) Reset(ctx context.Context, key string) error {
	if c.rdb == nil {
		c.mu.Lock()
		delete(c.mem, key)
		c.mu.Unlock()
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

func (c *Counter) incrMemory(key string, window time.Duration) (int, time.Time) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.mem[key]
	if !ok || now.After(e.resetAt) {
		e = &counterEntry{resetAt: now.Add(window)}
		c.mem[key] = e
	}
	e.count++

	// Sweep expired windows occasionally so the map stays bounded.
	if len(c.mem) > 10000 {
		for k, v := range c.mem {
			if now.After(v.resetAt) {
				delete(c.mem, k)
			}
		}
	}
	return e.count, e.resetAt
}
