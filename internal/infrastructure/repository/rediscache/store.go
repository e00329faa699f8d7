// Package rediscache shares the read-only player and club pool between API
// replicas. Redis is an accelerator only: when it is unreachable, or the
// breaker is open, reads go straight to the wrapped repository.
package rediscache

import (
	"context"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/sony/gobreaker"
)

// BreakerSettings mirrors the knobs of a classic consecutive-failure breaker.
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	HalfOpenMaxReq   uint32
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{FailureThreshold: 5, OpenTimeout: 15 * time.Second, HalfOpenMaxReq: 1}
}

// Store is a key/value view of one Redis namespace guarded by a breaker.
type Store struct {
	rdb     redis.Cmdable
	prefix  string
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

func NewStore(rdb redis.Cmdable, prefix string, ttl time.Duration, bs BreakerSettings, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	if bs.FailureThreshold == 0 {
		bs = DefaultBreakerSettings()
	}

	threshold := bs.FailureThreshold
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-pool-cache",
		MaxRequests: bs.HalfOpenMaxReq,
		Timeout:     bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isCallerCancel(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("redis cache breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Store{rdb: rdb, prefix: prefix, ttl: ttl, breaker: breaker, logger: logger}
}

func (s *Store) key(parts ...string) string {
	out := s.prefix
	for _, part := range parts {
		if out != "" {
			out += ":"
		}
		out += part
	}
	return out
}

// get reports ok=false for a miss and for any Redis failure.
func (s *Store) get(ctx context.Context, key string) ([]byte, bool) {
	res, err := s.breaker.Execute(func() (any, error) {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return raw, err
	})
	if err != nil {
		s.logFailure(ctx, "read", key, err)
		return nil, false
	}

	raw, _ := res.([]byte)
	return raw, raw != nil
}

func (s *Store) set(ctx context.Context, key string, value any) {
	data, err := sonic.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "encode redis cache entry", "key", key, "error", err)
		return
	}

	_, err = s.breaker.Execute(func() (any, error) {
		err := s.rdb.Set(ctx, key, data, s.ttl).Err()
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	})
	if err != nil {
		s.logFailure(ctx, "write", key, err)
	}
}

func (s *Store) logFailure(ctx context.Context, op, key string, err error) {
	if isCallerCancel(err) || errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.logger.DebugContext(ctx, "redis cache bypassed", "op", op, "key", key, "error", err)
		return
	}
	s.logger.WarnContext(ctx, "redis cache "+op+" failed", "key", key, "error", err)
}

// readThrough serves key from Redis, otherwise loads it and stores the result.
// Loader errors are returned and never cached.
func readThrough[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	if raw, ok := s.get(ctx, key); ok {
		var cached T
		if err := sonic.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.logger.WarnContext(ctx, "discard undecodable redis cache entry", "key", key)
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.set(ctx, key, value)
	return value, nil
}

// isCallerCancel marks errors caused by the request going away rather than by
// Redis. They never count against the breaker.
func isCallerCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
