package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Helix grants app access tokens 800 points per minute.
	DefaultRequestsPerMinute = 800
	DefaultBurst             = 30
)

// Limiter gates outbound calls per bucket. Wait blocks the calling
// goroutine until a permit is granted or ctx is done.
type Limiter interface {
	Wait(ctx context.Context, bucket string) error
}

type BucketLimiter struct {
	defaultLimit rate.Limit
	defaultBurst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

type Option func(*BucketLimiter)

func New(opts ...Option) *BucketLimiter {
	perMinute := float64(DefaultRequestsPerMinute)

	l := &BucketLimiter{
		defaultLimit: rate.Limit(perMinute / 60.0),
		defaultBurst: DefaultBurst,
		mu:           sync.Mutex{},
		buckets:      make(map[string]*rate.Limiter),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func WithRequestsPerMinute(perMinute int) Option {
	return func(l *BucketLimiter) {
		if perMinute > 0 {
			l.defaultLimit = rate.Limit(float64(perMinute) / 60.0)
		}
	}
}

func WithBurst(burst int) Option {
	return func(l *BucketLimiter) {
		if burst > 0 {
			l.defaultBurst = burst
		}
	}
}

func WithBucket(bucket string, perMinute, burst int) Option {
	return func(l *BucketLimiter) {
		interval := time.Minute / time.Duration(perMinute)
		l.buckets[bucket] = rate.NewLimiter(rate.Every(interval), burst)
	}
}

func (l *BucketLimiter) Wait(ctx context.Context, bucket string) error {
	if err := l.limiter(bucket).Wait(ctx); err != nil {
		return fmt.Errorf("ratelimit: wait for bucket %q: %w", bucket, err)
	}

	return nil
}

func (l *BucketLimiter) limiter(bucket string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.buckets[bucket]
	if !ok {
		limiter = rate.NewLimiter(l.defaultLimit, l.defaultBurst)
		l.buckets[bucket] = limiter
	}

	return limiter
}

type nopLimiter struct{}

func (nopLimiter) Wait(context.Context, string) error {
	return nil
}

// Nop returns a limiter that always grants immediately.
func Nop() Limiter { //nolint:ireturn
	return nopLimiter{}
}
