package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

var (
	ErrMaxAttemptsExceeded = errors.New("max retry attempts exceeded")
	ErrContextCanceled     = errors.New("context canceled during retry")
)

// Config contains retry configuration
type Config struct {
	// MaxRetries is the maximum number of retry attempts (0 = only the initial attempt)
	MaxRetries int
	// InitialInterval is the first backoff interval
	InitialInterval time.Duration
	// MaxInterval caps the backoff interval
	MaxInterval time.Duration
	// Multiplier grows the interval after each retry
	Multiplier float64
	// JitterFactor (0-1) randomizes the interval by ±factor
	JitterFactor float64
}

// DefaultConfig returns the default backoff: 1s, 2s, 4s, 8s, 16s, capped at 30s
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      5,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

// Operation is the function to be retried
type Operation func(ctx context.Context) error

// PermanentError wraps an error that must not be retried
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks an error as not retryable
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Result describes the outcome of a retried operation
type Result struct {
	Err           error
	Attempts      int
	TotalDuration time.Duration
}

// Callback is invoked before each wait with the attempt number, the error
// that triggered the retry, and the upcoming backoff interval.
type Callback func(attempt int, err error, next time.Duration)

// Retrier executes operations with exponential backoff
type Retrier struct {
	config *Config
}

// New creates a Retrier, filling zero config values with defaults
func New(config *Config) *Retrier {
	if config == nil {
		config = DefaultConfig()
	}
	if config.InitialInterval <= 0 {
		config.InitialInterval = 1 * time.Second
	}
	if config.MaxInterval <= 0 {
		config.MaxInterval = 30 * time.Second
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.JitterFactor < 0 {
		config.JitterFactor = 0
	}
	if config.JitterFactor > 1 {
		config.JitterFactor = 1
	}
	return &Retrier{config: config}
}

// Do executes op, retrying on failure until MaxRetries is exhausted
func (r *Retrier) Do(ctx context.Context, op Operation) *Result {
	return r.DoWithCallback(ctx, op, nil)
}

// DoWithCallback is Do with a per-retry notification hook
func (r *Retrier) DoWithCallback(ctx context.Context, op Operation, cb Callback) *Result {
	start := time.Now()
	result := &Result{}

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		result.Attempts = attempt + 1

		if ctx.Err() != nil {
			result.Err = ErrContextCanceled
			result.TotalDuration = time.Since(start)
			return result
		}

		err := op(ctx)
		if err == nil {
			result.TotalDuration = time.Since(start)
			return result
		}

		var perm *PermanentError
		if errors.As(err, &perm) {
			result.Err = perm.Err
			result.TotalDuration = time.Since(start)
			return result
		}

		if attempt == r.config.MaxRetries {
			result.Err = errors.Join(ErrMaxAttemptsExceeded, err)
			break
		}

		interval := r.interval(attempt)
		if cb != nil {
			cb(attempt+1, err, interval)
		}

		select {
		case <-ctx.Done():
			result.Err = ErrContextCanceled
			result.TotalDuration = time.Since(start)
			return result
		case <-time.After(interval):
		}
	}

	result.TotalDuration = time.Since(start)
	return result
}

// interval computes the backoff for the given zero-based attempt
func (r *Retrier) interval(attempt int) time.Duration {
	backoff := float64(r.config.InitialInterval) * math.Pow(r.config.Multiplier, float64(attempt))
	if backoff > float64(r.config.MaxInterval) {
		backoff = float64(r.config.MaxInterval)
	}

	if r.config.JitterFactor > 0 {
		jitter := backoff * r.config.JitterFactor
		backoff = backoff - jitter + rand.Float64()*2*jitter
	}

	return time.Duration(backoff)
}
