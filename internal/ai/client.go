package ai

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"ankala/pkg/utils"
)

const (
	defaultMaxAttempts    = 4
	defaultInitialBackoff = 800 * time.Millisecond
	defaultMaxBackoff     = 6 * time.Second
	defaultMultiplier     = 1.8
	defaultAttemptTimeout = 25 * time.Second
)

// BackendConfig pairs a backend with its attempt budget.
type BackendConfig struct {
	Backend     Backend
	MaxAttempts int
}

// Client walks an ordered backend list, cheap and fast first. Within a backend
// it retries transient failures with jittered exponential backoff; when the
// attempt budget is spent it falls through to the next backend. It never
// surfaces partial text as a success.
type Client struct {
	backends       []BackendConfig
	opts           Options
	initialBackoff time.Duration
	maxBackoff     time.Duration
	multiplier     float64
	attemptTimeout time.Duration
	logger         *zap.Logger

	// overridable in tests
	sleep   func(ctx context.Context, d time.Duration) error
	jitterF func() float64
}

func NewClient(backends []BackendConfig, opts Options, logger *zap.Logger) *Client {
	for i := range backends {
		if backends[i].MaxAttempts <= 0 {
			backends[i].MaxAttempts = defaultMaxAttempts
		}
	}
	return &Client{
		backends:       backends,
		opts:           opts,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
		multiplier:     defaultMultiplier,
		attemptTimeout: defaultAttemptTimeout,
		logger:         logger,
		sleep:          sleepCtx,
		jitterF:        rand.Float64,
	}
}

// Generate sends the prompt through the backend chain and returns the raw
// model text. Non-retryable failures propagate immediately; an exhausted
// chain returns utils.ErrGeneration.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if len(c.backends) == 0 {
		return "", fmt.Errorf("%w: no backends configured", utils.ErrGeneration)
	}

	for _, bc := range c.backends {
		out, err := c.tryBackend(ctx, bc, prompt)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, errNonRetryable) {
			return "", fmt.Errorf("%w: %s: %v", utils.ErrGeneration, bc.Backend.Name(), err)
		}
		c.logger.Warn("backend exhausted, advancing to fallback",
			zap.String("backend", bc.Backend.Name()),
			zap.Int("attempts", bc.MaxAttempts),
			zap.Error(err))
	}

	return "", utils.ErrGeneration
}

var errNonRetryable = errors.New("non-retryable upstream failure")

func (c *Client) tryBackend(ctx context.Context, bc BackendConfig, prompt string) (string, error) {
	backoff := c.initialBackoff

	var lastErr error
	for attempt := 1; attempt <= bc.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
		out, err := bc.Backend.Send(attemptCtx, prompt, c.opts)
		cancel()

		if err == nil {
			return out, nil
		}
		lastErr = err

		if !retryable(err) {
			return "", fmt.Errorf("%w: %w", errNonRetryable, err)
		}
		if attempt == bc.MaxAttempts {
			break
		}

		// Jittered backoff spreads concurrent retries out so a rate-limited
		// upstream is not hammered in lockstep.
		wait := time.Duration(float64(backoff) * (0.75 + c.jitterF()*0.5))
		c.logger.Warn("attempt failed, retrying",
			zap.String("backend", bc.Backend.Name()),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", bc.MaxAttempts),
			zap.Duration("wait", wait),
			zap.Error(err))
		if err := c.sleep(ctx, wait); err != nil {
			return "", fmt.Errorf("%w: %w", errNonRetryable, err)
		}

		backoff = time.Duration(float64(backoff) * c.multiplier)
		if backoff > c.maxBackoff {
			backoff = c.maxBackoff
		}
	}

	return "", lastErr
}

var fiveXXRe = regexp.MustCompile(`\b5\d\d\b`)

// retryable classifies a failure the way the upstream contract warrants a
// retry: rate limiting, server-side errors, or a client-side timeout/abort.
// Everything else (malformed request, auth failure) propagates immediately.
func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == 429 || gErr.Code >= 500
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "rate limit"), strings.Contains(msg, "quota"):
		return true
	case fiveXXRe.MatchString(msg), strings.Contains(msg, "server error"), strings.Contains(msg, "unavailable"):
		return true
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"), strings.Contains(msg, "aborted"):
		return true
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
