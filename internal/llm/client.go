package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider is reachable.
	Available(ctx context.Context) bool
}

// backend performs one provider round trip.
type backend interface {
	generate(ctx context.Context, hc *http.Client, cfg LLMConfig, req GenerateRequest, task TaskConfig) (*GenerateResponse, error)
	probe(ctx context.Context, hc *http.Client, cfg LLMConfig) bool
}

// statusError is a non-200 provider reply.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
}

// classify maps a provider status onto the package error taxonomy.
func (e *statusError) classify() error {
	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrAuth, e)
	case e.Code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrQuota, e)
	case e.Code >= 400 && e.Code < 500:
		return fmt.Errorf("%w: %v", ErrRequestRejected, e)
	default:
		return e
	}
}

type httpClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
	backend  backend
}

// NewClient creates an LLMClient for the configured provider.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(cfg, observer), nil
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func newHTTPClient(cfg LLMConfig, observer Observer, b backend) *httpClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		backend:  b,
	}
}

func (c *httpClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	if req.Temperature != nil {
		taskCfg.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		taskCfg.MaxTokens = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var (
		resp     *GenerateResponse
		attempts int
	)
	op := func() error {
		attempts++
		r, err := c.backend.generate(ctx, c.http, c.cfg, req, taskCfg)
		if err != nil {
			var se *statusError
			if errors.As(err, &se) {
				err = se.classify()
			}
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		resp = r
		return nil
	}
	lastErr := backoff.Retry(op, c.backoffPolicy(ctx))

	latency := time.Since(start).Milliseconds()
	if lastErr == nil {
		c.observer.OnCallComplete(LLMCallEvent{
			Task:      req.Task,
			Provider:  c.cfg.Provider,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Attempts:  attempts,
			Success:   true,
		})
		resp.LatencyMs = latency
		return resp, nil
	}

	finalErr := c.finalError(ctx, lastErr)
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Provider:  c.cfg.Provider,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Attempts:  attempts,
		Success:   false,
		ErrorCode: errorCode(finalErr),
	})
	return nil, finalErr
}

func (c *httpClient) backoffPolicy(ctx context.Context) backoff.BackOffContext {
	eb := backoff.NewExponentialBackOff()
	if c.cfg.RetryBackoffMs > 0 {
		eb.InitialInterval = time.Duration(c.cfg.RetryBackoffMs) * time.Millisecond
	}
	eb.MaxElapsedTime = 0 // bounded by ctx deadline and MaxRetries
	retries := c.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)
}

func (c *httpClient) finalError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ctxErr
	}
	switch {
	case isPermanent(err):
		return err
	case errors.Is(err, ErrQuota):
		return err
	case isConnectionError(err):
		return ErrProviderUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.backend.probe(ctx, c.http, c.cfg)
}

func isPermanent(err error) bool {
	return errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrRequestRejected) ||
		errors.Is(err, ErrInvalidOutput)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrAuth):
		return "AUTH"
	case errors.Is(err, ErrQuota):
		return "QUOTA"
	case errors.Is(err, ErrRequestRejected):
		return "REJECTED"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
