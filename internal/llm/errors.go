package llm

import "errors"

var (
	// ErrProviderUnavailable indicates the provider could not be reached.
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrAuth indicates the provider rejected the credentials. Not retried.
	ErrAuth = errors.New("llm provider rejected credentials")

	// ErrQuota indicates the provider throttled the request.
	ErrQuota = errors.New("llm provider quota exceeded")

	// ErrRequestRejected indicates a non-retryable client error from the provider.
	ErrRequestRejected = errors.New("llm provider rejected request")

	// ErrInvalidOutput indicates the provider answered without usable text.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
