package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrMisconfigured means the upstream credential is missing from the deployment.
	ErrMisconfigured = errors.New("ai: GEMINI_API_KEY is not set")
	// ErrRateLimited means the upstream throttled the request (safe to retry after backoff).
	ErrRateLimited = errors.New("ai: upstream rate limited")
	// ErrQuotaExhausted means the upstream billing quota ran out (operator action required).
	ErrQuotaExhausted = errors.New("ai: upstream quota exhausted")
	// ErrUpstreamUnavailable covers every other upstream failure, including timeouts.
	ErrUpstreamUnavailable = errors.New("ai: upstream unavailable")
)

// wrapUpstreamErr maps a transport failure onto the error taxonomy. The
// original error stays wrapped for logging; handlers never echo it to clients.
func wrapUpstreamErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: call timed out: %v", ErrUpstreamUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
