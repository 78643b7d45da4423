package github

import "fmt"

// RateLimitedError indicates the GitHub API rate limit was hit. Detection
// rule: HTTP 429, or HTTP 403 with the x-ratelimit-remaining header equal to
// "0". Never retried; the caller surfaces it verbatim.
type RateLimitedError struct {
	// ResetAt is the rendered reset time ("HH:MM:SS UTC"), empty when the
	// response carried no usable x-ratelimit-reset header.
	ResetAt string
}

func (e *RateLimitedError) Error() string {
	if e.ResetAt != "" {
		return fmt.Sprintf("GitHub API rate limit exceeded. Resets at %s.", e.ResetAt)
	}
	return "GitHub API rate limit exceeded."
}

// HTTPError is a non-success, non-rate-limit response from the GitHub API.
type HTTPError struct {
	StatusCode int
	Reason     string
	Body       string // first 200 bytes of the response body
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GitHub API %d: %s - %s", e.StatusCode, e.Reason, e.Body)
}

// NetworkError wraps a transport-level failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError wraps a failure to decode a GitHub response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to parse GitHub response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
