// Package github is a thin gateway over the GitHub REST API. It does
// authenticated GETs with typed JSON decoding and classifies failures into
// the error variants the dashboard pipeline matches on.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"prdash/pkg/timeutil"

	"golang.org/x/oauth2"
)

// Client issues authenticated requests against one API base URL.
type Client struct {
	BaseURL   string
	UserAgent string
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		BaseURL:   baseURL,
		UserAgent: userAgent,
	}
}

// httpClient builds an HTTP client that injects the given token
func (c *Client) httpClient(ctx context.Context, token string) *http.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return oauth2.NewClient(ctx, ts)
}

// Fetch performs an authenticated GET against url and decodes the JSON body
// into T. Non-success responses come back as *RateLimitedError, *HTTPError,
// *NetworkError or *DecodeError.
func Fetch[T any](ctx context.Context, c *Client, url, token string) (T, error) {
	var result T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result, &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient(ctx, token).Do(req)
	if err != nil {
		return result, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, classifyFailure(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, &NetworkError{Err: err}
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, &DecodeError{Err: err}
	}

	return result, nil
}

// classifyFailure turns a non-success response into a typed error.
// Rate limiting is 429, or 403 with x-ratelimit-remaining exhausted.
func classifyFailure(resp *http.Response) error {
	isRateLimited := resp.StatusCode == http.StatusTooManyRequests ||
		(resp.StatusCode == http.StatusForbidden &&
			resp.Header.Get("x-ratelimit-remaining") == "0")

	if isRateLimited {
		resetAt := ""
		if v := resp.Header.Get("x-ratelimit-reset"); v != "" {
			if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
				resetAt = timeutil.FormatClockUTC(ts)
			}
		}
		return &RateLimitedError{ResetAt: resetAt}
	}

	reason := http.StatusText(resp.StatusCode)
	if reason == "" {
		reason = "Unknown"
	}

	body, _ := io.ReadAll(resp.Body)
	if len(body) > 200 {
		body = body[:200]
	}

	return &HTTPError{
		StatusCode: resp.StatusCode,
		Reason:     reason,
		Body:       string(body),
	}
}
