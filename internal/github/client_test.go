package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userPayload struct {
	Login string `json:"login"`
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"login":"octocat"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "prdash-test")
	user, err := Fetch[userPayload](context.Background(), client, server.URL+"/user", "test-token")

	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
}

func TestFetchRateLimitClassification(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		headers     map[string]string
		rateLimited bool
	}{
		{
			name:        "429 is rate limited",
			status:      http.StatusTooManyRequests,
			rateLimited: true,
		},
		{
			name:        "403 with remaining 0 is rate limited",
			status:      http.StatusForbidden,
			headers:     map[string]string{"x-ratelimit-remaining": "0"},
			rateLimited: true,
		},
		{
			name:        "403 with remaining budget is not rate limited",
			status:      http.StatusForbidden,
			headers:     map[string]string{"x-ratelimit-remaining": "42"},
			rateLimited: false,
		},
		{
			name:        "403 without header is not rate limited",
			status:      http.StatusForbidden,
			rateLimited: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tc.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, "prdash-test")
			_, err := Fetch[userPayload](context.Background(), client, server.URL, "t")
			require.Error(t, err)

			var rateLimited *RateLimitedError
			assert.Equal(t, tc.rateLimited, errors.As(err, &rateLimited))
		})
	}
}

func TestFetchRateLimitResetHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-ratelimit-remaining", "0")
		w.Header().Set("x-ratelimit-reset", "1709209845") // 12:30:45 UTC
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "prdash-test")
	_, err := Fetch[userPayload](context.Background(), client, server.URL, "t")

	var rateLimited *RateLimitedError
	require.ErrorAs(t, err, &rateLimited)
	assert.Equal(t, "12:30:45 UTC", rateLimited.ResetAt)
	assert.Equal(t, "GitHub API rate limit exceeded. Resets at 12:30:45 UTC.", rateLimited.Error())
}

func TestFetchHTTPErrorTruncatesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("x", 500)))
	}))
	defer server.Close()

	client := NewClient(server.URL, "prdash-test")
	_, err := Fetch[userPayload](context.Background(), client, server.URL, "t")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "Bad Gateway", httpErr.Reason)
	assert.Len(t, httpErr.Body, 200)
}

func TestFetchDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "prdash-test")
	_, err := Fetch[userPayload](context.Background(), client, server.URL, "t")

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
