package services

import (
	"errors"
	"fmt"

	"prdash/internal/github"
)

// InvalidTokenError wraps a non-rate-limit failure from identity resolution.
type InvalidTokenError struct {
	Err error
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("Invalid Personal Access Token or GitHub API error. Check your token. (%v)", e.Err)
}

func (e *InvalidTokenError) Unwrap() error { return e.Err }

// SearchError wraps a failed search query.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("GitHub search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// EnrichmentError wraps a failure from the per-item fetch stage.
type EnrichmentError struct {
	Err error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("GitHub PR enrichment failed: %v", e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }

// RepoParseError indicates a repository reference that does not contain an
// owner/name pair.
type RepoParseError struct {
	Ref string
}

func (e *RepoParseError) Error() string {
	return fmt.Sprintf("Could not parse owner/repo from: %s", e.Ref)
}

// isRateLimited reports whether err carries a rate-limit variant anywhere in
// its chain. Rate-limit errors bypass the stage-specific wrappers and surface
// verbatim.
func isRateLimited(err error) bool {
	var rateLimited *github.RateLimitedError
	return errors.As(err, &rateLimited)
}

func wrapSearchError(err error) error {
	if isRateLimited(err) {
		return err
	}
	return &SearchError{Err: err}
}

func wrapEnrichmentError(err error) error {
	if isRateLimited(err) {
		return err
	}
	return &EnrichmentError{Err: err}
}
