package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"prdash/internal/github"
	"prdash/internal/models"

	"golang.org/x/sync/errgroup"
)

// SearchService runs the three open-PR searches for a viewer and merges the
// review-side results into a single candidate list.
type SearchService struct {
	gh       *github.Client
	pageSize int
}

func NewSearchService(gh *github.Client, pageSize int) *SearchService {
	return &SearchService{
		gh:       gh,
		pageSize: pageSize,
	}
}

// SearchResults is the joined output of one search pass.
type SearchResults struct {
	// Authored holds the viewer's own open PRs, unfiltered.
	Authored []models.GitHubSearchItem
	// ReviewCandidates holds the deduplicated union of review-requested and
	// reviewed-by results, minus PRs the viewer authored.
	ReviewCandidates []models.GitHubSearchItem
	// ReviewRequestedIDs marks the candidates that came from the
	// review-requested query, captured before deduplication.
	ReviewRequestedIDs map[int64]bool
}

// FetchAll runs the three searches concurrently and merges the results.
// The first failing query aborts the whole pass.
func (s *SearchService) FetchAll(ctx context.Context, token, username string) (*SearchResults, error) {
	var authored, requested, reviewedBy []models.GitHubSearchItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.searchPullRequests(gctx, token, fmt.Sprintf("author:%s type:pr state:open sort:updated", username))
		if err != nil {
			return err
		}
		authored = items
		return nil
	})
	g.Go(func() error {
		items, err := s.searchPullRequests(gctx, token, fmt.Sprintf("review-requested:%s type:pr state:open sort:updated", username))
		if err != nil {
			return err
		}
		requested = items
		return nil
	})
	g.Go(func() error {
		items, err := s.searchPullRequests(gctx, token, fmt.Sprintf("reviewed-by:%s type:pr state:open sort:updated", username))
		if err != nil {
			return err
		}
		reviewedBy = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, wrapSearchError(err)
	}

	candidates, requestedIDs := mergeReviewCandidates(requested, reviewedBy, username)

	return &SearchResults{
		Authored:           authored,
		ReviewCandidates:   candidates,
		ReviewRequestedIDs: requestedIDs,
	}, nil
}

// searchPullRequests runs one issue search and keeps only results that are
// pull requests. Companion issue results carry no pull_request ref.
func (s *SearchService) searchPullRequests(ctx context.Context, token, query string) ([]models.GitHubSearchItem, error) {
	searchURL := fmt.Sprintf("%s/search/issues?q=%s&per_page=%d",
		s.gh.BaseURL, url.QueryEscape(query), s.pageSize)

	resp, err := github.Fetch[models.GitHubSearchResponse](ctx, s.gh, searchURL, token)
	if err != nil {
		return nil, err
	}

	items := make([]models.GitHubSearchItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.PullRequest != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

// mergeReviewCandidates deduplicates the review-requested and reviewed-by
// results by id, first occurrence winning, and drops PRs the viewer authored.
// Provenance is captured from the review-requested list alone, before the
// merge, so it does not depend on which copy survived.
func mergeReviewCandidates(requested, reviewedBy []models.GitHubSearchItem, username string) ([]models.GitHubSearchItem, map[int64]bool) {
	requestedIDs := make(map[int64]bool, len(requested))
	for _, item := range requested {
		requestedIDs[item.ID] = true
	}

	viewerLower := strings.ToLower(username)
	seen := make(map[int64]bool)
	merged := make([]models.GitHubSearchItem, 0, len(requested)+len(reviewedBy))
	for _, item := range append(append([]models.GitHubSearchItem{}, requested...), reviewedBy...) {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		if strings.ToLower(item.User.Login) == viewerLower {
			continue
		}
		merged = append(merged, item)
	}

	return merged, requestedIDs
}
