package services

import (
	"context"
	"sort"
	"time"

	"prdash/internal/github"
	"prdash/internal/models"
	"prdash/pkg/logger"
	"prdash/pkg/timeutil"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DashboardService orchestrates a full dashboard refresh: identity
// resolution, the search pass, per-item enrichment and final assembly.
type DashboardService struct {
	gh     *github.Client
	search *SearchService
	enrich *EnrichmentService
}

func NewDashboardService(gh *github.Client, search *SearchService, enrich *EnrichmentService) *DashboardService {
	return &DashboardService{
		gh:     gh,
		search: search,
		enrich: enrich,
	}
}

// ValidateToken resolves the viewer behind a personal access token.
// Rate-limit errors surface verbatim; anything else reads as a bad token.
func (s *DashboardService) ValidateToken(ctx context.Context, token string) (*models.GitHubAuthenticatedUser, error) {
	user, err := github.Fetch[models.GitHubAuthenticatedUser](ctx, s.gh, s.gh.BaseURL+"/user", token)
	if err != nil {
		if isRateLimited(err) {
			return nil, err
		}
		return nil, &InvalidTokenError{Err: err}
	}
	return &user, nil
}

// FetchDashboard builds one complete dashboard snapshot. The first error at
// any stage aborts the refresh; there is no partial result.
func (s *DashboardService) FetchDashboard(ctx context.Context, token string) (*models.DashboardResponse, error) {
	started := time.Now()

	// Identity first; the search queries are built from the login.
	viewer, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	results, err := s.search.FetchAll(ctx, token, viewer.Login)
	if err != nil {
		return nil, err
	}

	myPRs := make([]models.DashboardPR, len(results.Authored))
	reviewPRs := make([]models.DashboardPR, len(results.ReviewCandidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range results.Authored {
		g.Go(func() error {
			pr, err := s.enrich.EnrichPR(gctx, token, item, SectionMyPRs, viewer.Login, false)
			if err != nil {
				return err
			}
			myPRs[i] = *pr
			return nil
		})
	}
	for i, item := range results.ReviewCandidates {
		isRequested := results.ReviewRequestedIDs[item.ID]
		g.Go(func() error {
			pr, err := s.enrich.EnrichPR(gctx, token, item, SectionReviewRequests, viewer.Login, isRequested)
			if err != nil {
				return err
			}
			reviewPRs[i] = *pr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapEnrichmentError(err)
	}

	sortPRs(myPRs)
	sortPRs(reviewPRs)

	logger.WithFields(logrus.Fields{
		"viewer":       viewer.Login,
		"my_items":     len(myPRs),
		"review_items": len(reviewPRs),
		"duration_ms":  time.Since(started).Milliseconds(),
	}).Info("Dashboard refresh complete")

	return &models.DashboardResponse{
		MyItems:        myPRs,
		ReviewItems:    reviewPRs,
		ViewerIdentity: viewer.Login,
		FetchedAt:      timeutil.FormatEpoch(time.Now().Unix()),
	}, nil
}

// sortPRs orders my-turn items first, then by update time descending. The
// timestamps are fixed-width ISO-8601 so string comparison is safe.
func sortPRs(prs []models.DashboardPR) {
	sort.SliceStable(prs, func(i, j int) bool {
		if prs[i].TurnStatus != prs[j].TurnStatus {
			return prs[i].TurnStatus == models.MyTurn
		}
		return prs[i].UpdatedAt > prs[j].UpdatedAt
	})
}
