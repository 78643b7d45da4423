package services

import (
	"context"
	"fmt"
	"strings"

	"prdash/internal/github"
	"prdash/internal/models"

	"golang.org/x/sync/errgroup"
)

// EnrichmentService turns a raw search item into a dashboard PR by fetching
// its reviews, outstanding reviewers and (for authored PRs) mergeability,
// then running the classifier and summarizer over the results.
type EnrichmentService struct {
	gh      *github.Client
	turn    *TurnService
	summary *ReviewSummaryService
}

func NewEnrichmentService(gh *github.Client, turn *TurnService, summary *ReviewSummaryService) *EnrichmentService {
	return &EnrichmentService{
		gh:      gh,
		turn:    turn,
		summary: summary,
	}
}

// parseRepo extracts "owner/name" from a repository API URL,
// e.g. "https://api.github.com/repos/octocat/hello" -> "octocat/hello".
func parseRepo(repositoryURL string) string {
	if idx := strings.Index(repositoryURL, "repos/"); idx >= 0 {
		return repositoryURL[idx+len("repos/"):]
	}
	return repositoryURL
}

// EnrichPR builds the enriched record for one item. The sub-fetches run
// concurrently and the item fails as a unit on the first error; there is no
// partial enrichment.
func (s *EnrichmentService) EnrichPR(
	ctx context.Context,
	token string,
	item models.GitHubSearchItem,
	section string,
	viewerLogin string,
	isReviewRequested bool,
) (*models.DashboardPR, error) {
	repo := parseRepo(item.RepositoryURL)
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 {
		return nil, &RepoParseError{Ref: repo}
	}
	owner, name := parts[0], parts[1]

	var (
		reviews   []models.GitHubReview
		requested models.GitHubRequestedReviewers
		detail    *models.GitHubPullDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d/reviews", s.gh.BaseURL, owner, name, item.Number)
		r, err := github.Fetch[[]models.GitHubReview](gctx, s.gh, url, token)
		if err != nil {
			return err
		}
		reviews = r
		return nil
	})
	g.Go(func() error {
		url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d/requested_reviewers", s.gh.BaseURL, owner, name, item.Number)
		r, err := github.Fetch[models.GitHubRequestedReviewers](gctx, s.gh, url, token)
		if err != nil {
			return err
		}
		requested = r
		return nil
	})
	if section == SectionMyPRs && item.PullRequest != nil {
		g.Go(func() error {
			d, err := github.Fetch[models.GitHubPullDetail](gctx, s.gh, item.PullRequest.URL, token)
			if err != nil {
				return err
			}
			detail = &d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var mergeableState *string
	if detail != nil {
		mergeableState = detail.MergeableState
	}

	var turn models.TurnResult
	if section == SectionMyPRs {
		turn = s.turn.DetermineAuthoredTurn(reviews, requested.Users, item.User.Login, mergeableState)
	} else {
		turn = s.turn.DetermineReviewRequestTurn(reviews, requested.Users, requested.Teams, viewerLogin, isReviewRequested)
	}

	labels := make([]models.DashboardLabel, 0, len(item.Labels))
	for _, l := range item.Labels {
		labels = append(labels, models.DashboardLabel{Name: l.Name, Color: l.Color})
	}

	debugInfo := turn.DebugInfo
	return &models.DashboardPR{
		ID:     item.ID,
		Number: item.Number,
		Title:  item.Title,
		URL:    item.HTMLURL,
		Repo:   repo,
		Author: models.DashboardAuthor{
			Login:     item.User.Login,
			AvatarURL: item.User.AvatarURL,
		},
		TurnStatus:    turn.TurnStatus,
		TurnDebugInfo: &debugInfo,
		IsDraft:       item.Draft,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		Labels:        labels,
		ReviewSummary: s.summary.Summarize(reviews, requested.Users, requested.Teams),
	}, nil
}
