package services

import (
	"fmt"
	"strings"

	"prdash/internal/models"
)

// ReviewSummaryService renders a compact review status line for a PR.
type ReviewSummaryService struct{}

func NewReviewSummaryService() *ReviewSummaryService {
	return &ReviewSummaryService{}
}

// Summarize reduces the review events and outstanding reviewer set to a
// comma-joined clause list, e.g. "2 approved, 1 commented, 3 pending (1 team)".
// Unlike the turn classifier, the author's own reviews count here.
func (s *ReviewSummaryService) Summarize(
	reviews []models.GitHubReview,
	requestedReviewers []models.GitHubUser,
	requestedTeams []models.GitHubTeam,
) string {
	latest := latestStateByReviewer(reviews, "")

	counts := make(map[string]int)
	for _, state := range latest {
		counts[state]++
	}

	var parts []string
	if n := counts[models.ReviewStateApproved]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d approved", n))
	}
	if n := counts[models.ReviewStateChangesRequested]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d changes requested", n))
	}
	if n := counts[models.ReviewStateCommented]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d commented", n))
	}

	pending := len(requestedReviewers) + len(requestedTeams)
	if pending > 0 {
		teamSuffix := ""
		if len(requestedTeams) > 0 {
			plural := ""
			if len(requestedTeams) > 1 {
				plural = "s"
			}
			teamSuffix = fmt.Sprintf(" (%d team%s)", len(requestedTeams), plural)
		}
		parts = append(parts, fmt.Sprintf("%d pending%s", pending, teamSuffix))
	}

	if len(parts) == 0 {
		return "No reviews"
	}
	return strings.Join(parts, ", ")
}
