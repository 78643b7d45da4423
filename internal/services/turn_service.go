package services

import (
	"fmt"
	"sort"
	"strings"

	"prdash/internal/models"
)

// Section names used in the decision trace and the enrichment pipeline.
const (
	SectionMyPRs          = "my-prs"
	SectionReviewRequests = "review-requests"
)

// TurnService decides whose action a PR is waiting on. Both branches are
// pure: they evaluate an ordered decision tree and record every evaluated
// step in the trace, decided or skipped.
type TurnService struct{}

func NewTurnService() *TurnService {
	return &TurnService{}
}

func isSubmittedState(state string) bool {
	switch state {
	case models.ReviewStateApproved,
		models.ReviewStateChangesRequested,
		models.ReviewStateCommented,
		models.ReviewStateDismissed:
		return true
	}
	return false
}

// latestStateByReviewer folds reviews in API order into a latest state per
// reviewer (lowercased login). Sticky rule: COMMENTED does not overwrite a
// prior CHANGES_REQUESTED or APPROVED. Reviews by excludeLogin are skipped
// when it is non-empty.
func latestStateByReviewer(reviews []models.GitHubReview, excludeLogin string) map[string]string {
	latest := make(map[string]string)
	for _, review := range reviews {
		if !isSubmittedState(review.State) {
			continue
		}
		login := strings.ToLower(review.User.Login)
		if excludeLogin != "" && login == excludeLogin {
			continue
		}
		if prev, ok := latest[login]; ok {
			if (prev == models.ReviewStateChangesRequested || prev == models.ReviewStateApproved) &&
				review.State == models.ReviewStateCommented {
				continue
			}
		}
		latest[login] = review.State
	}
	return latest
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DetermineAuthoredTurn classifies a PR the viewer authored. mergeableState
// is nil when the pull detail carried no mergeable_state.
func (s *TurnService) DetermineAuthoredTurn(
	reviews []models.GitHubReview,
	requestedReviewers []models.GitHubUser,
	authorLogin string,
	mergeableState *string,
) models.TurnResult {
	var checks []models.TurnDebugCheck
	authorLower := strings.ToLower(authorLogin)

	// Step 1: reviewers who have submitted feedback, author excluded.
	submitted := make(map[string]bool)
	for _, review := range reviews {
		login := strings.ToLower(review.User.Login)
		if isSubmittedState(review.State) && login != authorLower {
			submitted[login] = true
		}
	}
	submittedList := sortedKeys(submitted)

	noReviews := len(submitted) == 0
	value := fmt.Sprintf("%d reviewer(s) submitted: %s", len(submitted), strings.Join(submittedList, ", "))
	if noReviews {
		value = "No reviewers have submitted feedback"
	}
	checks = append(checks, models.TurnDebugCheck{
		Label:  "No reviews submitted yet",
		Value:  value,
		Result: checkResult(noReviews, models.CheckTheirTurn),
	})
	if noReviews {
		return decided(models.TheirTurn, SectionMyPRs, checks, "No reviews submitted yet")
	}

	// Step 2: all submitters have been asked again.
	requestedLogins := make(map[string]bool, len(requestedReviewers))
	for _, r := range requestedReviewers {
		requestedLogins[strings.ToLower(r.Login)] = true
	}
	allReRequested := true
	for login := range submitted {
		if !requestedLogins[login] {
			allReRequested = false
			break
		}
	}

	switch {
	case allReRequested:
		value = fmt.Sprintf("All reviewers re-requested: %s", strings.Join(submittedList, ", "))
	case len(requestedLogins) > 0:
		value = fmt.Sprintf("Re-requested: %s (not all submitters)", strings.Join(sortedKeys(requestedLogins), ", "))
	default:
		value = "No re-requests pending"
	}
	checks = append(checks, models.TurnDebugCheck{
		Label:  "All submitters re-requested",
		Value:  value,
		Result: checkResult(allReRequested, models.CheckTheirTurn),
	})
	if allReRequested {
		return decided(models.TheirTurn, SectionMyPRs, checks, "All submitters re-requested")
	}

	// Step 3: latest state per reviewer; any CHANGES_REQUESTED wins.
	latest := latestStateByReviewer(reviews, authorLower)
	hasChangesRequested := false
	stateList := make([]string, 0, len(latest))
	for login, state := range latest {
		if state == models.ReviewStateChangesRequested {
			hasChangesRequested = true
		}
		stateList = append(stateList, fmt.Sprintf("%s: %s", login, state))
	}
	sort.Strings(stateList)
	latestStates := strings.Join(stateList, ", ")
	if latestStates == "" {
		latestStates = "none"
	}

	if hasChangesRequested {
		value = fmt.Sprintf("Changes requested found (%s)", latestStates)
	} else {
		value = fmt.Sprintf("No changes requested (%s)", latestStates)
	}
	checks = append(checks, models.TurnDebugCheck{
		Label:  "Changes requested",
		Value:  value,
		Result: checkResult(hasChangesRequested, models.CheckMyTurn),
	})
	if hasChangesRequested {
		return decided(models.MyTurn, SectionMyPRs, checks, "Changes requested")
	}

	// Step 4: fall back on mergeable_state. Always decides.
	stateStr := "null"
	if mergeableState != nil {
		stateStr = *mergeableState
	}

	var verdict models.TurnStatus
	switch stateStr {
	case "clean":
		verdict = models.MyTurn
		value = "Ready to merge — all branch protection met"
	case "blocked":
		verdict = models.TheirTurn
		value = "Insufficient approvals / CODEOWNERS not satisfied"
	case "dirty":
		verdict = models.MyTurn
		value = "Merge conflicts — author needs to resolve"
	case "unstable":
		verdict = models.MyTurn
		value = "Failing checks — author should investigate"
	default:
		verdict = models.MyTurn
		value = "Unknown/null — conservative fallback"
	}

	label := fmt.Sprintf("Mergeable state: %s", stateStr)
	checks = append(checks, models.TurnDebugCheck{
		Label:  label,
		Value:  value,
		Result: models.CheckResult(verdict),
	})
	return decided(verdict, SectionMyPRs, checks, label)
}

// DetermineReviewRequestTurn classifies a PR surfaced on the review side.
// The reviews argument is accepted for symmetry with the authored branch but
// does not participate in the decision.
func (s *TurnService) DetermineReviewRequestTurn(
	_ []models.GitHubReview,
	requestedReviewers []models.GitHubUser,
	requestedTeams []models.GitHubTeam,
	viewerLogin string,
	isReviewRequested bool,
) models.TurnResult {
	var checks []models.TurnDebugCheck
	viewerLower := strings.ToLower(viewerLogin)

	// Step 1: the viewer is individually requested.
	myReviewRequested := false
	names := make([]string, 0, len(requestedReviewers))
	for _, r := range requestedReviewers {
		if strings.ToLower(r.Login) == viewerLower {
			myReviewRequested = true
		}
		names = append(names, r.Login)
	}
	requestedNames := strings.Join(names, ", ")

	var value string
	switch {
	case myReviewRequested:
		value = fmt.Sprintf("Your review is currently requested (pending reviewers: %s)", requestedNames)
	case requestedNames != "":
		value = fmt.Sprintf("Your review is not in the requested list (pending: %s)", requestedNames)
	default:
		value = "No pending individual review requests"
	}
	checks = append(checks, models.TurnDebugCheck{
		Label:  "My review requested",
		Value:  value,
		Result: checkResult(myReviewRequested, models.CheckMyTurn),
	})
	if myReviewRequested {
		return decided(models.MyTurn, SectionReviewRequests, checks, "My review requested")
	}

	// Step 2: requested through a team. Only counts when the PR actually came
	// from the review-requested search, not just reviewed-by.
	teamNames := make([]string, 0, len(requestedTeams))
	for _, t := range requestedTeams {
		teamNames = append(teamNames, t.Name)
	}
	requestedViaTeam := isReviewRequested && len(requestedTeams) > 0

	switch {
	case requestedViaTeam:
		value = fmt.Sprintf("Requested via team (teams: %s)", strings.Join(teamNames, ", "))
	case !isReviewRequested:
		value = "PR found via reviewed-by search, not review-requested"
	default:
		value = "No team review requests"
	}

	verdict := models.TheirTurn
	if requestedViaTeam {
		verdict = models.MyTurn
	}
	checks = append(checks, models.TurnDebugCheck{
		Label:  "My review requested (via team)",
		Value:  value,
		Result: models.CheckResult(verdict),
	})
	return decided(verdict, SectionReviewRequests, checks, "My review requested (via team)")
}

func checkResult(decides bool, outcome models.CheckResult) models.CheckResult {
	if decides {
		return outcome
	}
	return models.CheckSkip
}

func decided(verdict models.TurnStatus, section string, checks []models.TurnDebugCheck, decidingCheck string) models.TurnResult {
	return models.TurnResult{
		TurnStatus: verdict,
		DebugInfo: models.TurnDebugInfo{
			Section:       section,
			Checks:        checks,
			DecidingCheck: decidingCheck,
		},
	}
}
