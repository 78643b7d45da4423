package models

// GitHubUser is a user record as returned by the GitHub API.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// GitHubAuthenticatedUser is the viewer resolved from a personal access token.
type GitHubAuthenticatedUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Review state values GitHub reports on submitted reviews.
const (
	ReviewStateApproved         = "APPROVED"
	ReviewStateChangesRequested = "CHANGES_REQUESTED"
	ReviewStateCommented        = "COMMENTED"
	ReviewStateDismissed        = "DISMISSED"
	ReviewStatePending          = "PENDING"
)

// GitHubReview is one submitted review event on a pull request.
type GitHubReview struct {
	ID          int64      `json:"id"`
	User        GitHubUser `json:"user"`
	State       string     `json:"state"`
	SubmittedAt string     `json:"submitted_at,omitempty"`
}

// GitHubTeam is a team whose review has been requested.
type GitHubTeam struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GitHubRequestedReviewers is the outstanding reviewer set for a pull request.
type GitHubRequestedReviewers struct {
	Users []GitHubUser `json:"users"`
	Teams []GitHubTeam `json:"teams"`
}

// GitHubPullRequestRef links a search result to its pull request resource.
type GitHubPullRequestRef struct {
	URL     string `json:"url"`
	HTMLURL string `json:"html_url"`
}

// GitHubLabel is a label attached to an issue or pull request.
type GitHubLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// GitHubSearchItem is one raw candidate from the issue search API. Items
// without a PullRequest ref are plain issues and are filtered out.
type GitHubSearchItem struct {
	ID            int64                 `json:"id"`
	Number        int                   `json:"number"`
	Title         string                `json:"title"`
	HTMLURL       string                `json:"html_url"`
	State         string                `json:"state"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
	Draft         bool                  `json:"draft"`
	User          GitHubUser            `json:"user"`
	RepositoryURL string                `json:"repository_url"`
	PullRequest   *GitHubPullRequestRef `json:"pull_request,omitempty"`
	Labels        []GitHubLabel         `json:"labels"`
}

// GitHubSearchResponse is the envelope of the issue search API.
type GitHubSearchResponse struct {
	TotalCount        int64              `json:"total_count"`
	IncompleteResults bool               `json:"incomplete_results"`
	Items             []GitHubSearchItem `json:"items"`
}

// GitHubPullDetail carries the mergeability fields of a single pull request.
// Both fields may be absent while GitHub computes mergeability.
type GitHubPullDetail struct {
	Mergeable      *bool   `json:"mergeable"`
	MergeableState *string `json:"mergeable_state"`
}
