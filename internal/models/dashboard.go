package models

// TurnStatus says whose action a pull request is currently waiting on.
type TurnStatus string

const (
	MyTurn    TurnStatus = "my-turn"
	TheirTurn TurnStatus = "their-turn"
)

// CheckResult is the outcome of a single classification step. Skip means the
// step was evaluated but did not decide the verdict.
type CheckResult string

const (
	CheckMyTurn    CheckResult = "my-turn"
	CheckTheirTurn CheckResult = "their-turn"
	CheckSkip      CheckResult = "skip"
)

// TurnDebugCheck is one evaluated step of the turn decision tree.
type TurnDebugCheck struct {
	Label  string      `json:"label"`
	Value  string      `json:"value"`
	Result CheckResult `json:"result"`
}

// TurnDebugInfo is the ordered trace of every step the classifier evaluated.
// The last non-skip entry always matches the verdict, and DecidingCheck names
// that entry's label.
type TurnDebugInfo struct {
	Section       string           `json:"section"`
	Checks        []TurnDebugCheck `json:"checks"`
	DecidingCheck string           `json:"decidingCheck"`
}

// TurnResult bundles a verdict with its explanation trace.
type TurnResult struct {
	TurnStatus TurnStatus
	DebugInfo  TurnDebugInfo
}

// DashboardAuthor identifies the author of a dashboard item.
type DashboardAuthor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
}

// DashboardLabel is a label rendered on a dashboard item.
type DashboardLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DashboardPR is a pull request enriched with its turn verdict, decision
// trace and review summary.
type DashboardPR struct {
	ID            int64            `json:"id"`
	Number        int              `json:"number"`
	Title         string           `json:"title"`
	URL           string           `json:"url"`
	Repo          string           `json:"repo"`
	Author        DashboardAuthor  `json:"author"`
	TurnStatus    TurnStatus       `json:"turnStatus"`
	TurnDebugInfo *TurnDebugInfo   `json:"turnDebugInfo"`
	IsDraft       bool             `json:"isDraft"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
	Labels        []DashboardLabel `json:"labels"`
	ReviewSummary string           `json:"reviewSummary"`
}

// DashboardResponse is one complete refresh of the dashboard. It is built
// from scratch on every fetch; nothing is carried over between refreshes.
type DashboardResponse struct {
	MyItems        []DashboardPR `json:"myItems"`
	ReviewItems    []DashboardPR `json:"reviewItems"`
	ViewerIdentity string        `json:"viewerIdentity"`
	FetchedAt      string        `json:"fetchedAt"`
}
