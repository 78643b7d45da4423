package services

import (
	"testing"

	"prdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchItem(id int64, author, title string) models.GitHubSearchItem {
	return models.GitHubSearchItem{
		ID:    id,
		Title: title,
		User:  models.GitHubUser{Login: author},
	}
}

func TestMergeReviewCandidates(t *testing.T) {
	t.Run("Duplicate keeps first occurrence and provenance", func(t *testing.T) {
		requested := []models.GitHubSearchItem{searchItem(42, "alice", "from review-requested")}
		reviewedBy := []models.GitHubSearchItem{searchItem(42, "alice", "from reviewed-by")}

		merged, requestedIDs := mergeReviewCandidates(requested, reviewedBy, "me")

		require.Len(t, merged, 1)
		assert.Equal(t, "from review-requested", merged[0].Title)
		assert.True(t, requestedIDs[42])
	})

	t.Run("Provenance is captured before dedup", func(t *testing.T) {
		requested := []models.GitHubSearchItem{searchItem(1, "alice", "a")}
		reviewedBy := []models.GitHubSearchItem{
			searchItem(1, "alice", "a-copy"),
			searchItem(2, "bob", "b"),
		}

		_, requestedIDs := mergeReviewCandidates(requested, reviewedBy, "me")

		assert.True(t, requestedIDs[1])
		assert.False(t, requestedIDs[2])
	})

	t.Run("Self-authored PRs are excluded", func(t *testing.T) {
		reviewedBy := []models.GitHubSearchItem{
			searchItem(1, "Me", "mine"),
			searchItem(2, "alice", "theirs"),
		}

		merged, _ := mergeReviewCandidates(nil, reviewedBy, "me")

		require.Len(t, merged, 1)
		assert.Equal(t, int64(2), merged[0].ID)
	})

	t.Run("Distinct items from both queries survive", func(t *testing.T) {
		requested := []models.GitHubSearchItem{searchItem(1, "alice", "a")}
		reviewedBy := []models.GitHubSearchItem{searchItem(2, "bob", "b")}

		merged, _ := mergeReviewCandidates(requested, reviewedBy, "me")

		assert.Len(t, merged, 2)
	})
}
