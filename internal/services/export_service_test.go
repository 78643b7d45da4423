package services

import (
	"testing"

	"prdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	exportService := NewExportService()

	response := &models.DashboardResponse{
		MyItems: []models.DashboardPR{
			{
				ID:         1,
				Number:     101,
				Title:      "Add feature",
				Repo:       "octo/alpha",
				Author:     models.DashboardAuthor{Login: "me"},
				TurnStatus: models.MyTurn,
				TurnDebugInfo: &models.TurnDebugInfo{
					DecidingCheck: "Mergeable state: clean",
				},
				ReviewSummary: "1 approved",
				UpdatedAt:     "2024-02-01T00:00:00Z",
			},
		},
		ReviewItems:    []models.DashboardPR{},
		ViewerIdentity: "me",
	}

	buf, err := exportService.BuildWorkbook(response)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"My PRs", "Review Requests"}, f.GetSheetList())

	title, err := f.GetCellValue("My PRs", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Add feature", title)

	turn, err := f.GetCellValue("My PRs", "E2")
	require.NoError(t, err)
	assert.Equal(t, "my-turn", turn)
}
