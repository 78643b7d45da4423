package services

import (
	"bytes"
	"fmt"

	"prdash/internal/models"

	"github.com/xuri/excelize/v2"
)

// ExportService renders a dashboard snapshot as an Excel workbook, one sheet
// per list.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var exportHeaders = []string{
	"Repo", "Number", "Title", "Author", "Turn", "Deciding Check",
	"Review Summary", "Draft", "Updated At", "URL",
}

// BuildWorkbook writes both enriched lists into an xlsx file and returns its
// bytes.
func (s *ExportService) BuildWorkbook(response *models.DashboardResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeSheet(f, "My PRs", response.MyItems); err != nil {
		return nil, err
	}
	if err := s.writeSheet(f, "Review Requests", response.ReviewItems); err != nil {
		return nil, err
	}

	// Drop the default sheet created by excelize
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	return f.WriteToBuffer()
}

func (s *ExportService) writeSheet(f *excelize.File, name string, prs []models.DashboardPR) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
	}

	for row, pr := range prs {
		decidingCheck := ""
		if pr.TurnDebugInfo != nil {
			decidingCheck = pr.TurnDebugInfo.DecidingCheck
		}
		values := []interface{}{
			pr.Repo,
			pr.Number,
			pr.Title,
			pr.Author.Login,
			string(pr.TurnStatus),
			decidingCheck,
			pr.ReviewSummary,
			pr.IsDraft,
			pr.UpdatedAt,
			pr.URL,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}
