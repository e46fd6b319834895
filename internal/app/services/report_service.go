package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
)

// ReportService builds spreadsheet exports of event rosters
type ReportService struct {
	eventRepo        *repositories.EventRepository
	confirmationRepo *repositories.ConfirmationRepository
}

// NewReportService creates a new report service
func NewReportService(
	eventRepo *repositories.EventRepository,
	confirmationRepo *repositories.ConfirmationRepository,
) *ReportService {
	return &ReportService{
		eventRepo:        eventRepo,
		confirmationRepo: confirmationRepo,
	}
}

// BuildEventReport renders the full confirmation roster of an event as an
// xlsx workbook, one row per student, and returns the workbook with a
// suggested file name
func (s *ReportService) BuildEventReport(ctx context.Context, eventID int64) (*excelize.File, string, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	classes, err := s.eventRepo.GetTargetClasses(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Roster"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student code", "Student name", "Class", "Status", "Parent notes", "Rejection reason", "Recommendations", "Follow-up"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, class := range classes {
		confirmations, err := s.confirmationRepo.GetByEventAndClass(ctx, eventID, class.ID)
		if err != nil {
			return nil, "", err
		}
		for _, c := range confirmations {
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(c.Status))
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.ParentNotes)
			_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), c.RejectionReason)
			_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), c.Recommendations)
			if c.Student != nil {
				_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.Student.StudentCode)
				_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Student.FullName)
			}
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), class.Name)
			if c.Status == models.StatusCompleted && c.FollowUpRequired && c.FollowUpDate != nil {
				_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), c.FollowUpDate.Format("2006-01-02"))
			}
			row++
		}
	}

	filename := fmt.Sprintf("event_%d_roster.xlsx", event.ID)
	return f, filename, nil
}
