package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// NewSubjectForm edits a subject's name and exam date. The name is left
// free-form on purpose: the service is the authority for rejecting blank
// subjects. Only the date's format is checked, not its semantics.
func NewSubjectForm(fm *SubjectFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Exam Date (YYYY-MM-DD)").
				Description("Leave empty for no exam date").
				Value(&fm.ExamDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := time.Parse(models.DateFormat, strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewChapterForm edits one chapter string. Blank chapters are allowed while
// editing; they are filtered out at submission time.
func NewChapterForm(fm *ChapterFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Chapter").
				Value(&fm.Text),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewHoursForm edits the daily study-hours budget. The 1-24 range is
// enforced here, at the presentation boundary, not by the builder.
func NewHoursForm(fm *HoursFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily Study Hours").
				Value(&fm.Hours).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if i < constants.MinDailyHours || i > constants.MaxDailyHours {
						return fmt.Errorf("hours must be %d-%d", constants.MinDailyHours, constants.MaxDailyHours)
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
