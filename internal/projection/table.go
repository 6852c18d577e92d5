package projection

import (
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// RowGroup is one day's worth of table rows: the date label belongs to the
// group as a whole (rendered spanning the chapter rows), and a subtotal row
// terminates the group. Subtotal is the service-reported total_hours,
// carried through verbatim.
type RowGroup struct {
	Date     models.Date
	Chapters []models.Chapter
	Subtotal float64
}

// Table projects a plan into the ordered, date-grouped row sequence the
// table view renders. Like Calendar it is a pure cache-on-identity
// derivation: rows are rebuilt only when the source response pointer
// changes and the response itself is never mutated. Chapter order within a
// day is whatever the response provided; no reordering by priority.
type Table struct {
	src  *models.StudyPlanResponse
	rows []RowGroup
}

// Rows returns one RowGroup per DailyPlan, preserving the response's date
// ordering. A nil plan yields no rows.
func (t *Table) Rows(plan *models.StudyPlanResponse) []RowGroup {
	if plan == t.src {
		return t.rows
	}
	t.src = plan
	if plan == nil {
		t.rows = nil
		return nil
	}
	t.rows = make([]RowGroup, len(plan.DailyPlans))
	for i, dp := range plan.DailyPlans {
		t.rows[i] = RowGroup{
			Date:     dp.Date,
			Chapters: dp.Chapters,
			Subtotal: dp.TotalHours,
		}
	}
	return t.rows
}
