package projection

import (
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// Calendar projects a plan into a date-keyed lookup for the calendar view.
// The index is derived read-only from the response and rebuilt only when the
// source response pointer changes, so repeated lookups against the same plan
// are cheap and the calendar can never disagree with the table about the
// underlying data.
type Calendar struct {
	src    *models.StudyPlanResponse
	byDate map[string]models.DailyPlan
}

// Index (re)builds the date index for the given plan if it is not the one
// already indexed. Keys follow the canonical YYYY-MM-DD rule from
// models.Date.Key, so externally generated keys line up. A nil plan clears
// the index.
func (c *Calendar) Index(plan *models.StudyPlanResponse) {
	if plan == c.src {
		return
	}
	c.src = plan
	if plan == nil {
		c.byDate = nil
		return
	}
	c.byDate = make(map[string]models.DailyPlan, len(plan.DailyPlans))
	for _, dp := range plan.DailyPlans {
		c.byDate[dp.Date.Key()] = dp
	}
}

// Lookup answers the per-day query for a YYYY-MM-DD key. A date either has a
// full DailyPlan entry or none; no empty placeholder is ever synthesized.
func (c *Calendar) Lookup(key string) (models.DailyPlan, bool) {
	dp, ok := c.byDate[key]
	return dp, ok
}

// Len returns the number of indexed days.
func (c *Calendar) Len() int {
	return len(c.byDate)
}
