package models

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical calendar-date layout used on the wire and for
// calendar lookups (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Date is a calendar date as the planning service emits it. The service is
// loose about the time component, so unmarshalling accepts both a bare
// YYYY-MM-DD string and a full RFC3339 timestamp.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	if t, err := time.Parse(DateFormat, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

// Key returns the canonical YYYY-MM-DD form used to index daily plans.
func (d Date) Key() string {
	return d.Format(DateFormat)
}

// Equal reports whether two dates name the same instant.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Subject is one editable entry in the plan form. The ID is a synthetic
// identifier assigned when the subject is added; it is the builder's internal
// truth, so two subjects with the same display name never collide.
type Subject struct {
	ID       string
	Name     string
	Chapters []string
	ExamDate *time.Time
}

// PlanRequest is the wire-normalized form of the subject list sent to the
// planning service.
type PlanRequest struct {
	Subjects   []string            `json:"subjects"`
	Chapters   map[string][]string `json:"chapters"`
	ExamDates  map[string]string   `json:"exam_dates"`
	DailyHours int                 `json:"daily_hours"`
}

// Chapter is one unit of study content as scheduled by the service.
// Priority 1 marks exam-proximate chapters for visual emphasis.
type Chapter struct {
	Name           string  `json:"name"`
	Subject        string  `json:"subject"`
	EstimatedHours float64 `json:"estimated_hours"`
	Priority       int     `json:"priority"`
}

// Urgent reports whether the chapter carries the exam-proximate priority.
func (c Chapter) Urgent() bool {
	return c.Priority == 1
}

// DailyPlan is the set of chapters assigned to one calendar date.
// TotalHours is trusted from the service and never recomputed client-side.
type DailyPlan struct {
	Date       Date      `json:"date"`
	Chapters   []Chapter `json:"chapters"`
	TotalHours float64   `json:"total_hours"`
}

// StudyPlanResponse is the canonical plan structure both views project from.
// DailyPlans are ordered by date but not required to be contiguous.
type StudyPlanResponse struct {
	DailyPlans      []DailyPlan `json:"daily_plans"`
	TotalDays       int         `json:"total_days"`
	TotalHours      float64     `json:"total_hours"`
	SubjectsCovered []string    `json:"subjects_covered"`
}
