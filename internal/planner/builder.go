package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// ErrDuplicateSubject is returned by BuildRequest when two subjects share the
// same trimmed name. The wire payload is keyed by subject name, so duplicates
// would silently overwrite one another; they are rejected instead.
var ErrDuplicateSubject = fmt.Errorf("duplicate subject name")

// Builder owns the editable subject list and the daily-hours value for one
// form session. Subjects are addressed internally by a synthetic uuid, never
// by display name. The subject list is never empty; each subject always has
// at least one chapter slot.
type Builder struct {
	subjects   []models.Subject
	dailyHours int
}

func newSubject() models.Subject {
	return models.Subject{
		ID:       uuid.New().String(),
		Chapters: []string{""},
	}
}

// NewBuilder creates a builder holding one blank subject and the default
// daily-hours budget.
func NewBuilder() *Builder {
	return &Builder{
		subjects:   []models.Subject{newSubject()},
		dailyHours: constants.DefaultDailyHours,
	}
}

// Subjects returns a copy of the current subject list. Chapter slices are
// copied too, so callers cannot reach back into builder state.
func (b *Builder) Subjects() []models.Subject {
	out := make([]models.Subject, len(b.subjects))
	for i, s := range b.subjects {
		chapters := make([]string, len(s.Chapters))
		copy(chapters, s.Chapters)
		s.Chapters = chapters
		out[i] = s
	}
	return out
}

// Subject returns a copy of the subject at index i. Out-of-range indexes are
// a programming error and panic.
func (b *Builder) Subject(i int) models.Subject {
	s := b.subjects[i]
	chapters := make([]string, len(s.Chapters))
	copy(chapters, s.Chapters)
	s.Chapters = chapters
	return s
}

// Len returns the number of subjects.
func (b *Builder) Len() int {
	return len(b.subjects)
}

// DailyHours returns the current daily-hours value.
func (b *Builder) DailyHours() int {
	return b.dailyHours
}

// AddSubject appends a blank subject with one empty chapter slot and returns
// its index.
func (b *Builder) AddSubject() int {
	b.subjects = append(b.subjects, newSubject())
	return len(b.subjects) - 1
}

// RemoveSubject removes the subject at index i. It refuses when only one
// subject remains, returning false; the list must never become empty.
func (b *Builder) RemoveSubject(i int) bool {
	if len(b.subjects) <= 1 {
		return false
	}
	b.subjects = append(b.subjects[:i], b.subjects[i+1:]...)
	return true
}

// SetName replaces the name of the subject at index i.
func (b *Builder) SetName(i int, name string) {
	b.subjects[i].Name = name
}

// SetExamDate replaces the exam date of the subject at index i. A nil date
// clears it.
func (b *Builder) SetExamDate(i int, date *time.Time) {
	b.subjects[i].ExamDate = date
}

// AddChapter appends an empty chapter slot to the subject at index i and
// returns the chapter's index.
func (b *Builder) AddChapter(i int) int {
	b.subjects[i].Chapters = append(b.subjects[i].Chapters, "")
	return len(b.subjects[i].Chapters) - 1
}

// RemoveChapter removes chapter j from subject i. It refuses when it is the
// subject's only remaining chapter, returning false.
func (b *Builder) RemoveChapter(i, j int) bool {
	chapters := b.subjects[i].Chapters
	if len(chapters) <= 1 {
		return false
	}
	b.subjects[i].Chapters = append(chapters[:j], chapters[j+1:]...)
	return true
}

// SetChapter replaces chapter j of subject i.
func (b *Builder) SetChapter(i, j int, value string) {
	b.subjects[i].Chapters[j] = value
}

// SetDailyHours stores the daily-hours value. The 1-24 acceptance range is a
// presentation-layer constraint and is not enforced here.
func (b *Builder) SetDailyHours(hours int) {
	b.dailyHours = hours
}

// Reset discards all edits and returns the builder to its initial state.
func (b *Builder) Reset() {
	b.subjects = []models.Subject{newSubject()}
	b.dailyHours = constants.DefaultDailyHours
}

// BuildRequest emits the wire-normalized payload. Chapters are trimmed and
// blank entries dropped, order preserved. Subjects with empty names are still
// included; the service is the authority for rejecting them. Exam dates
// serialize as YYYY-MM-DD and absent dates are omitted from the map.
// Duplicate trimmed subject names are rejected before any payload is built.
func (b *Builder) BuildRequest() (models.PlanRequest, error) {
	seen := make(map[string]bool, len(b.subjects))
	for _, s := range b.subjects {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		if seen[name] {
			return models.PlanRequest{}, fmt.Errorf("%w: %q", ErrDuplicateSubject, name)
		}
		seen[name] = true
	}

	req := models.PlanRequest{
		Subjects:   make([]string, 0, len(b.subjects)),
		Chapters:   make(map[string][]string, len(b.subjects)),
		ExamDates:  make(map[string]string, len(b.subjects)),
		DailyHours: b.dailyHours,
	}
	for _, s := range b.subjects {
		req.Subjects = append(req.Subjects, s.Name)
		chapters := make([]string, 0, len(s.Chapters))
		for _, c := range s.Chapters {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				chapters = append(chapters, trimmed)
			}
		}
		req.Chapters[s.Name] = chapters
		if s.ExamDate != nil {
			req.ExamDates[s.Name] = s.ExamDate.Format(models.DateFormat)
		}
	}
	return req, nil
}
