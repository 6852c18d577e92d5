package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
)

func TestBuilder_SubjectListNeverEmpty(t *testing.T) {
	b := NewBuilder()

	if b.Len() != 1 {
		t.Fatalf("expected new builder to hold 1 subject, got %d", b.Len())
	}
	if b.RemoveSubject(0) {
		t.Error("expected removal of the last subject to be refused")
	}
	if b.Len() != 1 {
		t.Errorf("expected 1 subject after refused removal, got %d", b.Len())
	}

	b.AddSubject()
	b.AddSubject()
	if b.Len() != 3 {
		t.Fatalf("expected 3 subjects after two adds, got %d", b.Len())
	}
	if !b.RemoveSubject(1) {
		t.Error("expected removal to succeed with multiple subjects")
	}
	if !b.RemoveSubject(1) {
		t.Error("expected removal to succeed with two subjects left")
	}
	if b.Len() != 1 {
		t.Errorf("expected net adds minus removals to leave 1 subject, got %d", b.Len())
	}
}

func TestBuilder_NewSubjectHasOneChapterSlot(t *testing.T) {
	b := NewBuilder()
	idx := b.AddSubject()
	s := b.Subject(idx)
	if len(s.Chapters) != 1 || s.Chapters[0] != "" {
		t.Errorf("expected one empty chapter slot, got %v", s.Chapters)
	}
	if s.ID == "" {
		t.Error("expected a synthetic subject ID to be assigned")
	}
	if s.ExamDate != nil {
		t.Error("expected no exam date on a new subject")
	}
}

func TestBuilder_RemoveChapterRefusesLast(t *testing.T) {
	b := NewBuilder()
	if b.RemoveChapter(0, 0) {
		t.Error("expected removal of the only chapter to be refused")
	}

	b.AddChapter(0)
	if !b.RemoveChapter(0, 0) {
		t.Error("expected removal to succeed with two chapters")
	}
	if len(b.Subject(0).Chapters) != 1 {
		t.Errorf("expected 1 chapter left, got %d", len(b.Subject(0).Chapters))
	}
}

func TestBuildRequest_FiltersBlankChapters(t *testing.T) {
	b := NewBuilder()
	b.SetName(0, "Math")
	b.SetChapter(0, 0, "a")
	b.AddChapter(0)
	b.SetChapter(0, 1, "")
	b.AddChapter(0)
	b.SetChapter(0, 2, " ")
	b.AddChapter(0)
	b.SetChapter(0, 3, "b")

	req, err := b.BuildRequest()
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, req.Chapters["Math"]); diff != "" {
		t.Errorf("chapter list mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRequest_Idempotent(t *testing.T) {
	b := NewBuilder()
	b.SetName(0, "Math")
	b.SetChapter(0, 0, "Algebra")
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	b.SetExamDate(0, &date)
	b.SetDailyHours(4)

	first, err := b.BuildRequest()
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	second, err := b.BuildRequest()
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated BuildRequest() not structurally equal (-first +second):\n%s", diff)
	}
}

func TestBuildRequest_ExamDates(t *testing.T) {
	b := NewBuilder()
	b.SetName(0, "Math")
	b.SetChapter(0, 0, "Algebra")
	idx := b.AddSubject()
	b.SetName(idx, "Physics")
	b.SetChapter(idx, 0, "Mechanics")
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	b.SetExamDate(0, &date)

	req, err := b.BuildRequest()
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	if got := req.ExamDates["Math"]; got != "2024-05-20" {
		t.Errorf("expected ISO exam date 2024-05-20, got %q", got)
	}
	if _, ok := req.ExamDates["Physics"]; ok {
		t.Error("expected subject without exam date to be omitted from exam_dates")
	}
}

func TestBuildRequest_EmptyNameStillIncluded(t *testing.T) {
	b := NewBuilder()
	b.SetChapter(0, 0, "Algebra")

	req, err := b.BuildRequest()
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	if len(req.Subjects) != 1 {
		t.Fatalf("expected unnamed subject to be included, got subjects %v", req.Subjects)
	}
}

func TestBuildRequest_RejectsDuplicateNames(t *testing.T) {
	b := NewBuilder()
	b.SetName(0, "Math")
	b.SetChapter(0, 0, "Algebra")
	idx := b.AddSubject()
	b.SetName(idx, " Math ")
	b.SetChapter(idx, 0, "Geometry")

	_, err := b.BuildRequest()
	if !errors.Is(err, ErrDuplicateSubject) {
		t.Errorf("expected ErrDuplicateSubject, got %v", err)
	}
}

func TestBuilder_Reset(t *testing.T) {
	b := NewBuilder()
	b.SetName(0, "Math")
	b.AddSubject()
	b.SetDailyHours(12)

	b.Reset()

	if b.Len() != 1 {
		t.Errorf("expected 1 subject after reset, got %d", b.Len())
	}
	if b.Subject(0).Name != "" {
		t.Errorf("expected blank subject after reset, got %q", b.Subject(0).Name)
	}
	if b.DailyHours() != constants.DefaultDailyHours {
		t.Errorf("expected default daily hours after reset, got %d", b.DailyHours())
	}
}

func TestBuilder_SubjectsReturnsCopies(t *testing.T) {
	b := NewBuilder()
	b.SetName(0, "Math")
	b.SetChapter(0, 0, "Algebra")

	subjects := b.Subjects()
	subjects[0].Name = "mutated"
	subjects[0].Chapters[0] = "mutated"

	if b.Subject(0).Name != "Math" || b.Subject(0).Chapters[0] != "Algebra" {
		t.Error("mutating the returned slice reached builder state")
	}
}
