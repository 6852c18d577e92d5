package projection

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/studyplanhq/studyplan-cli/internal/models"
)

func date(key string) models.Date {
	t, err := time.Parse(models.DateFormat, key)
	if err != nil {
		panic(err)
	}
	return models.Date{Time: t}
}

func TestTable_GroupsCarrySubtotalVerbatim(t *testing.T) {
	// Subtotal deliberately disagrees with the chapter sum: the projector
	// must carry the service value through without recomputation.
	plan := &models.StudyPlanResponse{
		DailyPlans: []models.DailyPlan{
			{
				Date: date("2024-02-10"),
				Chapters: []models.Chapter{
					{Name: "Algebra", Subject: "Math", EstimatedHours: 2.0, Priority: 1},
					{Name: "Geometry", Subject: "Math", EstimatedHours: 1.0, Priority: 2},
				},
				TotalHours: 99.5,
			},
		},
	}

	var table Table
	rows := table.Rows(plan)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row group, got %d", len(rows))
	}
	if len(rows[0].Chapters) != 2 {
		t.Errorf("expected 2 chapter rows, got %d", len(rows[0].Chapters))
	}
	if rows[0].Subtotal != 99.5 {
		t.Errorf("expected subtotal 99.5 carried verbatim, got %v", rows[0].Subtotal)
	}
	if rows[0].Date.Key() != "2024-02-10" {
		t.Errorf("expected group date 2024-02-10, got %s", rows[0].Date.Key())
	}
}

func TestTable_PreservesResponseOrdering(t *testing.T) {
	plan := &models.StudyPlanResponse{
		DailyPlans: []models.DailyPlan{
			{Date: date("2024-01-03"), Chapters: []models.Chapter{{Name: "b"}}},
			{Date: date("2024-01-01"), Chapters: []models.Chapter{{Name: "a"}, {Name: "c"}}},
		},
	}

	var table Table
	rows := table.Rows(plan)

	// Even out-of-order responses are rendered as-is; ordering is the
	// service's contract, not the projector's.
	if rows[0].Date.Key() != "2024-01-03" || rows[1].Date.Key() != "2024-01-01" {
		t.Error("expected response ordering to be preserved")
	}
	if rows[1].Chapters[0].Name != "a" || rows[1].Chapters[1].Name != "c" {
		t.Error("expected chapter order within a day to be preserved")
	}
}

func TestTable_RepeatedProjectionIsStable(t *testing.T) {
	plan := &models.StudyPlanResponse{
		DailyPlans: []models.DailyPlan{
			{
				Date:       date("2024-02-10"),
				Chapters:   []models.Chapter{{Name: "Algebra", Subject: "Math", EstimatedHours: 2.0, Priority: 1}},
				TotalHours: 2.0,
			},
		},
	}

	var table Table
	first := table.Rows(plan)

	// Repeated projection, as caused by view toggling, must neither rebuild
	// nor mutate anything.
	for i := 0; i < 5; i++ {
		again := table.Rows(plan)
		if &again[0] != &first[0] {
			t.Fatal("expected cached rows for the same response reference")
		}
	}

	want := []models.DailyPlan{
		{
			Date:       date("2024-02-10"),
			Chapters:   []models.Chapter{{Name: "Algebra", Subject: "Math", EstimatedHours: 2.0, Priority: 1}},
			TotalHours: 2.0,
		},
	}
	if diff := cmp.Diff(want, plan.DailyPlans); diff != "" {
		t.Errorf("response mutated by projection (-want +got):\n%s", diff)
	}
}

func TestTable_NilPlanYieldsNoRows(t *testing.T) {
	var table Table
	if rows := table.Rows(nil); len(rows) != 0 {
		t.Errorf("expected no rows for nil plan, got %d", len(rows))
	}
}
