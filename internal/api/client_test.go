package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

func sampleRequest() models.PlanRequest {
	return models.PlanRequest{
		Subjects:   []string{"Math"},
		Chapters:   map[string][]string{"Math": {"Algebra", "Geometry"}},
		ExamDates:  map[string]string{"Math": "2024-05-20"},
		DailyHours: 6,
	}
}

func TestGeneratePlan_Success(t *testing.T) {
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != constants.GeneratePlanPath {
			t.Errorf("expected path %s, got %s", constants.GeneratePlanPath, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"daily_plans": []map[string]any{
				{
					"date": "2024-02-10",
					"chapters": []map[string]any{
						{"name": "Algebra", "subject": "Math", "estimated_hours": 2.0, "priority": 1},
					},
					"total_hours": 2.0,
				},
			},
			"total_days":       1,
			"total_hours":      2.0,
			"subjects_covered": []string{"Math"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	resp, err := client.GeneratePlan(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}

	for _, key := range []string{"subjects", "chapters", "exam_dates", "daily_hours"} {
		if _, ok := gotBody[key]; !ok {
			t.Errorf("request body missing %q", key)
		}
	}

	if resp.TotalDays != 1 || len(resp.DailyPlans) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.DailyPlans[0].Date.Key() != "2024-02-10" {
		t.Errorf("expected date key 2024-02-10, got %s", resp.DailyPlans[0].Date.Key())
	}
	want := []models.Chapter{{Name: "Algebra", Subject: "Math", EstimatedHours: 2.0, Priority: 1}}
	if diff := cmp.Diff(want, resp.DailyPlans[0].Chapters); diff != "" {
		t.Errorf("chapters mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePlan_DateWithTimeComponent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"daily_plans": []map[string]any{
				{"date": "2024-02-10T00:00:00Z", "chapters": []any{}, "total_hours": 0},
			},
			"total_days": 1,
		})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	resp, err := client.GeneratePlan(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	if resp.DailyPlans[0].Date.Key() != "2024-02-10" {
		t.Errorf("expected RFC3339 date to index as 2024-02-10, got %s", resp.DailyPlans[0].Date.Key())
	}
}

func TestGeneratePlan_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "daily_hours must be positive"})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	_, err := client.GeneratePlan(context.Background(), sampleRequest())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", statusErr.StatusCode)
	}
	if statusErr.Detail != "daily_hours must be positive" {
		t.Errorf("expected service detail, got %q", statusErr.Detail)
	}
	if statusErr.Error() != "daily_hours must be positive" {
		t.Errorf("expected Error() to surface the detail, got %q", statusErr.Error())
	}
}

func TestGeneratePlan_MalformedErrorBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "internal server error"},
		{name: "json without detail", body: `{"message": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL, srv.Client())
			_, err := client.GeneratePlan(context.Background(), sampleRequest())

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected *StatusError, got %T: %v", err, err)
			}
			if statusErr.Detail != "" {
				t.Errorf("expected no detail for malformed body, got %q", statusErr.Detail)
			}
			if statusErr.Error() == "" {
				t.Error("expected a generic status message")
			}
		})
	}
}

func TestGeneratePlan_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := New(srv.URL, nil)
	_, err := client.GeneratePlan(context.Background(), sampleRequest())
	if err == nil {
		t.Fatal("expected an error for a refused connection")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Error("network failures must not be classified as service rejections")
	}
}
