package planner

import (
	"context"

	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// PlanService is the remote planning boundary. api.Client satisfies it; tests
// substitute stubs.
type PlanService interface {
	GeneratePlan(ctx context.Context, req models.PlanRequest) (*models.StudyPlanResponse, error)
}
