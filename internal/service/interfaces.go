package service

import (
	"context"

	"github.com/nutritrack/backend/internal/models"
)

// IUserDataStore is the load/save contract over the persisted document.
// The core never talks to the key-value store directly.
type IUserDataStore interface {
	// Load returns the persisted document, or (nil, nil) before onboarding.
	Load(ctx context.Context) (*models.UserData, error)
	Save(ctx context.Context, data *models.UserData) error
}

// IGoalService defines the goal calculation operations.
type IGoalService interface {
	Calculate(metrics BodyMetrics) (models.Goal, error)
}

// IProfileService defines onboarding and goal lifecycle operations.
type IProfileService interface {
	Onboard(ctx context.Context, name, email string) (*models.UserData, error)
	SetGoal(ctx context.Context, goal models.Goal) (*models.UserData, error)
	UserData(ctx context.Context) (*models.UserData, error)
}

// ITrackerService defines the daily ledger operations.
type ITrackerService interface {
	LogFood(ctx context.Context, date string, mealType models.MealType, item models.FoodItem) (*models.UserData, error)
	MealForDate(ctx context.Context, date string) (models.Meal, error)
	DaySummary(ctx context.Context, date string) (*DaySummary, error)
}

// IVisionService defines the external food-photo analysis collaborator.
type IVisionService interface {
	AnalyzeFoodImage(ctx context.Context, base64Image string) (*FoodAnalysis, error)
}

// IScanArchiver stores scanned photos out of band. Archival is best-effort
// and never blocks a scan.
type IScanArchiver interface {
	ArchiveScan(ctx context.Context, base64Image string) (string, error)
}
