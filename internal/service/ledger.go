package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nutritrack/backend/internal/models"
)

// ErrNotOnboarded is returned when a ledger operation runs before a profile
// has been created.
var ErrNotOnboarded = errors.New("no user data: complete onboarding first")

// DateLayout is the ISO 8601 date form used as the ledger key.
const DateLayout = "2006-01-02"

// Today returns the current date in ledger-key form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate validates a ledger date key.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(DateLayout), nil
}

// GetMeal returns the stored meal for a date, or the canonical empty meal if
// nothing was logged. The log is never mutated.
func GetMeal(log models.DailyLog, date string) models.Meal {
	if meal, ok := log[date]; ok {
		return meal.Canonical()
	}
	return models.EmptyMeal()
}

// AddFood returns a new log snapshot with item appended to the given date and
// category. Untouched dates share structure with the input; callers never
// observe a change to the log they passed in.
func AddFood(log models.DailyLog, date string, mealType models.MealType, item models.FoodItem) models.DailyLog {
	next := make(models.DailyLog, len(log)+1)
	for d, m := range log {
		next[d] = m
	}
	next[date] = GetMeal(log, date).WithFood(mealType, item)
	return next
}

// NutrientProgress compares consumption against one target value. Percent is
// capped at 1.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// DaySummary is the aggregate view of one ledger day.
type DaySummary struct {
	Date     string                      `json:"date"`
	Totals   models.Nutrients            `json:"totals"`
	Goal     *models.Goal                `json:"goal,omitempty"`
	Progress map[string]NutrientProgress `json:"progress,omitempty"`
}

// TrackerService maintains the date-keyed ledger on top of the persisted
// document.
type TrackerService struct {
	store IUserDataStore
}

// NewTrackerService creates a new TrackerService instance.
func NewTrackerService(store IUserDataStore) *TrackerService {
	return &TrackerService{store: store}
}

// Ensure TrackerService implements ITrackerService
var _ ITrackerService = (*TrackerService)(nil)

// LogFood appends an entry to the ledger and persists the new snapshot. The
// write is all-or-nothing: a failed save leaves the stored document as it was.
func (s *TrackerService) LogFood(ctx context.Context, date string, mealType models.MealType, item models.FoodItem) (*models.UserData, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	if data == nil {
		return nil, ErrNotOnboarded
	}

	data.Log = AddFood(data.Log, date, mealType, item)
	if err := s.store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save user data: %w", err)
	}
	return data, nil
}

// MealForDate returns the meal logged for a date. A date with no entries
// yields the canonical empty meal, not an error.
func (s *TrackerService) MealForDate(ctx context.Context, date string) (models.Meal, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return models.Meal{}, fmt.Errorf("failed to load user data: %w", err)
	}
	if data == nil {
		return models.Meal{}, ErrNotOnboarded
	}
	return GetMeal(data.Log, date), nil
}

// DaySummary aggregates the totals for a date and, when a goal is set,
// the per-nutrient progress against it.
func (s *TrackerService) DaySummary(ctx context.Context, date string) (*DaySummary, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	if data == nil {
		return nil, ErrNotOnboarded
	}

	totals := GetMeal(data.Log, date).Totals()
	summary := &DaySummary{
		Date:   date,
		Totals: totals,
		Goal:   data.Goal,
	}
	if data.Goal != nil {
		summary.Progress = map[string]NutrientProgress{
			"calories": progress(float64(totals.Calories), float64(data.Goal.Calories)),
			"protein":  progress(totals.Protein, float64(data.Goal.Protein)),
			"carbs":    progress(totals.Carbs, float64(data.Goal.Carbs)),
			"fat":      progress(totals.Fat, float64(data.Goal.Fat)),
		}
	}
	return summary, nil
}

func progress(consumed, goal float64) NutrientProgress {
	p := NutrientProgress{Consumed: consumed, Goal: goal}
	if goal > 0 {
		p.Percent = consumed / goal
		if p.Percent > 1 {
			p.Percent = 1
		}
	}
	return p
}
