package service

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/nutritrack/backend/internal/models"
)

// BodyMetrics are the inputs to the goal calculator. Values are validated
// before any arithmetic runs; the calculator itself never clamps.
type BodyMetrics struct {
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	Age           int     `json:"age" validate:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" validate:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
	GoalType      string  `json:"goal_type" validate:"required,oneof=lose maintain gain"`
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// calorieAdjustment is the fixed deficit/surplus applied to TDEE for the
// lose/gain goal types.
const calorieAdjustment = 500

// Macro split: 30% protein, 40% carbs, 30% fat of the calorie target.
const (
	proteinCalorieShare = 0.30
	carbCalorieShare    = 0.40
	fatCalorieShare     = 0.30

	caloriesPerGramProtein = 4
	caloriesPerGramCarb    = 4
	caloriesPerGramFat     = 9
)

// CalculateBMR computes the basal metabolic rate with the Mifflin-St Jeor
// equation. Gender must be "male" or "female".
func CalculateBMR(gender string, weightKg, heightCm float64, age int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales a BMR by the activity multiplier and rounds to the
// nearest whole kcal.
func CalculateTDEE(bmr float64, activityLevel string) int {
	return int(math.Round(bmr * activityMultipliers[activityLevel]))
}

// CalculateGoalMacros derives the daily target from a TDEE and an intent:
// lose subtracts 500 kcal, gain adds 500, maintain keeps the TDEE. The macro
// grams are each rounded independently.
func CalculateGoalMacros(tdee int, goalType models.GoalType) models.Goal {
	target := tdee
	switch goalType {
	case models.GoalLose:
		target = tdee - calorieAdjustment
	case models.GoalGain:
		target = tdee + calorieAdjustment
	}

	kcal := float64(target)
	return models.Goal{
		Type:     goalType,
		Calories: target,
		Protein:  int(math.Round(kcal * proteinCalorieShare / caloriesPerGramProtein)),
		Carbs:    int(math.Round(kcal * carbCalorieShare / caloriesPerGramCarb)),
		Fat:      int(math.Round(kcal * fatCalorieShare / caloriesPerGramFat)),
	}
}

// GoalService validates body metrics and runs the goal calculation.
type GoalService struct {
	validate *validator.Validate
}

// NewGoalService creates a new GoalService instance.
func NewGoalService(validate *validator.Validate) *GoalService {
	return &GoalService{validate: validate}
}

// Ensure GoalService implements IGoalService
var _ IGoalService = (*GoalService)(nil)

// Calculate turns validated body metrics into a complete Goal record.
func (s *GoalService) Calculate(metrics BodyMetrics) (models.Goal, error) {
	if err := s.validate.Struct(metrics); err != nil {
		return models.Goal{}, fmt.Errorf("invalid body metrics: %w", err)
	}

	goalType, err := models.ParseGoalType(metrics.GoalType)
	if err != nil {
		return models.Goal{}, err
	}

	bmr := CalculateBMR(metrics.Gender, metrics.WeightKg, metrics.HeightCm, metrics.Age)
	tdee := CalculateTDEE(bmr, metrics.ActivityLevel)
	return CalculateGoalMacros(tdee, goalType), nil
}
