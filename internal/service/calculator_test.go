package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/backend/internal/models"
)

func baseMetrics() BodyMetrics {
	return BodyMetrics{
		Gender:        "male",
		Age:           30,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "moderate",
		GoalType:      "maintain",
	}
}

func TestCalculateBMR(t *testing.T) {
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.InDelta(t, 1780, CalculateBMR("male", 80, 180, 30), 1e-9)
	// Female formula differs by the -161 offset instead of +5.
	assert.InDelta(t, 1614, CalculateBMR("female", 80, 180, 30), 1e-9)
}

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"sedentary", 2136},
		{"light", 2448},
		{"moderate", 2759},
		{"active", 3071},
		{"very_active", 3382},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateTDEE(1780, tt.level), "level %s", tt.level)
	}
}

func TestCalculateGoalMacrosReferenceCase(t *testing.T) {
	goal := CalculateGoalMacros(2759, models.GoalMaintain)

	assert.Equal(t, 2759, goal.Calories)
	assert.Equal(t, 207, goal.Protein)
	assert.Equal(t, 276, goal.Carbs)
	assert.Equal(t, 92, goal.Fat)
}

func TestGoalTypeOrdering(t *testing.T) {
	tdee := 2759
	lose := CalculateGoalMacros(tdee, models.GoalLose)
	maintain := CalculateGoalMacros(tdee, models.GoalMaintain)
	gain := CalculateGoalMacros(tdee, models.GoalGain)

	assert.Equal(t, maintain.Calories-500, lose.Calories)
	assert.Equal(t, maintain.Calories+500, gain.Calories)
	assert.Less(t, lose.Calories, maintain.Calories)
	assert.Less(t, maintain.Calories, gain.Calories)
}

func TestMacroSplitMatchesCalories(t *testing.T) {
	// protein*4 + carbs*4 + fat*9 should reproduce the calorie target within
	// the rounding tolerance of three independent roundings.
	cases := []struct {
		metrics BodyMetrics
	}{
		{baseMetrics()},
		{BodyMetrics{Gender: "female", Age: 45, WeightKg: 62.5, HeightCm: 166, ActivityLevel: "light", GoalType: "lose"}},
		{BodyMetrics{Gender: "male", Age: 19, WeightKg: 95, HeightCm: 192, ActivityLevel: "very_active", GoalType: "gain"}},
	}

	svc := NewGoalService(validator.New())
	for _, tc := range cases {
		goal, err := svc.Calculate(tc.metrics)
		require.NoError(t, err)

		fromMacros := goal.Protein*4 + goal.Carbs*4 + goal.Fat*9
		diff := fromMacros - goal.Calories
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 3, "macros %+v drift from %d kcal", goal, goal.Calories)
	}
}

func TestCalculateRejectsInvalidMetrics(t *testing.T) {
	svc := NewGoalService(validator.New())

	invalid := []func(*BodyMetrics){
		func(m *BodyMetrics) { m.Age = 0 },
		func(m *BodyMetrics) { m.Age = -4 },
		func(m *BodyMetrics) { m.WeightKg = 0 },
		func(m *BodyMetrics) { m.HeightCm = -170 },
		func(m *BodyMetrics) { m.Gender = "other" },
		func(m *BodyMetrics) { m.ActivityLevel = "extreme" },
		func(m *BodyMetrics) { m.GoalType = "bulk" },
	}

	for i, mutate := range invalid {
		m := baseMetrics()
		mutate(&m)
		_, err := svc.Calculate(m)
		assert.Error(t, err, "case %d should fail validation", i)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	svc := NewGoalService(validator.New())

	first, err := svc.Calculate(baseMetrics())
	require.NoError(t, err)
	second, err := svc.Calculate(baseMetrics())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
