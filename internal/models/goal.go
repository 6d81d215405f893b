package models

import "fmt"

// GoalType is the user's intent for the calorie target.
type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

// ParseGoalType validates a raw goal type string.
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(s) {
	case GoalLose, GoalMaintain, GoalGain:
		return GoalType(s), nil
	}
	return "", fmt.Errorf("unknown goal type %q", s)
}

// Goal is the daily calorie and macro target produced by the goal calculator.
// A new goal replaces the previous one, it is never mutated in place.
type Goal struct {
	Type     GoalType `json:"type"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
}
