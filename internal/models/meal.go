package models

import "fmt"

// MealType identifies one of the four fixed meal-time buckets.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
)

// MealTypes lists all categories in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// ParseMealType validates a raw meal type string.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// Meal holds the food logged for one calendar day, split into the four
// categories. Insertion order within a category is display order.
type Meal struct {
	Breakfast []FoodItem `json:"breakfast"`
	Lunch     []FoodItem `json:"lunch"`
	Dinner    []FoodItem `json:"dinner"`
	Snacks    []FoodItem `json:"snacks"`
}

// EmptyMeal returns the canonical meal with four empty categories. Categories
// are never nil so the serialized form always carries all four keys as arrays.
func EmptyMeal() Meal {
	return Meal{
		Breakfast: []FoodItem{},
		Lunch:     []FoodItem{},
		Dinner:    []FoodItem{},
		Snacks:    []FoodItem{},
	}
}

// Items returns the sequence for the given category.
func (m Meal) Items(t MealType) []FoodItem {
	switch t {
	case MealBreakfast:
		return m.Breakfast
	case MealLunch:
		return m.Lunch
	case MealDinner:
		return m.Dinner
	case MealSnacks:
		return m.Snacks
	}
	return nil
}

// WithFood returns a copy of the meal with item appended to the given
// category. The target slice is reallocated so the receiver's backing arrays
// are never written through.
func (m Meal) WithFood(t MealType, item FoodItem) Meal {
	appended := func(items []FoodItem) []FoodItem {
		next := make([]FoodItem, 0, len(items)+1)
		next = append(next, items...)
		return append(next, item)
	}
	switch t {
	case MealBreakfast:
		m.Breakfast = appended(m.Breakfast)
	case MealLunch:
		m.Lunch = appended(m.Lunch)
	case MealDinner:
		m.Dinner = appended(m.Dinner)
	case MealSnacks:
		m.Snacks = appended(m.Snacks)
	}
	return m
}

// Canonical replaces nil categories with empty slices. Documents decoded from
// storage may carry nulls; the rest of the code relies on non-nil slices.
func (m Meal) Canonical() Meal {
	if m.Breakfast == nil {
		m.Breakfast = []FoodItem{}
	}
	if m.Lunch == nil {
		m.Lunch = []FoodItem{}
	}
	if m.Dinner == nil {
		m.Dinner = []FoodItem{}
	}
	if m.Snacks == nil {
		m.Snacks = []FoodItem{}
	}
	return m
}

// Totals sums the nutrients across all four categories.
func (m Meal) Totals() Nutrients {
	total := ZeroNutrients()
	for _, t := range MealTypes {
		total = total.Add(SumFood(m.Items(t)))
	}
	return total
}
