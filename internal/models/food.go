package models

import "github.com/google/uuid"

// FoodItem is a single logged portion of food. Items are immutable once
// created and owned by the meal category they were appended to.
type FoodItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WeightG   float64   `json:"weight"`
	Nutrients Nutrients `json:"nutrients"`
}

// NewFoodItem creates a FoodItem with a freshly generated id.
func NewFoodItem(name string, weightG float64, nutrients Nutrients) FoodItem {
	return FoodItem{
		ID:        uuid.New().String(),
		Name:      name,
		WeightG:   weightG,
		Nutrients: nutrients,
	}
}
