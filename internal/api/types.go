package api

// OnboardRequest carries the onboarding form fields. Email is stored as
// plain text; format checks stay at the form boundary.
type OnboardRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// NutrientsPayload mirrors the nutrients block of a manual food entry.
type NutrientsPayload struct {
	Calories int     `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

// AddFoodRequest is a manual ledger entry. Date defaults to today when
// omitted.
type AddFoodRequest struct {
	Date      string           `json:"date"`
	MealType  string           `json:"meal_type" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	WeightG   float64          `json:"weight" binding:"gte=0"`
	Nutrients NutrientsPayload `json:"nutrients"`
}

// ScanRequest is a photo-analysis entry: a base64-encoded JPEG plus the
// category the recognized food should land in.
type ScanRequest struct {
	Image    string `json:"image" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	Date     string `json:"date"`
}
