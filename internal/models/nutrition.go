package models

// Nutrients holds the macronutrient content of a portion of food.
// Calories are whole kcal, the macros are grams.
type Nutrients struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ZeroNutrients returns the additive identity for Nutrients.
func ZeroNutrients() Nutrients {
	return Nutrients{}
}

// Add returns the component-wise sum of two Nutrients values.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// SumFood folds Add over the nutrients of each item, starting from zero.
func SumFood(items []FoodItem) Nutrients {
	total := ZeroNutrients()
	for _, item := range items {
		total = total.Add(item.Nutrients)
	}
	return total
}
