package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/backend/internal/mocks"
	"github.com/nutritrack/backend/internal/models"
)

func onboardedStore() *mocks.MemoryStore {
	store := mocks.NewMemoryStore()
	store.Seed(&models.UserData{
		User: models.UserProfile{Name: "Alice", Email: "a@b.com"},
		Log:  models.DailyLog{},
	})
	return store
}

func addFoodBody(date string) map[string]interface{} {
	return map[string]interface{}{
		"date":      date,
		"meal_type": "lunch",
		"name":      "soup",
		"weight":    300,
		"nutrients": map[string]interface{}{
			"calories": 90,
			"protein":  4,
			"carbs":    12,
			"fat":      2,
		},
	}
}

func TestAddFoodBeforeOnboarding(t *testing.T) {
	router := setupTestRouter(t, mocks.NewMemoryStore(), nil)

	w := doJSON(t, router, "POST", "/api/v1/log/food", addFoodBody("2024-01-01"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddFoodAndReadBack(t *testing.T) {
	router := setupTestRouter(t, onboardedStore(), nil)

	w := doJSON(t, router, "POST", "/api/v1/log/food", addFoodBody("2024-01-01"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Item models.FoodItem `json:"item"`
		Date string          `json:"date"`
		Meal models.Meal     `json:"meal"`
	}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.Item.ID)
	assert.Equal(t, "2024-01-01", created.Date)
	require.Len(t, created.Meal.Lunch, 1)

	w = doJSON(t, router, "GET", "/api/v1/log/2024-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meal models.Meal
	decodeBody(t, w, &meal)
	require.Len(t, meal.Lunch, 1)
	assert.Equal(t, "soup", meal.Lunch[0].Name)
	assert.Empty(t, meal.Breakfast)
}

func TestGetDayWithNoEntries(t *testing.T) {
	router := setupTestRouter(t, onboardedStore(), nil)

	w := doJSON(t, router, "GET", "/api/v1/log/2024-12-24", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meal models.Meal
	decodeBody(t, w, &meal)
	assert.Equal(t, models.EmptyMeal(), meal)
}

func TestAddFoodValidation(t *testing.T) {
	router := setupTestRouter(t, onboardedStore(), nil)

	body := addFoodBody("2024-01-01")
	body["meal_type"] = "brunch"
	w := doJSON(t, router, "POST", "/api/v1/log/food", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = addFoodBody("01/01/2024")
	w = doJSON(t, router, "POST", "/api/v1/log/food", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = addFoodBody("2024-01-01")
	delete(body, "name")
	w = doJSON(t, router, "POST", "/api/v1/log/food", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDayRejectsBadDate(t *testing.T) {
	router := setupTestRouter(t, onboardedStore(), nil)

	w := doJSON(t, router, "GET", "/api/v1/log/not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDaySummaryEndpoint(t *testing.T) {
	store := mocks.NewMemoryStore()
	store.Seed(&models.UserData{
		User: models.UserProfile{Name: "Alice", Email: "a@b.com"},
		Goal: &models.Goal{Type: models.GoalMaintain, Calories: 2759, Protein: 207, Carbs: 276, Fat: 92},
		Log:  models.DailyLog{},
	})
	router := setupTestRouter(t, store, nil)

	w := doJSON(t, router, "POST", "/api/v1/log/food", addFoodBody("2024-01-01"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/log/2024-01-01/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Date   string           `json:"date"`
		Totals models.Nutrients `json:"totals"`
		Goal   *models.Goal     `json:"goal"`
		Progress map[string]struct {
			Consumed float64 `json:"consumed"`
			Goal     float64 `json:"goal"`
			Percent  float64 `json:"percent"`
		} `json:"progress"`
	}
	decodeBody(t, w, &summary)
	assert.Equal(t, 90, summary.Totals.Calories)
	require.NotNil(t, summary.Goal)
	require.Contains(t, summary.Progress, "calories")
	assert.InDelta(t, 90.0/2759.0, summary.Progress["calories"].Percent, 1e-9)
}
