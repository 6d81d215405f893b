package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/backend/internal/mocks"
	"github.com/nutritrack/backend/internal/models"
)

func TestGoalPreview(t *testing.T) {
	store := mocks.NewMemoryStore()
	router := setupTestRouter(t, store, nil)

	w := doJSON(t, router, "POST", "/api/v1/goal/preview", validMetrics())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var goal models.Goal
	decodeBody(t, w, &goal)
	assert.Equal(t, models.GoalMaintain, goal.Type)
	assert.Equal(t, 2759, goal.Calories)
	assert.Equal(t, 207, goal.Protein)
	assert.Equal(t, 276, goal.Carbs)
	assert.Equal(t, 92, goal.Fat)

	// Preview must not persist anything.
	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGoalPreviewRejectsInvalidMetrics(t *testing.T) {
	router := setupTestRouter(t, mocks.NewMemoryStore(), nil)

	metrics := validMetrics()
	metrics["age"] = -1
	w := doJSON(t, router, "POST", "/api/v1/goal/preview", metrics)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	metrics = validMetrics()
	metrics["activity_level"] = "heroic"
	w = doJSON(t, router, "POST", "/api/v1/goal/preview", metrics)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetGoalPreservesProfile(t *testing.T) {
	store := mocks.NewMemoryStore()
	store.Seed(&models.UserData{
		User: models.UserProfile{Name: "Alice", Email: "a@b.com"},
		Log:  models.DailyLog{},
	})
	router := setupTestRouter(t, store, nil)

	metrics := validMetrics()
	metrics["goal_type"] = "lose"
	w := doJSON(t, router, "POST", "/api/v1/goal", metrics)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data models.UserData
	decodeBody(t, w, &data)
	assert.Equal(t, "Alice", data.User.Name)
	require.NotNil(t, data.Goal)
	assert.Equal(t, models.GoalLose, data.Goal.Type)
	assert.Equal(t, 2259, data.Goal.Calories)
}

func TestSetGoalWithoutProfileSynthesizesFallback(t *testing.T) {
	store := mocks.NewMemoryStore()
	router := setupTestRouter(t, store, nil)

	w := doJSON(t, router, "POST", "/api/v1/goal", validMetrics())
	require.Equal(t, http.StatusOK, w.Code)

	var data models.UserData
	decodeBody(t, w, &data)
	assert.Equal(t, "User", data.User.Name)
	assert.Equal(t, "", data.User.Email)
	require.NotNil(t, data.Goal)
}
