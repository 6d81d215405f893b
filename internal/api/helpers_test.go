package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/backend/internal/mocks"
	"github.com/nutritrack/backend/internal/service"
)

// stubVision is a canned IVisionService for handler tests.
type stubVision struct {
	analysis *service.FoodAnalysis
	err      error
}

func (s *stubVision) AnalyzeFoodImage(ctx context.Context, base64Image string) (*service.FoodAnalysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func setupTestRouter(t *testing.T, store *mocks.MemoryStore, vision service.IVisionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profileService := service.NewProfileService(store)
	trackerService := service.NewTrackerService(store)
	goalService := service.NewGoalService(validator.New())

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewProfileHandler(profileService).RegisterRoutes(v1)
	NewGoalHandler(goalService, profileService).RegisterRoutes(v1)
	NewLogHandler(trackerService).RegisterRoutes(v1)
	NewScanHandler(vision, nil, trackerService).RegisterRoutes(v1)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func validMetrics() map[string]interface{} {
	return map[string]interface{}{
		"gender":         "male",
		"age":            30,
		"weight_kg":      80,
		"height_cm":      180,
		"activity_level": "moderate",
		"goal_type":      "maintain",
	}
}
