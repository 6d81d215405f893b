package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nutritrack/backend/config"
	"github.com/nutritrack/backend/internal/models"
)

// ErrNotFood is returned when the analysis completed but the image does not
// show an edible food item.
var ErrNotFood = errors.New("no food item could be identified in the image")

// FoodAnalysis is the structured result of a food-photo analysis.
type FoodAnalysis struct {
	IsFood               bool    `json:"isFood"`
	FoodName             string  `json:"foodName"`
	EstimatedWeightGrams float64 `json:"estimatedWeightGrams"`
	Calories             int     `json:"calories"`
	Protein              float64 `json:"protein"`
	Carbs                float64 `json:"carbs"`
	Fat                  float64 `json:"fat"`
}

// FoodItem maps a successful analysis into a ledger entry with a fresh id.
func (a *FoodAnalysis) FoodItem() models.FoodItem {
	return models.NewFoodItem(a.FoodName, a.EstimatedWeightGrams, models.Nutrients{
		Calories: a.Calories,
		Protein:  a.Protein,
		Carbs:    a.Carbs,
		Fat:      a.Fat,
	})
}

// VisionService handles interactions with the vision-capable chat API
type VisionService struct {
	apiKey   string
	apiURL   string
	model    string
	s3Config *config.S3Config
	client   *http.Client
}

// Ensure VisionService implements IVisionService
var _ IVisionService = (*VisionService)(nil)

// NewVisionService creates a new VisionService instance. s3Config may be nil;
// scanned photos are then not archived.
func NewVisionService(s3Config *config.S3Config) (*VisionService, error) {
	apiKey := os.Getenv("VISION_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("VISION_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("VISION_API_KEY or VISION_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("VISION_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}

	model := os.Getenv("VISION_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &VisionService{
		apiKey:   apiKey,
		apiURL:   apiURL,
		model:    model,
		s3Config: s3Config,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// visionMessage represents a message in the chat
type visionMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// visionRequest represents a request to the vision API
type visionRequest struct {
	Model          string            `json:"model"`
	Messages       []visionMessage   `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

const analysisSystemPrompt = `You are a nutrition analyst. Identify the food item in the image, estimate its weight in grams and its nutritional content for the portion shown. Respond only with JSON like {"isFood":true,"foodName":"Banana","estimatedWeightGrams":118,"calories":105,"protein":1.3,"carbs":27,"fat":0.4}. The calories field must be a whole number. If you cannot confidently identify a food, set isFood to false and all other fields to 0 or empty strings.`

// AnalyzeFoodImage sends a base64-encoded JPEG to the vision API and returns
// the structured analysis. It fails with ErrNotFood when the model reports
// the image does not contain food; the ledger must stay untouched on any
// failure.
func (s *VisionService) AnalyzeFoodImage(ctx context.Context, base64Image string) (*FoodAnalysis, error) {
	userContent, err := json.Marshal([]map[string]interface{}{
		{
			"type": "text",
			"text": "Identify the food item in this image and estimate its weight and nutrition.",
		},
		{
			"type": "image_url",
			"image_url": map[string]string{
				"url": "data:image/jpeg;base64," + base64Image,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image content: %w", err)
	}

	systemContent, err := json.Marshal(analysisSystemPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal system prompt: %w", err)
	}

	reqBody := visionRequest{
		Model: s.model,
		Messages: []visionMessage{
			{Role: "system", Content: systemContent},
			{Role: "user", Content: userContent},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: 0.1,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[VisionService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	var analysis FoodAnalysis
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}

	if !analysis.IsFood {
		return nil, ErrNotFood
	}

	return &analysis, nil
}

// ArchiveScan uploads the scanned photo to S3 under a generated key. Archival
// is best-effort: callers log failures and carry on.
func (s *VisionService) ArchiveScan(ctx context.Context, base64Image string) (string, error) {
	if s.s3Config == nil {
		return "", nil
	}

	imageData, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := fmt.Sprintf("scans/%s.jpg", uuid.New().String())
	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[VisionService] Archived scan to %s", publicURL)
	return publicURL, nil
}
