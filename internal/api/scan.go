package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/service"
)

// ScanHandler handles AI-assisted food-photo entries
type ScanHandler struct {
	vision   service.IVisionService
	archiver service.IScanArchiver
	tracker  service.ITrackerService
}

// NewScanHandler creates a new ScanHandler instance. vision may be nil when
// no API key is configured; the route then reports the feature as
// unavailable. archiver may be nil to disable photo archival.
func NewScanHandler(vision service.IVisionService, archiver service.IScanArchiver, tracker service.ITrackerService) *ScanHandler {
	return &ScanHandler{vision: vision, archiver: archiver, tracker: tracker}
}

// RegisterRoutes registers the scan route
func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scan", h.Scan)
}

// Scan analyzes a food photo and, on a confident result, appends the
// recognized item to the ledger. A failed or rejected analysis leaves the
// ledger untouched, and an abandoned request (client cancel) never writes.
func (h *ScanHandler) Scan(c *gin.Context) {
	if h.vision == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo analysis is not configured"})
		return
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, mealType, ok := resolveEntryTarget(c, req.Date, req.MealType)
	if !ok {
		return
	}

	analysis, err := h.vision.AnalyzeFoodImage(c.Request.Context(), req.Image)
	if err != nil {
		if errors.Is(err, service.ErrNotFood) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[ScanHandler] analysis failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to analyze food image, try again or enter manually"})
		return
	}

	item := analysis.FoodItem()
	data, err := h.tracker.LogFood(c.Request.Context(), date, mealType, item)
	if err != nil {
		if errors.Is(err, service.ErrNotOnboarded) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log food"})
		return
	}

	var archiveURL string
	if h.archiver != nil {
		archiveURL, err = h.archiver.ArchiveScan(c.Request.Context(), req.Image)
		if err != nil {
			log.Printf("[ScanHandler] failed to archive scan: %v", err)
		}
	}

	resp := gin.H{
		"item": item,
		"date": date,
		"meal": data.Log[date],
	}
	if archiveURL != "" {
		resp["archive_url"] = archiveURL
	}
	c.JSON(http.StatusCreated, resp)
}
