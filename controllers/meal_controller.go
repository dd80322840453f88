package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/llm"
	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/services"
)

const maxImageBytes = 10 << 20 // 10 MiB upload cap

// MealController serves the food analysis page: analyze a photo, then save
// the confirmed analysis as a daily-log entry.
type MealController struct {
	meals    *services.MealService
	profiles *services.ProfileService
}

func NewMealController(meals *services.MealService, profiles *services.ProfileService) *MealController {
	return &MealController{meals: meals, profiles: profiles}
}

// AnalyzeResponse wraps a successful analysis.
type AnalyzeResponse struct {
	Analysis *llm.MealAnalysis `json:"analysis"`
}

// UnparsedResponse surfaces the collaborator's raw text when no JSON could
// be extracted. The entry is not persisted in that case.
type UnparsedResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

// Analyze accepts a multipart form with an "image" file plus optional
// "context" free text, sends it to the collaborator, and returns either the
// parsed analysis or the raw reply with an error annotation.
func (c *MealController) Analyze(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.profiles.Get(); !ok {
		respondError(w, http.StatusPreconditionFailed, "profile not set up")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read image")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	result, err := c.meals.Analyze(r.Context(), image, mimeType, r.FormValue("context"))
	if err != nil {
		logger.Error("meal analysis failed", zap.Error(err))
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	if !result.Parsed() {
		respondJSON(w, http.StatusUnprocessableEntity, UnparsedResponse{
			Error: "could not parse analysis from response",
			Raw:   result.Raw,
		})
		return
	}

	respondJSON(w, http.StatusOK, AnalyzeResponse{Analysis: result.Analysis})
}

// SaveMealRequest is the "Save to Daily Log" submission: the meal type plus
// the analysis the user confirmed.
type SaveMealRequest struct {
	MealType string           `json:"meal_type"`
	Analysis llm.MealAnalysis `json:"analysis"`
}

// Save appends the confirmed analysis as a meal entry.
func (c *MealController) Save(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.profiles.Get(); !ok {
		respondError(w, http.StatusPreconditionFailed, "profile not set up")
		return
	}

	var req SaveMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := c.meals.SaveEntry(req.MealType, req.Analysis)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// List returns meal entries, optionally filtered by ?date=YYYY-MM-DD.
func (c *MealController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.meals.List(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusPreconditionFailed, err.Error())
		return
	}
	if entries == nil {
		entries = []models.MealEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
