package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/services"
)

// ExerciseController serves the exercise tracker page.
type ExerciseController struct {
	exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercises: exercises}
}

// ExerciseRequest is shared by preview and log submissions.
type ExerciseRequest struct {
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
}

// PreviewResponse carries the computed burn for the "Calculate" step.
type PreviewResponse struct {
	CaloriesBurned float64 `json:"calories_burned"`
}

// Preview computes calories burned for the current profile weight without
// logging anything.
func (c *ExerciseController) Preview(w http.ResponseWriter, r *http.Request) {
	var req ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	burned, err := c.exercises.Preview(req.Type, req.Intensity, req.Duration)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotSet) {
			respondError(w, http.StatusPreconditionFailed, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, PreviewResponse{CaloriesBurned: burned})
}

// Log appends an exercise entry with its computed burn.
func (c *ExerciseController) Log(w http.ResponseWriter, r *http.Request) {
	var req ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := c.exercises.Log(req.Type, req.Intensity, req.Duration, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotSet) {
			respondError(w, http.StatusPreconditionFailed, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// List returns exercise entries, optionally filtered by ?date=YYYY-MM-DD.
func (c *ExerciseController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.exercises.List(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusPreconditionFailed, err.Error())
		return
	}
	if entries == nil {
		entries = []models.ExerciseEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
