package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/services"
)

// CoachController serves the AI health coach page.
type CoachController struct {
	coach *services.CoachService
}

func NewCoachController(coach *services.CoachService) *CoachController {
	return &CoachController{coach: coach}
}

type CoachRequest struct {
	Question string `json:"question"`
}

type CoachResponse struct {
	Advice string `json:"advice"`
}

// Ask forwards the question to the collaborator with the profile context
// folded in and returns the advice text verbatim.
func (c *CoachController) Ask(w http.ResponseWriter, r *http.Request) {
	var req CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respondError(w, http.StatusBadRequest, "Question is required")
		return
	}

	advice, err := c.coach.Ask(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotSet) {
			respondError(w, http.StatusPreconditionFailed, err.Error())
			return
		}
		logger.Error("coach advice failed", zap.Error(err))
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CoachResponse{Advice: advice})
}
