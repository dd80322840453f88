package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/services"
)

// ProfileController serves the profile setup page.
type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// Get returns the stored profile. An empty object means no profile has been
// saved yet; the shell prefills its form defaults from that.
func (c *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	profile, _ := c.profiles.Get()
	respondJSON(w, http.StatusOK, profile)
}

// Save overwrites the profile wholesale and returns it with the freshly
// derived bmr, daily_calories and target_calories.
func (c *ProfileController) Save(w http.ResponseWriter, r *http.Request) {
	var in services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := c.profiles.Save(in)
	if err != nil {
		logger.Warn("profile save rejected", zap.Error(err))
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
