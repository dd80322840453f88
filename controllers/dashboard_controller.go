package controllers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/services"
)

// DashboardController serves the daily summary view.
type DashboardController struct {
	reports *services.ReportService
}

func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{reports: reports}
}

// Get returns the daily summary for ?date=YYYY-MM-DD, defaulting to today.
func (c *DashboardController) Get(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = models.Today()
	}

	summary, err := c.reports.DailySummary(date)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotSet) {
			respondError(w, http.StatusPreconditionFailed, err.Error())
			return
		}
		logger.Error("daily summary failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
