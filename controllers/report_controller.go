package controllers

import (
	"net/http"

	"github.com/pmehta/healthtrack/services"
)

// ReportController serves the progress charts. Reports are gated on having
// data, not on the profile: with nothing logged yet the series are simply
// empty and the shell shows its "start logging" hint.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// CalorieTrend returns the daily intake time series for the line chart.
func (c *ReportController) CalorieTrend(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, c.reports.CalorieTrend())
}

// ExerciseDistribution returns exercise counts by type for the pie chart.
func (c *ReportController) ExerciseDistribution(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, c.reports.ExerciseDistribution())
}
