package services

import (
	"sort"

	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/store"
)

// DailySummary is the dashboard view for one calendar day.
type DailySummary struct {
	Date             string                 `json:"date"`
	CaloriesConsumed float64                `json:"calories_consumed"`
	CaloriesBurned   float64                `json:"calories_burned"`
	NetCalories      float64                `json:"net_calories"`
	TargetCalories   float64                `json:"target_calories"`
	Remaining        float64                `json:"remaining"`
	Progress         float64                `json:"progress"`
	Meals            []models.MealEntry     `json:"meals"`
	Exercises        []models.ExerciseEntry `json:"exercises"`
}

// DayCalories is one point of the intake trend series.
type DayCalories struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
}

// TypeCount is one slice of the exercise distribution.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ReportService recomputes every view from the full document on each call.
// There is no incremental maintenance and no caching; the data volumes of a
// single-user log don't warrant either.
type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// DailySummary aggregates the given day's meals and exercises against the
// profile target. Progress is net/target clamped to [0, 1], or 0 when no
// positive target exists.
func (s *ReportService) DailySummary(date string) (*DailySummary, error) {
	doc, _ := s.store.Load()
	if !doc.Profile.Populated() {
		return nil, ErrProfileNotSet
	}

	summary := &DailySummary{
		Date:           date,
		TargetCalories: doc.Profile.TargetCalories,
		Meals:          []models.MealEntry{},
		Exercises:      []models.ExerciseEntry{},
	}

	for _, m := range doc.Meals {
		if m.Date == date {
			summary.Meals = append(summary.Meals, m)
			summary.CaloriesConsumed += m.TotalCalories
		}
	}
	for _, e := range doc.Exercises {
		if e.Date == date {
			summary.Exercises = append(summary.Exercises, e)
			summary.CaloriesBurned += e.CaloriesBurned
		}
	}

	summary.NetCalories = summary.CaloriesConsumed - summary.CaloriesBurned
	summary.Remaining = summary.TargetCalories - summary.NetCalories

	if summary.TargetCalories > 0 {
		progress := summary.NetCalories / summary.TargetCalories
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
		summary.Progress = progress
	}

	return summary, nil
}

// CalorieTrend groups all meals by calendar date and sums total_calories per
// day, ordered chronologically. This is the line-chart input.
func (s *ReportService) CalorieTrend() []DayCalories {
	doc, _ := s.store.Load()

	byDate := map[string]float64{}
	for _, m := range doc.Meals {
		byDate[m.Date] += m.TotalCalories
	}

	series := make([]DayCalories, 0, len(byDate))
	for date, total := range byDate {
		series = append(series, DayCalories{Date: date, TotalCalories: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// ExerciseDistribution counts exercises by type, most frequent first. This
// is the pie-chart input.
func (s *ReportService) ExerciseDistribution() []TypeCount {
	doc, _ := s.store.Load()

	byType := map[string]int{}
	for _, e := range doc.Exercises {
		byType[e.Type]++
	}

	dist := make([]TypeCount, 0, len(byType))
	for t, n := range byType {
		dist = append(dist, TypeCount{Type: t, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Type < dist[j].Type
	})
	return dist
}
