package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/store"
)

// metValues maps (exercise type, intensity) to its MET constant. The form
// restricts inputs to these keys; anything else is rejected with an error
// before any arithmetic happens.
var metValues = map[string]map[string]float64{
	"Running":         {models.IntensityLow: 8, models.IntensityModerate: 11, models.IntensityHigh: 16},
	"Walking":         {models.IntensityLow: 3, models.IntensityModerate: 4, models.IntensityHigh: 5},
	"Cycling":         {models.IntensityLow: 6, models.IntensityModerate: 8, models.IntensityHigh: 12},
	"Swimming":        {models.IntensityLow: 6, models.IntensityModerate: 8, models.IntensityHigh: 11},
	"Weight Training": {models.IntensityLow: 3, models.IntensityModerate: 5, models.IntensityHigh: 8},
	"Yoga":            {models.IntensityLow: 2, models.IntensityModerate: 3, models.IntensityHigh: 4},
	"Other":           {models.IntensityLow: 3, models.IntensityModerate: 5, models.IntensityHigh: 7},
}

// ExerciseTypes lists the supported types in form order.
var ExerciseTypes = []string{
	"Running", "Walking", "Cycling", "Swimming", "Weight Training", "Yoga", "Other",
}

// CaloriesBurned computes MET * weight(kg) * duration(min) / 60 for a known
// (type, intensity) pair.
func CaloriesBurned(exerciseType, intensity string, durationMin int, weightKg float64) (float64, error) {
	intensities, ok := metValues[exerciseType]
	if !ok {
		return 0, fmt.Errorf("unknown exercise type %q", exerciseType)
	}
	met, ok := intensities[intensity]
	if !ok {
		return 0, fmt.Errorf("unknown intensity %q", intensity)
	}
	if durationMin <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return met * weightKg * float64(durationMin) / 60, nil
}

// ExerciseService computes burns from the profile weight and owns the
// append-only exercise log.
type ExerciseService struct {
	store *store.Store
}

func NewExerciseService(st *store.Store) *ExerciseService {
	return &ExerciseService{store: st}
}

// Preview computes the burn for the current profile weight without
// persisting anything (the form's "Calculate" step).
func (s *ExerciseService) Preview(exerciseType, intensity string, durationMin int) (float64, error) {
	doc, _ := s.store.Load()
	if !doc.Profile.Populated() {
		return 0, ErrProfileNotSet
	}
	return CaloriesBurned(exerciseType, intensity, durationMin, doc.Profile.Weight)
}

// Log computes the burn and appends an exercise entry.
func (s *ExerciseService) Log(exerciseType, intensity string, durationMin int, notes string) (models.ExerciseEntry, error) {
	doc, _ := s.store.Load()
	if !doc.Profile.Populated() {
		return models.ExerciseEntry{}, ErrProfileNotSet
	}

	burned, err := CaloriesBurned(exerciseType, intensity, durationMin, doc.Profile.Weight)
	if err != nil {
		return models.ExerciseEntry{}, err
	}

	entry := models.ExerciseEntry{
		Date:           models.Today(),
		Type:           exerciseType,
		Duration:       durationMin,
		Intensity:      intensity,
		CaloriesBurned: burned,
		Notes:          notes,
		Timestamp:      time.Now().Format(time.RFC3339),
	}

	doc.Exercises = append(doc.Exercises, entry)
	if err := s.store.Save(doc); err != nil {
		return models.ExerciseEntry{}, err
	}

	logger.Info("exercise logged",
		zap.String("type", exerciseType),
		zap.String("intensity", intensity),
		zap.Int("duration_min", durationMin),
		zap.Float64("calories_burned", burned))

	return entry, nil
}

// List returns exercise entries, optionally filtered to one calendar day.
// Like every view but profile setup, it requires a populated profile.
func (s *ExerciseService) List(date string) ([]models.ExerciseEntry, error) {
	doc, _ := s.store.Load()
	if !doc.Profile.Populated() {
		return nil, ErrProfileNotSet
	}
	if date == "" {
		return doc.Exercises, nil
	}
	filtered := []models.ExerciseEntry{}
	for _, e := range doc.Exercises {
		if e.Date == date {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
