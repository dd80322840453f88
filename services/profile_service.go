package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/metrics"
	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/store"
)

// ProfileInput carries the five physiological fields plus name and goal from
// the profile form. Derived values are never accepted from the outside.
type ProfileInput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// ProfileService owns the singleton profile record.
type ProfileService struct {
	store *store.Store
}

func NewProfileService(st *store.Store) *ProfileService {
	return &ProfileService{store: st}
}

// Get returns the stored profile; the bool reports whether one was ever saved.
func (s *ProfileService) Get() (models.Profile, bool) {
	doc, _ := s.store.Load()
	return doc.Profile, doc.Profile.Populated()
}

// Save validates the input, recomputes the derived triple (bmr,
// daily_calories, target_calories) together, and overwrites the profile
// wholesale. Partial profile updates do not exist.
func (s *ProfileService) Save(in ProfileInput) (models.Profile, error) {
	if in.Age <= 0 || in.Age > 120 {
		return models.Profile{}, fmt.Errorf("age must be between 1 and 120")
	}
	if in.Weight <= 0 {
		return models.Profile{}, fmt.Errorf("weight must be > 0")
	}
	if in.Height <= 0 {
		return models.Profile{}, fmt.Errorf("height must be > 0")
	}
	if !models.ValidGender(in.Gender) {
		return models.Profile{}, fmt.Errorf("invalid gender %q", in.Gender)
	}
	if !models.ValidActivityLevel(in.ActivityLevel) {
		return models.Profile{}, fmt.Errorf("invalid activity level %q", in.ActivityLevel)
	}
	if !models.ValidGoal(in.Goal) {
		return models.Profile{}, fmt.Errorf("invalid goal %q", in.Goal)
	}

	bmr := metrics.BMR(in.Weight, in.Height, in.Age, in.Gender)
	daily := metrics.DailyCalories(bmr, in.ActivityLevel)
	target := metrics.TargetCalories(daily, in.Goal)

	doc, _ := s.store.Load()
	doc.Profile = models.Profile{
		Name:           in.Name,
		Age:            in.Age,
		Gender:         in.Gender,
		Weight:         in.Weight,
		Height:         in.Height,
		ActivityLevel:  in.ActivityLevel,
		Goal:           in.Goal,
		BMR:            bmr,
		DailyCalories:  daily,
		TargetCalories: target,
	}
	if err := s.store.Save(doc); err != nil {
		return models.Profile{}, err
	}

	logger.Info("profile saved",
		zap.String("name", in.Name),
		zap.Float64("bmr", bmr),
		zap.Float64("target_calories", target))

	return doc.Profile, nil
}
