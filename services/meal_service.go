package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/llm"
	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/store"
)

// MealAnalyzer is the outbound collaborator contract for food images. The
// reply is free-form text; parsing happens on our side.
type MealAnalyzer interface {
	AnalyzeMeal(ctx context.Context, image []byte, mimeType, extra string) (string, error)
}

// MealService runs photo analysis and owns the append-only meal log.
type MealService struct {
	store *store.Store
	ai    MealAnalyzer
}

func NewMealService(st *store.Store, ai MealAnalyzer) *MealService {
	return &MealService{store: st, ai: ai}
}

// Analyze sends the image to the collaborator and attempts to extract the
// JSON analysis from the reply. A failed parse is not an error: the raw text
// comes back in the result and nothing is persisted. The returned error
// covers transport and configuration failures only.
func (s *MealService) Analyze(ctx context.Context, image []byte, mimeType, extra string) (llm.AnalysisResult, error) {
	reply, err := s.ai.AnalyzeMeal(ctx, image, mimeType, extra)
	if err != nil {
		return llm.AnalysisResult{}, err
	}

	result := llm.ParseMealAnalysis(reply)
	if !result.Parsed() {
		logger.Warn("meal analysis reply had no parseable JSON",
			zap.Int("reply_len", len(reply)))
	}
	return result, nil
}

// SaveEntry appends a meal built from a parsed analysis to the daily log.
// Entries are append-only: no edit or delete exists anywhere in the system.
func (s *MealService) SaveEntry(mealType string, analysis llm.MealAnalysis) (models.MealEntry, error) {
	if !models.ValidMealType(mealType) {
		return models.MealEntry{}, fmt.Errorf("invalid meal type %q", mealType)
	}

	items := analysis.Items
	if items == nil {
		items = []models.FoodItem{}
	}

	entry := models.MealEntry{
		Date:          models.Today(),
		MealType:      mealType,
		Items:         items,
		TotalCalories: analysis.TotalCalories,
		HealthScore:   analysis.HealthScore,
		Suggestions:   analysis.Suggestions,
		Timestamp:     time.Now().Format(time.RFC3339),
	}

	doc, _ := s.store.Load()
	doc.Meals = append(doc.Meals, entry)
	if err := s.store.Save(doc); err != nil {
		return models.MealEntry{}, err
	}

	logger.Info("meal saved to daily log",
		zap.String("meal_type", mealType),
		zap.Float64("total_calories", entry.TotalCalories))

	return entry, nil
}

// List returns meal entries, optionally filtered to one calendar day. Like
// every view but profile setup, it requires a populated profile.
func (s *MealService) List(date string) ([]models.MealEntry, error) {
	doc, _ := s.store.Load()
	if !doc.Profile.Populated() {
		return nil, ErrProfileNotSet
	}
	if date == "" {
		return doc.Meals, nil
	}
	filtered := []models.MealEntry{}
	for _, m := range doc.Meals {
		if m.Date == date {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}
