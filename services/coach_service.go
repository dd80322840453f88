package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/store"
)

// AdviceClient is the outbound collaborator contract for free-text advice.
type AdviceClient interface {
	Advice(ctx context.Context, prompt string) (string, error)
}

// CoachService answers wellness questions with the user's profile and recent
// activity folded into the prompt.
type CoachService struct {
	store *store.Store
	ai    AdviceClient
}

func NewCoachService(st *store.Store, ai AdviceClient) *CoachService {
	return &CoachService{store: st, ai: ai}
}

// Ask builds the personalized prompt and returns the collaborator's reply
// verbatim. Nothing is persisted.
func (s *CoachService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	doc, _ := s.store.Load()
	p := doc.Profile
	if !p.Populated() {
		return "", ErrProfileNotSet
	}

	recentMeals := len(doc.Meals)
	if recentMeals > 5 {
		recentMeals = 5
	}
	recentExercises := len(doc.Exercises)
	if recentExercises > 5 {
		recentExercises = 5
	}

	prompt := fmt.Sprintf(`User Profile:
- Age: %d
- Gender: %s
- Weight: %.1fkg
- Height: %.1fcm
- Goal: %s
- Activity Level: %s
- Target Calories: %.0f

Recent Activity:
- Recent meals logged: %d
- Recent exercises: %d

Question: %s

Provide personalized health advice based on the user's profile and question.`,
		p.Age, p.Gender, p.Weight, p.Height, p.Goal, p.ActivityLevel, p.TargetCalories,
		recentMeals, recentExercises, question)

	reply, err := s.ai.Advice(ctx, prompt)
	if err != nil {
		return "", err
	}

	logger.Info("coach advice generated", zap.Int("question_len", len(question)))
	return reply, nil
}
