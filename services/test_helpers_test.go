package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/services"
	"github.com/pmehta/healthtrack/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "health_data.json"))
}

// seedProfile saves a 70kg profile so weight-dependent operations work.
func seedProfile(t *testing.T, st *store.Store) models.Profile {
	t.Helper()
	profile, err := services.NewProfileService(st).Save(services.ProfileInput{
		Name:          "Asha",
		Age:           25,
		Gender:        models.GenderMale,
		Weight:        70,
		Height:        170,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintainWeight,
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

// fakeAnalyzer stands in for the hosted collaborator.
type fakeAnalyzer struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeAnalyzer) AnalyzeMeal(ctx context.Context, image []byte, mimeType, extra string) (string, error) {
	f.lastPrompt = extra
	return f.reply, f.err
}

func (f *fakeAnalyzer) Advice(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}
