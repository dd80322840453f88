package store

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/models"
)

// Store owns the single JSON document on disk. All access goes through
// whole-document Load/Save; there is no partial update API and no locking.
// Single user, single process, last write wins.
type Store struct {
	path string

	recovered bool
}

// New returns a store backed by the given file path. The file is not touched
// until the first Load or Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document. A missing, unreadable, or corrupt file is
// not an error: the caller gets a fresh default document and recovered=true
// so the condition can be surfaced instead of silently masking data loss.
func (s *Store) Load() (*models.Document, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("health data file unreadable, starting from defaults",
				zap.String("path", s.path), zap.Error(err))
			s.recovered = true
			return models.NewDocument(), true
		}
		// No file yet is the normal first-run case.
		return models.NewDocument(), true
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("health data file corrupt, starting from defaults",
			zap.String("path", s.path), zap.Error(err))
		s.recovered = true
		return models.NewDocument(), true
	}

	// Normalize nil collections from hand-edited files so appends and
	// serialization behave the same as on a fresh document.
	if doc.Meals == nil {
		doc.Meals = []models.MealEntry{}
	}
	if doc.Exercises == nil {
		doc.Exercises = []models.ExerciseEntry{}
	}
	if doc.Goals == nil {
		doc.Goals = map[string]interface{}{}
	}

	return doc, false
}

// Save serializes the entire document, overwriting any prior content.
func (s *Store) Save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal health data: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write health data: %w", err)
	}
	return nil
}

// Recovered reports whether any Load since startup fell back to defaults
// because the backing file existed but could not be read or parsed.
func (s *Store) Recovered() bool {
	return s.recovered
}
