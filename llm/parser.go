package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pmehta/healthtrack/models"
)

// MealAnalysis is the JSON shape the prompt asks for.
type MealAnalysis struct {
	Items         []models.FoodItem `json:"items"`
	TotalCalories float64           `json:"total_calories"`
	HealthScore   string            `json:"health_score"`
	Suggestions   string            `json:"suggestions"`
}

// AnalysisResult is a tagged result: either a parsed analysis, or the
// collaborator's raw text when no parseable JSON object was found. Parsing
// never errors past this boundary; callers decide what to do with Raw.
type AnalysisResult struct {
	Analysis *MealAnalysis
	Raw      string
}

// Parsed reports whether the reply yielded a usable analysis.
func (r AnalysisResult) Parsed() bool {
	return r.Analysis != nil
}

var (
	// Matches ```json ... ``` or bare ``` ... ``` fences anywhere in the reply.
	codeFenceRegex = regexp.MustCompile("(?s)`{3}(?:json)?\\s*\\n?([\\s\\S]*?)\\n?`{3}")

	trailingCommaRegex = regexp.MustCompile(`,(\s*[}\]])`)
)

// ParseMealAnalysis extracts a meal analysis from the collaborator's reply.
// The model is asked for pure JSON but may wrap it in commentary or markdown
// fences, so parsing proceeds in stages: direct parse, fence removal,
// first-to-last-brace extraction, then trailing-comma cleanup. If every
// stage fails the raw text is returned verbatim.
func ParseMealAnalysis(text string) AnalysisResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return AnalysisResult{Raw: text}
	}

	if a := tryParse(trimmed); a != nil {
		return AnalysisResult{Analysis: a, Raw: text}
	}

	unfenced := strings.TrimSpace(codeFenceRegex.ReplaceAllString(trimmed, "$1"))
	if unfenced != trimmed {
		if a := tryParse(unfenced); a != nil {
			return AnalysisResult{Analysis: a, Raw: text}
		}
	}

	extracted := extractObject(unfenced)
	if extracted != "" {
		if a := tryParse(extracted); a != nil {
			return AnalysisResult{Analysis: a, Raw: text}
		}
		cleaned := trailingCommaRegex.ReplaceAllString(extracted, "$1")
		if a := tryParse(cleaned); a != nil {
			return AnalysisResult{Analysis: a, Raw: text}
		}
	}

	return AnalysisResult{Raw: text}
}

func tryParse(text string) *MealAnalysis {
	var a MealAnalysis
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		return nil
	}
	return &a
}

// extractObject returns everything from the first '{' through the last '}',
// or "" when no brace-delimited object exists in the text.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
