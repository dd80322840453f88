package llm

import "testing"

const validReply = `{"items": [{"name": "dosa", "calories": 250, "protein": "5g", "carbs": "40g", "fat": "8g"}], "total_calories": 250, "health_score": "moderate", "suggestions": "add a side of vegetables"}`

func TestParseMealAnalysisDirectJSON(t *testing.T) {
	result := ParseMealAnalysis(validReply)
	if !result.Parsed() {
		t.Fatalf("expected parse to succeed, raw: %s", result.Raw)
	}
	if result.Analysis.TotalCalories != 250 {
		t.Errorf("total_calories = %v, want 250", result.Analysis.TotalCalories)
	}
	if result.Analysis.HealthScore != "moderate" {
		t.Errorf("health_score = %q, want moderate", result.Analysis.HealthScore)
	}
	if len(result.Analysis.Items) != 1 || result.Analysis.Items[0].Name != "dosa" {
		t.Errorf("unexpected items: %+v", result.Analysis.Items)
	}
}

func TestParseMealAnalysisCodeFenced(t *testing.T) {
	result := ParseMealAnalysis("```json\n" + validReply + "\n```")
	if !result.Parsed() {
		t.Fatalf("expected fenced parse to succeed, raw: %s", result.Raw)
	}
	if result.Analysis.TotalCalories != 250 {
		t.Errorf("total_calories = %v, want 250", result.Analysis.TotalCalories)
	}
}

func TestParseMealAnalysisWrappedInCommentary(t *testing.T) {
	text := "Here's the analysis you asked for:\n\n" + validReply + "\n\nLet me know if you need anything else!"
	result := ParseMealAnalysis(text)
	if !result.Parsed() {
		t.Fatalf("expected extraction to succeed, raw: %s", result.Raw)
	}
	if result.Analysis.Suggestions != "add a side of vegetables" {
		t.Errorf("suggestions = %q", result.Analysis.Suggestions)
	}
}

func TestParseMealAnalysisTrailingComma(t *testing.T) {
	text := `The meal breaks down as {"items": [], "total_calories": 480, "health_score": "unhealthy", "suggestions": "smaller portion",}`
	result := ParseMealAnalysis(text)
	if !result.Parsed() {
		t.Fatalf("expected cleanup parse to succeed, raw: %s", result.Raw)
	}
	if result.Analysis.TotalCalories != 480 {
		t.Errorf("total_calories = %v, want 480", result.Analysis.TotalCalories)
	}
}

func TestParseMealAnalysisNoJSONReturnsRawUnchanged(t *testing.T) {
	text := "I can't tell what's in this image. Could you try a clearer photo?"
	result := ParseMealAnalysis(text)
	if result.Parsed() {
		t.Fatal("expected parse to fail")
	}
	if result.Raw != text {
		t.Errorf("raw text modified: %q", result.Raw)
	}
}

func TestParseMealAnalysisEmptyInput(t *testing.T) {
	if ParseMealAnalysis("").Parsed() {
		t.Fatal("expected empty input to fail")
	}
}

func TestExtractObjectFirstToLastBrace(t *testing.T) {
	if got := extractObject(`before {"a": {"b": 1}} after`); got != `{"a": {"b": 1}}` {
		t.Errorf("extractObject = %q", got)
	}
	if got := extractObject("no braces here"); got != "" {
		t.Errorf("extractObject = %q, want empty", got)
	}
}
