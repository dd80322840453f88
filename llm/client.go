package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pmehta/healthtrack/config"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5-20250929"

const maxResponseTokens = 1500

// mealPromptTemplate asks the collaborator for a JSON-shaped reply. The
// model is not guaranteed to honor it; ParseMealAnalysis handles replies
// wrapped in commentary or fences.
const mealPromptTemplate = `Analyze this food image and provide:
1. List each food item with estimated calories
2. Total calories for the entire meal
3. Nutritional breakdown (protein, carbs, fat, fiber)
4. Health assessment (healthy/moderate/unhealthy)
5. Suggestions for improvement

Format as JSON:
{
    "items": [{"name": "item", "calories": number, "protein": "Xg", "carbs": "Xg", "fat": "Xg"}],
    "total_calories": number,
    "health_score": "healthy/moderate/unhealthy",
    "suggestions": "text"
}`

// Client wraps the hosted generation API behind the two calls the app
// actually makes. The external service is treated as unreliable and
// untyped: both methods return free-form text.
type Client struct {
	api    anthropic.Client
	apiKey string
	model  string
}

// NewClient builds a client for the given model, falling back to
// DefaultModel when none is configured. The API key is checked at call
// time, not here, so the server can start without one configured.
func NewClient(model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	apiKey := config.GetEnv("ANTHROPIC_API_KEY", "")
	api := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	return &Client{
		api:    api,
		apiKey: apiKey,
		model:  model,
	}
}

// AnalyzeMeal sends the food image plus the structured prompt and returns
// the collaborator's raw reply text. Optional user context (portion size,
// cooking method) is appended to the prompt.
func (c *Client) AnalyzeMeal(ctx context.Context, image []byte, mimeType, extra string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not configured")
	}
	if len(image) == 0 {
		return "", fmt.Errorf("no image provided")
	}

	prompt := mealPromptTemplate
	if strings.TrimSpace(extra) != "" {
		prompt += "\n\nAdditional context: " + strings.TrimSpace(extra)
	}

	resp, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxResponseTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mimeType, base64.StdEncoding.EncodeToString(image)),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("meal analysis request failed: %w", err)
	}

	return textContent(resp), nil
}

// Advice sends a plain text prompt and returns the reply text. Used by the
// health coach, which builds its own profile-aware prompt.
func (c *Client) Advice(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not configured")
	}

	resp, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxResponseTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("advice request failed: %w", err)
	}

	return textContent(resp), nil
}

// textContent concatenates the text blocks of a response.
func textContent(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
