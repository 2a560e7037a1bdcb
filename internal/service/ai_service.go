package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"whatshouldweeat/internal/config"
	"whatshouldweeat/internal/model"
)

// AIService rewords question and result text via the OpenAI API. It
// only ever changes display text: category and outcome tokens come from
// the engine's own tables, and every call degrades to the engine's text
// when the API is unconfigured, unreachable, or returns garbage.
type AIService struct {
	config *config.AIConfig
	client *http.Client
}

// NewAIService creates a new AI service
func NewAIService() *AIService {
	cfg := config.DefaultAIConfig()
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// NewAIServiceWith allows tests to point the service at a fake API
func NewAIServiceWith(cfg *config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// IsEnabled reports whether an API key is configured
func (s *AIService) IsEnabled() bool {
	return s.config.IsEnabled()
}

// RewordQuestion asks the model for a fresh phrasing of a bank
// question. The categories and id of the base question are always
// preserved; only prompt, emoji and option text may change.
func (s *AIService) RewordQuestion(ctx context.Context, base model.Question, meal model.MealType, previousAnswers []string, questionIndex int) model.Question {
	if !s.config.IsEnabled() {
		return base
	}

	prompt := fmt.Sprintf(`Reword this either/or food quiz question to feel fresh and engaging.
Meal type: %s. Question %d. Previous answer themes: %s.
Original question: %q with options %q vs %q.
Return ONLY a JSON object: {"prompt": "...", "emoji": "...", "leftText": "...", "leftEmoji": "...", "rightText": "...", "rightEmoji": "..."}
Keep the two options meaning the same things as the originals.`,
		meal, questionIndex+1, strings.Join(previousAnswers, ", "),
		base.Prompt, base.OptionLeft.Text, base.OptionRight.Text)

	response, err := s.callChat(ctx, s.config.Models.Question, questionSystemPrompt, prompt)
	if err != nil {
		return base
	}

	var reworded struct {
		Prompt     string `json:"prompt"`
		Emoji      string `json:"emoji"`
		LeftText   string `json:"leftText"`
		LeftEmoji  string `json:"leftEmoji"`
		RightText  string `json:"rightText"`
		RightEmoji string `json:"rightEmoji"`
	}
	if err := json.Unmarshal([]byte(response), &reworded); err != nil {
		return base
	}
	if reworded.Prompt == "" || reworded.LeftText == "" || reworded.RightText == "" {
		return base
	}

	q := base
	q.Prompt = reworded.Prompt
	if reworded.Emoji != "" {
		q.Emoji = reworded.Emoji
	}
	q.OptionLeft.Text = reworded.LeftText
	q.OptionRight.Text = reworded.RightText
	if reworded.LeftEmoji != "" {
		q.OptionLeft.Emoji = reworded.LeftEmoji
	}
	if reworded.RightEmoji != "" {
		q.OptionRight.Emoji = reworded.RightEmoji
	}
	return q
}

// EnrichRecommendation asks the model for a personalized title and
// description for the scored outcome. The outcome token is never
// changed; on any failure the base metadata is returned as-is.
func (s *AIService) EnrichRecommendation(ctx context.Context, outcome model.Outcome, answers []string) model.Outcome {
	if !s.config.IsEnabled() {
		return outcome
	}

	prompt := fmt.Sprintf(`The user answered a food quiz with these preference themes: %s.
The recommendation is %q (%s).
Write a short personalized title and a one-sentence description explaining why this fits.
Return ONLY a JSON object: {"title": "...", "description": "..."}`,
		strings.Join(answers, ", "), outcome.Title, outcome.Token)

	response, err := s.callChat(ctx, s.config.Models.Recommendation, recommendationSystemPrompt, prompt)
	if err != nil {
		return outcome
	}

	var enriched struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(response), &enriched); err != nil {
		return outcome
	}

	if enriched.Title != "" {
		outcome.Title = enriched.Title
	}
	if enriched.Description != "" {
		outcome.Description = enriched.Description
	}
	return outcome
}

const (
	questionSystemPrompt       = "You are a creative food quiz writer. Always respond with valid JSON."
	recommendationSystemPrompt = "You are a food recommendation expert. Always respond with valid JSON."
)

func (s *AIService) callChat(ctx context.Context, modelName, system, user string) (string, error) {
	reqBody := map[string]interface{}{
		"model": modelName,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature":     0.8,
		"response_format": map[string]string{"type": "json_object"},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
