package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatshouldweeat/internal/config"
	"whatshouldweeat/internal/model"
)

var baseQuestion = model.Question{
	ID:          "mood",
	Prompt:      "What's your current mood?",
	Emoji:       "😊",
	OptionLeft:  model.Option{Text: "Relaxed and cozy", Emoji: "😌", Category: "comfort"},
	OptionRight: model.Option{Text: "Energetic and adventurous", Emoji: "⚡", Category: "adventurous"},
}

func aiConfigFor(serverURL string) *config.AIConfig {
	return &config.AIConfig{
		APIKey:    "test-key",
		BaseURL:   serverURL,
		Models:    config.OpenAIModels{Question: "gpt-4o-mini", Recommendation: "gpt-4o-mini"},
		TimeoutMS: 2000,
	}
}

// chatStub returns an OpenAI-shaped response whose message content is
// the given JSON payload.
func chatStub(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": payload}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestRewordQuestionKeepsCategories(t *testing.T) {
	srv := chatStub(t, `{"prompt":"How are you feeling?","emoji":"🙂","leftText":"Chill","leftEmoji":"🛋️","rightText":"Wild","rightEmoji":"🎢"}`)
	defer srv.Close()

	svc := NewAIServiceWith(aiConfigFor(srv.URL))
	got := svc.RewordQuestion(context.Background(), baseQuestion, model.MealFullMeal, []string{"budget"}, 1)

	if got.Prompt != "How are you feeling?" {
		t.Errorf("prompt not reworded: %q", got.Prompt)
	}
	if got.OptionLeft.Text != "Chill" || got.OptionRight.Text != "Wild" {
		t.Errorf("options not reworded: %q / %q", got.OptionLeft.Text, got.OptionRight.Text)
	}
	if got.ID != baseQuestion.ID {
		t.Errorf("id changed to %q", got.ID)
	}
	if got.OptionLeft.Category != "comfort" || got.OptionRight.Category != "adventurous" {
		t.Errorf("categories changed: %q / %q", got.OptionLeft.Category, got.OptionRight.Category)
	}
}

func TestRewordQuestionDegradesToBase(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"server error",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			"garbage content",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[{"message":{"content":"not json at all"}}]}`)
			},
		},
		{
			"missing fields",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[{"message":{"content":"{\"prompt\":\"\"}"}}]}`)
			},
		},
		{
			"no choices",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[]}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			svc := NewAIServiceWith(aiConfigFor(srv.URL))
			got := svc.RewordQuestion(context.Background(), baseQuestion, model.MealFullMeal, nil, 0)
			if got.Prompt != baseQuestion.Prompt {
				t.Errorf("expected base question back, got prompt %q", got.Prompt)
			}
		})
	}
}

func TestRewordQuestionDisabledWithoutKey(t *testing.T) {
	svc := NewAIServiceWith(&config.AIConfig{BaseURL: "http://127.0.0.1:1", TimeoutMS: 100})
	if svc.IsEnabled() {
		t.Fatal("service should be disabled without a key")
	}

	got := svc.RewordQuestion(context.Background(), baseQuestion, model.MealFullMeal, nil, 0)
	if got.Prompt != baseQuestion.Prompt {
		t.Errorf("disabled service must return the base question, got %q", got.Prompt)
	}
}

func TestEnrichRecommendation(t *testing.T) {
	srv := chatStub(t, `{"title":"Pizza Night!","description":"Comfort food for a comfort mood."}`)
	defer srv.Close()

	svc := NewAIServiceWith(aiConfigFor(srv.URL))
	base := model.Outcome{Token: "pizza", Title: "Pizza Time!", Description: "A classic."}
	got := svc.EnrichRecommendation(context.Background(), base, []string{"comfort", "quick"})

	if got.Title != "Pizza Night!" {
		t.Errorf("title not enriched: %q", got.Title)
	}
	if got.Description != "Comfort food for a comfort mood." {
		t.Errorf("description not enriched: %q", got.Description)
	}
	if got.Token != "pizza" {
		t.Errorf("token changed to %q", got.Token)
	}
}

func TestEnrichRecommendationPartialResponse(t *testing.T) {
	srv := chatStub(t, `{"title":"Better Title"}`)
	defer srv.Close()

	svc := NewAIServiceWith(aiConfigFor(srv.URL))
	base := model.Outcome{Token: "sushi", Title: "Sushi Time!", Description: "Fresh and delicate."}
	got := svc.EnrichRecommendation(context.Background(), base, nil)

	if got.Title != "Better Title" {
		t.Errorf("title not enriched: %q", got.Title)
	}
	if got.Description != base.Description {
		t.Errorf("missing description should keep the base, got %q", got.Description)
	}
}
