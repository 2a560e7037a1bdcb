package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatshouldweeat/internal/cache"
	"whatshouldweeat/internal/config"
	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/quiz"
	"whatshouldweeat/internal/service"
	"whatshouldweeat/internal/transport/ws"
)

func newTestRouter(t *testing.T, dailyLimit int64) http.Handler {
	t.Helper()

	aiSvc := service.NewAIServiceWith(&config.AIConfig{TimeoutMS: 100})
	placeSvc := service.NewPlaceServiceWith(&config.PlacesConfig{TimeoutMS: 100})
	quizSvc := service.NewQuizService(
		cache.NewMemorySessionCache(),
		cache.NewMemoryRecentOutcomes(quiz.RecentLimit),
		quiz.NewSelector(nil),
		quiz.NewScorer(),
		aiSvc,
		placeSvc,
	)

	return NewRouter(&Container{
		QuizService:  quizSvc,
		UsageService: service.NewUsageService(cache.NewMemoryUsageCache(), nil, dailyLimit),
		PlaceService: placeSvc,
		TokenService: service.NewTokenService("test-secret"),
		WSHub:        ws.NewHub(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", "test-client")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type startResponse struct {
	SessionID    string         `json:"sessionId"`
	Token        string         `json:"token"`
	Question     model.Question `json:"question"`
	MinQuestions int            `json:"minQuestions"`
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, 3)
	rec := doJSON(t, router, "GET", "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
}

func TestQuizFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t, 3)

	// Start
	rec := doJSON(t, router, "POST", "/v1/quiz/start", "", map[string]string{"mealType": "full-meal"})
	if rec.Code != http.StatusOK {
		t.Fatalf("start = %d: %s", rec.Code, rec.Body.String())
	}
	var start startResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &start); err != nil {
		t.Fatalf("decode start: %v", err)
	}
	if start.SessionID == "" || start.Token == "" || start.Question.ID == "" {
		t.Fatalf("start response incomplete: %+v", start)
	}
	if start.MinQuestions != 6 {
		t.Errorf("minQuestions = %d, want 6", start.MinQuestions)
	}

	// Answer until done
	question := start.Question
	done := false
	for i := 0; i < 10 && !done; i++ {
		rec = doJSON(t, router, "POST", "/v1/quiz/answers", start.Token, map[string]string{
			"questionId": question.ID,
			"category":   question.OptionLeft.Category,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("answer = %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Done     bool           `json:"done"`
			Question model.Question `json:"question"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode answer: %v", err)
		}
		done = resp.Done
		question = resp.Question
	}
	if !done {
		t.Fatal("quiz never reported done")
	}

	// Recommendation
	rec = doJSON(t, router, "POST", "/v1/quiz/recommendation", start.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("recommendation = %d: %s", rec.Code, rec.Body.String())
	}
	var result model.Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode recommendation: %v", err)
	}
	if result.Outcome.Token == "" || result.Outcome.Title == "" {
		t.Fatalf("recommendation incomplete: %+v", result)
	}

	// Completion counted against the quota
	rec = doJSON(t, router, "GET", "/v1/usage", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("usage = %d", rec.Code)
	}
	var usage model.UsageData
	if err := json.Unmarshal(rec.Body.Bytes(), &usage); err != nil {
		t.Fatalf("decode usage: %v", err)
	}
	if usage.Count != 1 || usage.Remaining != 2 {
		t.Fatalf("usage = %+v, want count 1 remaining 2", usage)
	}
}

func TestStartValidation(t *testing.T) {
	router := newTestRouter(t, 3)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"unknown meal type", map[string]string{"mealType": "brunch"}, http.StatusBadRequest},
		{"empty body meal", map[string]string{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, "POST", "/v1/quiz/start", "", tt.body)
			if rec.Code != tt.want {
				t.Errorf("start = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestQuotaBlocksNewQuizzes(t *testing.T) {
	router := newTestRouter(t, 1)

	// Burn the single free completion via the track endpoint
	rec := doJSON(t, router, "POST", "/v1/usage/track", "", map[string]interface{}{
		"sessionData": map[string]interface{}{
			"sessionId": "s_local",
			"mealType":  "snacks",
			"outcome":   "popcorn",
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("track = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, "POST", "/v1/quiz/start", "", map[string]string{"mealType": "snacks"})
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("start over quota = %d, want 402", rec.Code)
	}
}

func TestSessionRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, 3)

	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/v1/quiz/answers", "", http.StatusUnauthorized},
		{"/v1/quiz/answers", "bogus-token", http.StatusUnauthorized},
		{"/v1/quiz/recommendation", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		rec := doJSON(t, router, "POST", tt.path, tt.token, map[string]string{})
		if rec.Code != tt.want {
			t.Errorf("%s with token %q = %d, want %d", tt.path, tt.token, rec.Code, tt.want)
		}
	}
}

func TestAnswerUnknownSession(t *testing.T) {
	router := newTestRouter(t, 3)
	token, err := service.NewTokenService("test-secret").GenerateSessionToken("s_expired")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	rec := doJSON(t, router, "POST", "/v1/quiz/answers", token, map[string]string{"category": "comfort"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("answer for expired session = %d, want 404", rec.Code)
	}
}

func TestGenerateQuestionEndpoint(t *testing.T) {
	router := newTestRouter(t, 3)

	rec := doJSON(t, router, "POST", "/v1/questions/generate", "", map[string]interface{}{
		"mealType":      "drinks",
		"questionIndex": 2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool           `json:"success"`
		Data    model.Question `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode generate: %v", err)
	}
	if !resp.Success || resp.Data.ID == "" {
		t.Fatalf("generate response incomplete: %+v", resp)
	}
	if !resp.Data.AppliesTo(model.MealDrinks) {
		t.Errorf("question %q not eligible for drinks", resp.Data.ID)
	}
}

func TestRestaurantSearchValidation(t *testing.T) {
	router := newTestRouter(t, 3)

	rec := doJSON(t, router, "POST", "/v1/restaurants/search", "", map[string]interface{}{
		"cuisineType": "pizza",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("search without location = %d, want 400", rec.Code)
	}

	// Provider disabled: valid request succeeds with no venues
	rec = doJSON(t, router, "POST", "/v1/restaurants/search", "", map[string]interface{}{
		"cuisineType": "pizza",
		"location":    map[string]float64{"latitude": 37.77, "longitude": -122.42},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("search = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, 3)

	req := httptest.NewRequest("OPTIONS", "/v1/quiz/start", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("missing Access-Control-Allow-Origin header")
	}
}
