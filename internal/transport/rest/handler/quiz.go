package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/quiz"
	"whatshouldweeat/internal/service"
	"whatshouldweeat/internal/transport/rest/middleware"
)

// QuizHandler handles the quiz lifecycle endpoints
type QuizHandler struct {
	quizSvc  *service.QuizService
	usageSvc *service.UsageService
	tokenSvc *service.TokenService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService, usageSvc *service.UsageService, tokenSvc *service.TokenService) *QuizHandler {
	return &QuizHandler{
		quizSvc:  quizSvc,
		usageSvc: usageSvc,
		tokenSvc: tokenSvc,
	}
}

// StartRequest is the request body for starting a quiz
type StartRequest struct {
	MealType model.MealType `json:"mealType"`
}

// Start handles POST /v1/quiz/start
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.MealType.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown meal type")
		return
	}

	clientID := middleware.ClientID(r)
	if err := h.usageSvc.CheckQuota(r.Context(), clientID); err != nil {
		writeError(w, http.StatusPaymentRequired, err.Error())
		return
	}

	sess, question, err := h.quizSvc.Start(r.Context(), req.MealType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokenSvc.GenerateSessionToken(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate session token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId":    sess.ID,
		"token":        token,
		"question":     question,
		"minQuestions": quiz.MinQuestionCount(req.MealType),
	})
}

// AnswerRequest is the request body for submitting a choice
type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category"`
}

// Answer handles POST /v1/quiz/answers
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, done, err := h.quizSvc.Answer(r.Context(), sessionID, req.Category)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	if done {
		writeJSON(w, http.StatusOK, map[string]interface{}{"done": true, "question": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"done": false, "question": question})
}

// RecommendRequest is the request body for finishing a quiz
type RecommendRequest struct {
	Location *model.Location `json:"location,omitempty"`
	MaxPrice int             `json:"maxPrice,omitempty"`
}

// Recommend handles POST /v1/quiz/recommendation
func (h *QuizHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req RecommendRequest
	if r.Body != nil {
		// Body is optional; a bare POST means no location
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	rec, record, err := h.quizSvc.Recommend(r.Context(), sessionID, req.Location, req.MaxPrice)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	record.UserAgent = r.UserAgent()
	if err := h.usageSvc.TrackCompletion(r.Context(), middleware.ClientID(r), record); err != nil {
		// Tracking must never block the result
		writeJSON(w, http.StatusOK, rec)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
