package handler

import (
	"encoding/json"
	"net/http"

	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/service"
)

// QuestionHandler serves the stateless dynamic-question endpoint
type QuestionHandler struct {
	quizSvc *service.QuizService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(quizSvc *service.QuizService) *QuestionHandler {
	return &QuestionHandler{quizSvc: quizSvc}
}

// GenerateRequest is the request body for generating a question
type GenerateRequest struct {
	MealType        model.MealType `json:"mealType"`
	PreviousAnswers []string       `json:"previousAnswers"`
	QuestionIndex   int            `json:"questionIndex"`
}

// Generate handles POST /v1/questions/generate
func (h *QuestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.MealType.IsValid() {
		req.MealType = model.MealFullMeal
	}
	if req.QuestionIndex < 0 {
		req.QuestionIndex = 0
	}

	question := h.quizSvc.DynamicQuestion(r.Context(), req.MealType, req.PreviousAnswers, req.QuestionIndex)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    question,
	})
}
