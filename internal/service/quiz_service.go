package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"whatshouldweeat/internal/cache"
	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/quiz"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// QuizService drives a quiz run: it owns the session state in the cache
// and orchestrates the selector, scorer, AI provider and place lookup.
// The engine itself stays pure; everything stateful happens here.
type QuizService struct {
	sessions cache.SessionCache
	recent   cache.RecentOutcomes
	selector *quiz.Selector
	scorer   *quiz.Scorer
	aiSvc    *AIService
	placeSvc *PlaceService
}

// NewQuizService creates a new quiz service
func NewQuizService(
	sessions cache.SessionCache,
	recent cache.RecentOutcomes,
	selector *quiz.Selector,
	scorer *quiz.Scorer,
	aiSvc *AIService,
	placeSvc *PlaceService,
) *QuizService {
	return &QuizService{
		sessions: sessions,
		recent:   recent,
		selector: selector,
		scorer:   scorer,
		aiSvc:    aiSvc,
		placeSvc: placeSvc,
	}
}

// Start creates a session for the meal type and returns it with the
// first question
func (s *QuizService) Start(ctx context.Context, meal model.MealType) (*model.Session, model.Question, error) {
	sess := &model.Session{
		ID:          "s_" + uuid.New().String()[:8],
		MealType:    meal,
		AskedIDs:    make(map[string]bool),
		ShuffleSeed: rand.Int63(),
		StartedAt:   time.Now(),
	}

	question := s.selector.Next(sess)
	question = s.aiSvc.RewordQuestion(ctx, question, meal, nil, 0)

	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, model.Question{}, fmt.Errorf("failed to save session: %w", err)
	}

	return sess, question, nil
}

// Answer records a choice and returns the next question, or done=true
// once enough answers have been collected for a confident result
func (s *QuizService) Answer(ctx context.Context, sessionID, category string) (model.Question, bool, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Question{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		return model.Question{}, false, ErrSessionNotFound
	}

	if category != "" {
		sess.RecordAnswer(category)
	}

	if len(sess.Answers) >= quiz.MinQuestionCount(sess.MealType) {
		if err := s.sessions.Set(ctx, sess); err != nil {
			return model.Question{}, false, fmt.Errorf("failed to save session: %w", err)
		}
		return model.Question{}, true, nil
	}

	question := s.selector.Next(sess)
	question = s.aiSvc.RewordQuestion(ctx, question, sess.MealType, sess.Answers, len(sess.Answers))

	if err := s.sessions.Set(ctx, sess); err != nil {
		return model.Question{}, false, fmt.Errorf("failed to save session: %w", err)
	}

	return question, false, nil
}

// Recommend scores the session's answers into a final recommendation,
// optionally attaching a nearby venue, and ends the session. The
// returned record carries what the caller needs for usage tracking.
func (s *QuizService) Recommend(ctx context.Context, sessionID string, loc *model.Location, maxPrice int) (*model.Recommendation, *model.SessionRecord, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		return nil, nil, ErrSessionNotFound
	}

	recent, err := s.recent.Recent(ctx)
	if err != nil {
		// Variety only; score without the log
		logrus.WithError(err).Warn("failed to read recent outcomes")
	}

	token := s.scorer.Recommend(sess.Answers, sess.MealType, recent)

	if err := s.recent.Push(ctx, token); err != nil {
		logrus.WithError(err).Warn("failed to record recent outcome")
	}

	outcome := quiz.OutcomeFor(token)
	outcome = s.aiSvc.EnrichRecommendation(ctx, outcome, sess.Answers)

	rec := &model.Recommendation{Outcome: outcome}
	if loc != nil {
		venue, err := s.placeSvc.FindVenue(ctx, CuisineKeyword(token), *loc, maxPrice)
		if err != nil {
			logrus.WithError(err).Warn("venue lookup failed")
		}
		rec.Venue = venue
	}

	record := &model.SessionRecord{
		SessionID: sess.ID,
		MealType:  sess.MealType,
		Answers:   sess.Answers,
		Outcome:   token,
		Location:  loc,
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		logrus.WithError(err).Warn("failed to delete finished session")
	}

	return rec, record, nil
}

// DynamicQuestion returns a one-off question outside a session, AI
// reworded when possible. Used by the stateless question endpoint.
func (s *QuizService) DynamicQuestion(ctx context.Context, meal model.MealType, previousAnswers []string, questionIndex int) model.Question {
	pool := s.selector.Pool()
	var eligible []model.Question
	for _, q := range pool {
		if q.AppliesTo(meal) {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return quiz.FallbackQuestion
	}

	base := eligible[questionIndex%len(eligible)]
	return s.aiSvc.RewordQuestion(ctx, base, meal, previousAnswers, questionIndex)
}

// CuisineKeyword turns an outcome token into a place-search keyword
func CuisineKeyword(token string) string {
	return strings.ReplaceAll(token, "-", " ")
}
