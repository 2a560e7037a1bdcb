package model

import "time"

// Session is the transient state of one quiz run. It is owned by the
// caller and carried through the cache between requests; the engine
// itself keeps no state.
type Session struct {
	ID          string          `json:"id"`
	MealType    MealType        `json:"mealType"`
	AskedIDs    map[string]bool `json:"askedIds"`
	Answers     []string        `json:"answers"` // category tokens, in choice order
	ShuffleSeed int64           `json:"shuffleSeed"`
	StartedAt   time.Time       `json:"startedAt"`
}

// RecordAnswer appends a chosen category token
func (s *Session) RecordAnswer(category string) {
	s.Answers = append(s.Answers, category)
}

// MarkAsked records a question id so it is never offered twice
func (s *Session) MarkAsked(id string) {
	if s.AskedIDs == nil {
		s.AskedIDs = make(map[string]bool)
	}
	s.AskedIDs[id] = true
}

// SessionRecord is the persisted trace of a completed quiz run
type SessionRecord struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"sessionId" bson:"sessionId"`
	MealType  MealType  `json:"mealType" bson:"mealType"`
	Answers   []string  `json:"answers" bson:"answers"`
	Outcome   string    `json:"outcome" bson:"outcome"`
	Location  *Location `json:"location,omitempty" bson:"location,omitempty"`
	UserAgent string    `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
