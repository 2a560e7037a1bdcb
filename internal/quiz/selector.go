package quiz

import (
	"math/rand"

	"whatshouldweeat/internal/model"
)

// Selector picks the next question for a session. The pool is fixed at
// construction; all per-session state lives in the Session value the
// caller passes in, so one Selector serves any number of sessions.
type Selector struct {
	pool []model.Question
}

// NewSelector creates a selector over the given pool. A nil or empty
// pool falls back to the built-in bank.
func NewSelector(pool []model.Question) *Selector {
	if len(pool) == 0 {
		pool = DefaultBank()
	}
	return &Selector{pool: pool}
}

// Pool returns the selector's question pool
func (s *Selector) Pool() []model.Question {
	return s.pool
}

// Next returns the next unasked question for the session: eligible for
// the session's meal type, lowest priority first, priority ties broken
// by a shuffle derived from the session's seed (stable for the session
// lifetime). Once the pool is exhausted every call returns the fixed
// fallback question. The returned question's id is recorded on the
// session before returning.
func (s *Selector) Next(sess *model.Session) model.Question {
	ranks := s.tieRanks(sess.ShuffleSeed)

	best := -1
	for i := range s.pool {
		q := &s.pool[i]
		if !q.AppliesTo(sess.MealType) || sess.AskedIDs[q.ID] {
			continue
		}
		if best == -1 || less(q.Priority, ranks[i], s.pool[best].Priority, ranks[best]) {
			best = i
		}
	}

	if best == -1 {
		sess.MarkAsked(FallbackQuestion.ID)
		return FallbackQuestion
	}

	q := s.pool[best]
	sess.MarkAsked(q.ID)
	return q
}

// Remaining reports how many eligible, unasked questions are left
func (s *Selector) Remaining(sess *model.Session) int {
	n := 0
	for i := range s.pool {
		q := &s.pool[i]
		if q.AppliesTo(sess.MealType) && !sess.AskedIDs[q.ID] {
			n++
		}
	}
	return n
}

// tieRanks derives a per-pool-index permutation from the session seed.
// The same seed always yields the same ranks, so tie order never shifts
// mid-session, while different sessions see different orderings.
func (s *Selector) tieRanks(seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(len(s.pool))
}

func less(prioA, rankA, prioB, rankB int) bool {
	if prioA != prioB {
		return prioA < prioB
	}
	return rankA < rankB
}
