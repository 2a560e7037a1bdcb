package quiz

import (
	"math/rand"
	"sync"
	"time"

	"whatshouldweeat/internal/model"
)

const (
	// RecentLimit bounds the recent-outcomes log
	RecentLimit = 5

	defaultJitter        = 0.5 // max additive jitter per scored outcome
	defaultRepeatPenalty = 0.7 // multiplier for recently served outcomes
)

// Scorer turns collected answer categories into an outcome token. It
// holds only static tables and a rand source; all per-session input is
// passed in, so a single Scorer is safe to share.
type Scorer struct {
	rules     []model.Rule
	overrides map[model.MealType][]ContextRule
	fallback  []string

	mu      sync.Mutex
	rng     *rand.Rand
	jitter  float64
	penalty float64
}

// NewScorer returns a scorer with the canonical tables and default
// jitter and repeat penalty
func NewScorer() *Scorer {
	return NewScorerWith(rand.New(rand.NewSource(time.Now().UnixNano())), defaultJitter, defaultRepeatPenalty)
}

// NewScorerWith allows tests to inject a seeded rand source and tune or
// zero the jitter and repeat penalty. A repeatPenalty of 1 disables the
// penalty; a jitter of 0 makes scoring deterministic.
func NewScorerWith(rng *rand.Rand, jitter, repeatPenalty float64) *Scorer {
	return &Scorer{
		rules:     ruleTable,
		overrides: contextOverrides,
		fallback:  fallbackOutcomes,
		rng:       rng,
		jitter:    jitter,
		penalty:   repeatPenalty,
	}
}

// Recommend maps the answers to the best outcome token. Simple meal
// types short-circuit through their context override; everything else
// runs the weighted rule table with jitter and a penalty against the
// recent outcomes passed in. It never fails: no match falls back to a
// random pick from a fixed diverse set. The caller owns appending the
// result to its recent-outcomes log.
func (s *Scorer) Recommend(answers []string, meal model.MealType, recent []string) string {
	counts := make(map[string]int, len(answers))
	for _, a := range answers {
		counts[a]++
	}

	if rules, ok := s.overrides[meal]; ok {
		for _, cr := range rules {
			if counts[cr.Category] > 0 {
				return cr.Outcome
			}
		}
	}

	scores := make(map[string]float64)
	var order []string // first-scored order, used for stable tie-breaks

	for _, rule := range s.rules {
		matched := 0
		fired := true
		for _, cond := range rule.Conditions {
			n := counts[cond]
			if n == 0 {
				fired = false
				break
			}
			matched += n
		}
		if !fired {
			continue
		}
		for _, token := range rule.Outcomes {
			if _, seen := scores[token]; !seen {
				order = append(order, token)
			}
			scores[token] += rule.Weight * float64(matched)
		}
	}

	if len(scores) == 0 {
		return s.fallback[s.intn(len(s.fallback))]
	}

	recentSet := make(map[string]bool, len(recent))
	for _, token := range recent {
		recentSet[token] = true
	}

	best := ""
	bestScore := -1.0
	for _, token := range order {
		score := scores[token] + s.drawJitter()
		if recentSet[token] {
			score *= s.penalty
		}
		if score > bestScore {
			best = token
			bestScore = score
		}
	}
	return best
}

func (s *Scorer) drawJitter() float64 {
	if s.jitter == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * s.jitter
}

func (s *Scorer) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
