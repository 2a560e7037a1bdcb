package quiz

import (
	"fmt"

	"whatshouldweeat/internal/model"
)

// ValidateVocabulary checks the static tables against each other:
// every category a question can emit must be able to influence the
// scorer (via a rule condition or a context override), and every
// outcome the scorer can produce must have display metadata. Run at
// startup so a bad table edit fails fast.
func ValidateVocabulary(pool []model.Question) error {
	scorable := make(map[string]bool)
	for _, rule := range ruleTable {
		for _, cond := range rule.Conditions {
			scorable[cond] = true
		}
	}
	for _, rules := range contextOverrides {
		for _, cr := range rules {
			scorable[cr.Category] = true
		}
	}

	questions := append(append([]model.Question{}, pool...), FallbackQuestion)
	for _, q := range questions {
		for _, opt := range []model.Option{q.OptionLeft, q.OptionRight} {
			if opt.Category == "" {
				return fmt.Errorf("question %q has an option without a category", q.ID)
			}
			if !scorable[opt.Category] {
				return fmt.Errorf("question %q emits category %q that no rule or override can score", q.ID, opt.Category)
			}
		}
	}

	var producible []string
	for _, rule := range ruleTable {
		producible = append(producible, rule.Outcomes...)
	}
	for _, rules := range contextOverrides {
		for _, cr := range rules {
			producible = append(producible, cr.Outcome)
		}
	}
	producible = append(producible, fallbackOutcomes...)

	for _, token := range producible {
		if _, ok := outcomeIndex[token]; !ok {
			return fmt.Errorf("outcome token %q has no display metadata", token)
		}
	}

	return nil
}
