package model

// Rule is one weighted mapping in the scoring table. A rule fires when
// every condition token appears at least once in the collected answers;
// each outcome token is then credited weight x matched-occurrence count.
type Rule struct {
	Conditions []string `json:"conditions"`
	Outcomes   []string `json:"outcomes"`
	Weight     float64  `json:"weight"`
}

// Outcome is a food-category result with its display metadata
type Outcome struct {
	Token       string   `json:"token"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Recommendation is the final result handed back to the client: the
// scored outcome, optionally enriched by the AI provider, plus an
// optional nearby venue.
type Recommendation struct {
	Outcome Outcome `json:"outcome"`
	Venue   *Venue  `json:"venue,omitempty"`
}
