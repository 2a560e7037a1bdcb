package quiz

import "whatshouldweeat/internal/model"

// ruleTable is the canonical scoring table. A rule fires when every
// condition appears in the collected answers; outcomes are credited
// weight x (occurrences of matched condition tokens). Weights are
// tuning parameters, not contracts.
var ruleTable = []model.Rule{
	{Conditions: []string{"comfort", "quick"}, Outcomes: []string{"pizza", "burgers"}, Weight: 3},
	{Conditions: []string{"comfort"}, Outcomes: []string{"pasta", "ramen"}, Weight: 2},
	{Conditions: []string{"comfort", "hearty"}, Outcomes: []string{"burgers", "pasta"}, Weight: 3},
	{Conditions: []string{"comfort", "evening"}, Outcomes: []string{"pasta", "ramen"}, Weight: 2},
	{Conditions: []string{"adventurous"}, Outcomes: []string{"sushi", "thai-curry"}, Weight: 2},
	{Conditions: []string{"adventurous", "spicy"}, Outcomes: []string{"thai-curry", "tacos"}, Weight: 3},
	{Conditions: []string{"adventurous", "international"}, Outcomes: []string{"sushi", "ramen"}, Weight: 3},
	{Conditions: []string{"healthy"}, Outcomes: []string{"salad", "poke-bowl"}, Weight: 2},
	{Conditions: []string{"healthy", "quick"}, Outcomes: []string{"salad", "smoothie-bowl"}, Weight: 3},
	{Conditions: []string{"healthy", "vegetarian"}, Outcomes: []string{"poke-bowl", "salad"}, Weight: 3},
	{Conditions: []string{"vegetarian"}, Outcomes: []string{"poke-bowl", "pasta"}, Weight: 2},
	{Conditions: []string{"meat"}, Outcomes: []string{"steak", "burgers"}, Weight: 2},
	{Conditions: []string{"meat", "splurge"}, Outcomes: []string{"steak", "sushi"}, Weight: 3},
	{Conditions: []string{"splurge"}, Outcomes: []string{"steak", "sushi"}, Weight: 2},
	{Conditions: []string{"budget"}, Outcomes: []string{"tacos", "pizza"}, Weight: 2},
	{Conditions: []string{"budget", "quick"}, Outcomes: []string{"tacos", "sandwiches"}, Weight: 3},
	{Conditions: []string{"mild"}, Outcomes: []string{"pasta", "sandwiches"}, Weight: 2},
	{Conditions: []string{"spicy"}, Outcomes: []string{"thai-curry", "ramen"}, Weight: 2},
	{Conditions: []string{"local"}, Outcomes: []string{"burgers", "sandwiches"}, Weight: 2},
	{Conditions: []string{"international"}, Outcomes: []string{"sushi", "tacos", "thai-curry"}, Weight: 2},
	{Conditions: []string{"hearty"}, Outcomes: []string{"burgers", "steak", "ramen"}, Weight: 2},
	{Conditions: []string{"quick", "walking"}, Outcomes: []string{"sandwiches", "pizza"}, Weight: 2},
	{Conditions: []string{"walking"}, Outcomes: []string{"pizza", "sandwiches"}, Weight: 1},
	{Conditions: []string{"driving"}, Outcomes: []string{"steak", "thai-curry"}, Weight: 1},
	{Conditions: []string{"leisurely"}, Outcomes: []string{"pancakes", "pasta"}, Weight: 2},
	{Conditions: []string{"morning"}, Outcomes: []string{"pancakes", "avocado-toast"}, Weight: 2},
	{Conditions: []string{"morning", "healthy"}, Outcomes: []string{"smoothie-bowl", "avocado-toast"}, Weight: 3},
	{Conditions: []string{"morning", "hearty"}, Outcomes: []string{"omelette", "pancakes"}, Weight: 3},
	{Conditions: []string{"evening"}, Outcomes: []string{"ramen", "steak"}, Weight: 1},
	{Conditions: []string{"solo"}, Outcomes: []string{"ramen", "sandwiches"}, Weight: 1},
	{Conditions: []string{"social"}, Outcomes: []string{"pizza", "tacos"}, Weight: 2},
	{Conditions: []string{"familiar"}, Outcomes: []string{"pizza", "burgers", "pasta"}, Weight: 2},
	{Conditions: []string{"new"}, Outcomes: []string{"sushi", "thai-curry", "poke-bowl"}, Weight: 2},
}

// ContextRule is one arm of a per-meal-type shortcut mapping. Simple
// contexts are decided by an ordered category check instead of the full
// rule table.
type ContextRule struct {
	Category string
	Outcome  string
}

// contextOverrides maps the low-complexity meal types to their ordered
// shortcut rules. First category present in the answers wins.
var contextOverrides = map[model.MealType][]ContextRule{
	model.MealDessert: {
		{Category: "indulgent", Outcome: "chocolate-cake"},
		{Category: "light", Outcome: "fruit-parfait"},
		{Category: "hot", Outcome: "warm-cookies"},
		{Category: "cold", Outcome: "cheesecake"},
		{Category: "very_sweet", Outcome: "chocolate-cake"},
		{Category: "lightly_sweet", Outcome: "fruit-parfait"},
	},
	model.MealIceCream: {
		{Category: "unique", Outcome: "gelato"},
		{Category: "chunky", Outcome: "sundae"},
		{Category: "smooth", Outcome: "soft-serve"},
		{Category: "classic", Outcome: "sundae"},
		{Category: "very_sweet", Outcome: "sundae"},
		{Category: "lightly_sweet", Outcome: "frozen-yogurt"},
	},
	model.MealSnacks: {
		{Category: "savory", Outcome: "nachos"},
		{Category: "sweet", Outcome: "cookies"},
		{Category: "crunchy", Outcome: "popcorn"},
		{Category: "soft", Outcome: "cookies"},
	},
	model.MealDrinks: {
		{Category: "caffeinated", Outcome: "coffee"},
		{Category: "cozy", Outcome: "herbal-tea"},
		{Category: "social", Outcome: "cocktails"},
		{Category: "cold", Outcome: "bubble-tea"},
		{Category: "hot", Outcome: "coffee"},
		{Category: "decaf", Outcome: "smoothie"},
	},
}

// fallbackOutcomes is the diverse set drawn from when no rule fires
var fallbackOutcomes = []string{"pizza", "sushi", "tacos", "salad", "ramen", "burgers"}
