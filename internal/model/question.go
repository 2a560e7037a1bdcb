package model

// MealType narrows which questions and scoring rules apply to a quiz run
type MealType string

const (
	MealFullMeal  MealType = "full-meal"
	MealBreakfast MealType = "breakfast"
	MealDessert   MealType = "dessert"
	MealSnacks    MealType = "snacks"
	MealIceCream  MealType = "ice-cream"
	MealDrinks    MealType = "drinks"
)

// AllMealTypes lists every supported meal type
var AllMealTypes = []MealType{
	MealFullMeal,
	MealBreakfast,
	MealDessert,
	MealSnacks,
	MealIceCream,
	MealDrinks,
}

// IsValid reports whether m is a known meal type
func (m MealType) IsValid() bool {
	for _, mt := range AllMealTypes {
		if m == mt {
			return true
		}
	}
	return false
}

// Option is one side of a binary-choice question. Category is the token
// recorded against the session when the option is picked.
type Option struct {
	Text     string `json:"text" bson:"text"`
	Emoji    string `json:"emoji" bson:"emoji"`
	Category string `json:"category" bson:"category"`
}

// Question is a single either/or prompt from the question bank
type Question struct {
	ID          string     `json:"id" bson:"_id"`
	Prompt      string     `json:"prompt" bson:"prompt"`
	Emoji       string     `json:"emoji" bson:"emoji"`
	OptionLeft  Option     `json:"optionLeft" bson:"optionLeft"`
	OptionRight Option     `json:"optionRight" bson:"optionRight"`
	MealTypes   []MealType `json:"mealTypes" bson:"mealTypes"` // empty = eligible everywhere
	Priority    int        `json:"priority" bson:"priority"`   // lower = asked earlier
}

// AppliesTo reports whether the question is eligible for the given meal type.
// An empty MealTypes list means the question is universal.
func (q *Question) AppliesTo(meal MealType) bool {
	if len(q.MealTypes) == 0 {
		return true
	}
	for _, mt := range q.MealTypes {
		if mt == meal {
			return true
		}
	}
	return false
}
