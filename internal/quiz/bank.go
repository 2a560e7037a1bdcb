package quiz

import "whatshouldweeat/internal/model"

// questionBank is the built-in question pool. It is defined once at
// startup and never mutated; selection is read-only over this slice.
// Priority 1 questions are asked early, priority 3 late.
var questionBank = []model.Question{
	{
		ID:          "mood",
		Prompt:      "What's your current mood?",
		Emoji:       "😊",
		OptionLeft:  model.Option{Text: "Relaxed and cozy", Emoji: "😌", Category: "comfort"},
		OptionRight: model.Option{Text: "Energetic and adventurous", Emoji: "⚡", Category: "adventurous"},
		Priority:    1,
	},
	{
		ID:          "budget",
		Prompt:      "What's your budget looking like?",
		Emoji:       "💰",
		OptionLeft:  model.Option{Text: "Keep it affordable", Emoji: "🪙", Category: "budget"},
		OptionRight: model.Option{Text: "Treat myself today", Emoji: "💎", Category: "splurge"},
		Priority:    1,
	},
	{
		ID:          "distance",
		Prompt:      "How far are you willing to go?",
		Emoji:       "📍",
		OptionLeft:  model.Option{Text: "Walking distance", Emoji: "🚶", Category: "walking"},
		OptionRight: model.Option{Text: "Worth a drive", Emoji: "🚗", Category: "driving"},
		Priority:    2,
	},
	{
		ID:          "spice_level",
		Prompt:      "How do you like your heat?",
		Emoji:       "🌶️",
		OptionLeft:  model.Option{Text: "Mild and gentle", Emoji: "😊", Category: "mild"},
		OptionRight: model.Option{Text: "Spicy and bold", Emoji: "🔥", Category: "spicy"},
		MealTypes:   []model.MealType{model.MealFullMeal},
		Priority:    2,
	},
	{
		ID:          "protein",
		Prompt:      "What's your protein preference?",
		Emoji:       "🥩",
		OptionLeft:  model.Option{Text: "Meat or seafood", Emoji: "🐟", Category: "meat"},
		OptionRight: model.Option{Text: "Plant-based", Emoji: "🌱", Category: "vegetarian"},
		MealTypes:   []model.MealType{model.MealFullMeal, model.MealBreakfast},
		Priority:    2,
	},
	{
		ID:          "cuisine_style",
		Prompt:      "What cuisine sounds appealing?",
		Emoji:       "🌍",
		OptionLeft:  model.Option{Text: "Local and familiar", Emoji: "🏠", Category: "local"},
		OptionRight: model.Option{Text: "International flavors", Emoji: "✈️", Category: "international"},
		MealTypes:   []model.MealType{model.MealFullMeal},
		Priority:    2,
	},
	{
		ID:          "breakfast_style",
		Prompt:      "How do you want to start your day?",
		Emoji:       "🌅",
		OptionLeft:  model.Option{Text: "Light and healthy", Emoji: "🥗", Category: "healthy"},
		OptionRight: model.Option{Text: "Hearty and filling", Emoji: "🥞", Category: "hearty"},
		MealTypes:   []model.MealType{model.MealBreakfast},
		Priority:    1,
	},
	{
		ID:          "morning_vibe",
		Prompt:      "What's your morning energy like?",
		Emoji:       "☀️",
		OptionLeft:  model.Option{Text: "Quick and efficient", Emoji: "⚡", Category: "quick"},
		OptionRight: model.Option{Text: "Leisurely and relaxed", Emoji: "🛋️", Category: "leisurely"},
		MealTypes:   []model.MealType{model.MealBreakfast},
		Priority:    2,
	},
	{
		ID:          "sweetness_level",
		Prompt:      "How sweet are you feeling?",
		Emoji:       "🍯",
		OptionLeft:  model.Option{Text: "Just a touch", Emoji: "🤏", Category: "lightly_sweet"},
		OptionRight: model.Option{Text: "Super sweet", Emoji: "🍭", Category: "very_sweet"},
		MealTypes:   []model.MealType{model.MealDessert, model.MealIceCream},
		Priority:    1,
	},
	{
		ID:          "dessert_temperature",
		Prompt:      "Temperature preference?",
		Emoji:       "🌡️",
		OptionLeft:  model.Option{Text: "Cool and refreshing", Emoji: "🧊", Category: "cold"},
		OptionRight: model.Option{Text: "Warm and comforting", Emoji: "☕", Category: "hot"},
		MealTypes:   []model.MealType{model.MealDessert},
		Priority:    2,
	},
	{
		ID:          "dessert_style",
		Prompt:      "What kind of sweet treat?",
		Emoji:       "🍰",
		OptionLeft:  model.Option{Text: "Rich and indulgent", Emoji: "🍫", Category: "indulgent"},
		OptionRight: model.Option{Text: "Light and airy", Emoji: "☁️", Category: "light"},
		MealTypes:   []model.MealType{model.MealDessert},
		Priority:    1,
	},
	{
		ID:          "ice_cream_style",
		Prompt:      "What frozen treat sounds perfect?",
		Emoji:       "🍦",
		OptionLeft:  model.Option{Text: "Classic flavors", Emoji: "🍨", Category: "classic"},
		OptionRight: model.Option{Text: "Unique creations", Emoji: "🌈", Category: "unique"},
		MealTypes:   []model.MealType{model.MealIceCream},
		Priority:    1,
	},
	{
		ID:          "ice_cream_texture",
		Prompt:      "Texture preference?",
		Emoji:       "🥄",
		OptionLeft:  model.Option{Text: "Smooth and creamy", Emoji: "🥛", Category: "smooth"},
		OptionRight: model.Option{Text: "Mix-ins and chunks", Emoji: "🍪", Category: "chunky"},
		MealTypes:   []model.MealType{model.MealIceCream},
		Priority:    2,
	},
	{
		ID:          "snack_texture",
		Prompt:      "What texture are you craving?",
		Emoji:       "🥨",
		OptionLeft:  model.Option{Text: "Crunchy and crispy", Emoji: "🥜", Category: "crunchy"},
		OptionRight: model.Option{Text: "Soft and chewy", Emoji: "🍪", Category: "soft"},
		MealTypes:   []model.MealType{model.MealSnacks},
		Priority:    1,
	},
	{
		ID:          "snack_flavor",
		Prompt:      "Flavor profile preference?",
		Emoji:       "👅",
		OptionLeft:  model.Option{Text: "Savory and salty", Emoji: "🧂", Category: "savory"},
		OptionRight: model.Option{Text: "Sweet and satisfying", Emoji: "🍯", Category: "sweet"},
		MealTypes:   []model.MealType{model.MealSnacks},
		Priority:    1,
	},
	{
		ID:          "drink_vibe",
		Prompt:      "What's the vibe you're going for?",
		Emoji:       "☕",
		OptionLeft:  model.Option{Text: "Cozy café atmosphere", Emoji: "📚", Category: "cozy"},
		OptionRight: model.Option{Text: "Social bar scene", Emoji: "🍸", Category: "social"},
		MealTypes:   []model.MealType{model.MealDrinks},
		Priority:    1,
	},
	{
		ID:          "caffeine",
		Prompt:      "Caffeine preference?",
		Emoji:       "⚡",
		OptionLeft:  model.Option{Text: "Keep me energized", Emoji: "🔋", Category: "caffeinated"},
		OptionRight: model.Option{Text: "Something decaf", Emoji: "😴", Category: "decaf"},
		MealTypes:   []model.MealType{model.MealDrinks},
		Priority:    2,
	},
	{
		ID:          "drink_temperature",
		Prompt:      "Temperature preference?",
		Emoji:       "🌡️",
		OptionLeft:  model.Option{Text: "Hot and warming", Emoji: "🔥", Category: "hot"},
		OptionRight: model.Option{Text: "Cold and refreshing", Emoji: "🧊", Category: "cold"},
		MealTypes:   []model.MealType{model.MealDrinks},
		Priority:    2,
	},
	{
		ID:          "time_of_day",
		Prompt:      "What time of day is it?",
		Emoji:       "🕐",
		OptionLeft:  model.Option{Text: "Morning energy", Emoji: "🌅", Category: "morning"},
		OptionRight: model.Option{Text: "Evening relaxation", Emoji: "🌙", Category: "evening"},
		Priority:    3,
	},
	{
		ID:          "social_setting",
		Prompt:      "Who are you with?",
		Emoji:       "👥",
		OptionLeft:  model.Option{Text: "Solo time", Emoji: "🧘", Category: "solo"},
		OptionRight: model.Option{Text: "With others", Emoji: "👫", Category: "social"},
		Priority:    3,
	},
}

// FallbackQuestion is returned once the eligible pool is exhausted. It
// is always valid to ask and its categories feed the scorer like any
// other answer.
var FallbackQuestion = model.Question{
	ID:          "fallback",
	Prompt:      "What sounds better right now?",
	Emoji:       "🤔",
	OptionLeft:  model.Option{Text: "Stick to favorites", Emoji: "❤️", Category: "familiar"},
	OptionRight: model.Option{Text: "Try something new", Emoji: "🌟", Category: "new"},
}

// minQuestions is the per-meal-type minimum before a recommendation is
// considered confident enough
var minQuestions = map[model.MealType]int{
	model.MealFullMeal:  6,
	model.MealBreakfast: 4,
	model.MealDessert:   4,
	model.MealSnacks:    4,
	model.MealIceCream:  4,
	model.MealDrinks:    4,
}

// MinQuestionCount returns how many answers are needed before the quiz
// for the given meal type can finish
func MinQuestionCount(meal model.MealType) int {
	if n, ok := minQuestions[meal]; ok {
		return n
	}
	return 4
}

// DefaultBank returns a copy of the built-in question pool
func DefaultBank() []model.Question {
	bank := make([]model.Question, len(questionBank))
	copy(bank, questionBank)
	return bank
}
