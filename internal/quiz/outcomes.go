package quiz

import "whatshouldweeat/internal/model"

// outcomeIndex maps every producible outcome token to its display
// metadata. Tokens are stable; text is presentation only and may be
// overridden by the AI provider.
var outcomeIndex = map[string]model.Outcome{
	"pizza": {
		Token: "pizza", Title: "Pizza Night! 🍕", Emoji: "🍕",
		Description: "Cheesy, warm, and impossible to get wrong.",
		Suggestions: []string{"Classic margherita", "Loaded pepperoni", "Wood-fired anything"},
	},
	"burgers": {
		Token: "burgers", Title: "Burger Time! 🍔", Emoji: "🍔",
		Description: "A juicy burger hits the spot when you want something satisfying and familiar.",
		Suggestions: []string{"Smash burger with crispy edges", "Add bacon and cheese", "Pair with crispy fries"},
	},
	"pasta": {
		Token: "pasta", Title: "Pasta Comfort! 🍝", Emoji: "🍝",
		Description: "Warm, familiar, and soul-satisfying — exactly what a cozy mood calls for.",
		Suggestions: []string{"Creamy carbonara", "Butter and parmesan", "A rich bolognese"},
	},
	"ramen": {
		Token: "ramen", Title: "Ramen Run! 🍜", Emoji: "🍜",
		Description: "A steaming bowl of broth and noodles, perfect solo or on a rainy evening.",
		Suggestions: []string{"Tonkotsu with extra chashu", "Spicy miso", "Add a soft egg"},
	},
	"sushi": {
		Token: "sushi", Title: "Sushi Adventure! 🍣", Emoji: "🍣",
		Description: "Fresh, clean flavors for when your taste buds want to travel.",
		Suggestions: []string{"Omakase if you're feeling fancy", "A rainbow roll", "Fresh nigiri"},
	},
	"thai-curry": {
		Token: "thai-curry", Title: "Thai Curry Craving! 🍛", Emoji: "🍛",
		Description: "Bold, aromatic, and just the right amount of heat.",
		Suggestions: []string{"Green curry with jasmine rice", "Panang with beef", "Mango sticky rice after"},
	},
	"tacos": {
		Token: "tacos", Title: "Taco Time! 🌮", Emoji: "🌮",
		Description: "Big flavor, friendly price, and endless variety.",
		Suggestions: []string{"Street-style al pastor", "Fresh salsa verde", "Don't skip the elote"},
	},
	"salad": {
		Token: "salad", Title: "Fresh & Crisp! 🥗", Emoji: "🥗",
		Description: "Your body is asking for something light, fresh, and energizing.",
		Suggestions: []string{"Rainbow veggie bowl", "Caprese with avocado", "Mediterranean chickpea salad"},
	},
	"poke-bowl": {
		Token: "poke-bowl", Title: "Poke Bowl! 🐟", Emoji: "🥙",
		Description: "Fresh fish, rice, and toppings — healthy without feeling like a compromise.",
		Suggestions: []string{"Ahi tuna with ponzu", "Extra avocado", "Tofu bowl works too"},
	},
	"smoothie-bowl": {
		Token: "smoothie-bowl", Title: "Smoothie Bowl! 🫐", Emoji: "🥣",
		Description: "Bright, cold, and packed with fruit — a fresh start in a bowl.",
		Suggestions: []string{"Açaí with granola", "Add fresh berries", "A drizzle of honey"},
	},
	"steak": {
		Token: "steak", Title: "Steak Night! 🥩", Emoji: "🥩",
		Description: "Time to treat yourself to something a little more elevated.",
		Suggestions: []string{"Pan-seared with herb butter", "Medium rare, always", "A good glass of red"},
	},
	"sandwiches": {
		Token: "sandwiches", Title: "Sandwich Sorted! 🥪", Emoji: "🥪",
		Description: "Quick, reliable, and exactly as fancy as you want it to be.",
		Suggestions: []string{"A proper deli sub", "Grilled cheese and tomato soup", "Banh mi for a twist"},
	},
	"pancakes": {
		Token: "pancakes", Title: "Pancake Stack! 🥞", Emoji: "🥞",
		Description: "A leisurely stack with syrup — mornings don't get better.",
		Suggestions: []string{"Buttermilk with maple syrup", "Add blueberries", "Crispy bacon on the side"},
	},
	"avocado-toast": {
		Token: "avocado-toast", Title: "Avocado Toast! 🥑", Emoji: "🥑",
		Description: "Light, quick, and somehow always the right call.",
		Suggestions: []string{"Everything seasoning on top", "Add a poached egg", "Chili flakes for kick"},
	},
	"omelette": {
		Token: "omelette", Title: "Omelette Morning! 🍳", Emoji: "🍳",
		Description: "A hearty, protein-packed start when you've got a real day ahead.",
		Suggestions: []string{"Three eggs, lots of cheese", "Mushroom and herb", "Hash browns on the side"},
	},
	"chocolate-cake": {
		Token: "chocolate-cake", Title: "Chocolate Cake! 🍫", Emoji: "🍰",
		Description: "Rich, indulgent, and worth every bite.",
		Suggestions: []string{"Warm lava cake", "A scoop of vanilla on top", "Dark chocolate ganache"},
	},
	"fruit-parfait": {
		Token: "fruit-parfait", Title: "Fruit Parfait! 🍓", Emoji: "🍓",
		Description: "Light, fresh, and just sweet enough.",
		Suggestions: []string{"Greek yogurt and granola", "Fresh seasonal berries", "A drizzle of honey"},
	},
	"warm-cookies": {
		Token: "warm-cookies", Title: "Warm Cookies! 🍪", Emoji: "🍪",
		Description: "Fresh from the oven, gooey in the middle — pure comfort.",
		Suggestions: []string{"Chocolate chip, slightly underbaked", "With a glass of milk", "Snickerdoodles if you're bold"},
	},
	"cheesecake": {
		Token: "cheesecake", Title: "Cheesecake! 🍰", Emoji: "🍰",
		Description: "Cool, creamy, and refreshing without being too sweet.",
		Suggestions: []string{"Classic New York style", "Berry compote on top", "Basque burnt cheesecake"},
	},
	"sundae": {
		Token: "sundae", Title: "Classic Sundae! 🍨", Emoji: "🍨",
		Description: "A timeless build-your-own classic with all the toppings.",
		Suggestions: []string{"Hot fudge and a cherry", "Extra whipped cream", "Banana split upgrade"},
	},
	"gelato": {
		Token: "gelato", Title: "Gelato Discovery! 🍧", Emoji: "🍧",
		Description: "Dense, intense flavors you won't find in a supermarket tub.",
		Suggestions: []string{"Pistachio is the benchmark", "Stracciatella", "Ask for two flavors"},
	},
	"soft-serve": {
		Token: "soft-serve", Title: "Soft Serve! 🍦", Emoji: "🍦",
		Description: "Smooth, creamy, and nostalgic in the best way.",
		Suggestions: []string{"Vanilla-chocolate twist", "Dipped cone", "Matcha if they have it"},
	},
	"frozen-yogurt": {
		Token: "frozen-yogurt", Title: "Frozen Yogurt! 🍦", Emoji: "🍦",
		Description: "Lightly sweet and refreshing, with toppings you control.",
		Suggestions: []string{"Tart original", "Fresh fruit toppings", "Just a little granola"},
	},
	"nachos": {
		Token: "nachos", Title: "Nachos! 🧀", Emoji: "🧀",
		Description: "Salty, cheesy, and dangerously shareable.",
		Suggestions: []string{"Loaded with jalapeños", "Extra guacamole", "Pulled pork on top"},
	},
	"cookies": {
		Token: "cookies", Title: "Cookies! 🍪", Emoji: "🍪",
		Description: "Soft, sweet, and exactly the treat you were thinking about.",
		Suggestions: []string{"Bakery-fresh chocolate chip", "Oatmeal raisin deserves respect", "Double chocolate"},
	},
	"popcorn": {
		Token: "popcorn", Title: "Popcorn! 🍿", Emoji: "🍿",
		Description: "Crunchy, salty, and made for snacking by the handful.",
		Suggestions: []string{"Fresh-popped with real butter", "Try a caramel-cheese mix", "Movie night mandatory"},
	},
	"coffee": {
		Token: "coffee", Title: "Coffee Break! ☕", Emoji: "☕",
		Description: "A proper café drink to keep you going.",
		Suggestions: []string{"A well-pulled flat white", "Cold brew on warm days", "Single-origin pour over"},
	},
	"herbal-tea": {
		Token: "herbal-tea", Title: "Herbal Tea! 🍵", Emoji: "🍵",
		Description: "Warm, calming, and perfect for a cozy corner.",
		Suggestions: []string{"Chamomile to unwind", "Fresh mint tea", "Add a little honey"},
	},
	"cocktails": {
		Token: "cocktails", Title: "Cocktail Hour! 🍸", Emoji: "🍸",
		Description: "Something shaken or stirred for a social evening.",
		Suggestions: []string{"A classic negroni", "Ask the bartender's favorite", "Mocktails count too"},
	},
	"smoothie": {
		Token: "smoothie", Title: "Fresh Smoothie! 🥤", Emoji: "🥤",
		Description: "Cold, fruity, and refreshing without the buzz.",
		Suggestions: []string{"Mango and passionfruit", "Add a scoop of protein", "Green smoothie if you're brave"},
	},
	"bubble-tea": {
		Token: "bubble-tea", Title: "Bubble Tea! 🧋", Emoji: "🧋",
		Description: "Sweet, cold, and chewy — a drink and a snack in one.",
		Suggestions: []string{"Brown sugar boba", "Taro milk tea", "Less sugar, more pearls"},
	},
}

// defaultOutcome is substituted for any token without metadata
var defaultOutcome = model.Outcome{
	Token: "surprise", Title: "Surprise Me! 🎲", Emoji: "🎲",
	Description: "Something delicious is out there — go find it.",
	Suggestions: []string{"Pick the nearest place you've never tried", "Ask a friend for their favorite", "Flip a coin between two cravings"},
}

// OutcomeFor resolves an outcome token to its display metadata, falling
// back to the surprise entry for unknown tokens.
func OutcomeFor(token string) model.Outcome {
	if o, ok := outcomeIndex[token]; ok {
		return o
	}
	return defaultOutcome
}
