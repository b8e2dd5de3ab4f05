package foodparse

// Catalog is the curated food vocabulary the parser matches against.
// Phrases are multi-word entries and always take precedence over keywords:
// the parser scans every phrase to completion before any keyword is
// considered, so a phrase claims its span even when a keyword inside it
// would have been found earlier in the text.
type Catalog struct {
	Phrases  []string
	Keywords []string
}

// DefaultCatalog returns the built-in food vocabulary. The catalogs resolve
// these names to nutrient records, so entries mirror what the embedded food
// databases can answer for.
func DefaultCatalog() Catalog {
	return Catalog{
		Phrases: []string{
			"chicken breast", "chicken nugget", "chicken tender", "chicken wing",
			"ground beef", "beef patty", "ribeye steak", "sirloin steak",
			"salmon fillet", "tuna steak", "white rice", "brown rice", "fried rice",
			"whole wheat bread", "wheat bread", "mashed potato", "french fries",
			"greek yogurt", "cottage cheese", "cheddar cheese", "blue cheese",
			"almond milk", "soy milk", "oat milk",
			"wendy burger", "wendy fries", "wendy nugget",
			"mcdonald burger", "burger king burger",
			"peanut butter", "almond butter",
			"apple pie", "fruit salad",
		},
		Keywords: []string{
			"chicken", "beef", "fish", "salmon", "tuna", "steak", "pork",
			"rice", "pasta", "bread", "potato", "fries", "pizza",
			"salad", "vegetables", "broccoli", "spinach", "peas", "corn",
			"egg", "eggs", "yogurt", "milk", "cheese", "butter", "avocado",
			"nuts", "almonds", "peanuts", "cashews",
			"burger", "sandwich", "taco", "wrap",
			"wendy", "mcdonald", "burger king", "kfc", "subway", "taco bell",
			"coffee", "tea", "soda", "juice",
			"nugget", "fry", "cake", "cookie", "chips",
			"apple", "banana", "orange", "berries", "fruit",
		},
	}
}
