package icons

// DefaultLexicon is the vocabulary shipped with printlist. A lexicon
// file, when configured, replaces it entirely.
func DefaultLexicon() Lexicon {
	return NewLexicon(defaultCanonical, defaultSynonyms)
}

var defaultCanonical = []string{
	"apple", "avocado", "banana", "basil", "bean", "beef", "beer",
	"berry", "bread", "broccoli", "butter", "cabbage", "carrot",
	"celery", "cereal", "cheese", "chicken", "chocolate", "coffee",
	"cookie", "corn", "cracker", "cucumber", "egg", "fish", "flour",
	"garlic", "grape", "ham", "honey", "hummus", "juice", "ketchup",
	"lemon", "lettuce", "lime", "milk", "mushroom", "mustard",
	"noodle", "nut", "oil", "olive", "onion", "orange", "pasta",
	"peach", "pear", "pepper", "pickle", "pizza", "pork", "potato",
	"rice", "salad", "salmon", "salt", "sauce", "sausage", "shrimp",
	"soap", "soda", "soup", "spinach", "strawberry", "sugar", "tea",
	"toilet_paper", "tomato", "tortilla", "turkey", "water",
	"watermelon", "wine", "yogurt",
}

var defaultSynonyms = map[string]string{
	"bell pepper":    "pepper",
	"green onion":    "onion",
	"scallion":       "onion",
	"spring mix":     "salad",
	"mixed greens":   "salad",
	"romaine":        "lettuce",
	"ground beef":    "beef",
	"mince":          "beef",
	"granny smith":   "apple",
	"gala":           "apple",
	"clementine":     "orange",
	"mandarin":       "orange",
	"tangerine":      "orange",
	"blueberry":      "berry",
	"raspberry":      "berry",
	"blackberry":     "berry",
	"spaghetti":      "pasta",
	"penne":          "pasta",
	"macaroni":       "pasta",
	"ramen":          "noodle",
	"baguette":       "bread",
	"bun":            "bread",
	"roll":           "bread",
	"bagel":          "bread",
	"oj":             "juice",
	"orange juice":   "juice",
	"pop":            "soda",
	"seltzer":        "water",
	"tp":             "toilet_paper",
	"kleenex":        "toilet_paper",
	"dish soap":      "soap",
	"detergent":      "soap",
	"half and half":  "milk",
	"creamer":        "milk",
	"greek yogurt":   "yogurt",
	"cheddar":        "cheese",
	"mozzarella":     "cheese",
	"parmesan":       "cheese",
}
