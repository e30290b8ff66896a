package emotion

// fruitTable maps classifier labels to themed display tokens. The label set
// is the GoEmotions remap the classifier was trained on, plus a few aliases
// the older model revisions still emit.
var fruitTable = map[string]string{
	"joy":         "Mango Burst 🥭",
	"excited":     "Pineapple Pop 🍍",
	"passionate":  "Dragonfruit Flame 🐉",
	"hopeful":     "Peach Glow 🍑",
	"energetic":   "Kiwi Spark 🥝",
	"calm":        "Honeydew Breeze 🍈",
	"focused":     "Green Apple Zen 🍏",
	"thoughtful":  "Fig Reverie 🫒",
	"neutral":     "Banana Blank 🍌",
	"sad":         "Blueberry Drizzle 🫐",
	"angry":       "Pomegranate Storm 🔥",
	"frustrated":  "Sour Cherry 🍒",
	"anxious":     "Trembling Grape 🍇",
	"lonely":      "Solo Strawberry 🍓",
	"grateful":    "Sweet Clementine 🍊",
	"caring":      "Watermelon Hug 🍉",
	"empathetic":  "Ripe Papaya 🧡",
	"overwhelmed": "Crushed Cranberry 🥤",
}

// fruitDefault is returned for any label outside the table.
const fruitDefault = "Plain Lemon 🍋"

// CrisisFruit is the display token for crisis replies. It lives outside the
// fruit table so no classifier label can ever map to it.
const CrisisFruit = "🆘 Reach Out"

// Fruit maps an emotion label to its display token. Total: unknown labels
// resolve to the Plain Lemon fallback.
func Fruit(label string) string {
	if fruit, ok := fruitTable[label]; ok {
		return fruit
	}
	return fruitDefault
}
