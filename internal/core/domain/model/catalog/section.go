package catalog

// Section is a menu section. Type matches Dish.Type.
type Section struct {
	Type  string
	Emoji string
}

// Sections returns the menu sections in display order.
func Sections() []Section {
	return []Section{
		{Type: "Appetizer", Emoji: "🥟"},
		{Type: "Soups", Emoji: "🍜"},
		{Type: "Wok mains", Emoji: "🥘"},
		{Type: "Pad Thai", Emoji: "🫕"},
		{Type: "side dish", Emoji: "🍟"},
		{Type: "Crispy Chicken", Emoji: "🍗"},
		{Type: "Noodles", Emoji: "🍝"},
		{Type: "Salads", Emoji: "🥗"},
		{Type: "Special", Emoji: "🥢"},
		{Type: "Mains from sea", Emoji: "🍤"},
		{Type: "Sushi", Emoji: "🍱"},
		{Type: "Sushi Sandwich", Emoji: "🍣"},
	}
}

// FindSection looks a section up by its dish type.
func FindSection(dishType string) (Section, bool) {
	for _, s := range Sections() {
		if s.Type == dishType {
			return s, true
		}
	}
	return Section{}, false
}
