package mealmaster

import (
	"fmt"
	"strings"
)

// EncodeGroups renders ingredient groups back into MealMaster grouped text:
// a subheading delimiter line for each titled group followed by its
// ingredient lines. Re-parsing the result yields an equivalent group
// sequence, though not byte-identical source (whitespace normalization is
// lossy by design).
func EncodeGroups(groups []IngredientsGroup) string {
	var b strings.Builder
	for _, group := range groups {
		if group.Title != "" {
			fmt.Fprintf(&b, "MMMMM-----%s-----\n", group.Title)
		}
		for _, ingredient := range group.Ingredients {
			b.WriteString(ingredient)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseGroups parses grouped ingredient text as produced by EncodeGroups,
// outside the context of a full record.
func ParseGroups(text string) ([]IngredientsGroup, error) {
	var lines []string
	if text != "" {
		lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	}
	return readIngredients(&recordBuffer{lines: lines})
}
