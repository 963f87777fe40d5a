package mealmaster

import "strings"

// readBody consumes the remainder of the record. Tagged metadata comments
// are folded into the recipe (categories dedup-append, source first-wins,
// nutrition last-wins), other comment lines are discarded, and everything
// else accumulates into the instructions text. The result is trimmed and a
// doubled blank line collapsed to a single newline in one global pass.
func readBody(recipe *Recipe, buf *recordBuffer) error {
	var instructions strings.Builder
	for {
		line, ok := buf.next()
		if !ok {
			break
		}
		if tag, value, ok := classifyMetaComment(line); ok {
			switch tag {
			case tagNutrition:
				recipe.setNutrition(value)
			case tagCategories:
				for _, cat := range strings.Fields(value) {
					recipe.addCategories(strings.TrimRight(cat, ","))
				}
			case tagSource:
				recipe.setSource(value)
			}
			continue
		}
		if isComment(line) {
			continue
		}
		instructions.WriteString(line)
		instructions.WriteByte('\n')
	}
	recipe.Instructions = strings.ReplaceAll(strings.TrimSpace(instructions.String()), "\n\n", "\n")
	return nil
}
