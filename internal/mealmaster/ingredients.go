package mealmaster

import (
	"fmt"
	"strings"

	"recipeconv/internal/textutil"
)

// continuationMarker starts a line whose content extends the previous
// ingredient. MealMaster limits ingredient line length; longer entries are
// wrapped onto marker lines.
const continuationMarker = "- "

// readIngredients consumes the ingredients block, up to and including its
// terminating blank line, grouping lines under subheading delimiters. A
// block with no ingredient lines yields no groups at all. An untitled group
// is only ever opened by an actual ingredient line, so untitled groups are
// never empty; titled groups may be (two subheadings in a row).
//
// A continuation line with no prior ingredient is recovered as a fresh entry
// and reported through the returned error, which wraps ErrContinuation; the
// groups alongside it are complete and usable.
func readIngredients(buf *recordBuffer) ([]IngredientsGroup, error) {
	var groups []IngredientsGroup
	var current *IngredientsGroup
	var contErr error
	for {
		line, ok := buf.next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if title, ok := matchSubheading(line); ok {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &IngredientsGroup{Title: title}
			continue
		}
		if current == nil {
			current = &IngredientsGroup{}
		}
		normalized := textutil.CollapseWhitespace(strings.TrimSpace(line))
		if rest, ok := strings.CutPrefix(normalized, continuationMarker); ok {
			if len(current.Ingredients) == 0 {
				// Nothing to continue; recover by starting a fresh entry.
				if contErr == nil {
					contErr = fmt.Errorf("%w: %q", ErrContinuation, line)
				}
				current.Ingredients = append(current.Ingredients, rest)
			} else {
				current.Ingredients[len(current.Ingredients)-1] += " " + rest
			}
			continue
		}
		current.Ingredients = append(current.Ingredients, normalized)
	}
	if current != nil {
		groups = append(groups, *current)
	}
	return groups, contErr
}
