package mealmaster

import (
	"slices"
	"strings"
)

// IngredientsGroup is a named run of ingredient lines. An empty title means
// the ingredients appeared before any subheading. Ingredient order matters
// to the cook and is preserved as written.
type IngredientsGroup struct {
	Title       string
	Ingredients []string
}

// Recipe is one parsed MealMaster record. All scalar fields default to the
// empty string; Categories preserves first-seen order without duplicates.
type Recipe struct {
	Title             string
	Description       string
	Servings          string
	PrepTime          string
	CookTime          string
	TotalTime         string
	Categories        []string
	IngredientsGroups []IngredientsGroup
	Instructions      string
	Nutrition         string
	Source            string
	Notes             string
}

// addCategories appends values not already present, preserving first-seen
// order. Blank values are ignored.
func (r *Recipe) addCategories(values ...string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !slices.Contains(r.Categories, v) {
			r.Categories = append(r.Categories, v)
		}
	}
}

// addNote accumulates note lines, separated by newlines. The notes field may
// be spread over several header lines interleaved with other fields.
func (r *Recipe) addNote(value string) {
	if r.Notes != "" {
		r.Notes += "\n"
	}
	r.Notes += value
}

// setSource keeps the first source seen; later occurrences are ignored.
func (r *Recipe) setSource(value string) {
	if r.Source == "" {
		r.Source = value
	}
}

// setNutrition keeps the last nutrition value seen.
func (r *Recipe) setNutrition(value string) {
	r.Nutrition = value
}
