package mealmaster

import (
	"slices"
	"testing"
)

func readHeaderLines(t *testing.T, lines []string) (*Recipe, *recordBuffer) {
	t.Helper()
	recipe := &Recipe{}
	buf := &recordBuffer{lines: lines}
	if err := readHeader(recipe, buf); err != nil {
		t.Fatalf("readHeader failed: %v", err)
	}
	return recipe, buf
}

func TestReadHeaderTitleCased(t *testing.T) {
	recipe, _ := readHeaderLines(t, []string{"      Title: chicken soup"})
	if recipe.Title != "Chicken Soup" {
		t.Errorf("Title = %q, want %q", recipe.Title, "Chicken Soup")
	}
}

func TestReadHeaderFields(t *testing.T) {
	recipe, _ := readHeaderLines(t, []string{
		"      Title: Flammendes Wikingerschwert",
		" Categories: Fleisch, Grill",
		"   Servings: 4 Portionen",
		"  Prep Time: 20 min",
		"Cooking Time: 45 min",
		" Total Time: 65 min",
		"Description: Ein Klassiker",
	})
	if recipe.Title != "Flammendes Wikingerschwert" {
		t.Errorf("Title = %q", recipe.Title)
	}
	if !slices.Equal(recipe.Categories, []string{"Fleisch", "Grill"}) {
		t.Errorf("Categories = %v", recipe.Categories)
	}
	if recipe.Servings != "4 Portionen" {
		t.Errorf("Servings = %q", recipe.Servings)
	}
	if recipe.PrepTime != "20 min" || recipe.CookTime != "45 min" || recipe.TotalTime != "65 min" {
		t.Errorf("times = %q %q %q", recipe.PrepTime, recipe.CookTime, recipe.TotalTime)
	}
	if recipe.Description != "Ein Klassiker" {
		t.Errorf("Description = %q", recipe.Description)
	}
}

func TestReadHeaderLeadingBlanksTolerated(t *testing.T) {
	recipe, buf := readHeaderLines(t, []string{
		"",
		"   ",
		"      Title: Soup",
		"",
		"1 cup water",
	})
	if recipe.Title != "Soup" {
		t.Errorf("Title = %q, want %q", recipe.Title, "Soup")
	}
	// Header consumed through its terminating blank, nothing further.
	if line, ok := buf.next(); !ok || line != "1 cup water" {
		t.Errorf("next line = %q, %v, want %q, true", line, ok, "1 cup water")
	}
}

func TestReadHeaderUnknownLinesSkipped(t *testing.T) {
	recipe, _ := readHeaderLines(t, []string{
		"ImportedBy: SomeTool 2.0",
		"      Title: Soup",
		"   Yield: 4", // unknown label, skipped
		"",
	})
	if recipe.Title != "Soup" {
		t.Errorf("Title = %q, want %q", recipe.Title, "Soup")
	}
	if recipe.Servings != "" {
		t.Errorf("Servings = %q, want empty", recipe.Servings)
	}
}

func TestReadHeaderNotesInterleaved(t *testing.T) {
	recipe, _ := readHeaderLines(t, []string{
		"Notes: use fresh herbs",
		"      Title: Soup",
		"Note: serve hot",
		"",
	})
	if recipe.Notes != "use fresh herbs\nserve hot" {
		t.Errorf("Notes = %q", recipe.Notes)
	}
}

func TestReadHeaderAbsorbsRecordWithoutBlank(t *testing.T) {
	_, buf := readHeaderLines(t, []string{
		"      Title: Soup",
		"1 cup water",
		"2 carrots",
	})
	if _, ok := buf.next(); ok {
		t.Error("expected header to absorb the entire record when no blank line appears")
	}
}

func TestReadHeaderCategoriesDeduped(t *testing.T) {
	recipe, _ := readHeaderLines(t, []string{" Categories: Soup, Easy, Easy", ""})
	if !slices.Equal(recipe.Categories, []string{"Soup", "Easy"}) {
		t.Errorf("Categories = %v, want [Soup Easy]", recipe.Categories)
	}
}
