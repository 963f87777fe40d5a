package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"recipeconv/internal/mealmaster"
	"recipeconv/internal/mela"
)

// ErrNoConverter indicates no converter is registered for a suffix pair.
var ErrNoConverter = errors.New("no converter")

// Converter transforms one recipe collection file into another format,
// returning the number of recipes converted.
type Converter func(inputPath, outputPath string) (int, error)

type registration struct {
	inputSuffix  string
	outputSuffix string
	convert      Converter
}

var converters = []registration{
	{".mmf", ".melarecipes", MealMasterFileToMelaArchive},
}

// Lookup returns the converter registered for the given paths' suffixes.
func Lookup(inputPath, outputPath string) (Converter, error) {
	in := strings.ToLower(filepath.Ext(inputPath))
	out := strings.ToLower(filepath.Ext(outputPath))
	for _, reg := range converters {
		if reg.inputSuffix == in && reg.outputSuffix == out {
			return reg.convert, nil
		}
	}
	return nil, fmt.Errorf("%w from %q to %q", ErrNoConverter, in, out)
}

// MealMasterToMela maps one parsed MealMaster recipe onto a Mela record.
func MealMasterToMela(src *mealmaster.Recipe) mela.Recipe {
	recipe := mela.NewRecipe()
	recipe.Title = src.Title
	recipe.Text = src.Description
	recipe.Categories = slices.Clone(src.Categories)
	recipe.Yield = src.Servings
	recipe.PrepTime = src.PrepTime
	recipe.CookTime = src.CookTime
	recipe.TotalTime = src.TotalTime
	recipe.Ingredients = FlattenGroups(src.IngredientsGroups)
	recipe.Instructions = src.Instructions
	recipe.Notes = src.Notes
	recipe.Nutrition = src.Nutrition
	recipe.Link = src.Source
	return recipe
}

// FlattenGroups renders ingredient groups as Mela ingredient text. Named
// groups are prefixed with a "# Title" line; ingredients are newline-joined.
func FlattenGroups(groups []mealmaster.IngredientsGroup) string {
	var b strings.Builder
	for _, group := range groups {
		if group.Title != "" {
			b.WriteString("# ")
			b.WriteString(group.Title)
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(group.Ingredients, "\n"))
		b.WriteByte('\n')
	}
	return b.String()
}

// MealMasterFileToMelaArchive parses a MealMaster collection and writes the
// converted recipes as a Mela archive. Output is buffered and written once;
// a parse failure leaves no partial archive behind.
func MealMasterFileToMelaArchive(inputPath, outputPath string) (int, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input %s: %w", inputPath, err)
	}
	defer file.Close()

	parsed, err := mealmaster.ParseAll(file)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", inputPath, err)
	}

	recipes := make([]mela.Recipe, 0, len(parsed))
	for _, src := range parsed {
		recipes = append(recipes, MealMasterToMela(src))
	}
	if err := mela.Write(outputPath, recipes); err != nil {
		return 0, err
	}
	return len(recipes), nil
}
