package mela

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"recipeconv/internal/textutil"
)

// Recipe is one Mela archive entry. Mela uses the URL (without scheme) as
// the identifier for recipes imported from the web, and expects a UUID
// otherwise; the identifier must not be empty in an import file. Yield does
// not have to be numeric and Link accepts any source string, not just URLs.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Text         string   `json:"text"`
	Images       []string `json:"images"`
	Categories   []string `json:"categories"`
	Yield        string   `json:"yield"`
	PrepTime     string   `json:"prepTime"`
	CookTime     string   `json:"cookTime"`
	TotalTime    string   `json:"totalTime"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Notes        string   `json:"notes"`
	Nutrition    string   `json:"nutrition"`
	Link         string   `json:"link"`
}

// NewRecipe returns a Recipe with a generated identifier.
func NewRecipe() Recipe {
	return Recipe{ID: uuid.New().String()}
}

// EnsureID assigns a generated identifier when none is set.
func (r *Recipe) EnsureID() {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
}

// Filename derives the archive entry name: the kebab-cased title followed by
// the first six hex characters of the identifier's SHA-256, for collision
// avoidance between same-titled recipes.
func (r *Recipe) Filename() string {
	sum := sha256.Sum256([]byte(r.ID))
	return fmt.Sprintf("%s-%s.melarecipe", textutil.KebabToken(r.Title), hex.EncodeToString(sum[:3]))
}
