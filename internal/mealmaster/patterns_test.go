package mealmaster

import "testing"

func TestRecordDelimiters(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStart bool
		wantEnd   bool
	}{
		{"start with banner", "MMMMM----- Recipe via Meal-Master (tm) v8.05", true, false},
		{"start bare dashes", "MMMMM-----", true, false},
		{"end marker", "MMMMM", false, true},
		{"end with trailing space is not end", "MMMMM ", false, false},
		{"plain text", "1 cup flour", false, false},
		{"marker mid-line", " MMMMM-----", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRecordStart(tt.line); got != tt.wantStart {
				t.Errorf("isRecordStart(%q) = %v, want %v", tt.line, got, tt.wantStart)
			}
			if got := isRecordEnd(tt.line); got != tt.wantEnd {
				t.Errorf("isRecordEnd(%q) = %v, want %v", tt.line, got, tt.wantEnd)
			}
		})
	}
}

func TestMatchSubheading(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTitle string
		wantOK    bool
	}{
		{"padded title", "MMMMM-----------------SAUCE----------------------", "SAUCE", true},
		{"title with spaces", "MMMMM----- For the Sauce -----", "For the Sauce", true},
		{"no trailing dashes", "MMMMM----- Recipe via Meal-Master (tm)", "", false},
		{"end marker", "MMMMM", "", false},
		{"dashes only", "MMMMM----------", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := matchSubheading(tt.line)
			if ok != tt.wantOK || title != tt.wantTitle {
				t.Errorf("matchSubheading(%q) = %q, %v, want %q, %v", tt.line, title, ok, tt.wantTitle, tt.wantOK)
			}
		})
	}
}

func TestClassifyHeaderLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantField headerField
		wantValue string
		wantOK    bool
	}{
		{"title", "      Title: Chicken Soup", fieldTitle, "Chicken Soup", true},
		{"title lowercase label", "title: chicken soup", fieldTitle, "chicken soup", true},
		{"categories", " Categories: Soup, Easy", fieldCategories, "Soup, Easy", true},
		{"servings", "   Servings: 4 Portionen", fieldServings, "4 Portionen", true},
		{"prep time short", "Prep Time: 10 min", fieldPrepTime, "10 min", true},
		{"prep time long", "Preparation Time: 10 min", fieldPrepTime, "10 min", true},
		{"cook time long", "Cooking Time: 30 min", fieldCookTime, "30 min", true},
		{"total time", "Total Time: 40 min", fieldTotalTime, "40 min", true},
		{"description", "Description: hearty", fieldDescription, "hearty", true},
		{"note singular", "Note: first", fieldNotes, "first", true},
		{"notes plural", "Notes: second", fieldNotes, "second", true},
		{"no label", "1 cup flour", 0, "", false},
		{"label without value", "Title:", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, value, ok := classifyHeaderLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("classifyHeaderLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if field != tt.wantField || value != tt.wantValue {
				t.Errorf("classifyHeaderLine(%q) = %v, %q, want %v, %q", tt.line, field, value, tt.wantField, tt.wantValue)
			}
		})
	}
}

func TestClassifyMetaComment(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTag   metaTag
		wantValue string
		wantOK    bool
	}{
		{"source", "::Quelle   :   : Omas Kochbuch", tagSource, "Omas Kochbuch", true},
		{"categories", "::Stichworte   :   : Suppe, Einfach", tagCategories, "Suppe, Einfach", true},
		{"nutrition", "::Energie   :   : 450 kcal", tagNutrition, "450 kcal", true},
		{"generic comment", "::Erfasst am 01.01.1999", 0, "", false},
		{"not a comment", "Quelle: Omas Kochbuch", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, value, ok := classifyMetaComment(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("classifyMetaComment(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && (tag != tt.wantTag || value != tt.wantValue) {
				t.Errorf("classifyMetaComment(%q) = %v, %q, want %v, %q", tt.line, tag, value, tt.wantTag, tt.wantValue)
			}
		})
	}
}

func TestIsComment(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"::Erfasst am 01.01.1999", true},
		{"::x", true},
		{"::", false},
		{"Melt the butter.", false},
	}
	for _, tt := range tests {
		if got := isComment(tt.line); got != tt.want {
			t.Errorf("isComment(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
