package mealmaster

import (
	"regexp"
	"strings"
)

// Line classification is a fixed, ordered set of shape rules. Which rules are
// attempted depends on the active phase: the record splitter checks only the
// record delimiters, the header reader only the field labels, and so on. A
// line that looks like a header field inside the ingredients block is still
// an ingredient line.
var (
	// recipeStartPattern matches the marker opening a record, which usually
	// carries trailing text ("MMMMM----- Recipe via Meal-Master (tm) v8.05").
	recipeStartPattern = regexp.MustCompile(`^MMMMM-+`)

	// subheadingPattern matches an in-ingredients group delimiter such as
	// "MMMMM-----------------SAUCE----------------------". Unlike the start
	// marker it must close with a dash run.
	subheadingPattern = regexp.MustCompile(`^MMMMM-+(.*?)-+$`)
)

// isRecordEnd reports whether line is the record-end marker. The end marker
// is the bare MMMMM with no trailing text, which distinguishes it from the
// more general start marker.
func isRecordEnd(line string) bool {
	return line == "MMMMM"
}

// isRecordStart reports whether line opens a new record.
func isRecordStart(line string) bool {
	return recipeStartPattern.MatchString(line)
}

// matchSubheading extracts the group title from a subheading delimiter. The
// captured text is trimmed of the surrounding dash padding and whitespace.
func matchSubheading(line string) (string, bool) {
	m := subheadingPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), "-")), true
}

// headerField identifies which Recipe field a header label populates.
type headerField int

const (
	fieldTitle headerField = iota
	fieldCategories
	fieldServings
	fieldPrepTime
	fieldCookTime
	fieldTotalTime
	fieldDescription
	fieldNotes
)

// headerRule couples a label pattern with the field it populates. Labels are
// case-insensitive and some accept a long form ("Prep Time" and
// "Preparation Time" are the same field).
type headerRule struct {
	field   headerField
	pattern *regexp.Regexp
}

// headerRules are evaluated in order; the first match wins.
var headerRules = []headerRule{
	{fieldTitle, regexp.MustCompile(`(?i)^\s*Title:\s*(.+)`)},
	{fieldCategories, regexp.MustCompile(`(?i)^\s*Categories:\s*(.+)`)},
	{fieldServings, regexp.MustCompile(`(?i)^\s*Servings:\s*(.+)`)},
	{fieldPrepTime, regexp.MustCompile(`(?i)^\s*Prep(?:aration)? Time:\s*(.+)`)},
	{fieldCookTime, regexp.MustCompile(`(?i)^\s*Cook(?:ing)? Time:\s*(.+)`)},
	{fieldTotalTime, regexp.MustCompile(`(?i)^\s*Total Time:\s*(.+)`)},
	{fieldDescription, regexp.MustCompile(`(?i)^\s*Description:\s*(.+)`)},
	{fieldNotes, regexp.MustCompile(`(?i)^\s*Notes?:\s*(.+)`)},
}

// classifyHeaderLine returns the first header rule matching line along with
// the captured value.
func classifyHeaderLine(line string) (headerField, string, bool) {
	for _, rule := range headerRules {
		if m := rule.pattern.FindStringSubmatch(line); m != nil {
			return rule.field, m[1], true
		}
	}
	return 0, "", false
}

// metaTag identifies a structured metadata comment in the record body.
type metaTag int

const (
	tagNutrition metaTag = iota
	tagCategories
	tagSource
)

const commentSigil = "::"

// metaRules match the tagged comment lines German MealMaster exports embed
// in the body: Quelle (source), Stichworte (keywords), Energie (nutrition).
var metaRules = []struct {
	tag     metaTag
	pattern *regexp.Regexp
}{
	{tagNutrition, regexp.MustCompile(`(?i)^::Energie\s+:\s+:\s(.+)`)},
	{tagCategories, regexp.MustCompile(`(?i)^::Stichworte\s+:\s+:\s(.+)`)},
	{tagSource, regexp.MustCompile(`(?i)^::Quelle\s+:\s+:\s+(.+)`)},
}

// classifyMetaComment returns the metadata tag and captured value for a
// recognized tagged comment line.
func classifyMetaComment(line string) (metaTag, string, bool) {
	for _, rule := range metaRules {
		if m := rule.pattern.FindStringSubmatch(line); m != nil {
			return rule.tag, m[1], true
		}
	}
	return 0, "", false
}

// isComment reports whether line is a comment to be discarded. A bare "::"
// with no content does not count and flows into the instructions.
func isComment(line string) bool {
	return strings.HasPrefix(line, commentSigil) && len(line) > len(commentSigil)
}
