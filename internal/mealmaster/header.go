package mealmaster

import (
	"strings"

	"recipeconv/internal/textutil"
)

// recordBuffer walks the buffered lines of a single record. The three phase
// readers share one buffer and consume it strictly forward.
type recordBuffer struct {
	lines []string
	pos   int
}

// next returns the next line, or false once the record is exhausted.
func (b *recordBuffer) next() (string, bool) {
	if b.pos >= len(b.lines) {
		return "", false
	}
	line := b.lines[b.pos]
	b.pos++
	return line, true
}

// first returns the record's first line for error context.
func (b *recordBuffer) first() string {
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[0]
}

// readHeader populates recipe fields from the header section, consuming lines
// up to and including the terminating blank line. Blank lines before the
// first recognized field are tolerated and skipped; unrecognized non-blank
// lines are skipped for forward compatibility with unknown fields. If no
// blank line appears the header absorbs the rest of the record.
func readHeader(recipe *Recipe, buf *recordBuffer) error {
	started := false
	for {
		line, ok := buf.next()
		if !ok {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			if started {
				return nil
			}
			continue
		}
		field, value, ok := classifyHeaderLine(line)
		if !ok {
			continue
		}
		started = true
		switch field {
		case fieldTitle:
			recipe.Title = textutil.TitleCase(value)
		case fieldCategories:
			recipe.addCategories(strings.Split(value, ",")...)
		case fieldServings:
			recipe.Servings = value
		case fieldPrepTime:
			recipe.PrepTime = value
		case fieldCookTime:
			recipe.CookTime = value
		case fieldTotalTime:
			recipe.TotalTime = value
		case fieldDescription:
			recipe.Description = value
		case fieldNotes:
			recipe.addNote(value)
		}
	}
}
