package mealmaster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// splitState tracks the record splitter's position in the stream.
type splitState int

const (
	// stateOutsideRecord discards preamble, postamble, and between-record
	// text. Only a record-start delimiter leaves this state.
	stateOutsideRecord splitState = iota

	// stateInsideRecord buffers interior lines. Only the record-end
	// delimiter is recognized here; start-shaped lines (such as ingredient
	// subheadings) are buffered like any other.
	stateInsideRecord
)

// Scanner yields the records of a MealMaster stream one at a time. The
// underlying reader is read strictly once, forward-only; the Scanner owns it
// for the duration of the scan. Scanning past the end returns false without
// error. A failed record assembly or stream error stops the scan; there is
// no skip-and-continue.
type Scanner struct {
	src     *bufio.Scanner
	state   splitState
	buffer  []string
	current *Recipe
	err     error
}

// NewScanner returns a Scanner reading MealMaster records from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{src: bufio.NewScanner(r)}
}

// Scan advances to the next complete record, returning false at end of input
// or on error. On true, Recipe returns the parsed record.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.src.Scan() {
		line := strings.TrimSuffix(s.src.Text(), "\r")
		switch s.state {
		case stateOutsideRecord:
			if isRecordStart(line) {
				s.state = stateInsideRecord
				s.buffer = s.buffer[:0]
			}
		case stateInsideRecord:
			if isRecordEnd(line) {
				s.state = stateOutsideRecord
				recipe, err := assemble(s.buffer)
				if err != nil {
					s.err = err
					return false
				}
				s.current = recipe
				return true
			}
			s.buffer = append(s.buffer, line)
		}
	}
	if err := s.src.Err(); err != nil {
		s.err = fmt.Errorf("%w: %w", ErrStream, err)
	}
	return false
}

// Recipe returns the record produced by the last successful Scan. The value
// is not mutated by further scans.
func (s *Scanner) Recipe() *Recipe {
	return s.current
}

// Err returns the first failure encountered while scanning, if any.
func (s *Scanner) Err() error {
	return s.err
}

// assemble runs the header, ingredients, and body readers over one record's
// buffered lines. Failures carry the record's first line or its best-known
// title so the defective record can be located in the source file.
func assemble(lines []string) (*Recipe, error) {
	buf := &recordBuffer{lines: lines}
	recipe := &Recipe{}
	if err := readHeader(recipe, buf); err != nil {
		return nil, fmt.Errorf("%w: record starting %q: %w", ErrHeaderParse, buf.first(), err)
	}
	groups, err := readIngredients(buf)
	if err != nil && !errors.Is(err, ErrContinuation) {
		context := recipe.Title
		if context == "" {
			context = buf.first()
		}
		return nil, fmt.Errorf("%w: recipe %q: %w", ErrIngredientsParse, context, err)
	}
	recipe.IngredientsGroups = groups
	if err := readBody(recipe, buf); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ParseAll reads every record from r. It is a convenience for callers that
// buffer whole collections; the Scanner remains the streaming surface.
func ParseAll(r io.Reader) ([]*Recipe, error) {
	sc := NewScanner(r)
	var recipes []*Recipe
	for sc.Scan() {
		recipes = append(recipes, sc.Recipe())
	}
	return recipes, sc.Err()
}
