package mealmaster

import "errors"

// Sentinel errors classifying parse failures. A Scanner error always wraps
// one of these, together with enough context (the record's first line or its
// best-known title) to locate the offending record in the source file.
var (
	// ErrHeaderParse marks a record whose header section could not be read.
	ErrHeaderParse = errors.New("header parse failure")

	// ErrIngredientsParse marks a record whose ingredients section could not
	// be read.
	ErrIngredientsParse = errors.New("ingredients parse failure")

	// ErrContinuation names a continuation line with no prior ingredient to
	// extend. The ingredients reader starts a fresh ingredient instead and
	// reports the condition alongside the recovered groups; the scanner
	// treats it as non-fatal, so it never aborts a scan.
	ErrContinuation = errors.New("malformed continuation")

	// ErrStream marks a failure reading the underlying input.
	ErrStream = errors.New("stream failure")
)
