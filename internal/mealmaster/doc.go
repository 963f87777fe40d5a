// Package mealmaster parses MealMaster recipe exports, a line-oriented
// legacy format with no formal grammar.
//
// A MealMaster file contains any number of records, each delimited by an
// MMMMM marker line. Inside a record the parser runs three phases in order:
// the header (labeled fields like "Title:" up to the first blank line), the
// ingredients block (optionally split into named groups by subheading
// delimiters, with "- " continuation lines), and the body (free-text
// instructions interleaved with "::" comment lines, some of which carry
// structured metadata).
//
// The parser is deliberately permissive: unrecognized header lines and
// unknown comments are skipped, and a continuation line with nothing to
// continue starts a fresh ingredient. Structural failures while assembling a
// record abort the whole scan; there is no per-record recovery.
//
// Scanner provides a lazy, forward-only view over the records of a stream:
//
//	sc := mealmaster.NewScanner(file)
//	for sc.Scan() {
//		recipe := sc.Recipe()
//		...
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
package mealmaster
