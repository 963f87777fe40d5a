// Package textutil provides text helpers shared across the converter:
// whitespace normalization for parsed ingredient lines, title-casing for
// recipe titles, and token sanitization for archive entry names.
package textutil
