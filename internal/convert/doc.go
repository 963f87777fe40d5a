// Package convert maps parsed recipes between collection formats. Converters
// are registered by (input suffix, output suffix) pairs and looked up from
// the paths the user supplies; the field mapping itself is a pure transform
// with no parsing responsibility.
package convert
