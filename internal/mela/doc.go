// Package mela reads and writes Mela recipe archives. A .melarecipes file is
// a zip container holding one JSON document per recipe; entry names are
// derived from the recipe title plus a short hash of its identifier so that
// same-titled recipes do not collide.
package mela
