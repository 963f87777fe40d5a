// Command recipeconv converts recipe collections between formats and
// maintains Mela archives.
package main
