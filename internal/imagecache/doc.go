// Package imagecache persists downloaded recipe images between enrichment
// runs, keyed by search query, so repeated runs over the same collection do
// not hit the network again.
package imagecache
