// Package enrich adds photos to Mela recipes that lack one. Each recipe is
// handled independently: failures for a single recipe are logged and
// skipped, never aborting the batch.
package enrich
