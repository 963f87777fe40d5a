// Package imaging scales downloaded recipe photos down to embeddable sizes.
package imaging
