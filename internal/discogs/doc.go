// Package discogs implements the Discogs database API client used for
// release search, barcode lookup, and release detail fetches, plus the
// mapping from a release record onto a collection album.
//
// Provider faults propagate to callers so the import flow can tell the user
// a lookup failed; nothing here swallows errors.
package discogs
