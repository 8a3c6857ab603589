// Package importer implements the album write path: manual entry with form
// validation, imports from the Discogs and Spotify metadata providers,
// barcode resolution, and condition/value edits that merge into existing
// records.
//
// Validation and provider faults fail loud so the user can be told what went
// wrong; a rejected save surfaces as a storage error that invites a retry.
package importer
