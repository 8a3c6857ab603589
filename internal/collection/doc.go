// Package collection defines the album model and its durable store.
//
// The collection is persisted as a single JSON-encoded array under one key in
// a SQLite key-value table, read-modify-written wholesale on every upsert.
// That keeps the document layout compatible with earlier revisions of the
// tracker while a file lock serializes writers across processes. Reads fail
// soft by contract: a corrupt or unreadable document degrades to "no albums"
// rather than crashing callers that only want to render a list.
//
// There is no delete operation; removal is deliberately outside this core.
package collection
