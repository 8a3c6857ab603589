// Package events carries the "collection changed" signal between flows.
//
// Bus is the in-process channel: the add/edit flows call Notify after a
// successful save and browse surfaces re-read through their subscription.
// Watch extends the same signal across processes by observing the store's
// database file for outside writes.
package events
