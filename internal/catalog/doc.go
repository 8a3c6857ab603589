// Package catalog provides the in-memory filter and sort used by the browse
// surface. It operates on snapshots already loaded from the store and always
// returns fresh slices.
package catalog
