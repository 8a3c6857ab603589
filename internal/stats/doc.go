// Package stats computes read-only summary statistics over a collection
// snapshot: album count, decade histogram, artist frequency ranking, and
// market value totals and rankings.
package stats
