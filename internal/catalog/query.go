package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"waxcrate/internal/collection"
)

// SortMode selects the active ordering for the browse view. Exactly one mode
// applies at a time.
type SortMode string

const (
	SortByTitle  SortMode = "title"
	SortByArtist SortMode = "artist"
	// SortByYear orders newest first; albums with an unknown year (0)
	// compare as zero and therefore sort last.
	SortByYear SortMode = "year"
)

// ParseSortMode converts user input into a SortMode.
func ParseSortMode(value string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(value))) {
	case SortByTitle, "":
		return SortByTitle, nil
	case SortByArtist:
		return SortByArtist, nil
	case SortByYear:
		return SortByYear, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q (expected title, artist, or year)", value)
	}
}

// Filter returns the albums whose title or artist contains the query,
// case-insensitively. An empty query matches everything. The input slice is
// never mutated.
func Filter(albums []collection.Album, query string) []collection.Album {
	query = strings.ToLower(query)
	matched := make([]collection.Album, 0, len(albums))
	for _, album := range albums {
		if query == "" ||
			strings.Contains(strings.ToLower(album.Title), query) ||
			strings.Contains(strings.ToLower(album.Artist), query) {
			matched = append(matched, album)
		}
	}
	return matched
}

// Sort returns a freshly ordered copy of albums. Title and artist modes use
// locale-aware collation; year mode is newest first.
func Sort(albums []collection.Album, mode SortMode) []collection.Album {
	ordered := make([]collection.Album, len(albums))
	copy(ordered, albums)

	switch mode {
	case SortByArtist:
		collator := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(ordered, func(i, j int) bool {
			return collator.CompareString(ordered[i].Artist, ordered[j].Artist) < 0
		})
	case SortByYear:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Year > ordered[j].Year
		})
	default:
		collator := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(ordered, func(i, j int) bool {
			return collator.CompareString(ordered[i].Title, ordered[j].Title) < 0
		})
	}
	return ordered
}

// Browse filters then sorts, the composition the browse view uses.
func Browse(albums []collection.Album, query string, mode SortMode) []collection.Album {
	return Sort(Filter(albums, query), mode)
}
