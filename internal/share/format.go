package share

import (
	"fmt"
	"strings"

	"waxcrate/internal/collection"
	"waxcrate/internal/stats"
)

// FormatAlbum builds the plain-text share message for a single album.
// Optional lines are included only when the album carries the data.
func FormatAlbum(album collection.Album) string {
	var b strings.Builder
	b.WriteString("Check out this vinyl in my collection!\n")
	fmt.Fprintf(&b, "%s by %s\n", album.Title, album.Artist)
	fmt.Fprintf(&b, "Year: %d", album.Year)

	if len(album.Genres) > 0 {
		fmt.Fprintf(&b, "\nGenres: %s", strings.Join(album.Genres, ", "))
	}
	if album.Condition != nil {
		fmt.Fprintf(&b, "\nCondition: Vinyl - %s, Sleeve - %s", album.Condition.Vinyl, album.Condition.Sleeve)
	}
	if album.PurchaseInfo != nil && album.PurchaseInfo.MarketValue != nil {
		fmt.Fprintf(&b, "\nCurrent Value: $%.2f", *album.PurchaseInfo.MarketValue)
	}
	if album.SpotifyURL != "" {
		fmt.Fprintf(&b, "\nListen on Spotify: %s", album.SpotifyURL)
	}
	return b.String()
}

// AlbumTitle builds the share title for a single album.
func AlbumTitle(album collection.Album) string {
	return fmt.Sprintf("%s by %s", album.Title, album.Artist)
}

// CollectionTitle is the share title for the whole-collection payload.
const CollectionTitle = "My Vinyl Collection"

// FormatCollection builds the plain-text share message for the whole
// collection: album count, summed market value, and the first five albums.
func FormatCollection(albums []collection.Album) string {
	summary := stats.Compute(albums)

	var b strings.Builder
	b.WriteString(CollectionTitle + "\n")
	fmt.Fprintf(&b, "Total Albums: %d\n", summary.TotalAlbums)
	fmt.Fprintf(&b, "Total Value: $%.2f\n\n", summary.TotalValue)
	b.WriteString("Top Albums:")

	top := albums
	if len(top) > 5 {
		top = top[:5]
	}
	for _, album := range top {
		fmt.Fprintf(&b, "\n- %s by %s (%d)", album.Title, album.Artist, album.Year)
	}
	return b.String()
}
