package spotify

import (
	"strconv"
	"strings"
	"time"

	"waxcrate/internal/collection"
)

// ToAlbum maps a Spotify album onto the stored album record. Spotify uses
// string identifiers, so the caller assigns the numeric collection ID (a
// creation timestamp, like manual entries).
func (a *Album) ToAlbum(id int64, now time.Time) collection.Album {
	return collection.Album{
		ID:          id,
		Title:       strings.TrimSpace(a.Name),
		Artist:      a.artistNames(),
		Year:        a.releaseYear(),
		CoverImage:  a.coverImage(),
		Genres:      a.Genres,
		Label:       strings.TrimSpace(a.Label),
		SpotifyURL:  a.ExternalURLs.Spotify,
		ReleaseDate: a.ReleaseDate,
		DateAdded:   now.UTC().Format(time.RFC3339),
	}
}

func (a *Album) artistNames() string {
	names := make([]string, 0, len(a.Artists))
	for _, artist := range a.Artists {
		if name := strings.TrimSpace(artist.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// releaseYear parses the leading year out of a release date, which Spotify
// reports with day, month, or year precision.
func (a *Album) releaseYear() int {
	date := strings.TrimSpace(a.ReleaseDate)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year < 0 {
		return 0
	}
	return year
}

func (a *Album) coverImage() string {
	if len(a.Images) > 0 {
		return a.Images[0].URL
	}
	return ""
}
