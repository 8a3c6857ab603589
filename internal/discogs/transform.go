package discogs

import (
	"strings"
	"time"

	"waxcrate/internal/collection"
)

// ToAlbum maps a release onto the album record stored in the collection. The
// album keeps the Discogs release identifier as its ID; DateAdded is stamped
// with the supplied time.
func (r *Release) ToAlbum(now time.Time) collection.Album {
	album := collection.Album{
		ID:          r.ID,
		Title:       strings.TrimSpace(r.Title),
		Artist:      r.artistNames(),
		Year:        r.Year,
		CoverImage:  r.coverImage(),
		Genres:      r.Genres,
		ReleaseDate: strings.TrimSpace(r.Released),
		Notes:       strings.TrimSpace(r.Notes),
		DateAdded:   now.UTC().Format(time.RFC3339),
	}
	if len(r.Labels) > 0 {
		album.Label = strings.TrimSpace(r.Labels[0].Name)
	}
	for _, track := range r.Tracklist {
		album.Tracklist = append(album.Tracklist, collection.Track{
			Position: track.Position,
			Title:    track.Title,
			Duration: track.Duration,
		})
	}
	return album
}

func (r *Release) artistNames() string {
	names := make([]string, 0, len(r.Artists))
	for _, artist := range r.Artists {
		if name := strings.TrimSpace(artist.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// coverImage prefers the primary image and falls back to the first one.
func (r *Release) coverImage() string {
	for _, image := range r.Images {
		if strings.EqualFold(image.Type, "primary") && image.URI != "" {
			return image.URI
		}
	}
	if len(r.Images) > 0 {
		return r.Images[0].URI
	}
	return ""
}
