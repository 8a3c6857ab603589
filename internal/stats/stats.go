package stats

import (
	"fmt"
	"sort"

	"waxcrate/internal/collection"
)

// topN bounds the top-artists and top-valued lists.
const topN = 5

// DecadeCount is one bucket of the decade histogram.
type DecadeCount struct {
	Decade string `json:"decade"`
	Count  int    `json:"count"`
}

// ArtistCount is one entry of the artist frequency ranking.
type ArtistCount struct {
	Artist string `json:"artist"`
	Count  int    `json:"count"`
}

// ValuedAlbum is one entry of the top-valued ranking.
type ValuedAlbum struct {
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Value  float64 `json:"value"`
}

// Summary is the fixed-shape statistics record computed over a collection
// snapshot.
type Summary struct {
	TotalAlbums  int           `json:"totalAlbums"`
	ByDecade     []DecadeCount `json:"byDecade"`
	TopArtists   []ArtistCount `json:"topArtists"`
	TotalValue   float64       `json:"totalValue"`
	AverageValue float64       `json:"averageValue"`
	TopValued    []ValuedAlbum `json:"topValuedAlbums"`
}

// Compute derives summary statistics from a snapshot of the collection. It is
// pure: no I/O, no retained state, everything recomputed from scratch.
//
// Ordering is deterministic and observable, so it is part of the contract:
// decade buckets appear in first-occurrence order over the input, and artist
// ranking ties break by whichever artist was encountered first.
func Compute(albums []collection.Album) Summary {
	summary := Summary{
		TotalAlbums: len(albums),
		ByDecade:    []DecadeCount{},
		TopArtists:  []ArtistCount{},
		TopValued:   []ValuedAlbum{},
	}

	decadeIndex := map[string]int{}
	artistIndex := map[string]int{}
	valued := 0

	for _, album := range albums {
		// Year 0 means unknown and stays out of the histogram.
		if album.Year != 0 {
			decade := fmt.Sprintf("%ds", album.Year/10*10)
			if i, ok := decadeIndex[decade]; ok {
				summary.ByDecade[i].Count++
			} else {
				decadeIndex[decade] = len(summary.ByDecade)
				summary.ByDecade = append(summary.ByDecade, DecadeCount{Decade: decade, Count: 1})
			}
		}

		if i, ok := artistIndex[album.Artist]; ok {
			summary.TopArtists[i].Count++
		} else {
			artistIndex[album.Artist] = len(summary.TopArtists)
			summary.TopArtists = append(summary.TopArtists, ArtistCount{Artist: album.Artist, Count: 1})
		}

		if album.PurchaseInfo != nil && album.PurchaseInfo.MarketValue != nil {
			value := *album.PurchaseInfo.MarketValue
			summary.TotalValue += value
			valued++
			summary.TopValued = append(summary.TopValued, ValuedAlbum{
				Title:  album.Title,
				Artist: album.Artist,
				Value:  value,
			})
		}
	}

	if valued > 0 {
		summary.AverageValue = summary.TotalValue / float64(valued)
	}

	sort.SliceStable(summary.TopArtists, func(i, j int) bool {
		return summary.TopArtists[i].Count > summary.TopArtists[j].Count
	})
	if len(summary.TopArtists) > topN {
		summary.TopArtists = summary.TopArtists[:topN]
	}

	sort.SliceStable(summary.TopValued, func(i, j int) bool {
		return summary.TopValued[i].Value > summary.TopValued[j].Value
	})
	if len(summary.TopValued) > topN {
		summary.TopValued = summary.TopValued[:topN]
	}

	return summary
}
