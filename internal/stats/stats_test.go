package stats_test

import (
	"testing"

	"waxcrate/internal/collection"
	"waxcrate/internal/stats"
	"waxcrate/internal/testsupport"
)

func TestComputeEmptyCollection(t *testing.T) {
	summary := stats.Compute(nil)
	if summary.TotalAlbums != 0 {
		t.Fatalf("expected 0 albums, got %d", summary.TotalAlbums)
	}
	if summary.TotalValue != 0 || summary.AverageValue != 0 {
		t.Fatalf("expected zero values, got total=%v average=%v", summary.TotalValue, summary.AverageValue)
	}
	if len(summary.ByDecade) != 0 || len(summary.TopArtists) != 0 || len(summary.TopValued) != 0 {
		t.Fatalf("expected empty rankings: %#v", summary)
	}
}

func TestDecadeGroupingExcludesUnknownYear(t *testing.T) {
	albums := []collection.Album{
		testsupport.Album(1, "Unknown Year", "A", 0),
		testsupport.Album(2, "Physical Graffiti", "Led Zeppelin", 1975),
	}
	summary := stats.Compute(albums)

	if summary.TotalAlbums != 2 {
		t.Fatalf("TotalAlbums = %d, want 2", summary.TotalAlbums)
	}
	if len(summary.ByDecade) != 1 {
		t.Fatalf("expected 1 decade bucket, got %#v", summary.ByDecade)
	}
	if summary.ByDecade[0].Decade != "1970s" || summary.ByDecade[0].Count != 1 {
		t.Fatalf("expected 1970s bucket with count 1, got %#v", summary.ByDecade[0])
	}
}

func TestDecadeBucketsKeepFirstOccurrenceOrder(t *testing.T) {
	albums := []collection.Album{
		testsupport.Album(1, "a", "A", 1991),
		testsupport.Album(2, "b", "B", 1972),
		testsupport.Album(3, "c", "C", 1995),
		testsupport.Album(4, "d", "D", 2003),
	}
	summary := stats.Compute(albums)

	want := []string{"1990s", "1970s", "2000s"}
	if len(summary.ByDecade) != len(want) {
		t.Fatalf("expected %d buckets, got %#v", len(want), summary.ByDecade)
	}
	for i, decade := range want {
		if summary.ByDecade[i].Decade != decade {
			t.Fatalf("bucket %d = %q, want %q (buckets %#v)", i, summary.ByDecade[i].Decade, decade, summary.ByDecade)
		}
	}
	if summary.ByDecade[0].Count != 2 {
		t.Fatalf("1990s count = %d, want 2", summary.ByDecade[0].Count)
	}
}

func TestTopArtistsBoundAndOrder(t *testing.T) {
	var albums []collection.Album
	id := int64(1)
	add := func(artist string, n int) {
		for i := 0; i < n; i++ {
			albums = append(albums, testsupport.Album(id, "t", artist, 1980))
			id++
		}
	}
	// A and B tie on 3; A is encountered first and must stay first.
	add("A", 3)
	add("B", 3)
	add("C", 2)
	add("D", 1)
	add("E", 1)
	add("F", 1)

	summary := stats.Compute(albums)
	if len(summary.TopArtists) != 5 {
		t.Fatalf("expected exactly 5 artists, got %d", len(summary.TopArtists))
	}
	order := []string{"A", "B", "C", "D", "E"}
	for i, artist := range order {
		if summary.TopArtists[i].Artist != artist {
			t.Fatalf("position %d = %q, want %q (%#v)", i, summary.TopArtists[i].Artist, artist, summary.TopArtists)
		}
	}
	for i := 1; i < len(summary.TopArtists); i++ {
		if summary.TopArtists[i].Count > summary.TopArtists[i-1].Count {
			t.Fatalf("counts not descending: %#v", summary.TopArtists)
		}
	}
}

func TestValueTotalsAndAverage(t *testing.T) {
	withValue := func(id int64, title string, value float64) collection.Album {
		a := testsupport.Album(id, title, "Artist", 1980)
		a.PurchaseInfo = &collection.PurchaseInfo{Price: 10, MarketValue: testsupport.MarketValue(value)}
		return a
	}
	albums := []collection.Album{
		withValue(1, "priced-a", 30),
		withValue(2, "priced-b", 10),
		testsupport.Album(3, "unpriced", "Artist", 1980),
	}

	summary := stats.Compute(albums)
	if summary.TotalValue != 40 {
		t.Fatalf("TotalValue = %v, want 40", summary.TotalValue)
	}
	// Average divides by the two priced albums, not all three.
	if summary.AverageValue != 20 {
		t.Fatalf("AverageValue = %v, want 20", summary.AverageValue)
	}
	if len(summary.TopValued) != 2 {
		t.Fatalf("expected 2 valued albums, got %#v", summary.TopValued)
	}
	if summary.TopValued[0].Title != "priced-a" || summary.TopValued[0].Value != 30 {
		t.Fatalf("expected priced-a first, got %#v", summary.TopValued[0])
	}
}

func TestAverageValueZeroGuard(t *testing.T) {
	albums := []collection.Album{
		testsupport.Album(1, "a", "A", 1980),
		testsupport.Album(2, "b", "B", 1990),
	}
	summary := stats.Compute(albums)
	if summary.TotalValue != 0 || summary.AverageValue != 0 {
		t.Fatalf("expected zero totals without market values, got total=%v average=%v", summary.TotalValue, summary.AverageValue)
	}
}

func TestTopValuedBound(t *testing.T) {
	var albums []collection.Album
	for i := int64(1); i <= 7; i++ {
		a := testsupport.Album(i, "t", "A", 1980)
		a.PurchaseInfo = &collection.PurchaseInfo{MarketValue: testsupport.MarketValue(float64(i))}
		albums = append(albums, a)
	}
	summary := stats.Compute(albums)
	if len(summary.TopValued) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(summary.TopValued))
	}
	if summary.TopValued[0].Value != 7 || summary.TopValued[4].Value != 3 {
		t.Fatalf("unexpected ranking: %#v", summary.TopValued)
	}
}
