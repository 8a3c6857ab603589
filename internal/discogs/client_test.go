package discogs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waxcrate/internal/discogs"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *discogs.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := discogs.New("test-token", server.URL, discogs.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("discogs.New: %v", err)
	}
	return client
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := discogs.New("", "https://api.discogs.example"); err == nil {
		t.Fatal("expected error for missing token")
	}
	if _, err := discogs.New("tok", ""); err == nil {
		t.Fatal("expected error for missing base url")
	}
}

func TestSearchSendsTokenAndQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Discogs token=test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		if r.URL.Path != "/database/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "aja steely dan" || q.Get("type") != "release" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`{"results":[{"id":9800,"title":"Steely Dan - Aja","year":"1977","thumb":"x"}]}`))
	})

	results, err := client.Search(context.Background(), "aja steely dan")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != 9800 || results[0].Year != "1977" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearchByBarcodeZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("barcode"); got != "720642442826" {
			t.Errorf("unexpected barcode %q", got)
		}
		w.Write([]byte(`{"results":[]}`))
	})

	results, err := client.SearchByBarcode(context.Background(), "720642442826")
	if err != nil {
		t.Fatalf("SearchByBarcode: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected zero results, got %#v", results)
	}
}

func TestSearchByArtistTitle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("artist") != "Nirvana" || q.Get("release_title") != "Nevermind" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`{"results":[{"id":1,"title":"Nirvana - Nevermind"}]}`))
	})

	results, err := client.SearchByArtistTitle(context.Background(), "Nirvana", "Nevermind")
	if err != nil {
		t.Fatalf("SearchByArtistTitle: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestReleaseDetailAndTransform(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/releases/9800" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": 9800,
			"title": "Aja",
			"artists": [{"name": "Steely Dan"}],
			"year": 1977,
			"released": "1977-09-23",
			"images": [{"uri": "https://img.example/back.jpg", "type": "secondary"},
			           {"uri": "https://img.example/front.jpg", "type": "primary"}],
			"genres": ["Jazz", "Rock"],
			"labels": [{"name": "ABC Records"}],
			"tracklist": [{"position": "A1", "title": "Black Cow", "duration": "5:10"}],
			"notes": "Gatefold sleeve."
		}`))
	})

	release, err := client.Release(context.Background(), 9800)
	if err != nil {
		t.Fatalf("Release: %v", err)
	}

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	album := release.ToAlbum(now)
	if album.ID != 9800 || album.Title != "Aja" || album.Artist != "Steely Dan" {
		t.Fatalf("unexpected album: %#v", album)
	}
	if album.Year != 1977 || album.CoverImage != "https://img.example/front.jpg" {
		t.Fatalf("unexpected year/cover: %#v", album)
	}
	if album.Label != "ABC Records" || album.ReleaseDate != "1977-09-23" {
		t.Fatalf("unexpected label/release date: %#v", album)
	}
	if len(album.Tracklist) != 1 || album.Tracklist[0].Position != "A1" {
		t.Fatalf("unexpected tracklist: %#v", album.Tracklist)
	}
	if album.DateAdded != "2026-08-30T12:00:00Z" {
		t.Fatalf("unexpected DateAdded: %q", album.DateAdded)
	}
}

func TestReleasePropagatesHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := client.Release(context.Background(), 1); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})
	if _, err := client.Search(context.Background(), ""); err == nil {
		t.Fatal("expected validation error")
	}
}
