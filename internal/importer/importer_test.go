package importer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waxcrate/internal/collection"
	"waxcrate/internal/discogs"
	"waxcrate/internal/events"
	"waxcrate/internal/importer"
	"waxcrate/internal/logging"
	"waxcrate/internal/testsupport"
)

var testClock = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...importer.Option) (*importer.Service, *collection.Store, *int) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	bus := events.NewBus(logging.Nop())

	notifications := 0
	bus.Subscribe(func() { notifications++ })

	opts = append([]importer.Option{importer.WithClock(func() time.Time { return testClock })}, opts...)
	return importer.NewService(store, bus, opts...), store, &notifications
}

func discogsClient(t *testing.T, handler http.HandlerFunc) *discogs.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := discogs.New("tok", server.URL, discogs.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("discogs.New: %v", err)
	}
	return client
}

func TestAddManualValidation(t *testing.T) {
	svc, _, notifications := newService(t)
	ctx := context.Background()

	cases := []importer.ManualEntry{
		{Artist: "Artist"},
		{Title: "Title"},
		{Title: "Title", Artist: "Artist", Year: "nineteen-seventy"},
		{Title: "Title", Artist: "Artist", Year: "-3"},
	}
	for _, entry := range cases {
		if _, err := svc.AddManual(ctx, entry); !errors.Is(err, importer.ErrValidation) {
			t.Fatalf("entry %#v: expected validation error, got %v", entry, err)
		}
	}
	if *notifications != 0 {
		t.Fatalf("validation failures must not notify, got %d", *notifications)
	}
}

func TestAddManualSavesAndNotifies(t *testing.T) {
	svc, store, notifications := newService(t)
	ctx := context.Background()

	album, err := svc.AddManual(ctx, importer.ManualEntry{
		Title:  "  Marquee Moon ",
		Artist: "Television",
		Year:   "1977",
		Genres: []string{"Punk"},
	})
	if err != nil {
		t.Fatalf("AddManual: %v", err)
	}
	if album.ID != testClock.UnixMilli() {
		t.Fatalf("expected creation-timestamp ID %d, got %d", testClock.UnixMilli(), album.ID)
	}
	if album.Title != "Marquee Moon" || album.Year != 1977 {
		t.Fatalf("unexpected album: %#v", album)
	}
	if album.DateAdded != "2026-08-30T10:00:00Z" {
		t.Fatalf("unexpected DateAdded: %q", album.DateAdded)
	}
	if got := store.GetByID(ctx, album.ID); got == nil {
		t.Fatal("album not persisted")
	}
	if *notifications != 1 {
		t.Fatalf("expected 1 change notification, got %d", *notifications)
	}
}

func TestAddManualAdvancesPastIDCollision(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	occupied := testsupport.Album(testClock.UnixMilli(), "Imported", "Someone", 1990)
	testsupport.SeedAlbum(t, store, occupied)

	album, err := svc.AddManual(ctx, importer.ManualEntry{Title: "New", Artist: "Artist"})
	if err != nil {
		t.Fatalf("AddManual: %v", err)
	}
	if album.ID != testClock.UnixMilli()+1 {
		t.Fatalf("expected collision-advanced ID, got %d", album.ID)
	}
	if got := store.GetByID(ctx, occupied.ID); got == nil || got.Title != "Imported" {
		t.Fatalf("existing album was clobbered: %#v", got)
	}
}

func TestLookupBarcodeNoMatches(t *testing.T) {
	client := discogsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})
	svc, _, _ := newService(t, importer.WithDiscogs(client))

	_, err := svc.LookupBarcode(context.Background(), "000000000000")
	if !errors.Is(err, importer.ErrNoMatches) {
		t.Fatalf("expected ErrNoMatches, got %v", err)
	}
}

func TestLookupBarcodeReturnsCandidates(t *testing.T) {
	client := discogsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":42,"title":"Artist - Album","year":"1984"}]}`))
	})
	svc, _, _ := newService(t, importer.WithDiscogs(client))

	results, err := svc.LookupBarcode(context.Background(), "720642442826")
	if err != nil {
		t.Fatalf("LookupBarcode: %v", err)
	}
	if len(results) != 1 || results[0].ID != 42 {
		t.Fatalf("unexpected candidates: %#v", results)
	}
}

func TestImportReleaseSavesAlbum(t *testing.T) {
	client := discogsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":9800,"title":"Aja","artists":[{"name":"Steely Dan"}],"year":1977}`))
	})
	svc, store, notifications := newService(t, importer.WithDiscogs(client))
	ctx := context.Background()

	album, err := svc.ImportRelease(ctx, 9800)
	if err != nil {
		t.Fatalf("ImportRelease: %v", err)
	}
	if album.ID != 9800 {
		t.Fatalf("imported album must keep the release id, got %d", album.ID)
	}
	if got := store.GetByID(ctx, 9800); got == nil || got.Artist != "Steely Dan" {
		t.Fatalf("album not persisted: %#v", got)
	}
	if *notifications != 1 {
		t.Fatalf("expected 1 change notification, got %d", *notifications)
	}
}

func TestImportReleaseProviderFault(t *testing.T) {
	client := discogsClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	svc, store, notifications := newService(t, importer.WithDiscogs(client))
	ctx := context.Background()

	_, err := svc.ImportRelease(ctx, 9800)
	if !errors.Is(err, importer.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
	if albums := store.GetAll(ctx); len(albums) != 0 {
		t.Fatalf("nothing should be stored on provider failure, got %d", len(albums))
	}
	if *notifications != 0 {
		t.Fatalf("failed import must not notify, got %d", *notifications)
	}
}

func TestProvidersRequireConfiguration(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.SearchDiscogs(ctx, "q"); !errors.Is(err, importer.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if _, err := svc.SearchSpotify(ctx, "q"); !errors.Is(err, importer.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if _, err := svc.ImportRelease(ctx, 1); !errors.Is(err, importer.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if _, err := svc.ImportSpotify(ctx, "sp1"); !errors.Is(err, importer.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSetConditionValidatesAndMerges(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	original := testsupport.Album(7, "Remain in Light", "Talking Heads", 1980)
	original.Genres = []string{"New Wave"}
	testsupport.SeedAlbum(t, store, original)

	if _, err := svc.SetCondition(ctx, 7, collection.Condition{Vinyl: "shiny", Sleeve: "NM"}); !errors.Is(err, importer.ErrValidation) {
		t.Fatalf("expected validation error for bad rating, got %v", err)
	}
	if _, err := svc.SetCondition(ctx, 999, collection.Condition{Vinyl: "NM", Sleeve: "VG+"}); !errors.Is(err, importer.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	album, err := svc.SetCondition(ctx, 7, collection.Condition{Vinyl: "NM", Sleeve: "VG+", Notes: "light sleeve wear"})
	if err != nil {
		t.Fatalf("SetCondition: %v", err)
	}
	if album.Condition == nil || album.Condition.Vinyl != collection.RatingNearMint {
		t.Fatalf("condition not applied: %#v", album.Condition)
	}
	got := store.GetByID(ctx, 7)
	if got.Title != "Remain in Light" || len(got.Genres) != 1 {
		t.Fatalf("untouched fields altered: %#v", got)
	}
}

func TestSetPurchaseInfoPartialMerge(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	album := testsupport.Album(8, "Rumours", "Fleetwood Mac", 1977)
	album.PurchaseInfo = &collection.PurchaseInfo{Price: 25, Seller: "record fair", Date: "2025-11-01"}
	testsupport.SeedAlbum(t, store, album)

	value := 80.0
	updated, err := svc.SetPurchaseInfo(ctx, 8, importer.PurchaseUpdate{MarketValue: &value})
	if err != nil {
		t.Fatalf("SetPurchaseInfo: %v", err)
	}

	info := updated.PurchaseInfo
	if info.Price != 25 || info.Seller != "record fair" || info.Date != "2025-11-01" {
		t.Fatalf("untouched purchase fields altered: %#v", info)
	}
	if info.MarketValue == nil || *info.MarketValue != 80 {
		t.Fatalf("market value not applied: %#v", info)
	}
	if info.LastUpdated != "2026-08-30T10:00:00Z" {
		t.Fatalf("LastUpdated not stamped: %q", info.LastUpdated)
	}

	if got := store.GetByID(ctx, 8); got.PurchaseInfo == nil || got.PurchaseInfo.LastUpdated == "" {
		t.Fatalf("merge not persisted: %#v", got)
	}
}

func TestSetPurchaseInfoCreatesRecordWhenAbsent(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	testsupport.SeedAlbum(t, store, testsupport.Album(9, "Blue", "Joni Mitchell", 1971))

	price := 15.0
	updated, err := svc.SetPurchaseInfo(ctx, 9, importer.PurchaseUpdate{Price: &price})
	if err != nil {
		t.Fatalf("SetPurchaseInfo: %v", err)
	}
	if updated.PurchaseInfo == nil || updated.PurchaseInfo.Price != 15 {
		t.Fatalf("purchase record not created: %#v", updated.PurchaseInfo)
	}
}
