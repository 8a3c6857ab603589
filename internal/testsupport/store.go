package testsupport

import (
	"context"
	"testing"

	"waxcrate/internal/collection"
	"waxcrate/internal/config"
	"waxcrate/internal/logging"
)

// MustOpenStore opens a collection.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *collection.Store {
	t.Helper()

	store, err := collection.Open(cfg, logging.Nop())
	if err != nil {
		t.Fatalf("collection.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedAlbum saves an album into the store, failing the test on a rejected
// write.
func SeedAlbum(t testing.TB, store *collection.Store, album collection.Album) {
	t.Helper()

	if ok := store.Upsert(context.Background(), album); !ok {
		t.Fatalf("store.Upsert rejected album %d", album.ID)
	}
}

// Album builds a minimal valid album for tests.
func Album(id int64, title, artist string, year int) collection.Album {
	return collection.Album{
		ID:        id,
		Title:     title,
		Artist:    artist,
		Year:      year,
		DateAdded: "2026-01-02T15:04:05Z",
	}
}

// MarketValue returns a pointer suitable for Album.PurchaseInfo.MarketValue.
func MarketValue(v float64) *float64 {
	return &v
}

// Ctx returns a background context; it exists to keep test call sites short.
func Ctx() context.Context {
	return context.Background()
}
