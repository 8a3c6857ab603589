package importer

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"waxcrate/internal/collection"
	"waxcrate/internal/discogs"
	"waxcrate/internal/events"
	"waxcrate/internal/logging"
	"waxcrate/internal/spotify"
)

// Service owns the album write path: manual entry, provider imports, and
// condition/value edits. Every successful save signals the change bus so
// browse surfaces can refresh without holding a reference to this service.
type Service struct {
	store   *collection.Store
	bus     *events.Bus
	discogs *discogs.Client
	spotify *spotify.Client
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithDiscogs attaches a Discogs client for release and barcode imports.
func WithDiscogs(client *discogs.Client) Option {
	return func(s *Service) { s.discogs = client }
}

// WithSpotify attaches a Spotify client for album search imports.
func WithSpotify(client *spotify.Client) Option {
	return func(s *Service) { s.spotify = client }
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source. Tests use it to pin IDs and
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds the write-path service around a store and a change bus.
// Provider clients are optional; flows that need a missing provider fail with
// a configuration error.
func NewService(store *collection.Store, bus *events.Bus, opts ...Option) *Service {
	s := &Service{
		store:  store,
		bus:    bus,
		logger: logging.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ManualEntry is the raw form input for a hand-entered album. Year arrives as
// text and is validated here, before any store call.
type ManualEntry struct {
	Title  string
	Artist string
	Year   string
	Genres []string
	Notes  string
}

// AddManual validates a manual entry and saves it as a new album. The ID is
// the creation timestamp in millisecond epoch, advanced past any existing ID
// so a manual entry can never silently replace an imported release.
func (s *Service) AddManual(ctx context.Context, entry ManualEntry) (*collection.Album, error) {
	title := strings.TrimSpace(entry.Title)
	artist := strings.TrimSpace(entry.Artist)
	if title == "" || artist == "" {
		return nil, wrap(ErrValidation, "title and artist are required", nil)
	}

	year := 0
	if trimmed := strings.TrimSpace(entry.Year); trimmed != "" {
		parsed, err := strconv.Atoi(trimmed)
		if err != nil || parsed < 0 {
			return nil, wrap(ErrValidation, "year must be a number", err)
		}
		year = parsed
	}

	now := s.now()
	album := collection.Album{
		ID:        s.nextManualID(ctx, now),
		Title:     title,
		Artist:    artist,
		Year:      year,
		Genres:    entry.Genres,
		Notes:     strings.TrimSpace(entry.Notes),
		DateAdded: now.UTC().Format(time.RFC3339),
	}
	if err := s.save(ctx, album); err != nil {
		return nil, err
	}

	s.logger.Info("album added manually",
		logging.Int64("id", album.ID),
		logging.String("title", album.Title),
		logging.String("artist", album.Artist))
	return &album, nil
}

// SearchDiscogs runs a free-text release search against Discogs.
func (s *Service) SearchDiscogs(ctx context.Context, query string) ([]discogs.SearchResult, error) {
	if s.discogs == nil {
		return nil, wrap(ErrConfiguration, "discogs token not configured", nil)
	}
	results, err := s.discogs.Search(ctx, query)
	if err != nil {
		return nil, wrap(ErrProvider, "discogs search", err)
	}
	return results, nil
}

// SearchSpotify runs an album search against Spotify.
func (s *Service) SearchSpotify(ctx context.Context, query string) ([]spotify.Album, error) {
	if s.spotify == nil {
		return nil, wrap(ErrConfiguration, "spotify credentials not configured", nil)
	}
	albums, err := s.spotify.SearchAlbums(ctx, query)
	if err != nil {
		return nil, wrap(ErrProvider, "spotify search", err)
	}
	return albums, nil
}

// LookupBarcode resolves a decoded barcode to candidate releases. Zero
// matches is reported as ErrNoMatches so the caller can tell the user to
// enter the album manually, distinct from a provider fault.
func (s *Service) LookupBarcode(ctx context.Context, barcode string) ([]discogs.SearchResult, error) {
	if s.discogs == nil {
		return nil, wrap(ErrConfiguration, "discogs token not configured", nil)
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, wrap(ErrValidation, "barcode is required", nil)
	}

	session := uuid.NewString()
	s.logger.Info("barcode lookup", logging.String("session", session), logging.String("barcode", barcode))

	results, err := s.discogs.SearchByBarcode(ctx, barcode)
	if err != nil {
		return nil, wrap(ErrProvider, "barcode lookup", err)
	}
	if len(results) == 0 {
		return nil, wrap(ErrNoMatches, "barcode "+barcode, nil)
	}
	return results, nil
}

// ImportRelease fetches the full Discogs release and saves it as an album.
func (s *Service) ImportRelease(ctx context.Context, releaseID int64) (*collection.Album, error) {
	if s.discogs == nil {
		return nil, wrap(ErrConfiguration, "discogs token not configured", nil)
	}

	session := uuid.NewString()
	s.logger.Info("release import started", logging.String("session", session), logging.Int64("release", releaseID))

	release, err := s.discogs.Release(ctx, releaseID)
	if err != nil {
		return nil, wrap(ErrProvider, "release detail fetch", err)
	}

	album := release.ToAlbum(s.now())
	if err := s.save(ctx, album); err != nil {
		return nil, err
	}

	s.logger.Info("release imported",
		logging.String("session", session),
		logging.Int64("id", album.ID),
		logging.String("title", album.Title))
	return &album, nil
}

// ImportSpotify fetches a Spotify album and saves it. Spotify identifiers
// are strings, so the stored ID is a creation timestamp like manual entries.
func (s *Service) ImportSpotify(ctx context.Context, albumID string) (*collection.Album, error) {
	if s.spotify == nil {
		return nil, wrap(ErrConfiguration, "spotify credentials not configured", nil)
	}

	session := uuid.NewString()
	s.logger.Info("spotify import started", logging.String("session", session), logging.String("album", albumID))

	spotifyAlbum, err := s.spotify.Album(ctx, albumID)
	if err != nil {
		return nil, wrap(ErrProvider, "spotify album fetch", err)
	}

	now := s.now()
	album := spotifyAlbum.ToAlbum(s.nextManualID(ctx, now), now)
	if err := s.save(ctx, album); err != nil {
		return nil, err
	}

	s.logger.Info("spotify album imported",
		logging.String("session", session),
		logging.Int64("id", album.ID),
		logging.String("title", album.Title))
	return &album, nil
}

// SetCondition replaces the condition grading on an existing album, leaving
// every other field untouched.
func (s *Service) SetCondition(ctx context.Context, id int64, condition collection.Condition) (*collection.Album, error) {
	if !condition.Vinyl.Valid() || !condition.Sleeve.Valid() {
		return nil, wrap(ErrValidation, "vinyl and sleeve ratings must be on the M..P scale", nil)
	}

	album := s.store.GetByID(ctx, id)
	if album == nil {
		return nil, wrap(ErrNotFound, "album "+strconv.FormatInt(id, 10), nil)
	}

	album.Condition = &condition
	if err := s.save(ctx, *album); err != nil {
		return nil, err
	}
	return album, nil
}

// PurchaseUpdate carries a partial edit to an album's purchase data. Nil
// fields are left as they were.
type PurchaseUpdate struct {
	Price       *float64
	Date        *string
	Seller      *string
	MarketValue *float64
}

// SetPurchaseInfo merges a partial purchase edit into an existing album and
// stamps LastUpdated.
func (s *Service) SetPurchaseInfo(ctx context.Context, id int64, update PurchaseUpdate) (*collection.Album, error) {
	album := s.store.GetByID(ctx, id)
	if album == nil {
		return nil, wrap(ErrNotFound, "album "+strconv.FormatInt(id, 10), nil)
	}

	info := album.PurchaseInfo
	if info == nil {
		info = &collection.PurchaseInfo{}
	}
	if update.Price != nil {
		info.Price = *update.Price
	}
	if update.Date != nil {
		info.Date = *update.Date
	}
	if update.Seller != nil {
		info.Seller = *update.Seller
	}
	if update.MarketValue != nil {
		info.MarketValue = update.MarketValue
	}
	info.LastUpdated = s.now().UTC().Format(time.RFC3339)

	album.PurchaseInfo = info
	if err := s.save(ctx, *album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *Service) save(ctx context.Context, album collection.Album) error {
	if ok := s.store.Upsert(ctx, album); !ok {
		return wrap(ErrStorage, "album was not saved; try again", nil)
	}
	if s.bus != nil {
		s.bus.Notify()
	}
	return nil
}

// nextManualID derives a creation-timestamp ID, advancing past any ID already
// in use so a millisecond collision (or an imported release that happens to
// share the value) is never overwritten.
func (s *Service) nextManualID(ctx context.Context, now time.Time) int64 {
	id := now.UnixMilli()
	for s.store.GetByID(ctx, id) != nil {
		id++
	}
	return id
}
