package collection

// Track is one tracklist entry, display-only.
type Track struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// PurchaseInfo records what an album cost and what it is worth now.
// MarketValue is a pointer so "no estimate entered" stays distinct from a
// zero-dollar estimate; the aggregation engine relies on that distinction.
type PurchaseInfo struct {
	Price       float64  `json:"price"`
	Date        string   `json:"date"`
	Seller      string   `json:"seller"`
	MarketValue *float64 `json:"marketValue,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}

// Condition grades the physical state of the record and its sleeve.
type Condition struct {
	Vinyl         Rating   `json:"vinyl"`
	Sleeve        Rating   `json:"sleeve"`
	Notes         string   `json:"notes,omitempty"`
	DefectPhotos  []string `json:"defectPhotos,omitempty"`
	LastCleaned   string   `json:"lastCleaned,omitempty"`
	CleaningNotes string   `json:"cleaningNotes,omitempty"`
}

// Album is the sole persisted entity. The JSON layout matches the stored
// document, so documents written by earlier revisions (without condition or
// purchase data) still deserialize; all new fields are optional.
//
// ID is a millisecond epoch timestamp for manual entries and the provider's
// release identifier for imports. DateAdded is set at first save and never
// changed afterwards.
type Album struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Artist       string        `json:"artist"`
	Year         int           `json:"year"`
	CoverImage   string        `json:"coverImage,omitempty"`
	Genres       []string      `json:"genres,omitempty"`
	DateAdded    string        `json:"dateAdded"`
	Label        string        `json:"label,omitempty"`
	SpotifyURL   string        `json:"spotifyUrl,omitempty"`
	ReleaseDate  string        `json:"releaseDate,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Tracklist    []Track       `json:"tracklist,omitempty"`
	Condition    *Condition    `json:"condition,omitempty"`
	PurchaseInfo *PurchaseInfo `json:"purchaseInfo,omitempty"`
}
