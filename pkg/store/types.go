package store

import "time"

// Feed is a polled external content source as stored by the remote worker.
// Rows come back with snake_case keys straight from the feeds table.
type Feed struct {
	ID                  string     `json:"id"`
	URL                 string     `json:"url"`
	Title               string     `json:"title,omitempty"`
	IntervalMinutes     *int       `json:"interval_minutes,omitempty"`
	LastETag            string     `json:"last_etag,omitempty"`
	LastModified        string     `json:"last_modified,omitempty"`
	LastFetchedAt       *time.Time `json:"last_fetched_at,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	NextFetchAt         *time.Time `json:"next_fetch_at,omitempty"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
}

// NewFeed is the insert shape for feed registration
type NewFeed struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	IntervalMinutes *int      `json:"intervalMinutes,omitempty"`
	NextFetchAt     time.Time `json:"nextFetchAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Item is one ingested entry belonging to a feed. Items are write-once:
// inserts are idempotent on (feedId, guid) and rows are never updated.
type Item struct {
	ID          string    `json:"id"`
	FeedID      string    `json:"feedId"`
	GUID        string    `json:"guid"`
	Link        string    `json:"link,omitempty"`
	Title       string    `json:"title,omitempty"`
	PubDate     time.Time `json:"pubDate"`
	ContentHTML string    `json:"contentHtml,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemFeedInfo resolves an item back to its owning feed and stable guid
type ItemFeedInfo struct {
	FeedID string `json:"feed_id"`
	GUID   string `json:"guid"`
}

// NewImageTask is the insert shape for image mirroring work. Inserts are
// idempotent on (itemId, originalUrl); tasks start pending with zero attempts.
type NewImageTask struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"itemId"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PendingImage is a previously attempted, not yet exhausted image task
type PendingImage struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	OriginalURL string `json:"original_url"`
}

// Group is organizational metadata for feeds
type Group struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	FeedIDs   []string   `json:"feed_ids,omitempty"`
}
