package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/curiofeeds/collector/pkg/store"
)

//go:generate moq -out mocks/sync_store.go -pkg mocks -skip-ensure -fmt goimports . SyncStore

// SyncStore is the store surface used by the feed-list reconciliation
type SyncStore interface {
	ListFeedURLs(ctx context.Context) ([]string, error)
	InsertFeeds(ctx context.Context, feeds []store.NewFeed) error
}

// feedEntry is one declarative feed in the feeds file
type feedEntry struct {
	URL             string `json:"url"`
	IntervalMinutes *int   `json:"intervalMinutes,omitempty"`
}

// SyncFeeds reconciles the declarative feed list at path into the store:
// unknown URLs are registered as due-now feeds, URLs removed from the file
// are logged but their data is retained.
func SyncFeeds(ctx context.Context, path string, st SyncStore) error {
	raw, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return fmt.Errorf("read feeds file %s: %w", path, err)
	}

	var entries []feedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse feeds file %s: %w", path, err)
	}

	existing, err := st.ListFeedURLs(ctx)
	if err != nil {
		return fmt.Errorf("list known feed urls: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, u := range existing {
		known[u] = true
	}

	now := time.Now().UTC()
	var newFeeds []store.NewFeed
	configured := make(map[string]bool, len(entries))
	for _, e := range entries {
		configured[e.URL] = true
		if known[e.URL] {
			continue
		}
		newFeeds = append(newFeeds, store.NewFeed{
			ID:              uuid.NewString(),
			URL:             e.URL,
			IntervalMinutes: e.IntervalMinutes,
			NextFetchAt:     now,
			CreatedAt:       now,
		})
	}

	if len(newFeeds) > 0 {
		if err := st.InsertFeeds(ctx, newFeeds); err != nil {
			return fmt.Errorf("register %d new feeds: %w", len(newFeeds), err)
		}
		for _, f := range newFeeds {
			lgr.Printf("[INFO] registered feed %s (%s)", f.URL, f.ID)
		}
	}

	for _, u := range existing {
		if !configured[u] {
			lgr.Printf("[INFO] feed %s removed from config, data retained", u)
		}
	}

	return nil
}
