package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/curiofeeds/collector/pkg/feed"
	"github.com/curiofeeds/collector/pkg/store"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/adapter.go -pkg mocks -skip-ensure -fmt goimports . Adapter
//go:generate moq -out mocks/image_mirror.go -pkg mocks -skip-ensure -fmt goimports . ImageMirror
//go:generate moq -out mocks/archiver.go -pkg mocks -skip-ensure -fmt goimports . Archiver

// failureWarnThreshold is the consecutive-failure count that triggers an
// operator-visible warning; the feed keeps retrying regardless
const failureWarnThreshold = 10

// archiveTZ pins the archival date to UTC+8 so a feed's daily backup key is
// stable for operators in that zone
var archiveTZ = time.FixedZone("UTC+8", 8*3600)

// FeedStore is the metadata store surface the processor writes to
type FeedStore interface {
	MarkFeedNotModified(ctx context.Context, id string, now, nextFetchAt time.Time) error
	MarkFeedSuccess(ctx context.Context, id, title, etag, lastModified string, now, nextFetchAt time.Time) error
	MarkFeedFailure(ctx context.Context, id string, failures int, nextFetchAt time.Time) error
	InsertItems(ctx context.Context, items []store.Item) error
}

// Fetcher performs one conditional fetch for a feed URL
type Fetcher interface {
	Fetch(ctx context.Context, url, etag, lastModified string) (*feed.Result, error)
}

// Adapter converts normalized feed text into metadata and entries
type Adapter interface {
	Adapt(text, sourceURL string) (*feed.ParsedFeed, error)
}

// ImageMirror kicks off image mirroring for one ingested entry
type ImageMirror interface {
	ProcessImages(ctx context.Context, itemID, contentHTML, feedID, itemGUID string) error
}

// Archiver stores raw payload snapshots, best-effort
type Archiver interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// RetryFunc wraps a store write with a retry policy
type RetryFunc func(ctx context.Context, fn func() error) error

// FeedProcessor runs one fetch attempt for a single feed: conditional fetch,
// outcome classification, metadata update, entry ingestion, image mirroring.
// Every failure path ends in a metadata write; nothing propagates to the
// caller.
type FeedProcessor struct {
	fetcher         Fetcher
	adapter         Adapter
	store           FeedStore
	images          ImageMirror
	archive         Archiver
	defaultInterval time.Duration
	retry           RetryFunc
}

// FeedProcessorParams holds the dependencies for NewFeedProcessor
type FeedProcessorParams struct {
	Fetcher         Fetcher
	Adapter         Adapter
	Store           FeedStore
	Images          ImageMirror
	Archive         Archiver // optional, nil disables payload archival
	DefaultInterval time.Duration
	Retry           RetryFunc // optional, nil runs each write once
}

// NewFeedProcessor creates a feed processor
func NewFeedProcessor(params FeedProcessorParams) *FeedProcessor {
	if params.DefaultInterval == 0 {
		params.DefaultInterval = 30 * time.Minute
	}
	if params.Retry == nil {
		params.Retry = func(_ context.Context, fn func() error) error { return fn() }
	}
	return &FeedProcessor{
		fetcher:         params.Fetcher,
		adapter:         params.Adapter,
		store:           params.Store,
		images:          params.Images,
		archive:         params.Archive,
		defaultInterval: params.DefaultInterval,
		retry:           params.Retry,
	}
}

// ProcessFeed executes one fetch attempt for f. Exactly one metadata update
// happens per attempt (not-modified, success, or failure), and entries are
// ingested only after the success update has been issued.
func (p *FeedProcessor) ProcessFeed(ctx context.Context, f store.Feed) {
	lgr.Printf("[DEBUG] fetching feed %s (%s)", f.ID, f.URL)

	res, err := p.fetcher.Fetch(ctx, f.URL, f.LastETag, f.LastModified)
	if err != nil {
		p.recordFailure(ctx, f, err)
		return
	}

	now := time.Now().UTC()

	if res.NotModified {
		lgr.Printf("[DEBUG] feed %s not modified", f.ID)
		next := now.Add(p.feedInterval(f))
		if err := p.retry(ctx, func() error { return p.store.MarkFeedNotModified(ctx, f.ID, now, next) }); err != nil {
			lgr.Printf("[ERROR] failed to mark feed %s not modified: %v", f.ID, err)
		}
		return
	}

	p.archivePayload(ctx, f.ID, res.Body, now)

	text, err := feed.Normalize(res.Body, res.ContentType)
	if err != nil {
		p.recordFailure(ctx, f, err)
		return
	}

	parsed, err := p.adapter.Adapt(text, f.URL)
	if err != nil {
		p.recordFailure(ctx, f, err)
		return
	}

	next := now.Add(p.feedInterval(f))
	if err := p.retry(ctx, func() error {
		return p.store.MarkFeedSuccess(ctx, f.ID, parsed.Title, res.ETag, res.LastModified, now, next)
	}); err != nil {
		lgr.Printf("[ERROR] failed to mark feed %s success: %v", f.ID, err)
		return
	}

	if len(parsed.Items) == 0 {
		return
	}

	items := make([]store.Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, store.Item{
			ID:          it.ID,
			FeedID:      f.ID,
			GUID:        it.GUID,
			Link:        it.Link,
			Title:       it.Title,
			PubDate:     it.PubDate,
			ContentHTML: it.ContentHTML,
			CreatedAt:   now,
		})
	}
	if err := p.retry(ctx, func() error { return p.store.InsertItems(ctx, items) }); err != nil {
		lgr.Printf("[ERROR] failed to insert %d items for feed %s: %v", len(items), f.ID, err)
		return
	}
	lgr.Printf("[INFO] feed %s ingested %d entries", f.ID, len(items))

	// one entry's image trouble never blocks the rest or fails the feed
	for _, it := range items {
		if it.ContentHTML == "" {
			continue
		}
		if err := p.images.ProcessImages(ctx, it.ID, it.ContentHTML, f.ID, it.GUID); err != nil {
			lgr.Printf("[WARN] image mirroring failed for item %s: %v", it.ID, err)
		}
	}
}

// recordFailure bumps the consecutive-failure count and pushes the next
// attempt out via exponential backoff
func (p *FeedProcessor) recordFailure(ctx context.Context, f store.Feed, cause error) {
	failures := f.ConsecutiveFailures + 1
	lgr.Printf("[ERROR] feed %s fetch failed (%d consecutive): %v", f.URL, failures, cause)
	if failures >= failureWarnThreshold {
		lgr.Printf("[WARN] feed %s has failed %d times in a row, source needs a manual check", f.URL, failures)
	}

	next := time.Now().UTC().Add(nextFetchDelay(failures, p.feedInterval(f), p.defaultInterval))
	if err := p.retry(ctx, func() error { return p.store.MarkFeedFailure(ctx, f.ID, failures, next) }); err != nil {
		lgr.Printf("[ERROR] failed to record failure for feed %s: %v", f.ID, err)
	}
}

// archivePayload stores the raw response under backups/{feed}/{date}.xml.
// Archival is best-effort and never blocks ingestion.
func (p *FeedProcessor) archivePayload(ctx context.Context, feedID string, body []byte, now time.Time) {
	if p.archive == nil {
		return
	}
	key := fmt.Sprintf("backups/%s/%s.xml", feedID, now.In(archiveTZ).Format("2006-01-02"))
	if err := p.archive.Put(ctx, key, body, "application/xml"); err != nil {
		lgr.Printf("[WARN] failed to archive payload for feed %s: %v", feedID, err)
		return
	}
	lgr.Printf("[DEBUG] payload archived to %s", key)
}

// feedInterval returns the feed's own polling interval, else the default
func (p *FeedProcessor) feedInterval(f store.Feed) time.Duration {
	if f.IntervalMinutes != nil && *f.IntervalMinutes > 0 {
		return time.Duration(*f.IntervalMinutes) * time.Minute
	}
	return p.defaultInterval
}
