// Package scheduler decides which feeds to poll and when, runs fetch attempts
// under a bounded worker pool, and drives the image-retry and retention
// cycles from in-process timers.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/curiofeeds/collector/pkg/store"
)

//go:generate moq -out mocks/due_feed_store.go -pkg mocks -skip-ensure -fmt goimports . DueFeedStore
//go:generate moq -out mocks/feed_runner.go -pkg mocks -skip-ensure -fmt goimports . FeedRunner
//go:generate moq -out mocks/image_retrier.go -pkg mocks -skip-ensure -fmt goimports . ImageRetrier
//go:generate moq -out mocks/reaper.go -pkg mocks -skip-ensure -fmt goimports . Reaper

// DueFeedStore selects feeds whose next attempt is due
type DueFeedStore interface {
	GetDueFeeds(ctx context.Context, now time.Time) ([]store.Feed, error)
}

// FeedRunner executes one fetch attempt for a single feed
type FeedRunner interface {
	ProcessFeed(ctx context.Context, f store.Feed)
}

// ImageRetrier re-attempts previously failed image tasks
type ImageRetrier interface {
	RetryPending(ctx context.Context) error
}

// Reaper reclaims expired entries and hard-deletes marked feeds
type Reaper interface {
	CleanupExpiredItems(ctx context.Context) error
	CleanupDeletedFeeds(ctx context.Context) error
}

// Scheduler owns the periodic triggers: the feed cycle, the image retry
// sweep, and the retention cycle. Cycle entry points hold no state beyond
// the worker-pool limit, the timers live here.
type Scheduler struct {
	store         DueFeedStore
	processor     FeedRunner
	images        ImageRetrier
	reaper        Reaper
	feedInterval  time.Duration
	retryInterval time.Duration
	reapInterval  time.Duration
	maxWorkers    int
	wg            sync.WaitGroup
	cancel        context.CancelFunc
}

// Params holds scheduler dependencies and cadences
type Params struct {
	Store     DueFeedStore
	Processor FeedRunner
	Images    ImageRetrier
	Reaper    Reaper

	FeedInterval  time.Duration // feed cycle cadence
	RetryInterval time.Duration // image retry sweep cadence
	ReapInterval  time.Duration // retention cycle cadence
	MaxWorkers    int           // concurrent feed fetch ceiling
}

// NewScheduler creates a scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.FeedInterval == 0 {
		params.FeedInterval = time.Hour
	}
	if params.RetryInterval == 0 {
		params.RetryInterval = 2 * time.Hour
	}
	if params.ReapInterval == 0 {
		params.ReapInterval = 24 * time.Hour
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}

	return &Scheduler{
		store:         params.Store,
		processor:     params.Processor,
		images:        params.Images,
		reaper:        params.Reaper,
		feedInterval:  params.FeedInterval,
		retryInterval: params.RetryInterval,
		reapInterval:  params.ReapInterval,
		maxWorkers:    params.MaxWorkers,
	}
}

// Start begins the periodic workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.feedWorker(ctx)

	s.wg.Add(1)
	go s.imageRetryWorker(ctx)

	s.wg.Add(1)
	go s.reapWorker(ctx)

	lgr.Printf("[INFO] scheduler started, feed cycle %v, image retry %v, retention %v, %d workers",
		s.feedInterval, s.retryInterval, s.reapInterval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// feedWorker runs the feed cycle immediately and then on every tick
func (s *Scheduler) feedWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.feedInterval)
	defer ticker.Stop()

	s.RunCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(ctx)
		}
	}
}

// RunCycle fetches every due feed under the worker-pool ceiling. Per-feed
// faults are isolated: a panic or failure in one unit is logged and the rest
// of the cycle completes.
func (s *Scheduler) RunCycle(ctx context.Context) {
	now := time.Now().UTC()

	feeds, err := s.store.GetDueFeeds(ctx, now)
	if err != nil {
		lgr.Printf("[ERROR] failed to get due feeds: %v", err)
		return
	}
	if len(feeds) == 0 {
		lgr.Printf("[DEBUG] no feeds due")
		return
	}

	lgr.Printf("[INFO] fetching %d due feeds", len(feeds))

	var g errgroup.Group
	g.SetLimit(s.maxWorkers)
	for _, f := range feeds {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					lgr.Printf("[ERROR] panic processing feed %s: %v", f.URL, r)
				}
			}()
			s.processor.ProcessFeed(ctx, f)
			return nil
		})
	}
	_ = g.Wait() // units record their own outcomes and never return errors

	lgr.Printf("[INFO] feed cycle completed")
}

// imageRetryWorker periodically re-attempts failed image downloads
func (s *Scheduler) imageRetryWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.retryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.images.RetryPending(ctx); err != nil {
				lgr.Printf("[ERROR] image retry sweep failed: %v", err)
			}
		}
	}
}

// reapWorker periodically reclaims expired entries and marked feeds
func (s *Scheduler) reapWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.reaper.CleanupExpiredItems(ctx); err != nil {
				lgr.Printf("[ERROR] retention cycle failed: %v", err)
			}
			if err := s.reaper.CleanupDeletedFeeds(ctx); err != nil {
				lgr.Printf("[ERROR] deleted-feed sweep failed: %v", err)
			}
		}
	}
}
