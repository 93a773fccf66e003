package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiofeeds/collector/pkg/scheduler/mocks"
	"github.com/curiofeeds/collector/pkg/store"
)

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{
		Store:     &mocks.DueFeedStoreMock{},
		Processor: &mocks.FeedRunnerMock{},
		Images:    &mocks.ImageRetrierMock{},
		Reaper:    &mocks.ReaperMock{},
	})

	assert.Equal(t, time.Hour, s.feedInterval)
	assert.Equal(t, 2*time.Hour, s.retryInterval)
	assert.Equal(t, 24*time.Hour, s.reapInterval)
	assert.Equal(t, 5, s.maxWorkers)
}

func TestScheduler_RunCycle(t *testing.T) {
	feeds := []store.Feed{
		{ID: "f1", URL: "http://one.example.com/rss"},
		{ID: "f2", URL: "http://two.example.com/rss"},
		{ID: "f3", URL: "http://three.example.com/rss"},
	}
	dueStore := &mocks.DueFeedStoreMock{
		GetDueFeedsFunc: func(ctx context.Context, now time.Time) ([]store.Feed, error) { return feeds, nil },
	}
	processor := &mocks.FeedRunnerMock{
		ProcessFeedFunc: func(ctx context.Context, f store.Feed) {},
	}

	s := NewScheduler(Params{
		Store:     dueStore,
		Processor: processor,
		Images:    &mocks.ImageRetrierMock{},
		Reaper:    &mocks.ReaperMock{},
	})

	s.RunCycle(context.Background())

	require.Len(t, processor.ProcessFeedCalls(), 3)
	seen := map[string]bool{}
	for _, call := range processor.ProcessFeedCalls() {
		seen[call.F.ID] = true
	}
	assert.Equal(t, map[string]bool{"f1": true, "f2": true, "f3": true}, seen)
}

func TestScheduler_RunCycle_BoundedConcurrency(t *testing.T) {
	feeds := make([]store.Feed, 20)
	for i := range feeds {
		feeds[i] = store.Feed{ID: "f", URL: "http://example.com/rss"}
	}
	dueStore := &mocks.DueFeedStoreMock{
		GetDueFeedsFunc: func(ctx context.Context, now time.Time) ([]store.Feed, error) { return feeds, nil },
	}

	var current, peak int32
	processor := &mocks.FeedRunnerMock{
		ProcessFeedFunc: func(ctx context.Context, f store.Feed) {
			n := atomic.AddInt32(&current, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&current, -1)
		},
	}

	s := NewScheduler(Params{
		Store:      dueStore,
		Processor:  processor,
		Images:     &mocks.ImageRetrierMock{},
		Reaper:     &mocks.ReaperMock{},
		MaxWorkers: 3,
	})

	s.RunCycle(context.Background())

	assert.Len(t, processor.ProcessFeedCalls(), 20)
	assert.LessOrEqual(t, peak, int32(3), "worker pool ceiling respected")
}

func TestScheduler_RunCycle_PanicIsolated(t *testing.T) {
	feeds := []store.Feed{
		{ID: "f1", URL: "http://one.example.com/rss"},
		{ID: "f2", URL: "http://two.example.com/rss"},
	}
	dueStore := &mocks.DueFeedStoreMock{
		GetDueFeedsFunc: func(ctx context.Context, now time.Time) ([]store.Feed, error) { return feeds, nil },
	}
	processor := &mocks.FeedRunnerMock{
		ProcessFeedFunc: func(ctx context.Context, f store.Feed) {
			if f.ID == "f1" {
				panic("boom")
			}
		},
	}

	s := NewScheduler(Params{
		Store:     dueStore,
		Processor: processor,
		Images:    &mocks.ImageRetrierMock{},
		Reaper:    &mocks.ReaperMock{},
	})

	assert.NotPanics(t, func() { s.RunCycle(context.Background()) })
	assert.Len(t, processor.ProcessFeedCalls(), 2, "the panicking feed did not stop the cycle")
}

func TestScheduler_RunCycle_StoreError(t *testing.T) {
	dueStore := &mocks.DueFeedStoreMock{
		GetDueFeedsFunc: func(ctx context.Context, now time.Time) ([]store.Feed, error) {
			return nil, errors.New("store down")
		},
	}
	processor := &mocks.FeedRunnerMock{
		ProcessFeedFunc: func(ctx context.Context, f store.Feed) {},
	}

	s := NewScheduler(Params{
		Store:     dueStore,
		Processor: processor,
		Images:    &mocks.ImageRetrierMock{},
		Reaper:    &mocks.ReaperMock{},
	})

	s.RunCycle(context.Background())
	assert.Empty(t, processor.ProcessFeedCalls())
}

func TestScheduler_StartStop(t *testing.T) {
	dueStore := &mocks.DueFeedStoreMock{
		GetDueFeedsFunc: func(ctx context.Context, now time.Time) ([]store.Feed, error) { return nil, nil },
	}

	s := NewScheduler(Params{
		Store:         dueStore,
		Processor:     &mocks.FeedRunnerMock{},
		Images:        &mocks.ImageRetrierMock{},
		Reaper:        &mocks.ReaperMock{},
		FeedInterval:  time.Hour,
		RetryInterval: time.Hour,
		ReapInterval:  time.Hour,
	})

	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop in time")
	}

	assert.NotEmpty(t, dueStore.GetDueFeedsCalls(), "feed cycle runs immediately on start")
}
