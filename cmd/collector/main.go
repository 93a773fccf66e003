package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jessevdk/go-flags"

	"github.com/curiofeeds/collector/pkg/blob"
	"github.com/curiofeeds/collector/pkg/cleanup"
	"github.com/curiofeeds/collector/pkg/config"
	"github.com/curiofeeds/collector/pkg/feed"
	"github.com/curiofeeds/collector/pkg/images"
	"github.com/curiofeeds/collector/pkg/scheduler"
	"github.com/curiofeeds/collector/pkg/store"
	"github.com/curiofeeds/collector/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Server.AuthToken, cfg.Store.AuthToken, cfg.Blob.SecretAccessKey)

	log.Printf("[INFO] starting collector version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] collector failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the store, the blob client and the pipeline together and blocks
// until the context is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	st := store.New(cfg.Store.URL, cfg.Store.AuthToken, cfg.Store.Timeout)

	blobClient, err := blob.New(ctx, blob.Config{
		Endpoint:        cfg.Blob.Endpoint,
		Region:          cfg.Blob.Region,
		AccessKeyID:     cfg.Blob.AccessKeyID,
		SecretAccessKey: cfg.Blob.SecretAccessKey,
		Bucket:          cfg.Blob.Bucket,
	})
	if err != nil {
		return fmt.Errorf("create blob client: %w", err)
	}

	// transient store write failures are retried with a short backoff before
	// the attempt is recorded as failed
	storeRetry := func(ctx context.Context, fn func() error) error {
		return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second)).Do(ctx, fn)
	}

	pipeline := images.NewPipeline(st, images.NewDownloader(blobClient, cfg.Images.Timeout), cfg.Images.MaxAttempts)

	processor := scheduler.NewFeedProcessor(scheduler.FeedProcessorParams{
		Fetcher:         feed.NewFetcher(cfg.Feeds.Timeout, cfg.Feeds.UserAgent),
		Adapter:         feed.NewParser(),
		Store:           st,
		Images:          pipeline,
		Archive:         blobClient,
		DefaultInterval: time.Duration(cfg.Schedule.DefaultFeedMins) * time.Minute,
		Retry:           storeRetry,
	})

	sched := scheduler.NewScheduler(scheduler.Params{
		Store:         st,
		Processor:     processor,
		Images:        pipeline,
		Reaper:        cleanup.NewReaper(st, blobClient, cfg.Retention.ItemDays),
		FeedInterval:  cfg.Schedule.FeedInterval,
		RetryInterval: cfg.Schedule.RetryInterval,
		ReapInterval:  cfg.Schedule.CleanupInterval,
		MaxWorkers:    cfg.Schedule.MaxWorkers,
	})

	// reconcile the declarative feed list before the first cycle, so new
	// feeds are picked up immediately
	if cfg.Feeds.File != "" {
		if err := scheduler.SyncFeeds(ctx, cfg.Feeds.File, st); err != nil {
			log.Printf("[WARN] feed list sync failed: %v", err)
		}
	}

	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:    cfg.Server.Listen,
		Timeout:   cfg.Server.Timeout,
		AuthToken: cfg.Server.AuthToken,
	}, st, revision, debug)

	return srv.Run(ctx)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	for _, s := range secs {
		if s != "" {
			logOpts = append(logOpts, lgr.Secret(s))
		}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
