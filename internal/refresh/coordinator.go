// Package refresh provides background cache warming for atlascope.
package refresh

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"atlascope/internal/country"
	"atlascope/internal/logging"
	"atlascope/internal/ui"
)

// fetchTimeout is the timeout for each warm cycle.
const fetchTimeout = 45 * time.Second

// maxConcurrentPrefetches limits parallel region prefetches.
const maxConcurrentPrefetches = 3

// datasets is the cache query surface the coordinator warms.
// *cache.Cache satisfies it.
type datasets interface {
	All(ctx context.Context) ([]country.Country, error)
	ByRegion(ctx context.Context, region string) ([]country.Country, error)
}

// snapshotter persists the last good dataset for offline fallback.
// Optional: nil disables snapshots.
type snapshotter interface {
	SaveSnapshot(countries []country.Country) error
}

// Coordinator re-warms the dataset cache on the staleness cadence and posts
// results to the UI. Context cancellation is the ONLY stop mechanism; a
// failed cycle is reported and waits for the next tick, never retried early.
type Coordinator struct {
	cache    datasets
	snap     snapshotter
	regions  []string
	interval time.Duration
	wg       sync.WaitGroup
}

// New creates a Coordinator. interval <= 0 disables periodic re-warming
// (the initial warm still runs).
func New(cache datasets, snap snapshotter, regions []string, interval time.Duration) *Coordinator {
	regionsCopy := make([]string, len(regions))
	copy(regionsCopy, regions)

	return &Coordinator{
		cache:    cache,
		snap:     snap,
		regions:  regionsCopy,
		interval: interval,
	}
}

// Start begins background warming. Call with a cancellable context.
// program may be nil (warms the cache without notifying a UI).
func (c *Coordinator) Start(ctx context.Context, program *tea.Program) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.warm(ctx, program)

		if c.interval <= 0 {
			return
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.warm(ctx, program)
			}
		}
	}()
}

// Wait blocks until the background goroutine exits.
// Call after canceling the context passed to Start.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// warm refreshes the full dataset, snapshots it, prefetches regions, and
// posts the result to the UI.
func (c *Coordinator) warm(ctx context.Context, program *tea.Program) {
	warmCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	countries, err := c.cache.All(warmCtx)
	if err != nil {
		logging.Warn("dataset warm failed", "error", err)
	} else {
		logging.Debug("dataset warmed", "countries", len(countries))
		if c.snap != nil {
			if err := c.snap.SaveSnapshot(countries); err != nil {
				logging.Warn("failed to snapshot dataset", "error", err)
			}
		}
		c.prefetchRegions(warmCtx)
	}

	if program != nil {
		program.Send(ui.DatasetRefreshed{Countries: countries, Err: err})
	}
}

// prefetchRegions warms the per-region cache keys so region switches in the
// UI never wait on the network. Failures only cost a later lazy fetch.
func (c *Coordinator) prefetchRegions(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPrefetches)

	for _, region := range c.regions {
		g.Go(func() error {
			if _, err := c.cache.ByRegion(ctx, region); err != nil {
				logging.Debug("region prefetch failed", "region", region, "error", err)
			}
			return nil
		})
	}
	g.Wait()
}
