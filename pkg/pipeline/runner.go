package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/groupspec"
	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/observability"
	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// Runner executes the pipeline against a cache. It holds no per-run state
// and is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long rendered artifacts stay cached.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects [cache.NewDefaultKeyer] and a nil logger [log.Default].
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: ArtifactTTL}
}

// Execute validates opts, lays out the chamber, allocates the seats and
// renders every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	l, p, stats, err := r.plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Layout: l,
		Plan:   p,
		Key:    r.Keyer.LayoutKey(GroupsHash(opts.Groups), opts.LayoutKeyOpts()),
		Stats:  stats,
	}
	logger.Info("computed layout",
		"seats", stats.Seats,
		"rows", stats.Rows,
		"method", opts.Method(),
		"duration", stats.LayoutTime+stats.AllocationTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, formatNames(opts.Formats))
	artifacts, info, err := r.render(ctx, result.Key, l, p, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, formatNames(opts.Formats), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo = info

	logger.Info("rendered outputs",
		"formats", formatNames(opts.Formats),
		"cache", cacheLabel(info),
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Plan computes only the layout and seating plan.
func (r *Runner) Plan(ctx context.Context, opts Options) (*hemicycle.Layout, seating.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	l, p, _, err := r.plan(ctx, opts)
	return l, p, err
}

func (r *Runner) plan(ctx context.Context, opts Options) (*hemicycle.Layout, seating.Plan, Stats, error) {
	var stats Stats
	hooks := observability.Pipeline()
	seats := seating.TotalSeats(opts.Groups)

	start := time.Now()
	hooks.OnLayoutStart(ctx, seats)
	l, err := BuildLayout(opts.Groups, opts.Angle, opts.RadiusRatio)
	stats.LayoutTime = time.Since(start)
	if err != nil {
		hooks.OnLayoutComplete(ctx, seats, 0, stats.LayoutTime, err)
		return nil, nil, stats, err
	}
	hooks.OnLayoutComplete(ctx, seats, l.NumberOfRows(), stats.LayoutTime, nil)
	stats.Seats, stats.Rows = l.NumberOfSeats(), l.NumberOfRows()

	if err := ctx.Err(); err != nil {
		return nil, nil, stats, err
	}

	start = time.Now()
	hooks.OnAllocationStart(ctx, opts.Method(), len(opts.Groups))
	p, err := Allocate(l, opts.Groups, opts.RowConnected)
	stats.AllocationTime = time.Since(start)
	hooks.OnAllocationComplete(ctx, opts.Method(), stats.AllocationTime, err)
	if err != nil {
		return nil, nil, stats, err
	}
	return l, p, stats, nil
}

// render serves each format from the cache when possible and renders the
// rest in one pass.
func (r *Runner) render(ctx context.Context, layoutKey string, l *hemicycle.Layout, p seating.Plan, opts Options) (map[render.Format][]byte, CacheInfo, error) {
	var info CacheInfo
	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	hooks := observability.Cache()
	logger := r.logger(opts)

	for _, f := range opts.Formats {
		if opts.Refresh {
			info.Misses = append(info.Misses, f)
			continue
		}
		key := r.Keyer.ArtifactKey(layoutKey, opts.ArtifactKeyOpts(f))
		data, hit, err := r.get(ctx, key)
		if err != nil {
			logger.Warn("cache read failed", "format", f, "err", err)
		}
		if hit {
			hooks.OnCacheHit(ctx, "artifact")
			artifacts[f] = data
			info.Hits = append(info.Hits, f)
			continue
		}
		hooks.OnCacheMiss(ctx, "artifact")
		info.Misses = append(info.Misses, f)
	}
	if len(info.Misses) == 0 {
		return artifacts, info, nil
	}

	missing := opts
	missing.Formats = info.Misses
	rendered, err := RenderFormats(ctx, l, p, missing)
	if err != nil {
		return nil, info, err
	}
	for f, data := range rendered {
		artifacts[f] = data
		key := r.Keyer.ArtifactKey(layoutKey, opts.ArtifactKeyOpts(f))
		if err := r.set(ctx, key, data); err != nil {
			logger.Warn("cache write failed", "format", f, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, info, nil
}

func (r *Runner) get(ctx context.Context, key string) (data []byte, hit bool, err error) {
	err = cache.RetryWithBackoff(ctx, func() error {
		var getErr error
		data, hit, getErr = r.Cache.Get(ctx, key)
		return getErr
	})
	return data, hit, err
}

func (r *Runner) set(ctx context.Context, key string, data []byte) error {
	ttl := r.TTL
	if ttl <= 0 {
		ttl = ArtifactTTL
	}
	return cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
}

// Close closes the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// GroupsHash identifies a list of groups by the hash of its compact
// encoding.
func GroupsHash(groups []seating.ParliamentaryGroup) string {
	return cache.Hash([]byte(groupspec.Format(groups)))
}

func formatNames(formats []render.Format) []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

func cacheLabel(info CacheInfo) string {
	switch {
	case info.AllHit():
		return "hit"
	case len(info.Hits) > 0:
		return "partial"
	}
	return "miss"
}
