package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/voxview/pkg/cache"
	"github.com/matzehuels/voxview/pkg/config"
	"github.com/matzehuels/voxview/pkg/errors"
	"github.com/matzehuels/voxview/pkg/volume"
)

// loadConfig resolves the effective config: an explicit --config path must
// exist, the default location is optional.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}
	def, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(def, false)
}

// collectSpecs turns positional args and an optional manifest into one spec
// list. Args come in groups of four (path nx ny nz); manifest entries are
// appended after the positional ones.
func collectSpecs(args []string, manifestPath string) ([]volume.Spec, error) {
	var specs []volume.Spec
	if len(args) > 0 {
		parsed, err := volume.ParseArgs(args)
		if err != nil {
			return nil, err
		}
		specs = parsed
	}
	if manifestPath != "" {
		fromManifest, err := volume.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		specs = append(specs, fromManifest...)
	}
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no volumes given: pass path nx ny nz groups or --manifest")
	}
	return specs, nil
}

// openCache builds the statistics cache from config. Disabled caching gets
// the null backend so callers never branch.
func openCache(cfg config.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return cache.NewNullCache()
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := cache.DefaultDir()
		if err != nil {
			return cache.NewNullCache()
		}
		dir = d
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// loadVolumes loads every spec and applies a percentile auto-window from
// the (possibly cached) statistics.
func loadVolumes(ctx context.Context, logger *log.Logger, specs []volume.Spec, cfg config.Config) ([]*volume.Volume, error) {
	c := openCache(cfg)
	defer func() { _ = c.Close() }()
	keyer := cache.NewDefaultKeyer()

	vols := make([]*volume.Volume, 0, len(specs))
	for _, spec := range specs {
		p := newProgress(logger)
		vol, err := volume.LoadSpec(spec)
		if err != nil {
			return nil, err
		}

		stats, cached, err := cache.Stats(ctx, c, keyer, spec.Path, vol, cfg.Cache.TTL.Duration)
		if err != nil {
			return nil, err
		}
		min, max := stats.AutoWindow()
		vol.SetWindow(min, max)

		nx, ny, nz := vol.Dims()
		logger.Debug("auto window", "volume", vol.Name(), "min", min, "max", max, "cached", cached)
		p.done(fmt.Sprintf("loaded %s (%dx%dx%d)", vol.Name(), nx, ny, nz))
		vols = append(vols, vol)
	}
	return vols, nil
}
