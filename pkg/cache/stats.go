package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/matzehuels/voxview/pkg/volume"
)

// Stats returns the statistics for vol, consulting the cache first. The
// second return reports whether the result came from cache. The key is
// derived from the source file's path, size, modification time, and the
// volume dimensions, so editing the file invalidates the entry. Cache
// failures fall through to recomputation rather than failing the caller.
func Stats(ctx context.Context, c Cache, k Keyer, path string, vol *volume.Volume, ttl time.Duration) (volume.Stats, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		// No file identity to key on, compute directly.
		return volume.ComputeStats(vol), false, nil
	}

	nx, ny, nz := vol.Dims()
	key := k.StatsKey(path, info.Size(), info.ModTime(), nx, ny, nz)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		var stats volume.Stats
		if err := json.Unmarshal(data, &stats); err == nil {
			return stats, true, nil
		}
	}

	stats := volume.ComputeStats(vol)
	if data, err := json.Marshal(stats); err == nil {
		_ = c.Set(ctx, key, data, ttl)
	}
	return stats, false, nil
}
