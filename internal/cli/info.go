package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/voxview/pkg/cache"
	"github.com/matzehuels/voxview/pkg/volume"
)

// newInfoCmd creates the volume inspection command.
func newInfoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "info <path> <nx> <ny> <nz>",
		Short: "Print dimensions and intensity statistics of a volume",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			specs, err := volume.ParseArgs(args)
			if err != nil {
				return err
			}
			spec := specs[0]

			vol, err := volume.LoadSpec(spec)
			if err != nil {
				return err
			}

			c := openCache(cfg)
			defer func() { _ = c.Close() }()
			stats, cached, err := cache.Stats(cmd.Context(), c, cache.NewDefaultKeyer(), spec.Path, vol, cfg.Cache.TTL.Duration)
			if err != nil {
				return err
			}

			nx, ny, nz := vol.Dims()
			autoMin, autoMax := stats.AutoWindow()

			printVolumeLine(vol.Name(), nx, ny, nz, cached)
			printKeyValue("samples", fmt.Sprintf("%d", nx*ny*nz))
			printKeyValue("range", fmt.Sprintf("[%g, %g]", stats.Min, stats.Max))
			printKeyValue("mean", fmt.Sprintf("%.4g", stats.Mean))
			printKeyValue("stddev", fmt.Sprintf("%.4g", stats.StdDev))
			printKeyValue("median", fmt.Sprintf("%.4g", stats.P50))
			printKeyValue("p01/p99", fmt.Sprintf("%.4g / %.4g", stats.P01, stats.P99))
			printKeyValue("p05/p95", fmt.Sprintf("%.4g / %.4g", stats.P05, stats.P95))
			printKeyValue("auto window", fmt.Sprintf("[%g, %g]", autoMin, autoMax))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")
	return cmd
}
