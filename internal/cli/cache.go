package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/voxview/pkg/cache"
)

// newCacheCmd creates the cache management command.
func newCacheCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the statistics cache",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir(configPath)
			if err != nil {
				return err
			}
			printKeyValue("cache dir", dir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir(configPath)
			if err != nil {
				return err
			}
			if err := os.RemoveAll(dir); err != nil {
				return err
			}
			printSuccess("cleared %s", dir)
			return nil
		},
	})

	return cmd
}

func cacheDir(configPath string) (string, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", err
	}
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
