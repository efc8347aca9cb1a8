package cli

import (
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/voxview/pkg/layout"
	"github.com/matzehuels/voxview/pkg/viewer"
)

// newViewCmd creates the interactive viewer command.
func newViewCmd() *cobra.Command {
	var (
		manifestPath string
		configPath   string
		sync         bool
	)

	cmd := &cobra.Command{
		Use:   "view [path nx ny nz]...",
		Short: "Open volumes in the interactive slice viewer",
		Long: `Open one or more raw float32 volumes side by side. Volumes are given as
groups of four arguments (path nx ny nz) or through a YAML manifest.

Mouse: click-drag pans (drag mode) or draws a zoom box (zoom mode).
Keys: arrows step slices, +/- zoom, 1/2/3 select the plane, z/d toggle
zoom and drag mode, [/]/{/} adjust the window, w enters it directly,
a applies a percentile auto-window, s syncs colormaps, tab cycles views,
r resets, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if sync {
				cfg.SyncColormap = true
			}

			specs, err := collectSpecs(args, manifestPath)
			if err != nil {
				return err
			}
			vols, err := loadVolumes(cmd.Context(), logger, specs, cfg)
			if err != nil {
				return err
			}

			session := viewer.New(vols, viewer.Options{
				Layout: layout.Layout{
					Spacing:   cfg.ViewSpacing,
					TopMargin: cfg.ToolbarMargin,
				},
				ZoomStep:         cfg.ZoomStep,
				BoxZoomThreshold: cfg.BoxZoomThreshold,
				Background: color.RGBA{
					R: uint8(cfg.Background),
					G: uint8(cfg.Background),
					B: uint8(cfg.Background),
					A: 0xff,
				},
				SyncColormap:     cfg.SyncColormap,
			})

			program := tea.NewProgram(
				newViewerModel(session),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest listing volumes")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")
	cmd.Flags().BoolVarP(&sync, "sync-colormap", "s", false, "apply window changes to all volumes")

	return cmd
}
