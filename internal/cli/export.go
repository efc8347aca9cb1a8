package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/voxview/pkg/errors"
	"github.com/matzehuels/voxview/pkg/render"
	"github.com/matzehuels/voxview/pkg/viewer"
	"github.com/matzehuels/voxview/pkg/viewport"
	"github.com/matzehuels/voxview/pkg/volume"
)

// newExportCmd creates the slice export command.
func newExportCmd() *cobra.Command {
	var (
		planeName string
		sliceIdx  int
		all       bool
		outDir    string
		scale     float64
		window    string
	)

	cmd := &cobra.Command{
		Use:   "export <path> <nx> <ny> <nz>",
		Short: "Write slices of a volume as PNG images",
		Long: `Export renders axis-aligned slices through a volume as grayscale PNG
files. By default the middle slice of the chosen plane is written; --slice
picks a specific index and --all writes every slice.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			specs, err := volume.ParseArgs(args)
			if err != nil {
				return err
			}
			vol, err := volume.LoadSpec(specs[0])
			if err != nil {
				return err
			}

			plane, err := viewport.ParsePlane(planeName)
			if err != nil {
				return err
			}

			min, max := vol.GlobalRange()
			if window != "" {
				var ok bool
				min, max, ok = viewer.ParseWindowText(window)
				if !ok {
					return errors.New(errors.ErrCodeInvalidWindow, "invalid --window %q, expected \"min max\"", window)
				}
			}
			cm := render.Colormap{Min: min, Max: max}

			nx, ny, nz := vol.Dims()
			extent := plane.SliceExtent(nx, ny, nz)

			first, last := extent/2, extent/2
			switch {
			case all:
				first, last = 0, extent-1
			case sliceIdx >= 0:
				first = viewport.ClampSlice(sliceIdx, extent)
				last = first
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			p := newProgress(logger)
			for idx := first; idx <= last; idx++ {
				var img image.Image = render.SliceImage(vol, plane, idx, cm)
				if scale != 1 {
					img = render.ScaleImage(img, scale)
				}
				name := fmt.Sprintf("%s_%s_%04d.png", vol.Name(), plane, idx)
				path := filepath.Join(outDir, name)
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				err = png.Encode(f, img)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return err
				}
				printFile(path)
			}
			p.done(fmt.Sprintf("exported %d slice(s)", last-first+1))
			return nil
		},
	}

	cmd.Flags().StringVarP(&planeName, "plane", "p", "xy", "slice plane: xy, xz, or yz")
	cmd.Flags().IntVarP(&sliceIdx, "slice", "s", -1, "slice index (default: middle slice)")
	cmd.Flags().BoolVar(&all, "all", false, "export every slice of the plane")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().Float64Var(&scale, "scale", 1, "resampling factor for the output images")
	cmd.Flags().StringVarP(&window, "window", "w", "", `intensity window as "min max" (default: global range)`)

	return cmd
}
