package cmd

import (
	"fmt"
	"strconv"

	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/region"
	"github.com/spf13/cobra"
)

var (
	locateMapUnits bool
)

var locateCmd = &cobra.Command{
	Use:   "locate {level.yaml} {x} {y}",
	Short: "Print the region containing a point",
	Long:  `Builds the regions of a level and prints the one containing the point (x, y). Coordinates are in scene units unless --map-units is given.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parsing x: %w", err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("parsing y: %w", err)
		}

		_, config, err := loadProject()
		if err != nil {
			return err
		}

		lvl := level.New("")
		if err := lvl.Load(args[0]); err != nil {
			return fmt.Errorf("loading level %s: %w", args[0], err)
		}

		ctx := region.NewContext(lvl, config.SizeFactor, config.SkyTextures)
		loc := region.NewLocator(region.Build(lvl, ctx))

		p := region.Identity().Point(x, y)
		if locateMapUnits {
			p = ctx.Point(x, y)
		}

		r, ok := loc.At(p)
		if !ok {
			fmt.Println("none")
			return nil
		}
		fmt.Printf("region %d floor=%g ceiling=%g sky=%t\n", r.ID, r.FloorHeight, r.CeilingHeight, r.IsSkyCeiling)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
	locateCmd.Flags().BoolVarP(&locateMapUnits, "map-units", "m", false, "Interpret x and y as map units")
}
