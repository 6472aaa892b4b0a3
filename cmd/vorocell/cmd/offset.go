package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/offset"
	"github.com/vorocell/vorocell/polygon"
	"github.com/vorocell/vorocell/rectclip"
	"github.com/vorocell/vorocell/voronoi"
)

var (
	offsetSitesPath string
	offsetAmount    float64
	offsetBounds    string
)

var offsetCmd = &cobra.Command{
	Use:   "offset",
	Short: "build cells and offset each by a signed distance",
	Long: `Load a site list, assemble bounded cell polygons, and offset each
by --amount. If --bounds x0,y0,x1,y1 is given, each result is additionally
clipped to that rectangle.`,
	RunE: runOffset,
}

func init() {
	RootCmd.AddCommand(offsetCmd)

	offsetCmd.Flags().StringVar(&offsetSitesPath, "sites", "", "input site list (required)")
	offsetCmd.Flags().Float64Var(&offsetAmount, "amount", 0, "signed offset distance (required)")
	offsetCmd.Flags().StringVar(&offsetBounds, "bounds", "", "x0,y0,x1,y1 viewport to clip results to")
	_ = offsetCmd.MarkFlagRequired("sites")
	_ = offsetCmd.MarkFlagRequired("amount")
}

func parseBounds(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, fmt.Errorf("offset: --bounds needs 4 comma-separated values, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("offset: --bounds value %q: %w", p, err)
		}
		vals[i] = v
	}
	return geom.Rect{Min: geom.Point{X: vals[0], Y: vals[1]}, Max: geom.Point{X: vals[2], Y: vals[3]}}, nil
}

func runOffset(cmd *cobra.Command, args []string) error {
	sites := loadSites(offsetSitesPath)

	diagram, err := voronoi.Build(sites)
	if err != nil {
		return fmt.Errorf("offset: %w", err)
	}

	var bounds *geom.Rect
	if offsetBounds != "" {
		r, err := parseBounds(offsetBounds)
		if err != nil {
			return err
		}
		bounds = &r
	}

	out := cmd.OutOrStdout()
	for _, cell := range diagram.Cells() {
		offsetPoly := offset.Offset(cell.Polygon, offsetAmount)
		if bounds != nil {
			offsetPoly = polygon.Polygon(rectclip.Clip(offsetPoly, *bounds))
		}
		fmt.Fprintf(out, "site %d:", cell.Site)
		for _, v := range offsetPoly {
			fmt.Fprintf(out, " %g,%g", v.X, v.Y)
		}
		fmt.Fprintln(out)
	}
	return nil
}
