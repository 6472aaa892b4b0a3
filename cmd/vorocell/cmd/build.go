package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/voronoi"
)

var (
	buildSitesPath string
	buildOutPath   string
	buildFormat    string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "run the Fortune sweep and emit cell polygons",
	Long: `Load a site list, run the Voronoi sweep, assemble bounded cell
polygons, and write one polygon per line to the output (or stdout), in
either the built-in "site N: x,y ..." text format or WKT.`,
	RunE: runBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildSitesPath, "sites", "", "input site list (required)")
	buildCmd.Flags().StringVar(&buildOutPath, "out", "", "output file (default stdout)")
	buildCmd.Flags().StringVar(&buildFormat, "format", "text", "output format: text or wkt")
	_ = buildCmd.MarkFlagRequired("sites")
}

// writeCellText writes one "site N: x,y x,y ..." line per cell.
func writeCellText(out io.Writer, site int, points []geom.Point) {
	fmt.Fprintf(out, "site %d:", site)
	for _, v := range points {
		fmt.Fprintf(out, " %g,%g", v.X, v.Y)
	}
	fmt.Fprintln(out)
}

// writeCellWKT writes one cell as a WKT POLYGON, closing the ring on its
// first vertex as WKT requires.
func writeCellWKT(out io.Writer, points []geom.Point) {
	if len(points) == 0 {
		fmt.Fprintln(out, "POLYGON EMPTY")
		return
	}
	coords := make([]string, 0, len(points)+1)
	for _, v := range points {
		coords = append(coords, fmt.Sprintf("%g %g", v.X, v.Y))
	}
	coords = append(coords, coords[0])
	fmt.Fprintf(out, "POLYGON((%s))\n", strings.Join(coords, ", "))
}

func runBuild(cmd *cobra.Command, args []string) error {
	switch buildFormat {
	case "", "text", "wkt":
	default:
		return fmt.Errorf("build: --format must be text or wkt, got %q", buildFormat)
	}

	sites := loadSites(buildSitesPath)

	diagram, err := voronoi.Build(sites)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	out := cmd.OutOrStdout()
	if buildOutPath != "" {
		outFile, err := os.Create(buildOutPath)
		if err != nil {
			return fmt.Errorf("build: creating output: %w", err)
		}
		defer outFile.Close()
		out = outFile
	}

	for _, cell := range diagram.Cells() {
		if buildFormat == "wkt" {
			writeCellWKT(out, cell.Polygon)
		} else {
			writeCellText(out, cell.Site, cell.Polygon)
		}
	}
	return nil
}
