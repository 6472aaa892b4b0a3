package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/offset"
	"github.com/vorocell/vorocell/polygon"
	"github.com/vorocell/vorocell/rectclip"
	"github.com/vorocell/vorocell/voronoi"
)

var batchConfigPath string

// batchJob is one entry of a batch config file's jobs list.
type batchJob struct {
	Sites     string    `yaml:"sites"`
	Operation string    `yaml:"operation"`
	Amount    float64   `yaml:"amount"`
	Bounds    []float64 `yaml:"bounds"`
	Out       string    `yaml:"out"`
}

type batchConfig struct {
	Jobs []batchJob `yaml:"jobs"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "run a list of build/offset jobs from a YAML config",
	RunE:  runBatch,
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "batch config file (required)")
	_ = batchCmd.MarkFlagRequired("config")
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func runBatch(cmd *cobra.Command, args []string) error {
	var cfg batchConfig
	if err := unmarshalYAMLFile(batchConfigPath, &cfg); err != nil {
		return fmt.Errorf("batch: reading config: %w", err)
	}

	for i, job := range cfg.Jobs {
		if err := runBatchJob(job); err != nil {
			return fmt.Errorf("batch: job %d (%s): %w", i, job.Sites, err)
		}
	}
	return nil
}

func runBatchJob(job batchJob) error {
	switch job.Operation {
	case "build", "offset":
	default:
		return fmt.Errorf("unknown operation %q", job.Operation)
	}

	sites := loadSites(job.Sites)

	diagram, err := voronoi.Build(sites)
	if err != nil {
		return err
	}

	var bounds *geom.Rect
	if len(job.Bounds) == 4 {
		bounds = &geom.Rect{
			Min: geom.Point{X: job.Bounds[0], Y: job.Bounds[1]},
			Max: geom.Point{X: job.Bounds[2], Y: job.Bounds[3]},
		}
	}

	out := os.Stdout
	if job.Out != "" {
		outFile, err := os.Create(job.Out)
		if err != nil {
			return err
		}
		defer outFile.Close()
		out = outFile
	}

	for _, cell := range diagram.Cells() {
		poly := cell.Polygon
		switch job.Operation {
		case "build":
			// poly already holds the raw cell polygon.
		case "offset":
			poly = offset.Offset(poly, job.Amount)
		default:
			return fmt.Errorf("unknown operation %q", job.Operation)
		}
		if bounds != nil {
			poly = polygon.Polygon(rectclip.Clip(poly, *bounds))
		}
		fmt.Fprintf(out, "site %d:", cell.Site)
		for _, v := range poly {
			fmt.Fprintf(out, " %g,%g", v.X, v.Y)
		}
		fmt.Fprintln(out)
	}
	return nil
}
