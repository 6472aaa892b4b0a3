package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalYAMLFile_ParsesJobs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
jobs:
  - sites: sites_a.txt
    operation: build
    out: cells_a.txt
  - sites: sites_b.txt
    operation: offset
    amount: 12.5
    bounds: [0, 0, 500, 500]
    out: offset_b.txt
`), 0o644))

	var cfg batchConfig
	require.NoError(t, unmarshalYAMLFile(cfgPath, &cfg))
	require.Len(t, cfg.Jobs, 2)
	require.Equal(t, "offset", cfg.Jobs[1].Operation)
	require.Equal(t, 12.5, cfg.Jobs[1].Amount)
	require.Equal(t, []float64{0, 0, 500, 500}, cfg.Jobs[1].Bounds)
}

func TestRunBatchJob_Build(t *testing.T) {
	dir := t.TempDir()
	sitesPath := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(sitesPath, []byte("100 200\n300 200\n"), 0o644))
	outPath := filepath.Join(dir, "out.txt")

	err := runBatchJob(batchJob{Sites: sitesPath, Operation: "build", Out: outPath})
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	require.NoError(t, err, "job should have created its output file")
}

func TestRunBatchJob_UnknownOperation(t *testing.T) {
	dir := t.TempDir()
	sitesPath := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(sitesPath, []byte("100 200\n300 200\n"), 0o644))

	err := runBatchJob(batchJob{Sites: sitesPath, Operation: "bogus"})
	require.Error(t, err)
}
