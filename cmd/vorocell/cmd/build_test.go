package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCommand_WritesCellOutput(t *testing.T) {
	dir := t.TempDir()
	sitesPath := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(sitesPath, []byte(
		"200 200\n0 0\n400 0\n400 400\n0 400\n200 0\n200 400\n0 200\n400 200\n"), 0o644))

	buildSitesPath = sitesPath
	buildOutPath = ""
	buildFormat = ""
	defer func() { buildSitesPath, buildOutPath, buildFormat = "", "", "" }()

	var out bytes.Buffer
	buildCmd.SetOut(&out)
	require.NoError(t, runBuild(buildCmd, nil))

	require.Contains(t, out.String(), "site")
}

func TestBuildCommand_WKTFormat(t *testing.T) {
	dir := t.TempDir()
	sitesPath := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(sitesPath, []byte(
		"200 200\n0 0\n400 0\n400 400\n0 400\n200 0\n200 400\n0 200\n400 200\n"), 0o644))

	buildSitesPath = sitesPath
	buildOutPath = ""
	buildFormat = "wkt"
	defer func() { buildSitesPath, buildOutPath, buildFormat = "", "", "" }()

	var out bytes.Buffer
	buildCmd.SetOut(&out)
	require.NoError(t, runBuild(buildCmd, nil))

	require.Contains(t, out.String(), "POLYGON((")
}

func TestBuildCommand_RejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	sitesPath := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(sitesPath, []byte("100 200\n300 200\n"), 0o644))

	buildSitesPath = sitesPath
	buildOutPath = ""
	buildFormat = "geojson"
	defer func() { buildSitesPath, buildOutPath, buildFormat = "", "", "" }()

	require.Error(t, runBuild(buildCmd, nil))
}

func TestBuildCommand_MissingSitesFileIsWarningNotError(t *testing.T) {
	dir := t.TempDir()

	buildSitesPath = filepath.Join(dir, "does-not-exist.txt")
	buildOutPath = ""
	buildFormat = ""
	defer func() { buildSitesPath, buildOutPath, buildFormat = "", "", "" }()

	var out bytes.Buffer
	buildCmd.SetOut(&out)
	require.NoError(t, runBuild(buildCmd, nil), "a missing --sites file should be a logged warning, not a command error")
	require.Empty(t, out.String(), "an empty site list produces no cells")
}

func TestOffsetCommand_ParsesBounds(t *testing.T) {
	r, err := parseBounds("0,0,100,100")
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Min.X)
	require.Equal(t, 100.0, r.Max.Y)

	_, err = parseBounds("0,0,100")
	require.Error(t, err)
}
