package sitefile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/sitefile"
)

func TestLoad_SkipsBlankLines(t *testing.T) {
	r := strings.NewReader("100 200\n\n300.5 400.25\n")
	pts, err := sitefile.Load(r)
	require.NoError(t, err)
	require.Equal(t, []geom.Point{{X: 100, Y: 200}, {X: 300.5, Y: 400.25}}, pts)
}

func TestLoad_MalformedLine(t *testing.T) {
	r := strings.NewReader("100 200\nnot-a-point\n")
	_, err := sitefile.Load(r)
	require.ErrorIs(t, err, sitefile.ErrMalformedLine)
	require.Contains(t, err.Error(), "line 2")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 2}, {X: -3.5, Y: 4.25}, {X: 0, Y: 0}}

	var buf bytes.Buffer
	require.NoError(t, sitefile.Save(&buf, pts))

	got, err := sitefile.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, pts, got)
}
