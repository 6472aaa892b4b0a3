package rectclip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/rectclip"
)

func TestClip_EntirelyInside(t *testing.T) {
	square := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	rect := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 10}}

	out := rectclip.Clip(square, rect)
	require.Equal(t, square, out)
}

func TestClip_CornerCutOff(t *testing.T) {
	// A square straddling the clip rectangle's right edge loses its right
	// half and gains two new vertices where the edges cross x=5.
	square := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	rect := geom.Rect{Min: geom.Point{X: -100, Y: -100}, Max: geom.Point{X: 5, Y: 100}}

	out := rectclip.Clip(square, rect)
	require.NotEmpty(t, out)
	for _, v := range out {
		require.LessOrEqual(t, v.X, 5.0+1e-9)
	}

	foundCrossing := false
	for _, v := range out {
		if geom.Equal(v, geom.Point{X: 5, Y: 0}, 1e-6) || geom.Equal(v, geom.Point{X: 5, Y: 10}, 1e-6) {
			foundCrossing = true
		}
	}
	require.True(t, foundCrossing, "clipping should introduce a vertex at the boundary crossing")
}

func TestClip_EntirelyOutside(t *testing.T) {
	square := []geom.Point{{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110}}
	rect := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 10}}

	require.Nil(t, rectclip.Clip(square, rect))
}

func TestClip_DegenerateRect(t *testing.T) {
	square := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	require.Nil(t, rectclip.Clip(square, geom.Rect{Min: geom.Point{X: 5, Y: 0}, Max: geom.Point{X: 5, Y: 10}}))
}
