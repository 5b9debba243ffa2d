package tiling_test

import (
	"testing"

	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/tiling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() geom.Polygon {
	return geom.Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestGenerate_UnitSquareGridWithinDepth(t *testing.T) {
	transforms := []geom.Transform{
		geom.Translate(geom.Vec{DX: 1, DY: 0}),
		geom.Translate(geom.Vec{DX: -1, DY: 0}),
		geom.Translate(geom.Vec{DX: 0, DY: 1}),
		geom.Translate(geom.Vec{DX: 0, DY: -1}),
	}

	res, err := tiling.Generate(unitSquare(), transforms, tiling.WithMaxDepth(1))
	require.NoError(t, err)

	// seed + 4 immediate neighbors, no duplicates.
	assert.Len(t, res.Polygons, 5)
	seen := make(map[string]bool)
	for _, e := range res.Polygons {
		key := e.Polygon.Key()
		assert.False(t, seen[key], "duplicate polygon %v", e.Polygon)
		seen[key] = true
	}
}

func TestGenerate_EmptySeedErrors(t *testing.T) {
	_, err := tiling.Generate(nil, nil)
	assert.ErrorIs(t, err, tiling.ErrNoSeed)
}

func TestGenerate_InvalidWindowOption(t *testing.T) {
	_, err := tiling.Generate(unitSquare(), nil, tiling.WithWindow(0, 4))
	assert.ErrorIs(t, err, tiling.ErrOptionViolation)
}

func TestGenerate_WindowClipsExpansion(t *testing.T) {
	transforms := []geom.Transform{geom.Translate(geom.Vec{DX: 1, DY: 0})}

	res, err := tiling.Generate(unitSquare(), transforms, tiling.WithWindow(2, 2))
	require.NoError(t, err)
	for _, e := range res.Polygons {
		inBounds := false
		for _, v := range e.Polygon {
			if v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1 {
				inBounds = true
			}
		}
		assert.True(t, inBounds)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	transforms := []geom.Transform{
		geom.Translate(geom.Vec{DX: 1, DY: 0}),
		geom.Translate(geom.Vec{DX: 0, DY: 1}),
	}
	a, err := tiling.Generate(unitSquare(), transforms, tiling.WithMaxDepth(3))
	require.NoError(t, err)
	b, err := tiling.Generate(unitSquare(), transforms, tiling.WithMaxDepth(3))
	require.NoError(t, err)

	require.Len(t, b.Polygons, len(a.Polygons))
	for i := range a.Polygons {
		assert.True(t, a.Polygons[i].Polygon.Equal(b.Polygons[i].Polygon))
	}
}
