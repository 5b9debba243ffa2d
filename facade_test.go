package polytile_test

import (
	"testing"

	polytile "github.com/alexpetrov/polytile"
	"github.com/alexpetrov/polytile/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorize_UnitSquare(t *testing.T) {
	result, found, err := polytile.Factorize("urdl")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, factor.Translation, result.BW.Kind)
	assert.Len(t, result.Seed, 4)
	assert.Len(t, result.Transforms, 4)
}

func TestFactorize_MalformedBoundary(t *testing.T) {
	_, _, err := polytile.Factorize("uu")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}

func TestFactorize_EmptyInputRejected(t *testing.T) {
	_, _, err := polytile.Factorize("")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}

func TestTile_UnitSquareProducesNeighbors(t *testing.T) {
	res, err := polytile.Tile("urdl")
	require.NoError(t, err)
	assert.Greater(t, len(res.Polygons), 1)
}

func TestTile_MalformedBoundaryPropagates(t *testing.T) {
	_, err := polytile.Tile("uu")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}
