package geom_test

import (
	"testing"

	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathPoints_Scenario(t *testing.T) {
	w, err := letter.ParseWord("urrdl")
	require.NoError(t, err)

	got := geom.PathPoints(w)
	want := []geom.Point{{0, 0}, {0, -1}, {1, -1}, {2, -1}, {2, 0}, {1, 0}}
	assert.Equal(t, want, got)
}

func TestPathVector_Scenario(t *testing.T) {
	w, err := letter.ParseWord("ururdddl")
	require.NoError(t, err)

	assert.Equal(t, geom.Vec{DX: 1, DY: 1}, geom.PathVector(w))
}

func TestPathVector_ClosedBoundary(t *testing.T) {
	w, err := letter.ParseWord("urdl")
	require.NoError(t, err)

	assert.Equal(t, geom.Vec{}, geom.PathVector(w))
}
