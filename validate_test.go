package polytile_test

import (
	"testing"

	polytile "github.com/alexpetrov/polytile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoundary_ValidSquare(t *testing.T) {
	w, err := polytile.ParseBoundary("urdl")
	require.NoError(t, err)
	assert.Len(t, w, 4)
}

func TestParseBoundary_OddLengthRejected(t *testing.T) {
	_, err := polytile.ParseBoundary("urd")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}

func TestParseBoundary_TooShortRejected(t *testing.T) {
	_, err := polytile.ParseBoundary("uu")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}

func TestParseBoundary_NonClosingRejected(t *testing.T) {
	_, err := polytile.ParseBoundary("uuuu")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}

func TestParseBoundary_BadLetterRejected(t *testing.T) {
	_, err := polytile.ParseBoundary("urdx")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}

func TestParseBoundary_SelfIntersectingRejected(t *testing.T) {
	// The unit square traced twice: closes, even length, but revisits (0,0)
	// and the other three corners before finishing.
	_, err := polytile.ParseBoundary("urdlurdl")
	assert.ErrorIs(t, err, polytile.ErrMalformedBoundary)
}
