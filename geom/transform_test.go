package geom_test

import (
	"testing"

	"github.com/alexpetrov/polytile/geom"
	"github.com/stretchr/testify/assert"
)

func square() geom.Polygon {
	return geom.Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestApply_Translate(t *testing.T) {
	got := geom.Apply(geom.Translate(geom.Vec{DX: 2, DY: 3}), square())
	want := geom.Polygon{{2, 3}, {3, 3}, {3, 4}, {2, 4}}
	assert.True(t, got.Equal(want))
}

func TestApply_Rotate180AboutFirstVertex(t *testing.T) {
	got := geom.Apply(geom.Rotate(180, 0, geom.Vec{}), square())
	want := geom.Polygon{{0, 0}, {-1, 0}, {-1, -1}, {0, -1}}
	assert.True(t, got.Equal(want))
}

func TestApply_Rotate90ThenTranslate(t *testing.T) {
	got := geom.Apply(geom.Rotate(90, 0, geom.Vec{DX: 5, DY: 0}), square())
	// Rotate90 about (0,0): (dx,dy) -> (dy,-dx).
	want := geom.Polygon{{5, 0}, {5, -1}, {6, -1}, {6, 0}}
	assert.True(t, got.Equal(want))
}

func TestApply_MirrorAxisZero(t *testing.T) {
	got := geom.Apply(geom.Mirror(0, 0, geom.Vec{}), square())
	want := geom.Polygon{{0, 0}, {1, 0}, {1, -1}, {0, -1}}
	assert.True(t, got.Equal(want))
}

func TestPolygon_Equal_OrderSensitive(t *testing.T) {
	a := geom.Polygon{{0, 0}, {1, 0}}
	b := geom.Polygon{{1, 0}, {0, 0}}
	assert.False(t, a.Equal(b))
}

func TestPolygon_Key_DistinguishesOrder(t *testing.T) {
	a := geom.Polygon{{0, 0}, {1, 0}}
	b := geom.Polygon{{1, 0}, {0, 0}}
	assert.NotEqual(t, a.Key(), b.Key())
}
