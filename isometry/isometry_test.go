package isometry_test

import (
	"math"
	"testing"

	"github.com/alexpetrov/polytile/criteria"
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/isometry"
	"github.com/alexpetrov/polytile/letter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestBuild_UnitSquareTranslation(t *testing.T) {
	w, err := letter.ParseWord("urdl")
	require.NoError(t, err)

	bwf, ok := criteria.AnyFactorization(w)
	require.True(t, ok)
	require.Equal(t, factor.Translation, bwf.Kind)

	poly := geom.PolygonFromWord(w)
	transforms, err := isometry.Build(poly, w, bwf)
	require.NoError(t, err)
	// The unit square's half is covered by two length-1 factors alone, so
	// the detector returns the four-factor degenerate BN form.
	require.Len(t, transforms, 4)

	for _, tr := range transforms {
		neighbor := geom.Apply(tr, poly)
		assert.True(t, sharesEdge(poly, neighbor), "neighbor %+v shares no edge with seed", neighbor)
	}
}

func TestBuild_HalfTurnSharesEdgeWithSeed(t *testing.T) {
	w, err := letter.ParseWord("rddrurdruuurdrdrdrdldrddrdllululdddluldluullurrulllllurruuur")
	require.NoError(t, err)

	bwf, ok := criteria.AnyFactorization(w)
	require.True(t, ok)
	require.Equal(t, factor.HalfTurn, bwf.Kind)

	poly := geom.PolygonFromWord(w)
	transforms, err := isometry.Build(poly, w, bwf)
	require.NoError(t, err)
	require.Len(t, transforms, 6)

	for _, tr := range transforms {
		neighbor := geom.Apply(tr, poly)
		assert.True(t, sharesEdge(poly, neighbor), "neighbor %+v shares no edge with seed", neighbor)
	}
}

func TestBuild_UnknownKindIsInternalInvariant(t *testing.T) {
	w, err := letter.ParseWord("urdl")
	require.NoError(t, err)
	poly := geom.PolygonFromWord(w)

	bwf := factor.BWFactorization{Kind: factor.CriterionKind(99)}
	_, err = isometry.Build(poly, w, bwf)
	assert.ErrorIs(t, err, factor.ErrInternalInvariant)
}

func TestBuild_ShapeMismatchRecoversToInternalInvariant(t *testing.T) {
	w, err := letter.ParseWord("urdl")
	require.NoError(t, err)
	poly := geom.PolygonFromWord(w)

	bwf := factor.BWFactorization{Kind: factor.Translation, Factorization: factor.Factorization{}}
	_, err = isometry.Build(poly, w, bwf)
	assert.ErrorIs(t, err, factor.ErrInternalInvariant)
}

// TestRotateVec_PreservesNormUnderFloatCrossCheck cross-checks the integer
// 90-degree rotation formula used
// throughout geom against an independent float computation over
// gonum's r2 package, confirming both agree the rotation preserves length.
func TestRotateVec_PreservesNormUnderFloatCrossCheck(t *testing.T) {
	v := geom.Vec{DX: 3, DY: -4}
	before := r2.Vec{X: float64(v.DX), Y: float64(v.DY)}

	rotated := geom.Apply(geom.Rotate(90, 0, geom.Vec{}), geom.Polygon{{0, 0}, {v.DX, v.DY}})[1]
	after := r2.Vec{X: float64(rotated.X), Y: float64(rotated.Y)}

	assert.InDelta(t, r2.Norm(before), r2.Norm(after), 1e-9)
	assert.True(t, math.Abs(r2.Norm(before)-r2.Norm(after)) < 1e-9)
}

func sharesEdge(a, b geom.Polygon) bool {
	edgesA := edgeSet(a)
	for _, e := range edgeSet(b) {
		if edgesA[reverseEdge(e)] {
			return true
		}
	}
	return false
}

type edge struct{ from, to geom.Point }

func reverseEdge(e edge) edge { return edge{from: e.to, to: e.from} }

func edgeSet(p geom.Polygon) map[edge]bool {
	out := make(map[edge]bool, len(p))
	for i := range p {
		j := (i + 1) % len(p)
		out[edge{from: p[i], to: p[j]}] = true
	}
	return out
}
