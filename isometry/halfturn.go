package isometry

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
)

// buildHalfTurn implements spec.md §4.5's Half-turn table over the
// six-factor shape W = A B C Â D E: one translation from A's start to Â's
// finish and its inverse, plus four 180-degree rotations pivoted at the
// starts of B, C, D, E, each followed by the translation landing the pivot
// on the next factor's start.
func buildHalfTurn(poly geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := mustFactors(fz, 6)
	a, b, c, abar, d, e := fs[0], fs[1], fs[2], fs[3], fs[4], fs[5]

	// vertexAt(poly, pos) gives the vertex preceding letter pos, so Â's
	// finish vertex -- the point after its last letter -- sits at
	// Â.NextStart(n), not at vertexAt(poly, Â.Finish).
	translateVec := vertexAt(poly, abar.NextStart(len(poly))).Sub(vertexAt(poly, a.Start))

	rotationAt := func(f factor.Factor, nextStart int) geom.Transform {
		pivotIdx := (f.Start - 1) % len(poly)
		then := translateTo(poly, f.Start, nextStart)
		return geom.Rotate(180, pivotIdx, then)
	}

	return []geom.Transform{
		geom.Translate(translateVec),
		geom.Translate(translateVec.Neg()),
		rotationAt(b, c.Start),
		rotationAt(c, abar.Start),
		rotationAt(d, e.Start),
		rotationAt(e, a.Start),
	}
}
