package isometry

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// buildTypeTwoHalfTurnReflection implements spec.md §4.5's Type-2
// half-turn-reflection table over W = A B C D f_Θ(B) f_Φ(D): two 180-degree
// rotations pivoted at A's and C's starts, and four mirrors -- two at angle
// Θ pivoted at B and f_Θ(B)'s starts, two at angle Φ pivoted at D and
// f_Φ(D)'s starts -- each translated to an adjacent factor's start.
func buildTypeTwoHalfTurnReflection(poly geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := mustFactors(fz, 6)
	a, b, c, d, bp, dp := fs[0], fs[1], fs[2], fs[3], fs[4], fs[5]
	n := len(poly)

	thetaB, _ := word.ReflectionAngle(bp.Content, b.Content)
	thetaD, _ := word.ReflectionAngle(dp.Content, d.Content)

	return []geom.Transform{
		geom.Rotate(180, (a.Start-1)%n, translateTo(poly, a.Start, b.Start)),
		geom.Rotate(180, (c.Start-1)%n, translateTo(poly, c.Start, d.Start)),
		geom.Mirror(thetaB, (b.Start-1)%n, translateTo(poly, b.Start, c.Start)),
		geom.Mirror(thetaB, (bp.Start-1)%n, translateTo(poly, bp.Start, d.Start)),
		geom.Mirror(thetaD, (d.Start-1)%n, translateTo(poly, d.Start, bp.Start)),
		geom.Mirror(thetaD, (dp.Start-1)%n, translateTo(poly, dp.Start, a.Start)),
	}
}
