package isometry

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// buildTypeOneHalfTurnReflection implements spec.md §4.5's Type-1
// half-turn-reflection table over W = A B C Â D f_Θ(D): two translations (by
// the vector from A's start to Â's finish, and its inverse); two 180-degree
// rotations pivoted at B's and C's starts; two mirrors at angle Θ pivoted at
// f_Θ(D)'s start.
func buildTypeOneHalfTurnReflection(poly geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := mustFactors(fz, 6)
	a, b, c, abar, d, dp := fs[0], fs[1], fs[2], fs[3], fs[4], fs[5]
	n := len(poly)

	translateVec := vertexAt(poly, abar.NextStart(n)).Sub(vertexAt(poly, a.Start))
	theta, _ := word.ReflectionAngle(dp.Content, d.Content)

	return []geom.Transform{
		geom.Translate(translateVec),
		geom.Translate(translateVec.Neg()),
		geom.Rotate(180, (b.Start-1)%n, translateTo(poly, b.Start, c.Start)),
		geom.Rotate(180, (c.Start-1)%n, translateTo(poly, c.Start, abar.Start)),
		geom.Mirror(theta, (dp.Start-1)%n, translateTo(poly, dp.Start, d.Start)),
		geom.Mirror(theta, (dp.Start-1)%n, translateTo(poly, dp.Start, a.Start)),
	}
}
