package isometry

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// buildTypeOneReflection implements spec.md §4.5's Type-1 reflection table
// over W = A B f_Θ(B) Â C f_Φ(C): two translations by u = path_vector(A ∘ B
// ∘ f_Θ(B) ∘ Â) and -u, and four mirrors -- one pivoted at each of B, f_Θ(B),
// C, f_Φ(C)'s own start, each translated to land on its mirror partner's
// start.
func buildTypeOneReflection(poly geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := mustFactors(fz, 6)
	a, b, bp, abar, c, cp := fs[0], fs[1], fs[2], fs[3], fs[4], fs[5]
	n := len(poly)

	uWord := append(append(append(letter.Word{}, a.Content...), b.Content...), bp.Content...)
	uWord = append(uWord, abar.Content...)
	u := geom.PathVector(uWord)

	thetaB, _ := word.ReflectionAngle(bp.Content, b.Content)
	thetaC, _ := word.ReflectionAngle(cp.Content, c.Content)

	return []geom.Transform{
		geom.Translate(u),
		geom.Translate(u.Neg()),
		geom.Mirror(thetaB, (b.Start-1)%n, translateTo(poly, b.Start, bp.Start)),
		geom.Mirror(thetaB, (bp.Start-1)%n, translateTo(poly, bp.Start, b.Start)),
		geom.Mirror(thetaC, (c.Start-1)%n, translateTo(poly, c.Start, cp.Start)),
		geom.Mirror(thetaC, (cp.Start-1)%n, translateTo(poly, cp.Start, c.Start)),
	}
}
