package isometry

import (
	"fmt"

	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// buildTypeTwoReflection implements spec.md §4.5's Type-2 reflection table
// over W = A B C Â f_Θ(C) f_Θ(B): two translations by u = path_vector(A ∘ B
// ∘ C) and -u, and four mirrors at the single angle Θ, pivoted at factor-3
// (C) and factor-6 (f_Θ(B))'s starts, each translated to one of that
// factor's two cyclic neighbors. The B pair's angle must equal the C pair's;
// if they differ, the factorization is a shape mismatch and this panics.
func buildTypeTwoReflection(poly geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := mustFactors(fz, 6)
	a, b, c, abar, cp, bp := fs[0], fs[1], fs[2], fs[3], fs[4], fs[5]
	n := len(poly)

	uWord := append(append(append(letter.Word{}, a.Content...), b.Content...), c.Content...)
	u := geom.PathVector(uWord)

	theta, _ := word.ReflectionAngle(cp.Content, c.Content)
	if thetaB, _ := word.ReflectionAngle(bp.Content, b.Content); thetaB != theta {
		panic(fmt.Sprintf("type-2 reflection angles disagree: C at %d, B at %d", theta, thetaB))
	}

	return []geom.Transform{
		geom.Translate(u),
		geom.Translate(u.Neg()),
		geom.Mirror(theta, (c.Start-1)%n, translateTo(poly, c.Start, b.Start)),
		geom.Mirror(theta, (c.Start-1)%n, translateTo(poly, c.Start, abar.Start)),
		geom.Mirror(theta, (bp.Start-1)%n, translateTo(poly, bp.Start, cp.Start)),
		geom.Mirror(theta, (bp.Start-1)%n, translateTo(poly, bp.Start, a.Start)),
	}
}
