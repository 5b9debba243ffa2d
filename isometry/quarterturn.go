package isometry

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// buildQuarterTurn implements spec.md §4.5's Quarter-turn table: a rotation
// pivoted at A.start (180 degrees if A is a palindrome, else 90), translated
// to B.start; a 90-degree rotation pivoted at B.start, translated to the
// next factor's start; a -90-degree rotation pivoted at the midpoint of B;
// and, when the three-factor form fired, the analogous pair for C.
func buildQuarterTurn(poly geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := fz.Factors
	if len(fs) != 2 && len(fs) != 3 {
		panic("quarter-turn factorization must have 2 or 3 factors")
	}
	a, b := fs[0], fs[1]
	n := len(poly)

	angleA := 90
	if word.IsPalindrome(a.Content) {
		angleA = 180
	}

	nextAfterB := a.Start // two-factor form wraps back to A.start
	if len(fs) == 3 {
		nextAfterB = fs[2].Start
	}

	out := []geom.Transform{
		geom.Rotate(angleA, (a.Start-1)%n, translateTo(poly, a.Start, b.Start)),
		geom.Rotate(90, (b.Start-1)%n, translateTo(poly, b.Start, nextAfterB)),
		geom.Rotate(-90, midpointIndex(b, n), geom.Vec{}),
	}

	if len(fs) == 3 {
		c := fs[2]
		out = append(out,
			geom.Rotate(90, (c.Start-1)%n, translateTo(poly, c.Start, a.Start)),
			geom.Rotate(-90, midpointIndex(c, n), geom.Vec{}),
		)
	}
	return out
}

// midpointIndex returns the polygon vertex index nearest the midpoint of
// factor f, measured along the word from f.Start.
func midpointIndex(f factor.Factor, n int) int {
	mid := word.Mod1(f.Start+f.Len()/2, n)
	return (mid - 1) % n
}
