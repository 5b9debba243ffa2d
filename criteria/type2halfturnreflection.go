package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectTypeTwoHalfTurnReflection searches for W = A B C D f_Θ(B) f_Φ(D)
// (spec.md §4.4.7): A, C palindromes; (B, f_Θ(B)) and (D, f_Φ(D)) each a
// reflection, with Θ and Φ differing by exactly ±90°.
func DetectTypeTwoHalfTurnReflection(w letter.Word) (factor.BWFactorization, bool) {
	n := len(w)
	if n < 6 {
		return factor.BWFactorization{}, false
	}

	for aStart := 1; aStart <= n; aStart++ {
		for la := 1; la+5 <= n; la++ {
			a, err := factorAt(w, aStart, la)
			if err != nil || !word.IsPalindrome(a.Content) {
				continue
			}
			bStart := a.NextStart(n)
			for lb := 1; la+2*lb+4 <= n; lb++ {
				b, err := factorAt(w, bStart, lb)
				if err != nil {
					continue
				}
				cStart := b.NextStart(n)
				for lc := 1; la+2*lb+lc+3 <= n; lc++ {
					c, err := factorAt(w, cStart, lc)
					if err != nil || !word.IsPalindrome(c.Content) {
						continue
					}
					dStart := c.NextStart(n)
					// Remaining letters cover D, f_Θ(B) (length lb) and
					// f_Φ(D) (length ld): remaining = ld + lb + ld.
					remaining := n - la - lb - lc
					if remaining <= lb || (remaining-lb)%2 != 0 {
						continue
					}
					ld := (remaining - lb) / 2
					if ld < 1 {
						continue
					}
					d, err := factorAt(w, dStart, ld)
					if err != nil {
						continue
					}
					bp, err := factorAt(w, d.NextStart(n), lb)
					if err != nil {
						continue
					}
					thetaB, okB := word.ReflectionAngle(bp.Content, b.Content)
					if !okB {
						continue
					}
					dp, err := factorAt(w, bp.NextStart(n), ld)
					if err != nil {
						continue
					}
					thetaD, okD := word.ReflectionAngle(dp.Content, d.Content)
					if !okD {
						continue
					}
					diff := thetaB - thetaD
					if diff != 90 && diff != -90 {
						continue
					}
					return bw(factor.TypeTwoHalfTurnReflection, chain(a, b, c, d, bp, dp)), true
				}
			}
		}
	}
	return factor.BWFactorization{}, false
}
