package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectTypeTwoReflection searches for W = A B C Â f_Θ(C) f_Θ(B) (spec.md
// §4.4.5): Â = backtrack(A) sits exactly half the cycle after A; B,C share a
// single reflection angle Θ with their images. The detector only requires
// each pair to be *some* reflection independently -- agreement on a single
// Θ across both pairs is enforced by the isometry builder, per spec.
func DetectTypeTwoReflection(w letter.Word) (factor.BWFactorization, bool) {
	n := len(w)
	if n < 6 || n%2 != 0 {
		return factor.BWFactorization{}, false
	}
	half := n / 2

	for aStart := 1; aStart <= n; aStart++ {
		for la := 1; la+2 <= half; la++ {
			a, err := factorAt(w, aStart, la)
			if err != nil {
				continue
			}
			bStart := a.NextStart(n)
			for lb := 1; la+lb+1 <= half; lb++ {
				lc := half - la - lb
				b, err := factorAt(w, bStart, lb)
				if err != nil {
					continue
				}
				c, err := factorAt(w, b.NextStart(n), lc)
				if err != nil {
					continue
				}
				abarStart := c.NextStart(n)
				abar, err := factorAt(w, abarStart, la)
				if err != nil || !backtrackPair(a, abar) {
					continue
				}
				cp, err := factorAt(w, abar.NextStart(n), lc)
				if err != nil || !word.IsAnyReflection(cp.Content, c.Content) {
					continue
				}
				bp, err := factorAt(w, cp.NextStart(n), lb)
				if err != nil || !word.IsAnyReflection(bp.Content, b.Content) {
					continue
				}
				return bw(factor.TypeTwoReflection, chain(a, b, c, abar, cp, bp)), true
			}
		}
	}
	return factor.BWFactorization{}, false
}
