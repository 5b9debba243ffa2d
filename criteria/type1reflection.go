package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectTypeOneReflection searches for W = A B f_Θ(B) Â C f_Φ(C) (spec.md
// §4.4.4): Â = backtrack(A); B and its mirror image are a reflection at some
// angle Θ; C and its mirror image are a reflection at some (possibly
// different) angle Φ. Only A.start, |A| and |B| are iterated (B starts right
// after A); the remaining split between Â, C and f_Φ(C) is computed directly
// from |A| and the letters left over.
func DetectTypeOneReflection(w letter.Word) (factor.BWFactorization, bool) {
	n := len(w)
	if n < 6 || n%2 != 0 {
		return factor.BWFactorization{}, false
	}

	for aStart := 1; aStart <= n; aStart++ {
		for la := 1; 2*la+4 <= n; la++ {
			a, err := factorAt(w, aStart, la)
			if err != nil {
				continue
			}
			bStart := a.NextStart(n)
			for lb := 1; 2*la+2*lb+2 <= n; lb++ {
				b, err := factorAt(w, bStart, lb)
				if err != nil {
					continue
				}
				bp, err := factorAt(w, b.NextStart(n), lb)
				if err != nil || !word.IsAnyReflection(bp.Content, b.Content) {
					continue
				}
				abarStart := bp.NextStart(n)
				abar, err := factorAt(w, abarStart, la)
				if err != nil || !backtrackPair(a, abar) {
					continue
				}
				remaining := n - 2*la - 2*lb
				if remaining < 2 || remaining%2 != 0 {
					continue
				}
				lc := remaining / 2
				cStart := abar.NextStart(n)
				c, err := factorAt(w, cStart, lc)
				if err != nil {
					continue
				}
				cp, err := factorAt(w, c.NextStart(n), lc)
				if err != nil || !word.IsAnyReflection(cp.Content, c.Content) {
					continue
				}
				return bw(factor.TypeOneReflection, chain(a, b, bp, abar, c, cp)), true
			}
		}
	}
	return factor.BWFactorization{}, false
}
