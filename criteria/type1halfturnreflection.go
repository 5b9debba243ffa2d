package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectTypeOneHalfTurnReflection searches for W = A B C Â D f_Θ(D)
// (spec.md §4.4.6): B, C palindromes; Â = backtrack(A); D and its image a
// reflection at some angle Θ. A.start, B.start and C.start are iterated;
// the D / f_Θ(D) split is forced once |A| fixes Â's length.
func DetectTypeOneHalfTurnReflection(w letter.Word) (factor.BWFactorization, bool) {
	n := len(w)
	if n < 6 {
		return factor.BWFactorization{}, false
	}

	for aStart := 1; aStart <= n; aStart++ {
		for la := 1; 2*la+4 <= n; la++ {
			a, err := factorAt(w, aStart, la)
			if err != nil {
				continue
			}
			bStart := a.NextStart(n)
			for lb := 1; 2*la+lb+3 <= n; lb++ {
				b, err := factorAt(w, bStart, lb)
				if err != nil || !word.IsPalindrome(b.Content) {
					continue
				}
				cStart := b.NextStart(n)
				for lc := 1; 2*la+lb+lc+2 <= n; lc++ {
					c, err := factorAt(w, cStart, lc)
					if err != nil || !word.IsPalindrome(c.Content) {
						continue
					}
					abarStart := c.NextStart(n)
					abar, err := factorAt(w, abarStart, la)
					if err != nil || !backtrackPair(a, abar) {
						continue
					}
					remaining := n - 2*la - lb - lc
					if remaining < 2 || remaining%2 != 0 {
						continue
					}
					ld := remaining / 2
					dStart := abar.NextStart(n)
					d, err := factorAt(w, dStart, ld)
					if err != nil {
						continue
					}
					dp, err := factorAt(w, d.NextStart(n), ld)
					if err != nil || !word.IsAnyReflection(dp.Content, d.Content) {
						continue
					}
					return bw(factor.TypeOneHalfTurnReflection, chain(a, b, c, abar, d, dp)), true
				}
			}
		}
	}
	return factor.BWFactorization{}, false
}
