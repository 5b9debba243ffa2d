package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectHalfTurn searches for W = A B C Â D E with B, C, D, E palindromes
// and Â = backtrack(A) (spec.md §4.4.2).
func DetectHalfTurn(w letter.Word) (factor.BWFactorization, bool) {
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
					if remaining < 2 {
						continue
					}
					dStart := abar.NextStart(n)
					for ld := 1; ld < remaining; ld++ {
						d, err := factorAt(w, dStart, ld)
						if err != nil || !word.IsPalindrome(d.Content) {
							continue
						}
						le := remaining - ld
						eStart := d.NextStart(n)
						e, err := factorAt(w, eStart, le)
						if err != nil || !word.IsPalindrome(e.Content) {
							continue
						}
						return bw(factor.HalfTurn, chain(a, b, c, abar, d, e)), true
					}
				}
			}
		}
	}
	return factor.BWFactorization{}, false
}
