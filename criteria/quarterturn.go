package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectQuarterTurn searches for the quarter-turn shape (spec.md §4.4.3).
// The two-factor degenerate form W = A B, with A itself a palindrome or a
// 90-drome and B a 90-drome, is tried before the three-factor form
// W = A B C with A a palindrome and B, C 90-dromes.
func DetectQuarterTurn(w letter.Word) (factor.BWFactorization, bool) {
	n := len(w)
	if n < 2 {
		return factor.BWFactorization{}, false
	}

	if fz, ok := detectQuarterTurnTwoFactor(w, n); ok {
		return bw(factor.QuarterTurn, fz), true
	}
	if fz, ok := detectQuarterTurnThreeFactor(w, n); ok {
		return bw(factor.QuarterTurn, fz), true
	}
	return factor.BWFactorization{}, false
}

func detectQuarterTurnTwoFactor(w letter.Word, n int) (factor.Factorization, bool) {
	for aStart := 1; aStart <= n; aStart++ {
		for la := 1; la < n; la++ {
			a, err := factorAt(w, aStart, la)
			if err != nil {
				continue
			}
			if !word.IsPalindrome(a.Content) && !word.Is90Drome(a.Content) {
				continue
			}
			lb := n - la
			b, err := factorAt(w, a.NextStart(n), lb)
			if err != nil || !word.Is90Drome(b.Content) {
				continue
			}
			return chain(a, b), true
		}
	}
	return factor.Factorization{}, false
}

func detectQuarterTurnThreeFactor(w letter.Word, n int) (factor.Factorization, bool) {
	for aStart := 1; aStart <= n; aStart++ {
		for la := 1; la+2 <= n; la++ {
			a, err := factorAt(w, aStart, la)
			if err != nil || !word.IsPalindrome(a.Content) {
				continue
			}
			bStart := a.NextStart(n)
			for lb := 1; la+lb+1 <= n; lb++ {
				lc := n - la - lb
				b, err := factorAt(w, bStart, lb)
				if err != nil || !word.Is90Drome(b.Content) {
					continue
				}
				c, err := factorAt(w, b.NextStart(n), lc)
				if err != nil || !word.Is90Drome(c.Content) {
					continue
				}
				return chain(a, b, c), true
			}
		}
	}
	return factor.Factorization{}, false
}
