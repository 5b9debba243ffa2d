package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// DetectTranslation searches for the six-factor Beauquier-Nivat
// decomposition W = A B C Â B̂ Ĉ (spec.md §4.4.1): each of (A,Â), (B,B̂),
// (C,Ĉ) an admissible gapped mirror, A/B/C consecutive and together
// spanning exactly half the cycle.
//
// The search iterates every candidate start position in ascending order,
// then every admissible A and B factor at that position in ascending
// length (admissible factors are pre-sorted by FactorsByStart), pruning as
// soon as |A|+|B| exceeds half the word. When |A|+|B| lands exactly on
// half, the two-factor form (no C) succeeds; otherwise the unique
// remaining span is checked against the admissible index and accepted
// only if it is itself an admissible factor.
func DetectTranslation(w letter.Word) (factor.BWFactorization, bool) {
	n := len(w)
	if n == 0 || n%2 != 0 {
		return factor.BWFactorization{}, false
	}
	half := n / 2

	byStart := factor.FactorsByStart(w)
	half3, ok := searchTranslationHalf(n, half, byStart)
	if !ok {
		return factor.BWFactorization{}, false
	}

	fz, err := expandTranslationHalf(w, half3, n, half)
	if err != nil {
		return factor.BWFactorization{}, false
	}
	return bw(factor.Translation, fz), true
}

func searchTranslationHalf(n, half int, byStart map[int][]factor.Factor) ([]factor.Factor, bool) {
	for s := 1; s <= n; s++ {
		for _, a := range byStart[s] {
			if a.Len() > half {
				break
			}
			bStart := a.NextStart(n)
			for _, b := range byStart[bStart] {
				total := a.Len() + b.Len()
				if total > half {
					break
				}
				if total == half {
					return []factor.Factor{a, b}, true
				}
				remainder := half - total
				cStart := b.NextStart(n)
				for _, c := range byStart[cStart] {
					if c.Len() > remainder {
						break
					}
					if c.Len() == remainder {
						return []factor.Factor{a, b, c}, true
					}
				}
			}
		}
	}
	return nil, false
}

// expandTranslationHalf appends, for every factor F in the half
// factorization, its image F' = (Backtrack(F.Content), F.Start+half,
// F.Finish+half), per spec.md §4.4.1 "Expand".
func expandTranslationHalf(w letter.Word, half3 []factor.Factor, n, half int) (factor.Factorization, error) {
	full := make([]factor.Factor, 0, len(half3)*2)
	full = append(full, half3...)
	for _, f := range half3 {
		start2 := word.Mod1(f.Start+half, n)
		finish2 := word.Mod1(f.Finish+half, n)
		nf, err := factor.NewFactor(w, start2, finish2)
		if err != nil {
			return factor.Factorization{}, err
		}
		full = append(full, nf)
	}
	return factor.Factorization{Factors: full}, nil
}
